package pando

import (
	"os"
	"strings"
	"testing"
)

func TestPixmapPresenter(t *testing.T) {
	pr := NewPixmapPresenter(64, 48)
	box := NewBox(Size{W: 20, H: 20}, red)
	a, _ := newTestApp(NewStack(box), WithPresenter(pr))
	frames(t, a, 3)

	if pr.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", pr.Frames())
	}
	pm := pr.Pixmap()
	if pm == nil || pm.Width() != 64 || pm.Height() != 48 {
		t.Fatalf("pixmap = %v", pm)
	}
	if len(pm.Data()) != 64*48*4 {
		t.Errorf("len(Data) = %d", len(pm.Data()))
	}
}

func TestPixmapPresenterResize(t *testing.T) {
	pr := NewPixmapPresenter(10, 10)
	first := pr.Pixmap()
	pr.Resize(10, 10)
	if pr.Pixmap() != first {
		t.Error("same-size Resize reallocated")
	}

	pr.Resize(0, 10)
	if pr.Pixmap() != nil {
		t.Error("empty size kept a pixmap")
	}
	a, _ := newTestApp(newStub(5, 5), WithPresenter(pr))
	frames(t, a, 1)
	if pr.Frames() != 0 {
		t.Error("presented into an empty target")
	}

	pr.Resize(32, 32)
	a.ForceRedraw()
	frames(t, a, 1)
	if pr.Frames() != 1 || pr.Pixmap().Width() != 32 {
		t.Errorf("Frames=%d after resize", pr.Frames())
	}
}

func TestScreenshotFromScript(t *testing.T) {
	pr := NewPixmapPresenter(32, 32)
	pr.ScreenshotDir = t.TempDir()
	a, _ := newTestApp(NewStack(NewBox(Size{W: 8, H: 8}, red)), WithPresenter(pr))

	s, err := LoadScript([]byte("steps:\n  - action: screenshot\n    label: first frame!\n"))
	if err != nil {
		t.Fatal(err)
	}
	a.SetScript(s)
	frames(t, a, 3)

	saved := pr.Saved()
	if len(saved) != 1 {
		t.Fatalf("saved = %v, want one file", saved)
	}
	if !strings.HasSuffix(saved[0], "_first_frame_.png") {
		t.Errorf("path = %q", saved[0])
	}
	if _, err := os.Stat(saved[0]); err != nil {
		t.Error(err)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":           "unlabeled",
		"  ":         "unlabeled",
		"ok-1.2":     "ok-1.2",
		"a/b c":      "a_b_c",
		"drag:done ": "drag_done",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScreenshotWithoutCapablePresenter(t *testing.T) {
	a, _ := newTestApp(newStub(5, 5), WithPresenter(&countingPresenter{}))
	frames(t, a, 1)
	a.Screenshot("x")
	if stats, _ := a.Frame(); stats.Redrawn {
		t.Error("screenshot forced a redraw without a capable presenter")
	}
}
