package pando

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const clickScript = `
steps:
  - action: move
    x: 5
    y: 5
  - action: click
    x: 10
    y: 20
  - action: wait
    frames: 3
  - action: drag
    fromX: 10
    fromY: 10
    toX: 40
    toY: 10
    frames: 4
`

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(clickScript))
	if err != nil {
		t.Fatal(err)
	}
	want := []ScriptStep{
		{Action: "move", X: 5, Y: 5},
		{Action: "click", X: 10, Y: 20},
		{Action: "wait", Frames: 3},
		{Action: "drag", FromX: 10, FromY: 10, ToX: 40, ToY: 10, Frames: 4},
	}
	if diff := cmp.Diff(want, s.Steps()); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		substr  string
	}{
		{"empty", "steps: []", ErrNoSteps, "no steps"},
		{"no steps key", "foo: 1", ErrNoSteps, "no steps"},
		{"malformed", "steps: [", nil, "parse script"},
		{"unknown action", "steps:\n  - action: teleport\n", nil, `unknown action "teleport"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("err = %q, want it to contain %q", err, tt.substr)
			}
		})
	}
}

func TestScriptDrivesApp(t *testing.T) {
	rec := &recorder{}
	p := clickable(rec, "a", 100, 100)
	a, _ := newTestApp(p)

	s, err := LoadScript([]byte(clickScript))
	if err != nil {
		t.Fatal(err)
	}
	a.SetScript(s)
	for i := 0; i < 100 && !s.Done(); i++ {
		frames(t, a, 1)
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	frames(t, a, 1)

	if rec.count("a:click") != 1 || rec.count("a:drag") == 0 {
		t.Errorf("events = %v", rec.events)
	}
	if a.Input().Position != (Vec2{40, 10}) {
		t.Errorf("pointer at %v", a.Input().Position)
	}
}

func TestScriptResizeAndKey(t *testing.T) {
	var keys []KeyEvent
	p := newStub(10, 10)
	p.Node().onUpdate = func(cx *UpdateContext) { keys = append(keys, cx.Keys()...) }
	a, _ := newTestApp(p)

	s, err := LoadScript([]byte("steps:\n  - action: resize\n    width: 320\n    height: 240\n  - action: key\n    key: A\n    text: a\n"))
	if err != nil {
		t.Fatal(err)
	}
	a.SetScript(s)
	for i := 0; i < 20 && !s.Done(); i++ {
		frames(t, a, 1)
	}

	if a.Input().WindowSize != (Size{W: 320, H: 240}) {
		t.Errorf("WindowSize = %v", a.Input().WindowSize)
	}
	want := []KeyEvent{{Key: "A", Text: "a", Pressed: true}, {Key: "A"}}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}
