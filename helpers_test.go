package pando

import (
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// assertPanics runs fn and fails unless it panics.
func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// testWindow records every request made through the Window interface.
type testWindow struct {
	calls     []string
	maximized bool
	cursor    CursorIcon
}

func (w *testWindow) SetMaximized(m bool) {
	w.maximized = m
	w.calls = append(w.calls, fmt.Sprintf("maximize(%v)", m))
}

func (w *testWindow) IsMaximized() bool { return w.maximized }

func (w *testWindow) SetMinimized(m bool) {
	w.calls = append(w.calls, fmt.Sprintf("minimize(%v)", m))
}

func (w *testWindow) DragWindow() {
	w.calls = append(w.calls, "drag")
}

func (w *testWindow) DragResizeWindow(dir ResizeDirection) {
	w.calls = append(w.calls, fmt.Sprintf("resize(%d)", dir))
}

func (w *testWindow) SetCursor(icon CursorIcon) {
	w.cursor = icon
	w.calls = append(w.calls, "cursor("+icon.String()+")")
}

func (w *testWindow) RequestRedraw() {
	w.calls = append(w.calls, "redraw")
}

func (w *testWindow) Exit() {
	w.calls = append(w.calls, "exit")
}

// stub is a configurable leaf node that counts its passes and can
// register a full-size mouse region.
type stub struct {
	size    Size
	updates int
	layouts int
	draws   int

	onUpdate func(cx *UpdateContext)
	onDraw   func(cx *DrawContext)
	mouse    func(r *MouseRegion)
}

func (p *stub) Update(cx *UpdateContext) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate(cx)
	}
}

func (p *stub) Layout(min, max Size, _ *LayoutContext) Size {
	p.layouts++
	return p.size
}

func (p *stub) Draw(cx *DrawContext) {
	p.draws++
	if p.onDraw != nil {
		p.onDraw(cx)
	}
	if p.mouse != nil {
		p.mouse(cx.MouseRegion(cx.LocalBounds().Shape()))
	}
}

func newStub(w, h float64) *Element[*stub] {
	return NewElement(&stub{size: Size{W: w, H: h}})
}

// place positions each child at a fixed offset, in order.
type place struct {
	Widgets
	at []Vec2
}

func (p *place) Layout(min, max Size, cx *LayoutContext) Size {
	for i, w := range p.Widgets {
		res := w.Layout(Size{}, max, cx)
		res.PositionAt(p.at[i].X, p.at[i].Y, cx)
	}
	return max
}

func newPlace(children []Widget, at ...Vec2) *Element[*place] {
	return NewElement(&place{Widgets: children, at: at})
}

// newTestApp returns an app with a 200×200 window and a recording window.
func newTestApp(root Widget, opts ...Option) (*App, *testWindow) {
	w := &testWindow{}
	a := NewApp(root, append([]Option{WithWindow(w)}, opts...)...)
	a.Resize(Size{W: 200, H: 200})
	return a, w
}

// frames runs n frames and fails the test on a present error.
func frames(t *testing.T, a *App, n int) {
	t.Helper()
	for range n {
		if _, err := a.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
}

// drain runs frames until the inject queue is empty, plus one.
func drain(t *testing.T, a *App) {
	t.Helper()
	for a.Pending() > 0 {
		frames(t, a, 1)
	}
	frames(t, a, 1)
}

var red = gg.RGBA{R: 1, A: 1}
