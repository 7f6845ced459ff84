package pando

import "testing"

func TestInjectOneEventPerFrame(t *testing.T) {
	a, _ := newTestApp(newStub(10, 10))
	a.InjectMove(1, 2)
	a.InjectPress(MouseButtonLeft, 3, 4)
	a.InjectScroll(5, 6, 0, 2)
	a.InjectRelease(MouseButtonLeft, 7, 8)
	a.InjectLeave()

	in := a.Input()
	steps := []struct {
		pos      Vec2
		down     bool
		inWindow bool
	}{
		{Vec2{1, 2}, false, true},
		{Vec2{3, 4}, true, true},
		{Vec2{5, 6}, true, true},
		{Vec2{7, 8}, false, true},
		{Vec2{7, 8}, false, false},
	}
	for i, want := range steps {
		if a.Pending() != len(steps)-i {
			t.Fatalf("frame %d: Pending = %d", i, a.Pending())
		}
		frames(t, a, 1)
		// advance copied the applied state into the previous-frame fields.
		if in.PrevPosition != want.pos || in.PrevDown[MouseButtonLeft] != want.down || in.PrevInWindow != want.inWindow {
			t.Errorf("frame %d: pos=%v down=%v in=%v, want %+v",
				i, in.PrevPosition, in.PrevDown[MouseButtonLeft], in.PrevInWindow, want)
		}
	}
	if a.Pending() != 0 {
		t.Errorf("Pending = %d after draining", a.Pending())
	}
}

func TestInjectScrollReachesUpdate(t *testing.T) {
	var scroll Vec2
	p := newStub(10, 10)
	p.Node().onUpdate = func(cx *UpdateContext) { scroll = scroll.Add(cx.Scroll()) }
	a, _ := newTestApp(p)
	a.InjectScroll(5, 5, 1, -3)
	drain(t, a)
	if scroll != (Vec2{1, -3}) {
		t.Errorf("scroll = %v", scroll)
	}
}

func TestInjectDragFrames(t *testing.T) {
	tests := []struct {
		frames, want int
	}{
		{0, 2},
		{2, 2},
		{5, 5},
	}
	for _, tt := range tests {
		a, _ := newTestApp(newStub(10, 10))
		a.InjectDrag(MouseButtonRight, Vec2{0, 0}, Vec2{30, 0}, tt.frames)
		if a.Pending() != tt.want {
			t.Errorf("InjectDrag(frames=%d) queued %d events, want %d", tt.frames, a.Pending(), tt.want)
		}
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	a, _ := newTestApp(newStub(10, 10))
	a.InjectDrag(MouseButtonLeft, Vec2{0, 0}, Vec2{30, 60}, 4)
	var got []Vec2
	for a.Pending() > 0 {
		frames(t, a, 1)
		got = append(got, a.Input().PrevPosition)
	}
	want := []Vec2{{0, 0}, {10, 20}, {20, 40}, {30, 60}}
	for i := range want {
		assertNear(t, "x", got[i].X, want[i].X)
		assertNear(t, "y", got[i].Y, want[i].Y)
	}
}
