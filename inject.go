package pando

// injectKind distinguishes synthetic input events.
type injectKind uint8

const (
	injectButton injectKind = iota
	injectMove
	injectScroll
	injectKey
	injectLeave
)

// syntheticEvent is one queued input event. Window coordinates are used,
// identical to real pointer input.
type syntheticEvent struct {
	kind    injectKind
	pos     Vec2
	pressed bool
	button  MouseButton
	scroll  Vec2
	key     KeyEvent
}

// InjectPress queues a press of b at (x, y). Each queued event is applied
// at the start of its own frame, before hit testing.
func (a *App) InjectPress(b MouseButton, x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{
		kind: injectButton, pos: Vec2{x, y}, pressed: true, button: b,
	})
}

// InjectRelease queues a release of b at (x, y).
func (a *App) InjectRelease(b MouseButton, x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{
		kind: injectButton, pos: Vec2{x, y}, pressed: false, button: b,
	})
}

// InjectMove queues a pointer move to (x, y). Held buttons stay held.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: injectMove, pos: Vec2{x, y}})
}

// InjectLeave queues the pointer leaving the window.
func (a *App) InjectLeave() {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectScroll queues a wheel movement of (dx, dy) at (x, y).
func (a *App) InjectScroll(x, y, dx, dy float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{
		kind: injectScroll, pos: Vec2{x, y}, scroll: Vec2{dx, dy},
	})
}

// InjectKey queues a key event.
func (a *App) InjectKey(ev KeyEvent) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: injectKey, key: ev})
}

// InjectClick queues a move, press and release of b at (x, y).
// Consumes three frames.
func (a *App) InjectClick(b MouseButton, x, y float64) {
	a.InjectMove(x, y)
	a.InjectPress(b, x, y)
	a.InjectRelease(b, x, y)
}

// InjectDrag queues a full drag of b: press at from, moves linearly
// interpolated over frames-2 intermediate frames, and release at to.
// The sequence consumes frames frames, at least 2.
func (a *App) InjectDrag(b MouseButton, from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(b, from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.InjectMove(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	a.InjectRelease(b, to.X, to.Y)
}

// Pending returns the number of queued synthetic events.
func (a *App) Pending() int {
	return len(a.injectQueue)
}

// applyInjected pops one event into the frame input. Returns true if an
// event was consumed.
func (a *App) applyInjected() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	in := a.input
	switch ev.kind {
	case injectButton:
		in.SetPointer(ev.pos)
		in.SetButton(ev.button, ev.pressed)
	case injectMove:
		in.SetPointer(ev.pos)
	case injectScroll:
		in.SetPointer(ev.pos)
		in.AddScroll(ev.scroll)
	case injectKey:
		in.PushKey(ev.key)
	case injectLeave:
		in.PointerLeft()
	}
	return true
}
