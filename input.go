package pando

// MouseButton identifies a pointer button with its own gesture state machine.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button

	numButtons = 2
)

func (b MouseButton) String() string {
	if b == MouseButtonRight {
		return "right"
	}
	return "left"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in o is held.
func (m KeyModifiers) Has(o KeyModifiers) bool {
	return m&o == o
}

// KeyEvent is one queued keyboard event. Key is the windowing layer's key
// name ("A", "Enter", "ArrowLeft"); Text carries typed characters, if any.
type KeyEvent struct {
	Key       string
	Text      string
	Pressed   bool
	Modifiers KeyModifiers
}

// Input is the frame-global input state. Windowing adapters (and tests)
// feed it between frames; the frame driver decays it once per frame.
type Input struct {
	Position     Vec2
	PrevPosition Vec2
	// InWindow is false when the pointer is outside the window; positions
	// are then meaningless.
	InWindow     bool
	PrevInWindow bool

	Down     [numButtons]bool
	PrevDown [numButtons]bool

	Scroll    Vec2
	Modifiers KeyModifiers
	Keys      []KeyEvent

	WindowSize Size

	// Delta is the time since the previous frame in seconds.
	Delta float64
}

// SetPointer moves the pointer to p in window coordinates.
func (in *Input) SetPointer(p Vec2) {
	in.Position = p
	in.InWindow = true
}

// PointerLeft records that the pointer left the window.
func (in *Input) PointerLeft() {
	in.InWindow = false
}

// SetButton records the pressed state of b.
func (in *Input) SetButton(b MouseButton, down bool) {
	if b < numButtons {
		in.Down[b] = down
	}
}

// AddScroll accumulates a scroll delta for this frame.
func (in *Input) AddScroll(d Vec2) {
	in.Scroll = in.Scroll.Add(d)
}

// SetModifiers replaces the held modifier set.
func (in *Input) SetModifiers(m KeyModifiers) {
	in.Modifiers = m
}

// PushKey queues a key event for this frame's update pass.
func (in *Input) PushKey(ev KeyEvent) {
	in.Keys = append(in.Keys, ev)
}

// SetWindowSize records the current window size.
func (in *Input) SetWindowSize(s Size) {
	in.WindowSize = s
}

// JustPressed reports whether b went down since the previous frame.
func (in *Input) JustPressed(b MouseButton) bool {
	return in.Down[b] && !in.PrevDown[b]
}

// JustReleased reports whether b went up since the previous frame.
func (in *Input) JustReleased(b MouseButton) bool {
	return !in.Down[b] && in.PrevDown[b]
}

// AnyDown reports whether any button is held.
func (in *Input) AnyDown() bool {
	for _, d := range in.Down {
		if d {
			return true
		}
	}
	return false
}

// Moved reports whether the pointer moved (or entered/left) since the
// previous frame.
func (in *Input) Moved() bool {
	return in.Position != in.PrevPosition || in.InWindow != in.PrevInWindow
}

// changed reports whether anything that could affect hit testing or the
// update pass happened this frame.
func (in *Input) changed() bool {
	return in.Moved() || in.Down != in.PrevDown || !in.Scroll.IsZero() || len(in.Keys) > 0
}

// advance decays per-frame input at the frame boundary.
func (in *Input) advance() {
	in.Scroll = Vec2{}
	in.Keys = in.Keys[:0]
	in.PrevPosition = in.Position
	in.PrevInWindow = in.InWindow
	in.PrevDown = in.Down
}
