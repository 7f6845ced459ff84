package pando

import "github.com/gogpu/gg/scene"

// DefaultDragThreshold is the local-space distance a pressed pointer must
// travel before the press becomes a drag.
const DefaultDragThreshold = 3.0

// --- Built-in shapes ---

// RectShape returns a rectangle hit and draw shape in local coordinates.
func RectShape(x, y, w, h float64) scene.Shape {
	return scene.NewRectShape(float32(x), float32(y), float32(w), float32(h))
}

// RoundedRectShape returns a rectangle with corner radius r.
func RoundedRectShape(x, y, w, h, r float64) scene.Shape {
	return scene.NewRoundedRectShape(float32(x), float32(y), float32(w), float32(h), float32(r))
}

// CircleShape returns a circle centred on (cx, cy).
func CircleShape(cx, cy, r float64) scene.Shape {
	return scene.NewCircleShape(float32(cx), float32(cy), float32(r))
}

// PolygonShape returns a closed polygon through pts. Containment uses the
// non-zero winding rule, so concave outlines work too.
func PolygonShape(pts ...Vec2) scene.Shape {
	p := scene.NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	if len(pts) > 0 {
		p.Close()
	}
	return scene.NewPathShape(p)
}

// --- Events ---

// MouseEvent is passed to every region callback.
type MouseEvent struct {
	Token  Token
	Button MouseButton
	// Window is the pointer position in window space.
	Window Vec2
	// Local is the pointer position in the region's local space.
	Local Vec2
	// Delta is the movement in local space (drag) or the scroll amount
	// (scroll). Zero otherwise.
	Delta     Vec2
	Modifiers KeyModifiers
}

// MouseHandler handles a region callback. cx is narrowed to the region's
// owning node and uses the transform the region was registered with.
type MouseHandler func(cx *UpdateContext, e MouseEvent)

// GestureKind identifies a dispatched callback.
type GestureKind uint8

const (
	GestureHover GestureKind = iota
	GestureLeave
	GestureDown
	GestureUp
	GestureClick
	GestureDrag
	GestureScroll
)

var gestureNames = [...]string{"hover", "leave", "down", "up", "click", "drag", "scroll"}

func (k GestureKind) String() string {
	if int(k) < len(gestureNames) {
		return gestureNames[k]
	}
	return "unknown"
}

// GestureEvent records one dispatched callback for an EventSink.
type GestureEvent struct {
	Kind  GestureKind
	Index int
	MouseEvent
}

// EventSink receives every gesture the manager dispatches, after the
// region's own callback ran.
type EventSink interface {
	Publish(GestureEvent)
}

// --- Regions ---

type buttonHandlers struct {
	down, up, click, drag MouseHandler
}

// MouseRegion is a hit-test shape registered for one frame. Configure it
// with the On* methods right after registration.
type MouseRegion struct {
	token Token
	index int

	// shape is in window space.
	shape      *scene.Path
	transform  Affine
	inverse    Affine
	invertible bool
	clips      []*scene.Path

	cursor  CursorIcon
	hover   MouseHandler
	leave   MouseHandler
	buttons [numButtons]buttonHandlers
	scroll  MouseHandler
}

// Token returns the owning node.
func (r *MouseRegion) Token() Token { return r.token }

// Index returns the region's registration index within its node for this
// frame. Update-time regions have negative indices.
func (r *MouseRegion) Index() int { return r.index }

// Contains reports whether the window-space point p is inside the shape and
// inside every clip that was active at registration.
func (r *MouseRegion) Contains(p Vec2) bool {
	if !r.invertible || r.shape == nil {
		return false
	}
	x, y := float32(p.X), float32(p.Y)
	if !r.shape.Contains(x, y) {
		return false
	}
	for _, c := range r.clips {
		if !c.Contains(x, y) {
			return false
		}
	}
	return true
}

// WithCursor sets the cursor shown while this region is topmost.
func (r *MouseRegion) WithCursor(icon CursorIcon) *MouseRegion {
	r.cursor = icon
	return r
}

// OnHover fires once when the pointer enters the region with no button down.
func (r *MouseRegion) OnHover(fn MouseHandler) *MouseRegion {
	r.hover = fn
	return r
}

// OnLeave fires once when a hovered region stops containing the pointer.
func (r *MouseRegion) OnLeave(fn MouseHandler) *MouseRegion {
	r.leave = fn
	return r
}

// OnDown fires when the left button is pressed over this region.
func (r *MouseRegion) OnDown(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonLeft].down = fn
	return r
}

// OnUp fires when the left button is released over this region without
// producing a click.
func (r *MouseRegion) OnUp(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonLeft].up = fn
	return r
}

// OnClick fires when a left press that started here is released here
// without becoming a drag.
func (r *MouseRegion) OnClick(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonLeft].click = fn
	return r
}

// OnDrag fires every frame the pointer moves during a left drag that
// started here. The first call carries the full travel since the press.
func (r *MouseRegion) OnDrag(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonLeft].drag = fn
	return r
}

// OnRightDown is OnDown for the right button.
func (r *MouseRegion) OnRightDown(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonRight].down = fn
	return r
}

// OnRightUp is OnUp for the right button.
func (r *MouseRegion) OnRightUp(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonRight].up = fn
	return r
}

// OnRightClick is OnClick for the right button.
func (r *MouseRegion) OnRightClick(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonRight].click = fn
	return r
}

// OnRightDrag is OnDrag for the right button.
func (r *MouseRegion) OnRightDrag(fn MouseHandler) *MouseRegion {
	r.buttons[MouseButtonRight].drag = fn
	return r
}

// OnScroll fires when this is the topmost region under the pointer that
// handles scrolling and the wheel moved.
func (r *MouseRegion) OnScroll(fn MouseHandler) *MouseRegion {
	r.scroll = fn
	return r
}

// --- Manager ---

// regionKey identifies a region across frames.
type regionKey struct {
	token Token
	index int
}

func (r *MouseRegion) key() regionKey {
	return regionKey{r.token, r.index}
}

// hoverEntry is a hovered region. The region is kept so leave can still
// fire after its key stops being registered.
type hoverEntry struct {
	key    regionKey
	region *MouseRegion
}

// gestureState tracks one button.
type gestureState struct {
	down       bool
	downAt     Vec2
	crossed    bool
	owner      regionKey
	hasOwner   bool
	clickOwner regionKey
	canClick   bool
}

// MouseRegionManager collects the regions registered during draw and turns
// raw pointer state into region callbacks on the following frame.
type MouseRegionManager struct {
	regions       []*MouseRegion
	updateRegions []*MouseRegion
	byKey         map[regionKey]*MouseRegion
	counts        map[Token]int
	updateCounts  map[Token]int

	gestures [numButtons]gestureState
	hovered  []hoverEntry
	cursor   CursorIcon

	threshold float64
	sink      EventSink
}

func newMouseRegionManager() *MouseRegionManager {
	return &MouseRegionManager{
		byKey:        make(map[regionKey]*MouseRegion),
		counts:       make(map[Token]int),
		updateCounts: make(map[Token]int),
		threshold:    DefaultDragThreshold,
	}
}

func newRegion(tok Token, index int, shape scene.Shape, t Affine, clips []*scene.Path) *MouseRegion {
	r := &MouseRegion{token: tok, index: index, transform: t, clips: clips}
	r.inverse, r.invertible = t.Invert()
	if shape != nil {
		if p := shape.ToPath(); p != nil {
			r.shape = p.Transform(t.Scene())
		}
	}
	return r
}

// register appends a draw-time region. Later registrations are on top.
func (m *MouseRegionManager) register(tok Token, shape scene.Shape, t Affine, clips []*scene.Path) *MouseRegion {
	idx := m.counts[tok]
	m.counts[tok] = idx + 1
	r := newRegion(tok, idx, shape, t, clips)
	m.regions = append(m.regions, r)
	m.byKey[r.key()] = r
	return r
}

// registerUpdate appends an update-time region, above all draw-time ones.
func (m *MouseRegionManager) registerUpdate(tok Token, shape scene.Shape, t Affine) *MouseRegion {
	idx := m.updateCounts[tok] - 1
	m.updateCounts[tok] = idx
	r := newRegion(tok, idx, shape, t, nil)
	m.updateRegions = append(m.updateRegions, r)
	m.byKey[r.key()] = r
	return r
}

// Clear drops every draw-time region. Called before each draw.
func (m *MouseRegionManager) Clear() {
	for _, r := range m.regions {
		delete(m.byKey, r.key())
	}
	clear(m.regions)
	m.regions = m.regions[:0]
	clear(m.counts)
}

func (m *MouseRegionManager) clearUpdate() {
	for _, r := range m.updateRegions {
		delete(m.byKey, r.key())
	}
	clear(m.updateRegions)
	m.updateRegions = m.updateRegions[:0]
	clear(m.updateCounts)
}

// Regions returns the draw-time regions in registration order. The slice
// MUST NOT be modified.
func (m *MouseRegionManager) Regions() []*MouseRegion {
	return m.regions
}

// Len returns the number of live regions, draw-time and update-time.
func (m *MouseRegionManager) Len() int {
	return len(m.regions) + len(m.updateRegions)
}

// SetDragThreshold sets the press-to-drag distance in local units.
func (m *MouseRegionManager) SetDragThreshold(d float64) {
	m.threshold = d
}

// InProgress reports whether a pressed button's drag or click is owned by
// tok.
func (m *MouseRegionManager) InProgress(tok Token) bool {
	for i := range m.gestures {
		g := &m.gestures[i]
		if !g.down {
			continue
		}
		if (g.hasOwner && g.owner.token == tok) || (g.canClick && g.clickOwner.token == tok) {
			return true
		}
	}
	return false
}

// anyDown reports whether the engine is tracking any pressed button.
func (m *MouseRegionManager) anyDown() bool {
	for i := range m.gestures {
		if m.gestures[i].down {
			return true
		}
	}
	return false
}

// Hovered reports whether any region of tok is currently hovered.
func (m *MouseRegionManager) Hovered(tok Token) bool {
	for _, h := range m.hovered {
		if h.key.token == tok {
			return true
		}
	}
	return false
}

// Cursor returns the cursor resolved on the last processed frame.
func (m *MouseRegionManager) Cursor() CursorIcon {
	return m.cursor
}

// topDown calls fn for each region from topmost to bottommost until fn
// returns false.
func (m *MouseRegionManager) topDown(fn func(*MouseRegion) bool) {
	for i := len(m.updateRegions) - 1; i >= 0; i-- {
		if !fn(m.updateRegions[i]) {
			return
		}
	}
	for i := len(m.regions) - 1; i >= 0; i-- {
		if !fn(m.regions[i]) {
			return
		}
	}
}

// hit returns the topmost region containing p.
func (m *MouseRegionManager) hit(p Vec2) *MouseRegion {
	var top *MouseRegion
	m.topDown(func(r *MouseRegion) bool {
		if r.Contains(p) {
			top = r
			return false
		}
		return true
	})
	return top
}

func (m *MouseRegionManager) isHovered(k regionKey) bool {
	for _, h := range m.hovered {
		if h.key == k {
			return true
		}
	}
	return false
}

// process resolves this frame's pointer state against the regions of the
// previous draw and reports whether any callback fired.
func (m *MouseRegionManager) process(fs *frameState) bool {
	in := fs.input
	fired := false
	dispatch := func(kind GestureKind, r *MouseRegion, fn MouseHandler, b MouseButton, delta Vec2) {
		if fn == nil {
			return
		}
		e := MouseEvent{
			Token:     r.token,
			Button:    b,
			Window:    in.Position,
			Local:     r.inverse.Apply(in.Position),
			Delta:     delta,
			Modifiers: in.Modifiers,
		}
		cx := &UpdateContext{Context: Context{fs: fs, token: r.token, transform: r.transform, tracked: true}}
		fn(cx, e)
		fired = true
		if m.sink != nil {
			m.sink.Publish(GestureEvent{Kind: kind, Index: r.index, MouseEvent: e})
		}
	}

	var top *MouseRegion
	if in.InWindow {
		top = m.hit(in.Position)
	}

	// Leave.
	kept := m.hovered[:0]
	for _, h := range m.hovered {
		r := m.byKey[h.key]
		if r != nil && in.InWindow && r.Contains(in.Position) {
			kept = append(kept, hoverEntry{h.key, r})
			continue
		}
		if r == nil {
			r = h.region
		}
		dispatch(GestureLeave, r, r.leave, MouseButtonLeft, Vec2{})
	}
	clear(m.hovered[len(kept):])
	m.hovered = kept

	// Hover.
	if in.InWindow && !in.AnyDown() {
		m.topDown(func(r *MouseRegion) bool {
			if r.Contains(in.Position) && !m.isHovered(r.key()) {
				m.hovered = append(m.hovered, hoverEntry{r.key(), r})
				dispatch(GestureHover, r, r.hover, MouseButtonLeft, Vec2{})
			}
			return true
		})
	}

	// Cursor.
	cursor := CursorDefault
	if top != nil {
		cursor = top.cursor
	}
	if cursor != m.cursor {
		m.cursor = cursor
		fs.window.SetCursor(cursor)
	}

	// Scroll.
	if in.InWindow && !in.Scroll.IsZero() {
		m.topDown(func(r *MouseRegion) bool {
			if r.scroll != nil && r.Contains(in.Position) {
				dispatch(GestureScroll, r, r.scroll, MouseButtonLeft, in.Scroll)
				return false
			}
			return true
		})
	}

	// Buttons.
	for b := MouseButton(0); b < numButtons; b++ {
		g := &m.gestures[b]
		switch {
		case in.JustPressed(b):
			*g = gestureState{down: true, downAt: in.Position}
			if top == nil {
				continue
			}
			g.owner, g.hasOwner = top.key(), true
			g.clickOwner, g.canClick = top.key(), true
			dispatch(GestureDown, top, top.buttons[b].down, b, Vec2{})

		case in.Down[b] && g.down:
			if !in.Moved() || !g.hasOwner {
				continue
			}
			owner := m.byKey[g.owner]
			if !g.crossed {
				total := in.Position.Sub(g.downAt)
				if owner != nil && owner.invertible {
					total = owner.inverse.ApplyVector(total)
				}
				if total.Len() <= m.threshold {
					continue
				}
				g.crossed = true
				g.canClick = false
				if owner != nil {
					dispatch(GestureDrag, owner, owner.buttons[b].drag, b, total)
				}
				continue
			}
			if owner != nil {
				delta := owner.inverse.ApplyVector(in.Position.Sub(in.PrevPosition))
				dispatch(GestureDrag, owner, owner.buttons[b].drag, b, delta)
			}

		case in.JustReleased(b):
			clicked := false
			if g.down && !g.crossed && g.canClick {
				if r := m.byKey[g.clickOwner]; r != nil && r.buttons[b].click != nil &&
					in.InWindow && r.Contains(in.Position) {
					dispatch(GestureClick, r, r.buttons[b].click, b, Vec2{})
					clicked = true
				}
			}
			if !clicked && top != nil {
				dispatch(GestureUp, top, top.buttons[b].up, b, Vec2{})
			}
			*g = gestureState{}
		}
	}

	return fired
}
