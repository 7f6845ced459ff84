package pando

import "github.com/gogpu/gg/scene"

// UpdateContext is the context of the update pass and of mouse callbacks.
type UpdateContext struct {
	Context
}

// Child narrows the context to tok.
func (c *UpdateContext) Child(tok Token) *UpdateContext {
	return &UpdateContext{Context: c.child(tok)}
}

// RequestRedraw asks for layout and draw to run this frame.
func (c *UpdateContext) RequestRedraw() {
	c.fs.redraw = true
}

// RedrawRequested reports whether anything requested a redraw so far this
// frame.
func (c *UpdateContext) RedrawRequested() bool {
	return c.fs.redraw
}

// Keys returns the key events queued since the previous frame.
func (c *UpdateContext) Keys() []KeyEvent {
	return c.fs.input.Keys
}

// Modifiers returns the held modifier keys.
func (c *UpdateContext) Modifiers() KeyModifiers {
	return c.fs.input.Modifiers
}

// Scroll returns this frame's accumulated scroll delta.
func (c *UpdateContext) Scroll() Vec2 {
	return c.fs.input.Scroll
}

// Delta returns the time since the previous frame in seconds.
func (c *UpdateContext) Delta() float64 {
	return c.fs.input.Delta
}

// MouseRegion registers a hit region from the update pass, in the node's
// current local space. Update-time regions sit above every draw-time region
// and live for one frame. Most regions should be registered while drawing.
func (c *UpdateContext) MouseRegion(shape scene.Shape) *MouseRegion {
	return c.fs.mouse.registerUpdate(c.token, shape, c.transform)
}

// Step advances t by this frame's delta and requests a redraw while it is
// still running. It returns the tween's current value.
func (c *UpdateContext) Step(t *Tween) float64 {
	if !t.Running() {
		return t.value
	}
	t.advance(c.Delta())
	c.RequestRedraw()
	return t.value
}
