package pando

// frameState is shared by every context of a frame. It is owned by the App
// and only mutated through the context API while a pass runs.
type frameState struct {
	input   *Input
	store   *Store
	regions *RegionTable
	mouse   *MouseRegionManager
	window  Window

	focus  Token
	redraw bool
}

// Context is the environment shared by all passes. It is narrowed to a node
// with Child on the pass-specific context; that is the only way to descend,
// and it is what attributes operations to the right Token and composes the
// node's placement onto its parent's transform.
type Context struct {
	fs        *frameState
	token     Token
	transform Affine
	tracked   bool
}

// child narrows c to tok. The transform composes c's transform with tok's
// newest placement; it is untracked when either is unknown.
func (c *Context) child(tok Token) Context {
	next := Context{fs: c.fs, token: tok}
	if r, ok := c.fs.regions.Lookup(tok); ok && c.tracked {
		next.transform = c.transform.Mul(r.Transform)
		next.tracked = true
	}
	return next
}

// Token returns the node the context is narrowed to. The root context of a
// pass returns NoToken.
func (c *Context) Token() Token {
	return c.token
}

// Store returns the process-wide typed state store.
func (c *Context) Store() *Store {
	return c.fs.store
}

// Input returns the frame input state. It MUST NOT be modified by nodes.
func (c *Context) Input() *Input {
	return c.fs.input
}

// Window returns the windowing collaborator.
func (c *Context) Window() Window {
	return c.fs.window
}

// Transform returns the accumulated window-from-local transform. ok is false
// when the node has never been placed.
func (c *Context) Transform() (Affine, bool) {
	return c.transform, c.tracked
}

// MousePosition returns the pointer position in the node's local space.
// ok is false when the pointer is outside the window or the node's
// transform is unknown or singular.
func (c *Context) MousePosition() (Vec2, bool) {
	in := c.fs.input
	if !in.InWindow || !c.tracked {
		return Vec2{}, false
	}
	inv, ok := c.transform.Invert()
	if !ok {
		return Vec2{}, false
	}
	return inv.Apply(in.Position), true
}

// MouseDelta returns the pointer movement since the previous frame in the
// node's local space, with the same availability rules as MousePosition.
func (c *Context) MouseDelta() (Vec2, bool) {
	in := c.fs.input
	if !in.InWindow || !in.PrevInWindow || !c.tracked {
		return Vec2{}, false
	}
	inv, ok := c.transform.Invert()
	if !ok {
		return Vec2{}, false
	}
	return inv.ApplyVector(in.Position.Sub(in.PrevPosition)), true
}

// IsFocused reports whether this node holds keyboard focus.
func (c *Context) IsFocused() bool {
	return c.token != NoToken && c.fs.focus == c.token
}

// RequestFocus moves keyboard focus to this node.
func (c *Context) RequestFocus() {
	c.fs.focus = c.token
}

// ReleaseFocus drops keyboard focus if this node holds it.
func (c *Context) ReleaseFocus() {
	if c.fs.focus == c.token {
		c.fs.focus = NoToken
	}
}

// Focused returns the token holding keyboard focus, or NoToken.
func (c *Context) Focused() Token {
	return c.fs.focus
}

// AnyInProgress reports whether a press or drag that started on tok, or on
// anything laid out beneath it, is still in progress.
func (c *Context) AnyInProgress(tok Token) bool {
	return anyInProgress(c.fs, tok, nil)
}

// anyInProgress walks the recorded layout adjacency plus any extra
// structurally reported children. Nothing is walked while no button is held.
func anyInProgress(fs *frameState, tok Token, extra []Token) bool {
	if !fs.mouse.anyDown() {
		return false
	}
	return inProgressBelow(fs, tok, extra)
}

func inProgressBelow(fs *frameState, tok Token, extra []Token) bool {
	if fs.mouse.InProgress(tok) {
		return true
	}
	for _, c := range fs.regions.Children(tok) {
		if inProgressBelow(fs, c, nil) {
			return true
		}
	}
	for _, c := range extra {
		if inProgressBelow(fs, c, nil) {
			return true
		}
	}
	return false
}
