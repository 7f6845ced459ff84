package pando

import (
	"log/slog"
	"runtime"
)

// MinVisibleArea is the on-screen area, in square window units, below which
// an element's subtree is culled.
const MinVisibleArea = 1.0

// Node is the behaviour of a visual element. A Node never sees its own
// Token's region being written; it returns a desired size from Layout and
// places its children there.
type Node interface {
	Update(cx *UpdateContext)
	Layout(min, max Size, cx *LayoutContext) Size
	Draw(cx *DrawContext)
}

// ChildReporter is implemented by nodes that own child elements. The
// reported tokens keep an in-progress drag on a child from being culled
// before the child was ever laid out.
type ChildReporter interface {
	ChildTokens() []Token
}

// Disposer is implemented by nodes that release resources when their
// element is disposed.
type Disposer interface {
	Dispose()
}

// Widget is the view a parent has of a child element.
type Widget interface {
	Token() Token
	Update(cx *UpdateContext)
	Layout(min, max Size, cx *LayoutContext) LayoutResult
	Draw(cx *DrawContext)
}

// Element wraps a Node with a Token. Every pass enters the node through the
// element, which narrows the context and enforces layout and cull rules.
type Element[N Node] struct {
	node  N
	token Token
	store *Store
}

// NewElement wraps node with a fresh Token.
func NewElement[N Node](node N) *Element[N] {
	return &Element[N]{node: node, token: NewToken()}
}

// Node returns the wrapped node.
func (e *Element[N]) Node() N {
	return e.node
}

// Token returns the element's identity.
func (e *Element[N]) Token() Token {
	return e.token
}

// bind ties the element to the store its state lives in. Once the element
// is garbage collected, its token is queued for eviction and its state
// dropped at the next frame boundary.
func (e *Element[N]) bind(s *Store) {
	if e.store != nil {
		return
	}
	e.store = s
	runtime.AddCleanup(e, func(tok Token) { s.queueEviction(tok) }, e.token)
}

// Dispose drops the element's state now. The element must not be used
// afterwards.
func (e *Element[N]) Dispose() {
	if e.store != nil {
		e.store.Evict(e.token)
	}
	if d, ok := any(e.node).(Disposer); ok {
		d.Dispose()
	}
}

// Update runs the node's update pass.
func (e *Element[N]) Update(cx *UpdateContext) {
	e.bind(cx.Store())
	e.node.Update(cx.Child(e.token))
}

// Layout runs the node's layout and clamps the size it asks for into
// [min, max]. The caller must Position the result.
func (e *Element[N]) Layout(min, max Size, cx *LayoutContext) LayoutResult {
	e.bind(cx.Store())
	size := e.node.Layout(min, max, cx.Child(e.token))
	return LayoutResult{Size: size.Clamp(min, max), token: e.token, placed: new(bool)}
}

// Draw runs the node's draw pass unless the element is off screen.
func (e *Element[N]) Draw(cx *DrawContext) {
	child := cx.Child(e.token)
	if e.culled(child) {
		return
	}
	e.node.Draw(child)
	if n := child.balance(); n > 0 {
		logger().Warn("layers left open after draw", slog.String("token", e.token.String()), slog.Int("open", n))
	}
}

func (e *Element[N]) culled(cx *DrawContext) bool {
	var extra []Token
	if r, ok := any(e.node).(ChildReporter); ok {
		extra = r.ChildTokens()
	}
	if anyInProgress(cx.fs, e.token, extra) {
		return false
	}
	screen := cx.fs.input.WindowSize
	visible := Rect{Width: screen.W, Height: screen.H}
	box := cx.Bounds()
	if !box.Intersects(visible) {
		return true
	}
	return box.Intersect(visible).Area() < MinVisibleArea
}
