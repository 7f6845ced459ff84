package pando

import "fmt"

// LayoutContext is the context of the layout pass.
type LayoutContext struct {
	Context
}

// Child narrows the context to tok and records tok as laid out from this
// scope.
func (c *LayoutContext) Child(tok Token) *LayoutContext {
	c.fs.regions.addChild(c.token, tok)
	return &LayoutContext{Context: c.child(tok)}
}

// AddRegion writes the placement of tok relative to this scope.
func (c *LayoutContext) AddRegion(tok Token, transform Affine, size Size) {
	c.fs.regions.set(tok, Region{Transform: transform, Size: size})
}

// LayoutResult is the unplaced outcome of laying out an element. The parent
// MUST call Position exactly once to record where the element goes. An
// element may be laid out again in the same pass; the result positioned
// last wins.
type LayoutResult struct {
	Size   Size
	token  Token
	placed *bool
}

// Token returns the element the result belongs to.
func (r LayoutResult) Token() Token {
	return r.token
}

// Position places the element at transform, relative to the scope of cx,
// and writes its region. cx must be the scope the element was laid out
// from.
func (r LayoutResult) Position(transform Affine, cx *LayoutContext) {
	if !cx.fs.regions.isChild(cx.token, r.token) {
		panic(fmt.Sprintf("pando: %v positioned from %v, which did not lay it out", r.token, cx.token))
	}
	if r.placed != nil {
		if *r.placed {
			panic(fmt.Sprintf("pando: layout result for %v positioned twice", r.token))
		}
		*r.placed = true
	}
	cx.AddRegion(r.token, transform, r.Size)
}

// PositionAt is Position with a plain translation.
func (r LayoutResult) PositionAt(x, y float64, cx *LayoutContext) {
	r.Position(Translate(x, y), cx)
}
