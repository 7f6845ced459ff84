package pando

import (
	"math"

	"github.com/gogpu/gg"
)

// Widgets is a list of child elements. Container nodes embed it to get the
// update, draw and child reporting every container needs.
type Widgets []Widget

// Update runs the update pass on every child.
func (ws Widgets) Update(cx *UpdateContext) {
	for _, w := range ws {
		w.Update(cx)
	}
}

// Draw draws every child in order; later children are on top.
func (ws Widgets) Draw(cx *DrawContext) {
	for _, w := range ws {
		w.Draw(cx)
	}
}

// ChildTokens returns the children's tokens.
func (ws Widgets) ChildTokens() []Token {
	toks := make([]Token, len(ws))
	for i, w := range ws {
		toks[i] = w.Token()
	}
	return toks
}

// --- Stack ---

// Stack overlaps its children at its origin. Every child gets the stack's
// constraints; the stack is as large as its largest child.
type Stack struct {
	Widgets
}

// NewStack returns a stack element.
func NewStack(children ...Widget) *Element[*Stack] {
	return NewElement(&Stack{Widgets: children})
}

func (s *Stack) Layout(min, max Size, cx *LayoutContext) Size {
	size := min
	for _, w := range s.Widgets {
		res := w.Layout(min, max, cx)
		res.Position(Identity, cx)
		size.W = math.Max(size.W, res.Size.W)
		size.H = math.Max(size.H, res.Size.H)
	}
	return size
}

// --- Column / Row ---

// Column stacks its children top to bottom, Gap apart.
type Column struct {
	Widgets
	Gap float64
}

// NewColumn returns a column element.
func NewColumn(gap float64, children ...Widget) *Element[*Column] {
	return NewElement(&Column{Widgets: children, Gap: gap})
}

func (c *Column) Layout(min, max Size, cx *LayoutContext) Size {
	return layoutLinear(c.Widgets, c.Gap, true, min, max, cx)
}

// Row places its children left to right, Gap apart.
type Row struct {
	Widgets
	Gap float64
}

// NewRow returns a row element.
func NewRow(gap float64, children ...Widget) *Element[*Row] {
	return NewElement(&Row{Widgets: children, Gap: gap})
}

func (r *Row) Layout(min, max Size, cx *LayoutContext) Size {
	return layoutLinear(r.Widgets, r.Gap, false, min, max, cx)
}

// layoutLinear gives each child the full cross axis and unbounded main
// axis, then places them one after another.
func layoutLinear(ws Widgets, gap float64, vertical bool, min, max Size, cx *LayoutContext) Size {
	var main, cross float64
	for i, w := range ws {
		if i > 0 {
			main += gap
		}
		var res LayoutResult
		if vertical {
			res = w.Layout(Size{}, Size{W: max.W, H: math.Inf(1)}, cx)
			res.Position(Translate(0, main), cx)
			main += res.Size.H
			cross = math.Max(cross, res.Size.W)
		} else {
			res = w.Layout(Size{}, Size{W: math.Inf(1), H: max.H}, cx)
			res.Position(Translate(main, 0), cx)
			main += res.Size.W
			cross = math.Max(cross, res.Size.H)
		}
	}
	if vertical {
		return Size{W: cross, H: main}
	}
	return Size{W: main, H: cross}
}

// --- Padding ---

// Insets are distances from each edge.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns equal insets on every edge.
func Uniform(v float64) Insets {
	return Insets{v, v, v, v}
}

// Padding surrounds one child with empty space.
type Padding struct {
	Child  Widget
	Insets Insets
}

// NewPadding returns a padding element.
func NewPadding(in Insets, child Widget) *Element[*Padding] {
	return NewElement(&Padding{Child: child, Insets: in})
}

func (p *Padding) Update(cx *UpdateContext) { p.Child.Update(cx) }
func (p *Padding) Draw(cx *DrawContext)     { p.Child.Draw(cx) }
func (p *Padding) ChildTokens() []Token     { return []Token{p.Child.Token()} }

func (p *Padding) Layout(min, max Size, cx *LayoutContext) Size {
	dw := p.Insets.Left + p.Insets.Right
	dh := p.Insets.Top + p.Insets.Bottom
	shrink := func(s Size) Size {
		return Size{W: math.Max(0, s.W-dw), H: math.Max(0, s.H-dh)}
	}
	res := p.Child.Layout(shrink(min), shrink(max), cx)
	res.Position(Translate(p.Insets.Left, p.Insets.Top), cx)
	return Size{W: res.Size.W + dw, H: res.Size.H + dh}
}

// --- Fixed ---

// Fixed asks for exactly Size and gives its optional child tight
// constraints of that size.
type Fixed struct {
	Size  Size
	Child Widget
}

// NewFixed returns a fixed-size element.
func NewFixed(size Size, child Widget) *Element[*Fixed] {
	return NewElement(&Fixed{Size: size, Child: child})
}

func (f *Fixed) Update(cx *UpdateContext) {
	if f.Child != nil {
		f.Child.Update(cx)
	}
}

func (f *Fixed) Draw(cx *DrawContext) {
	if f.Child != nil {
		f.Child.Draw(cx)
	}
}

func (f *Fixed) ChildTokens() []Token {
	if f.Child == nil {
		return nil
	}
	return []Token{f.Child.Token()}
}

func (f *Fixed) Layout(min, max Size, cx *LayoutContext) Size {
	if f.Child != nil {
		res := f.Child.Layout(f.Size, f.Size, cx)
		res.Position(Identity, cx)
	}
	return f.Size
}

// --- Box ---

// Box is a filled, optionally rounded rectangle of a preferred size. When
// Mouse is set, the box registers a region covering itself and hands it to
// Mouse for configuration.
type Box struct {
	Size   Size
	Color  gg.RGBA
	Radius float64
	Cursor CursorIcon
	Mouse  func(r *MouseRegion)
}

// NewBox returns a box element.
func NewBox(size Size, color gg.RGBA) *Element[*Box] {
	return NewElement(&Box{Size: size, Color: color})
}

func (b *Box) Update(*UpdateContext) {}

func (b *Box) Layout(min, max Size, _ *LayoutContext) Size {
	return b.Size
}

func (b *Box) Draw(cx *DrawContext) {
	r := cx.LocalBounds()
	shape := RoundedRectShape(r.X, r.Y, r.Width, r.Height, b.Radius)
	if b.Radius == 0 {
		shape = r.Shape()
	}
	if b.Color.A > 0 {
		cx.Fill(shape, b.Color)
	}
	if b.Mouse != nil {
		b.Mouse(cx.MouseRegion(shape).WithCursor(b.Cursor))
	}
}
