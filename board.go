package pando

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/tanema/gween/ease"
)

// Default zoom limits for a Board.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 10.0
)

// BoardState is the pan/zoom state of a Board, kept in the state store
// under the board's Token.
type BoardState struct {
	// Offset is where the content origin sits, in board-local units.
	Offset Vec2
	// Zoom is the content scale; 1 means unscaled.
	Zoom float64

	scrollX *Tween
	scrollY *Tween
}

// View returns the transform from content space into board space.
func (s *BoardState) View() Affine {
	return Translate(s.Offset.X, s.Offset.Y).Mul(Scale(s.Zoom, s.Zoom))
}

// ToContent converts a board-local point into content space.
func (s *BoardState) ToContent(p Vec2) Vec2 {
	return p.Sub(s.Offset).Scale(1 / s.Zoom)
}

// ScrollTo animates the offset to the given value over duration seconds.
func (s *BoardState) ScrollTo(offset Vec2, duration float32, fn ease.TweenFunc) {
	s.scrollX = NewTween(s.Offset.X, offset.X, duration, fn)
	s.scrollY = NewTween(s.Offset.Y, offset.Y, duration, fn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (s *BoardState) Scrolling() bool {
	return s.scrollX.Running() || s.scrollY.Running()
}

// zoomAround scales by factor, keeping the content under the board-local
// point p fixed, and clamps the result into [lo, hi].
func (s *BoardState) zoomAround(p Vec2, factor, lo, hi float64) {
	anchor := s.ToContent(p)
	s.Zoom = math.Max(lo, math.Min(hi, s.Zoom*factor))
	s.Offset = p.Sub(anchor.Scale(s.Zoom))
}

// Board is an independently pannable and zoomable surface. It fills the
// space it is given, clips its content to it, pans on a right-button drag
// and zooms around the pointer on scroll.
type Board struct {
	Content Widget

	MinZoom, MaxZoom float64
	// ZoomStep is the scale factor applied per scroll unit.
	ZoomStep   float64
	Background gg.RGBA
}

// NewBoard returns a board element around content with default limits.
func NewBoard(content Widget) *Element[*Board] {
	return NewElement(&Board{
		Content:  content,
		MinZoom:  DefaultMinZoom,
		MaxZoom:  DefaultMaxZoom,
		ZoomStep: 1.1,
	})
}

// BoardStateOf returns the pan/zoom state of the board identified by tok.
func BoardStateOf(s *Store, tok Token) *BoardState {
	st := GetOrDefault[BoardState](s, tok)
	if st.Zoom == 0 {
		st.Zoom = 1
	}
	return st
}

// ChildTokens reports the content element.
func (b *Board) ChildTokens() []Token {
	return []Token{b.Content.Token()}
}

func (b *Board) Update(cx *UpdateContext) {
	st := BoardStateOf(cx.Store(), cx.Token())
	if st.Scrolling() {
		st.Offset = Vec2{cx.Step(st.scrollX), cx.Step(st.scrollY)}
	}
	b.Content.Update(cx)
}

func (b *Board) Layout(min, max Size, cx *LayoutContext) Size {
	st := BoardStateOf(cx.Store(), cx.Token())
	res := b.Content.Layout(Size{}, Unbounded, cx)
	res.Position(st.View(), cx)
	size := max
	if math.IsInf(size.W, 1) {
		size.W = res.Size.W
	}
	if math.IsInf(size.H, 1) {
		size.H = res.Size.H
	}
	return size
}

func (b *Board) Draw(cx *DrawContext) {
	bounds := cx.LocalBounds()
	cx.PushClip(bounds.Shape())
	if b.Background.A > 0 {
		cx.FillRect(bounds, b.Background)
	}
	cx.MouseRegion(bounds.Shape()).
		OnRightDrag(b.pan).
		OnScroll(b.zoom)
	b.Content.Draw(cx)
	cx.PopLayer()
}

func (b *Board) pan(cx *UpdateContext, e MouseEvent) {
	st := BoardStateOf(cx.Store(), cx.Token())
	st.Offset = st.Offset.Add(e.Delta)
	st.scrollX, st.scrollY = nil, nil
	cx.RequestRedraw()
}

func (b *Board) zoom(cx *UpdateContext, e MouseEvent) {
	if e.Delta.Y == 0 {
		return
	}
	st := BoardStateOf(cx.Store(), cx.Token())
	st.zoomAround(e.Local, math.Pow(b.ZoomStep, e.Delta.Y), b.MinZoom, b.MaxZoom)
	cx.RequestRedraw()
}
