package pando

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
)

// DrawContext is the context of the draw pass. It carries the element's
// composed transform, a local transform stack for in-draw pushes, and the
// clip set of the enclosing layers. Draw operations append to the current
// layer of the frame's scene.
type DrawContext struct {
	Context

	scene *scene.Scene
	local []Affine
	clips []*scene.Path

	// layers counts PushLayer calls made through this context that have not
	// been popped yet.
	layers    int
	clipDepth []int
}

func newDrawContext(fs *frameState, s *scene.Scene) *DrawContext {
	return &DrawContext{
		Context: Context{fs: fs, transform: Identity, tracked: true},
		scene:   s,
	}
}

// Child narrows the context to tok. The child's transform composes this
// node's element transform with tok's region; local pushes made on this
// context do not carry over, clips do.
// Panics if tok has not been laid out this frame.
func (c *DrawContext) Child(tok Token) *DrawContext {
	r := c.fs.regions.Get(tok)
	return &DrawContext{
		Context: Context{
			fs:        c.fs,
			token:     tok,
			transform: c.transform.Mul(r.Transform),
			tracked:   c.tracked,
		},
		scene: c.scene,
		clips: c.clips[:len(c.clips):len(c.clips)],
	}
}

// Current returns the transform draw operations use: the element transform
// times every local push.
func (c *DrawContext) Current() Affine {
	t := c.transform
	for _, l := range c.local {
		t = t.Mul(l)
	}
	return t
}

// PushTransform appends t to the local stack. Subsequent draws and mouse
// regions are placed in the pushed space.
func (c *DrawContext) PushTransform(t Affine) {
	c.local = append(c.local, t)
}

// PopTransform removes the most recent local push.
func (c *DrawContext) PopTransform() {
	if len(c.local) == 0 {
		panic("pando: PopTransform without matching PushTransform")
	}
	c.local = c.local[:len(c.local)-1]
}

// PushLayer opens a compositing layer. clip is in the current local space
// and may be nil for an unclipped layer. While the layer is open, mouse
// regions registered here exclude points outside clip.
func (c *DrawContext) PushLayer(clip scene.Shape, blend scene.BlendMode, alpha float32) {
	var shape scene.Shape
	c.clipDepth = append(c.clipDepth, len(c.clips))
	if clip != nil {
		p := clip.ToPath().Transform(c.Current().Scene())
		next := make([]*scene.Path, len(c.clips), len(c.clips)+1)
		copy(next, c.clips)
		c.clips = append(next, p)
		shape = scene.NewPathShape(p)
	}
	c.scene.PushLayer(blend, alpha, shape)
	c.layers++
}

// PushClip opens an opaque, normally blended layer clipped to clip.
func (c *DrawContext) PushClip(clip scene.Shape) {
	c.PushLayer(clip, scene.BlendNormal, 1)
}

// PopLayer closes the most recent layer opened through this context.
func (c *DrawContext) PopLayer() {
	if c.layers == 0 {
		panic("pando: PopLayer without matching PushLayer")
	}
	c.layers--
	n := c.clipDepth[len(c.clipDepth)-1]
	c.clipDepth = c.clipDepth[:len(c.clipDepth)-1]
	c.clips = c.clips[:n:n]
	c.scene.PopLayer()
}

// balance closes any layers left open by a node and reports how many.
func (c *DrawContext) balance() int {
	n := c.layers
	for c.layers > 0 {
		c.PopLayer()
	}
	return n
}

// Fill fills shape with a solid color in the current space.
func (c *DrawContext) Fill(shape scene.Shape, color gg.RGBA) {
	c.scene.Fill(scene.FillNonZero, c.Current().Scene(), scene.SolidBrush(color), shape)
}

// Stroke outlines shape with a solid color in the current space.
func (c *DrawContext) Stroke(shape scene.Shape, width float64, color gg.RGBA) {
	style := scene.DefaultStrokeStyle()
	style.Width = float32(width)
	c.scene.Stroke(style, c.Current().Scene(), scene.SolidBrush(color), shape)
}

// FillRect fills r in the current space.
func (c *DrawContext) FillRect(r Rect, color gg.RGBA) {
	c.Fill(r.Shape(), color)
}

// MouseRegion registers a hit region for this node. shape is in the current
// local space; the current transform and clip set are captured now.
// Regions registered later sit on top of earlier ones.
func (c *DrawContext) MouseRegion(shape scene.Shape) *MouseRegion {
	return c.fs.mouse.register(c.token, shape, c.Current(), c.clips)
}

// Region returns this node's placement. Panics if the node was not laid
// out this frame.
func (c *DrawContext) Region() Region {
	return c.fs.regions.Get(c.token)
}

// RegionOf returns another node's placement. Panics if tok was not laid
// out this frame.
func (c *DrawContext) RegionOf(tok Token) Region {
	return c.fs.regions.Get(tok)
}

// LocalBounds returns this node's rectangle in its own space, from (0, 0)
// to its laid out size.
func (c *DrawContext) LocalBounds() Rect {
	s := c.Region().Size
	return Rect{Width: s.W, Height: s.H}
}

// Bounds returns the window-space bounding box of this node.
func (c *DrawContext) Bounds() Rect {
	return c.transform.Bounds(c.Region().Size)
}

// Scene returns the display list being built.
func (c *DrawContext) Scene() *scene.Scene {
	return c.scene
}
