package pando

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegionTableSetGet(t *testing.T) {
	rt := newRegionTable()
	rt.begin()
	tok := NewToken()
	r := Region{Transform: Translate(3, 4), Size: Size{10, 20}}
	rt.set(tok, r)

	if got := rt.Get(tok); got != r {
		t.Errorf("Get = %v, want %v", got, r)
	}
	if !rt.Has(tok) || rt.Len() != 1 {
		t.Errorf("Has = %v, Len = %d", rt.Has(tok), rt.Len())
	}
}

func TestRegionTableFaults(t *testing.T) {
	rt := newRegionTable()
	rt.begin()
	tok := NewToken()
	assertPanics(t, "read before layout", func() { rt.Get(tok) })
}

func TestRegionTableLaterWriteWins(t *testing.T) {
	rt := newRegionTable()
	rt.begin()
	tok := NewToken()
	rt.set(tok, Region{Size: Size{1, 1}})
	want := Region{Transform: Translate(2, 2), Size: Size{5, 5}}
	rt.set(tok, want)
	if got := rt.Get(tok); got != want {
		t.Errorf("Get = %v, want %v", got, want)
	}
	if rt.Len() != 1 {
		t.Errorf("Len = %d, want 1", rt.Len())
	}
}

func TestRegionTableGenerations(t *testing.T) {
	rt := newRegionTable()
	rt.begin()
	tok := NewToken()
	r := Region{Transform: Translate(1, 1), Size: Size{5, 5}}
	rt.set(tok, r)
	gen := rt.Generation()

	rt.begin()
	if rt.Generation() != gen+1 {
		t.Errorf("Generation = %d, want %d", rt.Generation(), gen+1)
	}
	if rt.Has(tok) {
		t.Error("region survived into the new generation")
	}
	assertPanics(t, "strict read of stale region", func() { rt.Get(tok) })
	got, ok := rt.Lookup(tok)
	if !ok || got != r {
		t.Errorf("Lookup = %v, %v; want previous generation", got, ok)
	}

	// Written again: current wins, and may be written once.
	r2 := Region{Transform: Translate(2, 2), Size: Size{5, 5}}
	rt.set(tok, r2)
	if got, _ := rt.Lookup(tok); got != r2 {
		t.Errorf("Lookup = %v, want current %v", got, r2)
	}

	rt.begin()
	rt.begin()
	if _, ok := rt.Lookup(tok); ok {
		t.Error("region survived two generations without being written")
	}
}

func TestRegionTableChildren(t *testing.T) {
	rt := newRegionTable()
	rt.begin()
	parent, a, b := NewToken(), NewToken(), NewToken()
	rt.addChild(parent, a)
	rt.addChild(parent, b)
	rt.addChild(parent, a)

	if diff := cmp.Diff([]Token{a, b}, rt.Children(parent)); diff != "" {
		t.Errorf("Children (-want +got):\n%s", diff)
	}
	if !rt.isChild(parent, a) || rt.isChild(a, parent) {
		t.Error("isChild")
	}

	// Children fall back to the previous layout until re-recorded.
	rt.begin()
	if diff := cmp.Diff([]Token{a, b}, rt.Children(parent)); diff != "" {
		t.Errorf("Children after begin (-want +got):\n%s", diff)
	}
	if rt.isChild(parent, a) {
		t.Error("isChild must only consult the current layout")
	}
}

func TestRegionTableChildrenBounded(t *testing.T) {
	rt := newRegionTable()
	for range 100 {
		rt.begin()
		rt.addChild(NewToken(), NewToken())
	}
	// Each map keeps at most this layout's parents plus the emptied ones
	// of the layout before.
	if n := len(rt.children) + len(rt.prevChildren); n > 4 {
		t.Errorf("adjacency holds %d parents, want at most 4", n)
	}
	if n := len(rt.edges); n != 1 {
		t.Errorf("edges = %d, want 1", n)
	}
}

// TestRegionRoundTrip places a child with a transform and reads the exact
// region back through the draw context.
func TestRegionRoundTrip(t *testing.T) {
	child := newStub(30, 40)
	at := Vec2{12.5, 7}
	var got Region
	child.Node().onDraw = func(cx *DrawContext) {
		got = cx.Region()
	}
	root := newPlace([]Widget{child}, at)
	a, _ := newTestApp(root)
	frames(t, a, 1)

	want := Region{Transform: Translate(at.X, at.Y), Size: Size{30, 40}}
	if got != want {
		t.Errorf("Region = %v, want %v", got, want)
	}
	if r := a.Regions().Get(child.Token()); r != want {
		t.Errorf("table = %v, want %v", r, want)
	}
	if r := a.Regions().Get(root.Token()); r.Size != (Size{200, 200}) {
		t.Errorf("root size = %v", r.Size)
	}
}
