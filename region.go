package pando

import "fmt"

// Region is a node's placement for the current frame: the transform that
// maps the node's local space into its parent's space, and the size the
// node negotiated during layout.
type Region struct {
	Transform Affine
	Size      Size
}

// RegionTable holds every Region written during the most recent layout,
// keyed by Token, plus the parent→children adjacency recorded while
// descending. The previous generation is kept so that code running before
// this frame's layout (hit testing, update, layout itself) can still compose
// transforms.
type RegionTable struct {
	current  map[Token]Region
	previous map[Token]Region

	children     map[Token][]Token
	prevChildren map[Token][]Token
	edges        map[edge]struct{}

	generation uint64
}

func newRegionTable() *RegionTable {
	return &RegionTable{
		current:      make(map[Token]Region),
		previous:     make(map[Token]Region),
		children:     make(map[Token][]Token),
		prevChildren: make(map[Token][]Token),
		edges:        make(map[edge]struct{}),
	}
}

// edge is one parent→child record of the current layout.
type edge struct {
	parent, child Token
}

// begin starts a new layout generation. The current entries become the
// previous generation; the current maps are emptied for reuse. Parents
// that recorded no children are dropped so the adjacency does not keep
// tokens that are no longer laid out.
func (t *RegionTable) begin() {
	t.previous, t.current = t.current, t.previous
	clear(t.current)
	t.prevChildren, t.children = t.children, t.prevChildren
	for k, v := range t.children {
		if len(v) == 0 {
			delete(t.children, k)
			continue
		}
		t.children[k] = v[:0]
	}
	clear(t.edges)
	t.generation++
}

// set writes the region for tok. A later write in the same layout replaces
// the earlier one, so a parent may lay a child out more than once and keep
// the last placement.
func (t *RegionTable) set(tok Token, r Region) {
	t.current[tok] = r
}

// Get returns the region written for tok by this frame's layout.
// Panics if tok has not been laid out and positioned yet.
func (t *RegionTable) Get(tok Token) Region {
	r, ok := t.current[tok]
	if !ok {
		panic(fmt.Sprintf("pando: region for %v read before it was laid out", tok))
	}
	return r
}

// Has reports whether tok was positioned by this frame's layout.
func (t *RegionTable) Has(tok Token) bool {
	_, ok := t.current[tok]
	return ok
}

// Lookup returns the newest region known for tok, falling back to the
// previous layout when tok has not been placed in the current one.
func (t *RegionTable) Lookup(tok Token) (Region, bool) {
	if r, ok := t.current[tok]; ok {
		return r, true
	}
	r, ok := t.previous[tok]
	return r, ok
}

// Len returns the number of regions written by this frame's layout.
func (t *RegionTable) Len() int {
	return len(t.current)
}

// Generation counts completed calls to begin; it identifies the layout the
// current entries belong to.
func (t *RegionTable) Generation() uint64 {
	return t.generation
}

// addChild records child as laid out from parent's scope. Repeats within
// one layout are recorded once.
func (t *RegionTable) addChild(parent, child Token) {
	e := edge{parent, child}
	if _, ok := t.edges[e]; ok {
		return
	}
	t.edges[e] = struct{}{}
	t.children[parent] = append(t.children[parent], child)
}

// isChild reports whether child was laid out from parent's scope in the
// current layout.
func (t *RegionTable) isChild(parent, child Token) bool {
	_, ok := t.edges[edge{parent, child}]
	return ok
}

// Children returns the tokens laid out from tok's scope, preferring the
// current layout. The returned slice MUST NOT be mutated.
func (t *RegionTable) Children(tok Token) []Token {
	if c, ok := t.children[tok]; ok && len(c) > 0 {
		return c
	}
	return t.prevChildren[tok]
}
