package linked

import (
	"fmt"

	"github.com/npillmayer/bintree"
)

// Pos is the position type issued by linked trees.
//
// A Pos is a small value and may be copied freely. Two positions are equal
// if and only if they denote the same node of the same tree. The zero value
// is not a valid position for any tree.
type Pos[E any] struct {
	tree *Tree[E]
	idx  uint32
	gen  uint32
}

var _ bintree.Position[int] = Pos[int]{}

// Element returns the element stored at p. For a position which is no longer
// valid, Element returns the zero value of E; use Tree.Element to tell the
// cases apart.
func (p Pos[E]) Element() E {
	if p.tree == nil || !p.tree.isLive(p.idx, p.gen) {
		var zero E
		return zero
	}
	return p.tree.nodes[p.idx].elem
}

func (p Pos[E]) String() string {
	return fmt.Sprintf("pos(%d.%d)", p.idx, p.gen)
}

// makePosition wraps slot i as a position, or returns nil for none.
func (t *Tree[E]) makePosition(i uint32) bintree.Position[E] {
	if i == none {
		return nil
	}
	return Pos[E]{tree: t, idx: i, gen: t.nodes[i].gen}
}

// validate unwraps a position handed in by a client and returns its slot.
func (t *Tree[E]) validate(p bintree.Position[E]) (uint32, error) {
	pos, ok := p.(Pos[E])
	if !ok {
		tracer().Errorf("linked tree: rejected position of type %T", p)
		return none, fmt.Errorf("%w: %T", bintree.ErrTypeMismatch, p)
	}
	if pos.tree == nil || pos.tree != t {
		tracer().Errorf("linked tree: rejected foreign %v", pos)
		return none, bintree.ErrOwnershipMismatch
	}
	if !t.isLive(pos.idx, pos.gen) {
		tracer().Errorf("linked tree: rejected stale %v", pos)
		return none, fmt.Errorf("%w: %v", bintree.ErrStaleHandle, pos)
	}
	return pos.idx, nil
}
