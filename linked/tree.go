package linked

import (
	"iter"

	"github.com/npillmayer/bintree"
)

// Tree is a binary tree of linked nodes holding elements of type E.
//
// Tree offers the read-only navigation surface of bintree.BinaryTree.
// Structural changes go through the Editor returned by New.
//
// A tree created by
//
//	Tree[E]{}
//
// is a valid empty tree. It may serve as a donor for Editor.Attach, but
// cannot be edited itself.
type Tree[E any] struct {
	nodes []node[E] // nodes[0] is the sentinel slot
	free  uint32    // head of the free list
	root  uint32
	size  int
}

var _ bintree.BinaryTree[int] = (*Tree[int])(nil)

// New creates an empty tree and the editor to change it.
func New[E any](opts ...Option) (*Tree[E], *Editor[E]) {
	cfg := makeConfig(opts)
	t := &Tree[E]{
		nodes: make([]node[E], 1, cfg.capacity+1),
	}
	return t, &Editor[E]{tree: t}
}

// Len returns the number of nodes in the tree.
// Time: O(1)
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[E]) IsEmpty() bool {
	return t.Len() == 0
}

// Root returns the root position, or nil if the tree is empty.
func (t *Tree[E]) Root() bintree.Position[E] {
	if t == nil {
		return nil
	}
	return t.makePosition(t.root)
}

// Parent returns the parent of p, or nil if p is the root.
func (t *Tree[E]) Parent(p bintree.Position[E]) (bintree.Position[E], error) {
	i, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	return t.makePosition(t.nodes[i].parent), nil
}

// Left returns the left child of p, or nil.
func (t *Tree[E]) Left(p bintree.Position[E]) (bintree.Position[E], error) {
	i, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	return t.makePosition(t.nodes[i].l), nil
}

// Right returns the right child of p, or nil.
func (t *Tree[E]) Right(p bintree.Position[E]) (bintree.Position[E], error) {
	i, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	return t.makePosition(t.nodes[i].r), nil
}

// NumChildren returns the number of children of p (0, 1 or 2).
func (t *Tree[E]) NumChildren(p bintree.Position[E]) (int, error) {
	i, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	return t.nodes[i].numChildren(), nil
}

// Children returns a sequence of p's children, left before right.
func (t *Tree[E]) Children(p bintree.Position[E]) (iter.Seq[bintree.Position[E]], error) {
	return bintree.BinaryChildren[E](t, p)
}

// Element returns the element stored at p.
func (t *Tree[E]) Element(p bintree.Position[E]) (E, error) {
	i, err := t.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	return t.nodes[i].elem, nil
}
