package linked

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/bintree"
)

// Editor holds the right to change the structure of a tree.
//
// Editors are handed out by New only. Code which should merely navigate a
// tree receives the *Tree; code trusted to build or rebalance it receives the
// Editor as well.
//
// Every operation validates its input before touching the tree. If an
// operation returns an error, the tree is unchanged.
type Editor[E any] struct {
	tree *Tree[E]
}

// Tree returns the tree edited by ed.
func (ed *Editor[E]) Tree() *Tree[E] {
	return ed.tree
}

// AddRoot places element e at the root of an empty tree and returns its
// position. It fails with bintree.ErrAlreadyRooted if the tree is not empty.
func (ed *Editor[E]) AddRoot(e E) (bintree.Position[E], error) {
	t := ed.tree
	if t.root != none {
		return nil, bintree.ErrAlreadyRooted
	}
	t.root = t.alloc(e, none)
	t.size = 1
	tracer().Debugf("linked tree: added root %d", t.root)
	return t.makePosition(t.root), nil
}

// AddLeft creates a new left child of p holding e and returns its position.
// It fails with bintree.ErrSlotOccupied if p already has a left child.
func (ed *Editor[E]) AddLeft(p bintree.Position[E], e E) (bintree.Position[E], error) {
	return ed.addChild(p, e, leftSide)
}

// AddRight creates a new right child of p holding e and returns its position.
// It fails with bintree.ErrSlotOccupied if p already has a right child.
func (ed *Editor[E]) AddRight(p bintree.Position[E], e E) (bintree.Position[E], error) {
	return ed.addChild(p, e, rightSide)
}

func (ed *Editor[E]) addChild(p bintree.Position[E], e E, s side) (bintree.Position[E], error) {
	t := ed.tree
	i, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	if *t.nodes[i].child(s) != none {
		return nil, fmt.Errorf("%w: %s child of %v", bintree.ErrSlotOccupied, s, p)
	}
	c := t.alloc(e, i)
	*t.nodes[i].child(s) = c
	t.size++
	tracer().Debugf("linked tree: added %s child %d to %d", s, c, i)
	return t.makePosition(c), nil
}

// Replace stores e at p and returns the element previously stored there.
func (ed *Editor[E]) Replace(p bintree.Position[E], e E) (E, error) {
	t := ed.tree
	i, err := t.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	old := t.nodes[i].elem
	t.nodes[i].elem = e
	return old, nil
}

// Delete removes the node at p, replaces it with its child, if any, and
// returns the element that had been stored at p.
//
// Deleting a node with two children fails with bintree.ErrTwoChildrenPresent.
// After a successful delete, p and every copy of it are stale.
func (ed *Editor[E]) Delete(p bintree.Position[E]) (E, error) {
	t := ed.tree
	i, err := t.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	n := t.nodes[i]
	if n.numChildren() == 2 {
		var zero E
		return zero, fmt.Errorf("%w: cannot delete %v", bintree.ErrTwoChildrenPresent, p)
	}
	child := n.l
	if child == none {
		child = n.r
	}
	if child != none {
		t.nodes[child].parent = n.parent
	}
	if i == t.root {
		t.root = child
	} else {
		parent := &t.nodes[n.parent]
		if parent.l == i {
			parent.l = child
		} else {
			parent.r = child
		}
	}
	t.size--
	t.release(i)
	tracer().Debugf("linked tree: deleted %d, spliced up %d", i, child)
	return n.elem, nil
}

// Attach attaches the trees t1 and t2 as left and right subtrees of the leaf
// at p. Either donor may be empty.
//
// Donors must be linked trees of the same element type, different from the
// receiver and from each other. Their nodes move into the receiving tree, the
// donors are left empty and all positions previously issued by them turn
// stale.
//
// Attach fails with bintree.ErrNotALeaf if p has children, with
// bintree.ErrTypeMismatch for donors of another kind and with
// bintree.ErrOwnershipMismatch for donors which would create a cycle. On
// failure nothing is attached.
func (ed *Editor[E]) Attach(p bintree.Position[E], t1, t2 bintree.BinaryTree[E]) error {
	t := ed.tree
	i, err := t.validate(p)
	if err != nil {
		return err
	}
	if t.nodes[i].numChildren() != 0 {
		return fmt.Errorf("%w: %v", bintree.ErrNotALeaf, p)
	}
	d1, ok1 := t1.(*Tree[E])
	d2, ok2 := t2.(*Tree[E])
	if !ok1 || !ok2 || d1 == nil || d2 == nil {
		return fmt.Errorf("%w: cannot attach %T and %T to %T", bintree.ErrTypeMismatch, t1, t2, t)
	}
	if d1 == t || d2 == t {
		return fmt.Errorf("%w: cannot attach a tree to itself", bintree.ErrOwnershipMismatch)
	}
	if d1 == d2 && !d1.IsEmpty() {
		return fmt.Errorf("%w: cannot attach a tree twice", bintree.ErrOwnershipMismatch)
	}
	t.size += d1.Len() + d2.Len()
	for s, donor := range [2]*Tree[E]{d1, d2} {
		if donor.IsEmpty() {
			continue
		}
		r := t.adopt(donor)
		t.nodes[r].parent = i
		*t.nodes[i].child(side(s)) = r
		tracer().Debugf("linked tree: attached %s subtree %d to %d", side(s), r, i)
	}
	return nil
}

// adopt moves all nodes of donor into t's arena and returns the new slot of
// the donor's root. The moved root has no parent yet. donor is left empty.
func (t *Tree[E]) adopt(donor *Tree[E]) uint32 {
	type move struct {
		from   uint32 // slot in donor
		parent uint32 // new parent slot in t
		s      side
	}
	stack := arraystack.New()
	stack.Push(move{from: donor.root, parent: none})
	var root uint32
	for !stack.Empty() {
		v, _ := stack.Pop()
		m := v.(move)
		dn := donor.nodes[m.from]
		c := t.alloc(dn.elem, m.parent)
		if m.parent == none {
			root = c
		} else {
			*t.nodes[m.parent].child(m.s) = c
		}
		if dn.r != none {
			stack.Push(move{from: dn.r, parent: c, s: rightSide})
		}
		if dn.l != none {
			stack.Push(move{from: dn.l, parent: c, s: leftSide})
		}
		donor.release(m.from)
	}
	donor.root, donor.size = none, 0
	return root
}
