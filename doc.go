/*
Package bintree defines positional tree abstractions, specialized for binary
trees.

Trees

A tree is addressed exclusively through positions. A position is an opaque
handle to a single location of a tree, issued by the tree itself. Algorithms
written against Tree or BinaryTree (traversals, searches, rebalancing code)
never see the storage behind a position; they navigate with Root, Parent,
Left, Right and Children and read elements with Position.Element.

The interfaces carry no storage. Operations which may be derived from the
navigational primitives (IsRoot, IsLeaf, IsEmpty, Sibling, BinaryChildren,
Depth, Height) are provided as functions over the interfaces, so concrete
implementations do not have to repeat them.

A linked, arena-backed implementation lives in sub-package linked. It splits
the read-only navigation surface from the privileged mutation surface:

	tree, editor := linked.New[string]()
	root, _ := editor.AddRoot("A")
	editor.AddLeft(root, "B")
	editor.AddRight(root, "C")
	// hand out tree to clients, keep editor private

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrTypeMismatch is flagged whenever a position has not been issued by the
// kind of tree it is handed to, or when trees of different kinds are combined.
const ErrTypeMismatch = TreeError("position or tree of wrong type")

// ErrOwnershipMismatch is flagged whenever a position belongs to a different
// tree instance. Positions are not transferable between trees.
const ErrOwnershipMismatch = TreeError("position does not belong to this tree")

// ErrStaleHandle is flagged for positions referring to nodes which have been
// deleted or moved to another tree.
const ErrStaleHandle = TreeError("position is no longer valid")

// ErrAlreadyRooted signals an attempt to add a root to a non-empty tree.
const ErrAlreadyRooted = TreeError("root exists")

// ErrSlotOccupied signals an attempt to add a child where one already exists.
const ErrSlotOccupied = TreeError("child exists")

// ErrTwoChildrenPresent signals an attempt to delete a node with two children.
const ErrTwoChildrenPresent = TreeError("position has two children")

// ErrNotALeaf signals an attempt to attach subtrees to an inner node.
const ErrNotALeaf = TreeError("position must be a leaf")

// ErrCorruptTree is flagged by invariant checkers for structural damage.
const ErrCorruptTree = TreeError("tree structure is corrupt")
