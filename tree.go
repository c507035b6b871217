package bintree

import "iter"

// Position is an opaque handle to a location within a tree.
//
// Positions are issued by trees and handed back to them for navigation.
// Implementations must be comparable: two positions are equal (==) if and only
// if they refer to the same node of the same tree.
type Position[E any] interface {
	Element() E
}

// Tree is the contract every positional tree supports.
//
// Methods returning a position return nil if there is no such position
// (e.g., the root of an empty tree or the parent of the root). Methods taking a
// position return an error if the position is not valid for the receiver.
type Tree[E any] interface {
	// Root returns the root position, or nil for an empty tree.
	Root() Position[E]
	// Parent returns the parent of p, or nil if p is the root.
	Parent(p Position[E]) (Position[E], error)
	// NumChildren returns the number of direct children of p.
	NumChildren(p Position[E]) (int, error)
	// Children returns a finite, restartable sequence of p's children.
	Children(p Position[E]) (iter.Seq[Position[E]], error)
	// Len returns the total number of positions in the tree.
	Len() int
}

// BinaryTree is a tree where every position has at most a left and a right child.
type BinaryTree[E any] interface {
	Tree[E]
	// Left returns the left child of p, or nil.
	Left(p Position[E]) (Position[E], error)
	// Right returns the right child of p, or nil.
	Right(p Position[E]) (Position[E], error)
}

// IsRoot reports whether p is the root of t.
func IsRoot[E any](t Tree[E], p Position[E]) bool {
	return p != nil && t.Root() == p
}

// IsLeaf reports whether p has no children.
func IsLeaf[E any](t Tree[E], p Position[E]) (bool, error) {
	n, err := t.NumChildren(p)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// IsEmpty reports whether t has no positions.
func IsEmpty[E any](t Tree[E]) bool {
	return t.Len() == 0
}

// Sibling returns the other child of p's parent, or nil if p is the root or an
// only child.
//
// p is identified as a left child purely by equality with its parent's left
// child.
func Sibling[E any](t BinaryTree[E], p Position[E]) (Position[E], error) {
	parent, err := t.Parent(p)
	if err != nil || parent == nil {
		return nil, err
	}
	left, err := t.Left(parent)
	if err != nil {
		return nil, err
	}
	if p == left {
		return t.Right(parent)
	}
	return left, nil
}

// BinaryChildren derives the children sequence of a binary tree from Left and
// Right. It yields the left child first, then the right child, skipping
// absent ones.
//
// p is validated once, up front. The returned sequence may be ranged over
// repeatedly; it reflects the tree at the time of iteration.
func BinaryChildren[E any](t BinaryTree[E], p Position[E]) (iter.Seq[Position[E]], error) {
	if _, err := t.Left(p); err != nil {
		return nil, err
	}
	return func(yield func(Position[E]) bool) {
		if l, err := t.Left(p); err == nil && l != nil {
			if !yield(l) {
				return
			}
		}
		if r, err := t.Right(p); err == nil && r != nil {
			yield(r)
		}
	}, nil
}

// Depth returns the number of ancestors of p. The root has depth 0.
func Depth[E any](t Tree[E], p Position[E]) (int, error) {
	depth := 0
	for {
		parent, err := t.Parent(p)
		if err != nil {
			return 0, err
		}
		if parent == nil {
			return depth, nil
		}
		depth++
		p = parent
	}
}

// Height returns the height of the subtree rooted at p. A leaf has height 0.
// Recursive.
func Height[E any](t Tree[E], p Position[E]) (int, error) {
	children, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	h := 0
	for c := range children {
		ch, err := Height(t, c)
		if err != nil {
			return 0, err
		}
		h = max(h, ch+1)
	}
	return h, nil
}
