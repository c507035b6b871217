package linked

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/bintree"
)

// Check validates structural tree invariants:
//
//   - the tree is empty if and only if it has no root,
//   - the root has no parent,
//   - every child links back to its parent,
//   - every reachable node is live and reached exactly once,
//   - the number of reachable nodes equals Len().
//
// All violations found are reported, each wrapping bintree.ErrCorruptTree.
// Check is intended for tests and debugging.
func (t *Tree[E]) Check() error {
	if t == nil {
		return nil
	}
	var result *multierror.Error
	corrupt := func(format string, args ...any) {
		err := fmt.Errorf("%w: "+format, append([]any{bintree.ErrCorruptTree}, args...)...)
		tracer().Errorf("linked tree: %s", err)
		result = multierror.Append(result, err)
	}
	if (t.size == 0) != (t.root == none) {
		corrupt("size is %d, root is %d", t.size, t.root)
	}
	if t.root == none {
		return result.ErrorOrNil()
	}
	if int(t.root) >= len(t.nodes) {
		corrupt("root %d outside of arena", t.root)
		return result.ErrorOrNil()
	}
	if p := t.nodes[t.root].parent; p != none {
		corrupt("root %d has parent %d", t.root, p)
	}
	seen := make(map[uint32]bool, t.size)
	stack := arraystack.New()
	stack.Push(t.root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		i := v.(uint32)
		if seen[i] {
			corrupt("node %d reached twice", i)
			continue
		}
		seen[i] = true
		n := &t.nodes[i]
		if !n.live {
			corrupt("node %d is reachable but freed", i)
			continue
		}
		for _, c := range [2]uint32{n.l, n.r} {
			if c == none {
				continue
			}
			if int(c) >= len(t.nodes) {
				corrupt("child %d of node %d outside of arena", c, i)
				continue
			}
			if t.nodes[c].parent != i {
				corrupt("node %d has parent %d, expected %d", c, t.nodes[c].parent, i)
			}
			stack.Push(c)
		}
	}
	if len(seen) != t.size {
		corrupt("%d nodes reachable, size is %d", len(seen), t.size)
	}
	return result.ErrorOrNil()
}
