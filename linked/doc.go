/*
Package linked implements a binary tree over linked nodes.

Nodes live in an arena owned by the tree and link to each other by slot
index. Clients never see nodes, but positions (type Pos), which carry the
issuing tree, a slot index and the slot's generation. Every operation
receiving a position validates it before use:

  - a nil position, or one not issued by a linked tree, is rejected with
    bintree.ErrTypeMismatch,
  - a position issued by another tree instance is rejected with
    bintree.ErrOwnershipMismatch,
  - a position whose node has been deleted or moved away is rejected with
    bintree.ErrStaleHandle.

Freeing a slot bumps its generation, thus stale positions are detected even
after the slot has been reused for a new node.

Structural changes are reserved to the holder of an Editor. New returns a
tree together with its editor; the tree itself offers navigation only.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package linked

import (
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the module's core tracer.
func tracer() tracing.Trace {
	return bintree.T()
}
