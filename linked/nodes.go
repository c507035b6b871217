package linked

// none is the slot index meaning "no node". Slot 0 of every arena is a
// permanently unused sentinel, so the zero value of a link is meaningful.
const none uint32 = 0

// A node in the arena.
// Freed slots are chained into the free list through l.
type node[E any] struct {
	elem   E
	parent uint32
	l, r   uint32
	gen    uint32 // bumped whenever the slot is freed
	live   bool
}

type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) String() string {
	if s == leftSide {
		return "left"
	}
	return "right"
}

// child returns the link to n's child on side s.
func (n *node[E]) child(s side) *uint32 {
	if s == leftSide {
		return &n.l
	}
	return &n.r
}

func (n *node[E]) numChildren() int {
	c := 0
	if n.l != none {
		c++
	}
	if n.r != none {
		c++
	}
	return c
}

// alloc takes a slot from the free list, or appends a new one, and stores a
// live node with element e and the given parent link.
// Pointers into t.nodes must not be held across calls to alloc.
func (t *Tree[E]) alloc(e E, parent uint32) uint32 {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[E]{})
	}
	if i := t.free; i != none {
		t.free = t.nodes[i].l
		t.nodes[i] = node[E]{elem: e, parent: parent, gen: t.nodes[i].gen, live: true}
		return i
	}
	t.nodes = append(t.nodes, node[E]{elem: e, parent: parent, live: true})
	return uint32(len(t.nodes) - 1)
}

// release marks slot i as free. Positions referring to it turn stale.
func (t *Tree[E]) release(i uint32) {
	var zero E
	n := &t.nodes[i]
	n.elem = zero
	n.parent, n.r = none, none
	n.l = t.free
	n.gen++
	n.live = false
	t.free = i
}

// isLive reports whether slot i holds a live node of generation gen.
func (t *Tree[E]) isLive(i, gen uint32) bool {
	if i == none || int(i) >= len(t.nodes) {
		return false
	}
	n := &t.nodes[i]
	return n.live && n.gen == gen
}
