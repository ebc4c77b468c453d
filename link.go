package cdlist

import (
	"unsafe"

	"github.com/mgnsk/cdlist/internal/containerof"
)

// link is the intrusive ring record embedded in every Node.
// It holds non-owning positions in the ring and nothing else.
type link[T any] struct {
	prev, next *link[T]
}

// init makes l a ring of one.
func (l *link[T]) init() {
	l.prev = l
	l.next = l
}

// delist patches l's neighbours to skip l.
//
// l.prev and l.next are left pointing into the ring l just left.
// Callers must follow up with init or insert before returning.
func (l *link[T]) delist() {
	l.prev.next = l.next
	l.next.prev = l.prev
}

// insert links o between l and l.next. o must be delisted.
func (l *link[T]) insert(o *link[T]) {
	n := l.next
	o.prev = l
	o.next = n
	n.prev = o
	l.next = o
}

// detach removes l from its ring, leaving it a ring of one.
func (l *link[T]) detach() {
	l.delist()
	l.init()
}

// splice moves o out of its ring and links it after l.
func (l *link[T]) splice(o *link[T]) {
	o.delist()
	l.insert(o)
}

// node returns the Node that embeds l.
func (l *link[T]) node() *Node[T] {
	var n *Node[T]
	return containerof.Pointer[Node[T]](l, unsafe.Offsetof(n.link))
}

// do calls f on each node of the ring starting at l in next order.
func (l *link[T]) do(f func(*Node[T]) bool) {
	p := l
	for {
		if !f(p.node()) {
			return
		}
		if p = p.next; p == l {
			return
		}
	}
}

// doRev calls f on each node of the ring starting at l in prev order.
func (l *link[T]) doRev(f func(*Node[T]) bool) {
	p := l
	for {
		if !f(p.node()) {
			return
		}
		if p = p.prev; p == l {
			return
		}
	}
}
