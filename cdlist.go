/*
Package cdlist implements intrusive circular doubly linked rings.

A Node owns a value and its ring links in a single allocation, so placing a
value into a ring needs no extra allocation and every ring operation is a
constant number of pointer writes. Nodes never move once allocated, which
makes it safe to store values that must not be copied, such as a sync.Mutex,
and to take their address with &n.Value.

There is no ring object: a ring is the set of nodes reachable from any one of
its members. A new node is a ring of one.

Nodes are not safe for concurrent use. A mutating call on one node writes to
its neighbours, so a whole ring must be guarded as a unit.
*/
package cdlist

import "iter"

// Node is a value linked into a ring.
//
// A Node must not be copied. Its neighbours point at its address,
// so a copy would hold links that nothing links back to.
type Node[T any] struct {
	noCopy noCopy
	Value  T
	link   link[T]
}

// noCopy makes go vet's copylocks check report copies of a Node.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a node holding value as a ring of one.
func New[T any](value T) *Node[T] {
	n := &Node[T]{
		Value: value,
	}
	n.link.init()
	return n
}

// Next returns the node following n in its ring. For a ring of one it returns n.
func (n *Node[T]) Next() *Node[T] {
	n.mustBeLinked()
	return n.link.next.node()
}

// Prev returns the node preceding n in its ring. For a ring of one it returns n.
func (n *Node[T]) Prev() *Node[T] {
	n.mustBeLinked()
	return n.link.prev.node()
}

// Singleton reports whether n is the only member of its ring.
func (n *Node[T]) Singleton() bool {
	n.mustBeLinked()
	return n.link.next == &n.link
}

// Len returns the number of nodes in n's ring. It is O(n).
func (n *Node[T]) Len() int {
	n.mustBeLinked()
	size := 0
	n.link.do(func(*Node[T]) bool {
		size++
		return true
	})
	return size
}

// Splice removes other from its ring and links it directly after n.
// other may be a member of n's ring or of any other ring.
//
// n and other must be different nodes.
func (n *Node[T]) Splice(other *Node[T]) {
	if n == other {
		panic("cdlist: cannot splice a node to itself")
	}
	n.mustBeLinked()
	other.mustBeLinked()
	n.link.splice(&other.link)
}

// SpliceBefore removes n from its ring and links it directly after other.
// It is equivalent to other.Splice(n).
func (n *Node[T]) SpliceBefore(other *Node[T]) {
	other.Splice(n)
}

// Detach removes n from its ring and links its former neighbours to each other.
// n becomes a ring of one. Detaching a ring of one does nothing.
func (n *Node[T]) Detach() {
	n.mustBeLinked()
	n.link.detach()
}

// Release detaches n and clears its value.
// n must not be used afterwards.
func (n *Node[T]) Release() {
	n.mustBeLinked()
	n.link.delist()
	n.link.prev = nil
	n.link.next = nil
	var zero T
	n.Value = zero
}

// Do calls f with the value of each node in n's ring, starting at n
// and moving forward. f must not change the ring.
func (n *Node[T]) Do(f func(value T)) {
	n.mustBeLinked()
	n.link.do(func(p *Node[T]) bool {
		f(p.Value)
		return true
	})
}

// DoMut calls f with a pointer to the value of each node in n's ring,
// starting at n and moving forward. f may modify the values but must not
// change the ring.
func (n *Node[T]) DoMut(f func(value *T)) {
	n.mustBeLinked()
	n.link.do(func(p *Node[T]) bool {
		f(&p.Value)
		return true
	})
}

// DoRev calls f with the value of each node in n's ring, starting at n
// and moving backward. f must not change the ring.
func (n *Node[T]) DoRev(f func(value T)) {
	n.mustBeLinked()
	n.link.doRev(func(p *Node[T]) bool {
		f(p.Value)
		return true
	})
}

// DoRevMut is DoMut moving backward.
func (n *Node[T]) DoRevMut(f func(value *T)) {
	n.mustBeLinked()
	n.link.doRev(func(p *Node[T]) bool {
		f(&p.Value)
		return true
	})
}

// All returns an iterator over pointers to the values of n's ring,
// starting at n and moving forward.
func (n *Node[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n.mustBeLinked()
		n.link.do(func(p *Node[T]) bool {
			return yield(&p.Value)
		})
	}
}

// Backward returns an iterator over pointers to the values of n's ring,
// starting at n and moving backward.
func (n *Node[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n.mustBeLinked()
		n.link.doRev(func(p *Node[T]) bool {
			return yield(&p.Value)
		})
	}
}

func (n *Node[T]) mustBeLinked() {
	if n.link.next == nil {
		panic("cdlist: use of released or uninitialized node")
	}
}
