/*
Package arena implements circular doubly linked rings over a slot table.

Rings link slot indices instead of addresses, so finding a value from its
position in a ring is a bounds and generation checked table lookup. Releasing
a slot bumps its generation, which turns every outstanding Ref to it into
ErrInvalidRef instead of a dangling reference.

An Arena is not safe for concurrent use.
*/
package arena

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	pageBits = 6
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// page is a fixed block of slots. Pages are never reallocated,
// so a slot keeps its address until the arena is dropped.
type page[T any] [pageSize]slot[T]

// Arena is a slot table holding any number of independent rings.
type Arena[T any] struct {
	log   logrus.FieldLogger
	pages []*page[T]
	free  []uint32
	next  uint32
	len   int
}

// New creates an empty arena.
func New[T any](opts ...Option) *Arena[T] {
	opt := newDefaultArenaOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	a := &Arena[T]{
		log:   opt.logger,
		pages: make([]*page[T], 0, (opt.capacity+pageMask)/pageSize),
	}
	for len(a.pages) < cap(a.pages) {
		a.pages = append(a.pages, new(page[T]))
	}

	return a
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.len
}

// Insert stores value in a new slot as a ring of one.
func (a *Arena[T]) Insert(value T) Ref {
	var i uint32

	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
		a.log.WithFields(logrus.Fields{
			"index": i,
			"gen":   a.at(i).gen,
		}).Debug("arena: reusing slot")
	} else {
		if a.next == math.MaxUint32 {
			panic("arena: slot table full")
		}
		i = a.next
		if int(i>>pageBits) == len(a.pages) {
			a.pages = append(a.pages, new(page[T]))
			a.log.WithFields(logrus.Fields{
				"pages": len(a.pages),
				"slots": len(a.pages) * pageSize,
			}).Debug("arena: adding slot page")
		}
		a.next++
		a.at(i).gen = 1
	}

	s := a.at(i)
	s.value = value
	a.init(i)
	a.len++

	return Ref{index: i, gen: s.gen}
}

// Value returns a pointer to the value stored in ref's slot.
// The address stays the same until ref is released.
func (a *Arena[T]) Value(ref Ref) (*T, error) {
	i, err := a.lookup(ref)
	if err != nil {
		return nil, err
	}
	return &a.at(i).value, nil
}

// Next returns the slot following ref in its ring.
func (a *Arena[T]) Next(ref Ref) (Ref, error) {
	i, err := a.lookup(ref)
	if err != nil {
		return Ref{}, err
	}
	return a.ref(a.at(i).next), nil
}

// Prev returns the slot preceding ref in its ring.
func (a *Arena[T]) Prev(ref Ref) (Ref, error) {
	i, err := a.lookup(ref)
	if err != nil {
		return Ref{}, err
	}
	return a.ref(a.at(i).prev), nil
}

// RingLen returns the number of slots in ref's ring. It is O(n).
func (a *Arena[T]) RingLen(ref Ref) (int, error) {
	i, err := a.lookup(ref)
	if err != nil {
		return 0, err
	}
	size := 0
	a.do(i, true, func(uint32) { size++ })
	return size, nil
}

// Splice removes moving from its ring and links it directly after anchor.
func (a *Arena[T]) Splice(anchor, moving Ref) error {
	h, err := a.lookup(anchor)
	if err != nil {
		return fmt.Errorf("arena: splice anchor: %w", err)
	}

	o, err := a.lookup(moving)
	if err != nil {
		return fmt.Errorf("arena: splice moving: %w", err)
	}

	if h == o {
		return fmt.Errorf("arena: splice %s: %w", anchor, ErrSameRef)
	}

	a.delist(o)
	a.insert(h, o)

	return nil
}

// SpliceBefore removes ref from its ring and links it directly after other.
// It is equivalent to Splice(other, ref).
func (a *Arena[T]) SpliceBefore(ref, other Ref) error {
	return a.Splice(other, ref)
}

// Detach removes ref from its ring and links its former neighbours to each other.
// ref becomes a ring of one.
func (a *Arena[T]) Detach(ref Ref) error {
	i, err := a.lookup(ref)
	if err != nil {
		return fmt.Errorf("arena: detach: %w", err)
	}

	a.delist(i)
	a.init(i)

	return nil
}

// Release detaches ref, frees its slot and returns the value it held.
// ref and every copy of it become invalid.
func (a *Arena[T]) Release(ref Ref) (T, error) {
	i, err := a.lookup(ref)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("arena: release: %w", err)
	}

	a.delist(i)

	s := a.at(i)
	value := s.value

	var zero T
	s.value = zero
	s.prev = i
	s.next = i
	s.state = stateFree
	s.gen++
	if s.gen == 0 {
		// The generation wrapped, retire the slot.
		a.log.WithField("index", i).Debug("arena: retiring slot")
	} else {
		a.free = append(a.free, i)
	}
	a.len--

	a.log.WithFields(logrus.Fields{
		"index": i,
		"gen":   ref.gen,
	}).Debug("arena: released slot")

	return value, nil
}

// Do calls f with the value of each slot in ref's ring, starting at ref
// and moving forward. f must not change the arena.
func (a *Arena[T]) Do(ref Ref, f func(value T)) error {
	i, err := a.lookup(ref)
	if err != nil {
		return err
	}
	a.do(i, true, func(j uint32) { f(a.at(j).value) })
	return nil
}

// DoMut calls f with a pointer to the value of each slot in ref's ring,
// starting at ref and moving forward. f may modify the values but must not
// change the arena.
func (a *Arena[T]) DoMut(ref Ref, f func(value *T)) error {
	i, err := a.lookup(ref)
	if err != nil {
		return err
	}
	a.do(i, true, func(j uint32) { f(&a.at(j).value) })
	return nil
}

// DoRev is Do moving backward.
func (a *Arena[T]) DoRev(ref Ref, f func(value T)) error {
	i, err := a.lookup(ref)
	if err != nil {
		return err
	}
	a.do(i, false, func(j uint32) { f(a.at(j).value) })
	return nil
}

// DoRevMut is DoMut moving backward.
func (a *Arena[T]) DoRevMut(ref Ref, f func(value *T)) error {
	i, err := a.lookup(ref)
	if err != nil {
		return err
	}
	a.do(i, false, func(j uint32) { f(&a.at(j).value) })
	return nil
}

func (a *Arena[T]) lookup(ref Ref) (uint32, error) {
	if ref.index >= a.next {
		return 0, fmt.Errorf("%s: %w", ref, ErrInvalidRef)
	}
	s := a.at(ref.index)
	if s.state != stateLinked || s.gen != ref.gen {
		return 0, fmt.Errorf("%s: %w", ref, ErrInvalidRef)
	}
	return ref.index, nil
}

func (a *Arena[T]) at(i uint32) *slot[T] {
	return &a.pages[i>>pageBits][i&pageMask]
}

func (a *Arena[T]) ref(i uint32) Ref {
	return Ref{index: i, gen: a.at(i).gen}
}

func (a *Arena[T]) do(start uint32, forward bool, f func(i uint32)) {
	i := start
	for {
		f(i)
		if forward {
			i = a.at(i).next
		} else {
			i = a.at(i).prev
		}
		if i == start {
			return
		}
	}
}

// init makes slot i a ring of one.
func (a *Arena[T]) init(i uint32) {
	s := a.at(i)
	s.prev = i
	s.next = i
	s.state = stateLinked
}

// delist patches the neighbours of slot i to skip it.
// The slot is left delisted until init or insert links it again.
func (a *Arena[T]) delist(i uint32) {
	s := a.at(i)
	a.at(s.prev).next = s.next
	a.at(s.next).prev = s.prev
	s.state = stateDelisted
}

// insert links the delisted slot o between h and h's successor.
func (a *Arena[T]) insert(h, o uint32) {
	n := a.at(h).next
	a.at(o).prev = h
	a.at(o).next = n
	a.at(n).prev = o
	a.at(h).next = o
	a.at(o).state = stateLinked
}
