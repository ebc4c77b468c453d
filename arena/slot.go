package arena

import "fmt"

const (
	stateFree = iota
	stateLinked
	stateDelisted
)

// Ref is a handle to a slot in an Arena.
// The zero Ref is never valid.
type Ref struct {
	index uint32
	gen   uint32
}

// String formats r as index@generation.
func (r Ref) String() string {
	return fmt.Sprintf("%d@%d", r.index, r.gen)
}

// slot is a value with its ring links.
// prev and next are indices into the arena's slot table.
type slot[T any] struct {
	value T
	prev  uint32
	next  uint32
	gen   uint32
	state uint8
}
