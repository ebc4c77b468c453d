package arena

import "errors"

var (
	// ErrInvalidRef indicates a ref that was released, never issued by the arena or is the zero Ref.
	ErrInvalidRef = errors.New("invalid ref")

	// ErrSameRef indicates an attempt to splice a slot to itself.
	ErrSameRef = errors.New("cannot splice a slot to itself")
)
