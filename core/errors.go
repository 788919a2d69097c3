package core

import (
	"errors"
)

var (
	// ErrInvalidParameter is returned by generators before any allocation
	// when a subdivision count or radius is out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrBufferFull is returned when a push would exceed the capacity
	// declared at buffer creation.
	ErrBufferFull = errors.New("buffer capacity exceeded")
	// ErrIndexedInput is returned by transforms that only operate on
	// deindexed buffer sets.
	ErrIndexedInput = errors.New("indexed input not supported")
	// ErrNoIndices is returned when a transform requires an index buffer
	// and the set has none.
	ErrNoIndices = errors.New("buffer set has no indices")
)
