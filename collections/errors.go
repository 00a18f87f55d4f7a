package collections

import (
	"errors"

	"github.com/hasbyte1/go-underbar/arr"
)

// Sentinel errors returned by Collection operations. The arr sentinels are
// shared so that errors.Is matches regardless of which package failed.
var (
	// ErrInvalidArgument is returned when an input is not a collection or
	// falls outside the domain an operation is defined for.
	ErrInvalidArgument = arr.ErrInvalidArgument

	// ErrEmptyReduce is returned by [ReduceFirst] on an empty collection.
	ErrEmptyReduce = arr.ErrEmptyReduce

	// ErrMissingMethod is returned by [InvokeMethod] when neither the element
	// nor the method registry provides the requested name.
	ErrMissingMethod = arr.ErrMissingMethod

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")
)
