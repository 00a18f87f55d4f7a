package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by arr helpers.
//
// Use [errors.Is] for comparisons; returned errors wrap these with context
// naming the offending value.
var (
	// ErrInvalidArgument is returned when an input falls outside the domain
	// a helper is defined for.
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrEmptyReduce is returned by [ReduceFirst] when there is no element to
	// seed the accumulator with. It wraps [ErrInvalidArgument].
	ErrEmptyReduce = fmt.Errorf("%w: reduce of empty input with no initial value", ErrInvalidArgument)

	// ErrMissingMethod is returned when a named method cannot be resolved on
	// an element.
	ErrMissingMethod = errors.New("arr: missing method")
)
