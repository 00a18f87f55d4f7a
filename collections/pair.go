package collections

import (
	"strconv"

	"github.com/hasbyte1/go-underbar/arr"
)

// Key identifies an element of a [Collection]. Index is the ordinal position
// in iteration order. For mappings Named is set and Name holds the map key.
type Key struct {
	Index int
	Name  string
	Named bool
}

// String returns the map key for mapping elements and the decimal index
// otherwise.
func (k Key) String() string {
	if k.Named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}

// Pair is [arr.Pair]; [Collection.Entries] yields Pair[Key, V].
type Pair[A, B any] = arr.Pair[A, B]
