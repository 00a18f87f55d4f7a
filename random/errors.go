package random

import "errors"

// ErrEntropy is returned by [NewSource] when the operating system's random
// number generator cannot be read.
var ErrEntropy = errors.New("random: failed to read entropy")
