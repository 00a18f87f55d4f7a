// Package random provides the randomness sources used by the shuffling
// helpers in [github.com/hasbyte1/go-underbar/arr] and
// [github.com/hasbyte1/go-underbar/collections].
//
// A [Source] is a ChaCha20 keystream exposed through the math/rand/v2
// [rand.Source] interface. Two constructors are provided:
//
//	src, err := random.NewSource()          // keyed from crypto/rand
//	src := random.NewSeededSource([]byte("fixture-42")) // reproducible
//
// Seeded sources derive their key from BLAKE2b-256 of the seed, so the same
// seed always yields the same stream on every platform. That makes shuffles
// reproducible in tests without giving up a uniform distribution.
//
//	r := rand.New(random.NewSeededSource([]byte("demo")))
//	shuffled := arr.ShuffleWith([]int{1, 2, 3, 4}, r)
package random
