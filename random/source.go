package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

const blockWords = 64

// Source is a [rand.Source] backed by a ChaCha20 keystream.
// It is safe for concurrent use.
type Source struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	buf    [blockWords * 8]byte
	pos    int
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source keyed from crypto/rand.
func NewSource() (*Source, error) {
	var key [chacha20.KeySize]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return newSource(key[:]), nil
}

// NewSeededSource returns a deterministic Source whose key is the BLAKE2b-256
// digest of seed. Equal seeds produce equal streams.
func NewSeededSource(seed []byte) *Source {
	key := blake2b.Sum256(seed)
	return newSource(key[:])
}

func newSource(key []byte) *Source {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	s := &Source{cipher: c}
	s.refill()
	return s
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

func (s *Source) refill() {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.pos = 0
}

var (
	defaultOnce sync.Once
	defaultRand *rand.Rand
)

// Default returns the process-wide generator used when no source is injected.
// It is keyed from crypto/rand on first use and falls back to the runtime's
// global generator if entropy is unavailable. Safe for concurrent use.
func Default() *rand.Rand {
	defaultOnce.Do(func() {
		src, err := NewSource()
		if err != nil {
			defaultRand = rand.New(runtimeSource{})
			return
		}
		defaultRand = rand.New(src)
	})
	return defaultRand
}

type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }
