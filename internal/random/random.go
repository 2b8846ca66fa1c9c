// Package random provides the randomness sources threaded through maze
// generation, modification, and algorithm selection.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source is the randomness every generator, modifier, and factory draws from.
// A Source is not safe for concurrent use.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle permutes n elements with a Fisher-Yates pass using swap.
	Shuffle(n int, swap func(i, j int))
}

// Rand adapts a math/rand/v2 generator to Source.
type Rand struct {
	r *rand.Rand
}

// IntN implements Source.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Shuffle implements Source.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// NewSecure returns a Source backed by the operating system CSPRNG.
func NewSecure() *Rand {
	return &Rand{r: rand.New(osSource{})}
}

// NewSeeded returns a reproducible Source. The seed is hashed with BLAKE2b
// into a ChaCha20 key, so neighbouring seeds give unrelated streams.
func NewSeeded(seed int64) *Rand {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(seed))
	key := blake2b.Sum256(raw[:])

	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// key and nonce sizes are fixed above
		panic("random: " + err.Error())
	}
	return &Rand{r: rand.New(&streamSource{cipher: cipher})}
}

// osSource reads 64-bit words from crypto/rand.
type osSource struct{}

func (osSource) Uint64() uint64 {
	var buf [8]byte
	// crypto/rand.Read does not fail on supported platforms
	_, _ = crand.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// streamSource turns a ChaCha20 keystream into 64-bit words.
type streamSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
