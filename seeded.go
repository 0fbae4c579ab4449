package dice

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the required seed length in bytes.
const SeedSize = chacha20.KeySize

// seededSource implements Source on top of a ChaCha20 keystream keyed by a
// caller-supplied seed. Reading the stream advances it, so a seededSource
// must not be shared across goroutines.
type seededSource struct {
	stream *chacha20.Cipher
}

// NewSeededSource returns a Source whose output is fully determined by seed.
//
// The generator is the ChaCha20 stream cipher (RFC 8439) keyed by the
// 32-byte seed with an all-zero nonce and initial counter zero. Each draw
// consumes 8 keystream bytes, interpreted as a little-endian uint64, and is
// mapped to [0, n) by rejection sampling: values at or above the largest
// multiple of n below 2^64 are discarded, the rest reduced modulo n. The
// mapping is unbiased, and two sources built from the same seed produce
// identical sequences on every platform.
func NewSeededSource(seed [SeedSize]byte) Source {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Unreachable: the key and nonce sizes are fixed at the valid lengths.
		panic("dice: chacha20 init failure: " + err.Error())
	}
	return &seededSource{stream: stream}
}

// Intn returns the next seed-determined int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	bound := uint64(n)
	limit := (math.MaxUint64 / bound) * bound
	for {
		if v := s.next(); v < limit {
			return int(v % bound)
		}
	}
}

// next consumes the next 8 keystream bytes as a little-endian uint64.
func (s *seededSource) next() uint64 {
	var buf [8]byte
	s.stream.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}
