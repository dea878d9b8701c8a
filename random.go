package bigint

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source supplies uniformly distributed machine words on demand.
// It is satisfied by [math/rand.Rand] and by [CryptoSource].
//
// A Source may be stateful; sharing one instance between goroutines
// requires the Source itself to synchronize.
type Source interface {
	Uint64() uint64
}

// CryptoSource is a [Source] backed by the operating system's
// cryptographically secure random number generator.
type CryptoSource struct{}

// Uint64 returns a uniformly distributed word from [crypto/rand.Reader].
// It panics if the operating system's random source fails.
func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("CryptoSource.Uint64() failed: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Random returns a uniformly distributed Uint over the full fixed width,
// drawing every word from src.
func Random(src Source) Uint {
	var z Uint
	for i := 0; i < numWords; i++ {
		z.words[i] = src.Uint64()
	}
	return z
}

// RandomBits returns a uniformly distributed Uint of at most the given
// number of bits. If exact is true, the top bit is forced set, so the
// bit length of the result is exactly bits.
//
// RandomBits panics if bits is negative or greater than [Bits].
func RandomBits(src Source, bits int, exact bool) Uint {
	if bits < 0 || bits > Bits {
		panic(fmt.Sprintf("RandomBits(%v) failed: bit count out of range", bits))
	}
	var z Uint
	q, r := bits/wordBits, bits%wordBits
	for i := 0; i < q; i++ {
		z.words[i] = src.Uint64()
	}
	if r > 0 {
		z.words[q] = src.Uint64() % (1 << r)
		if exact {
			z.words[q] |= 1 << (r - 1)
		}
	} else if exact && q > 0 {
		z.words[q-1] |= 1 << (wordBits - 1)
	}
	return z
}
