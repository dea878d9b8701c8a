package bigint

import (
	"errors"
	"math/bits"
)

const (
	wordBits = 64              // width of a single word in bits
	numWords = Bits / wordBits // number of words in a Uint
	Size     = Bits / 8        // size of a Uint in bytes
)

// Uint is a fixed-width multi-precision unsigned integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines,
// with the exception of the in-place [Uint.Divide] and [Uint.DivideWide]
// primitives, which mutate their receiver.
//
// A Uint is an array of [Bits]/64 words, least significant word first,
// so that the numeric value is the sum of words[i] * 2^(64*i).
// Arithmetic is exact within [Bits] bits: results that exceed the fixed
// width wrap around silently, which is the documented contract rather
// than an error.
type Uint struct {
	words [numWords]uint64 // little-endian: words[0] is the least significant
}

var (
	// ErrNonResidue is returned by [SqrtMod] and [Modulo.Sqrt] when the
	// argument has no square root modulo the given modulus.
	ErrNonResidue = errors.New("non-quadratic residue")

	// ErrBytesLength is returned by [Uint.SetBytes] and
	// [Uint.UnmarshalBinary] when the input is longer than [Size] bytes.
	ErrBytesLength = errors.New("binary data exceeds integer size")

	errInvalidNumber = errors.New("invalid number")
)

// New returns a Uint equal to x.
func New(x uint64) Uint {
	var z Uint
	z.words[0] = x
	return z
}

// NewFromWords returns a Uint assembled from the given words,
// least significant word first.
// Words beyond the fixed width are silently discarded.
func NewFromWords(words ...uint64) Uint {
	var z Uint
	copy(z.words[:], words)
	return z
}

// Uint64 returns the least significant word of x.
// If x does not fit in a uint64, the value is truncated.
func (x Uint) Uint64() uint64 {
	return x.words[0]
}

// Words returns a copy of the words of x, least significant word first.
func (x Uint) Words() []uint64 {
	words := x.words
	return words[:]
}

// IsZero returns true if x is 0.
func (x Uint) IsZero() bool {
	return x == Uint{}
}

// IsOdd returns true if the least significant bit of x is set.
func (x Uint) IsOdd() bool {
	return x.words[0]&1 != 0
}

// IsEven returns true if the least significant bit of x is unset.
func (x Uint) IsEven() bool {
	return x.words[0]&1 == 0
}

// Ord returns one plus the index of the highest nonzero word of x,
// or 0 if x is 0.
func (x Uint) Ord() int {
	return ordWords(x.words[:])
}

// BitLen returns the length of x in bits.
// BitLen assumes that 0 has no bits.
func (x Uint) BitLen() int {
	ord := x.Ord()
	if ord == 0 {
		return 0
	}
	return (ord-1)*wordBits + bits.Len64(x.words[ord-1])
}

// Bit returns the value of the i'th bit of x, where bit 0 is the least
// significant. Bit panics if i is negative or not less than [Bits].
func (x Uint) Bit(i int) uint {
	return uint(x.words[i/wordBits]>>(i%wordBits)) & 1
}

// Cmp numerically compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Uint) Cmp(y Uint) int {
	for i := numWords - 1; i >= 0; i-- {
		switch {
		case x.words[i] > y.words[i]:
			return 1
		case x.words[i] < y.words[i]:
			return -1
		}
	}
	return 0
}

// Equal returns true if x and y are numerically equal.
func (x Uint) Equal(y Uint) bool {
	return x == y
}

// Less returns true if x is numerically less than y.
func (x Uint) Less(y Uint) bool {
	return x.Cmp(y) < 0
}

// Add calculates x + y.
// If the sum exceeds the fixed width, it wraps around silently.
func (x Uint) Add(y Uint) Uint {
	var z Uint
	var carry uint64
	for i := 0; i < numWords; i++ {
		z.words[i], carry = bits.Add64(x.words[i], y.words[i], carry)
	}
	return z
}

// Sub calculates x - y.
// If y is greater than x, the difference wraps around silently.
func (x Uint) Sub(y Uint) Uint {
	var z Uint
	var borrow uint64
	for i := 0; i < numWords; i++ {
		z.words[i], borrow = bits.Sub64(x.words[i], y.words[i], borrow)
	}
	return z
}

// Mul calculates x * y.
// If the product exceeds the fixed width, it is truncated silently.
func (x Uint) Mul(y Uint) Uint {
	var z Uint
	for i := 0; i < numWords; i++ {
		var carry uint64
		for j := 0; j < numWords-i; j++ {
			hi, lo := bits.Mul64(x.words[j], y.words[i])
			lo, c := bits.Add64(lo, z.words[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z.words[i+j] = lo
			carry = hi
		}
	}
	return z
}

// MulWide calculates the full double-width product x * y and returns it
// as a pair of Uints holding the high and low halves.
func (x Uint) MulWide(y Uint) (hi, lo Uint) {
	var z [2 * numWords]uint64
	for i := 0; i < numWords; i++ {
		var carry uint64
		for j := 0; j < numWords; j++ {
			h, l := bits.Mul64(x.words[j], y.words[i])
			l, c := bits.Add64(l, z[i+j], 0)
			h += c
			l, c = bits.Add64(l, carry, 0)
			h += c
			z[i+j] = l
			carry = h
		}
		z[i+numWords] = carry
	}
	copy(lo.words[:], z[:numWords])
	copy(hi.words[:], z[numWords:])
	return hi, lo
}

// Lsh calculates x << n.
// Bits shifted beyond the fixed width are discarded silently.
func (x Uint) Lsh(n uint) Uint {
	var z Uint
	if n >= Bits {
		return z
	}
	q, r := int(n/wordBits), n%wordBits
	for i := numWords - 1; i >= q; i-- {
		w := x.words[i-q] << r
		if r > 0 && i-q > 0 {
			w |= x.words[i-q-1] >> (wordBits - r)
		}
		z.words[i] = w
	}
	return z
}

// Rsh calculates x >> n.
func (x Uint) Rsh(n uint) Uint {
	var z Uint
	if n >= Bits {
		return z
	}
	q, r := int(n/wordBits), n%wordBits
	for i := 0; i < numWords-q; i++ {
		w := x.words[i+q] >> r
		if r > 0 && i+q+1 < numWords {
			w |= x.words[i+q+1] << (wordBits - r)
		}
		z.words[i] = w
	}
	return z
}

// mod2k calculates x mod 2^k.
func (x Uint) mod2k(k uint) Uint {
	if k >= Bits {
		return x
	}
	z := x
	q, r := k/wordBits, k%wordBits
	z.words[q] &= 1<<r - 1
	for i := q + 1; i < numWords; i++ {
		z.words[i] = 0
	}
	return z
}

// Divide divides x by y in place: the quotient is returned and
// x is mutated into the remainder.
//
// This dual-output contract is the core division primitive; use
// [Uint.QuoRem] for a pure variant returning both values.
//
// If y is 0, Divide returns 0 and leaves x unchanged. This behavior is
// unspecified and callers must not rely on it.
func (x *Uint) Divide(y Uint) Uint {
	var q Uint
	if y.IsZero() {
		return q
	}
	divide(x.words[:], q.words[:], &y)
	return q
}

// DivideWide divides the double-width value hi:x by y in place:
// the quotient, truncated to the fixed width, is returned and
// x is mutated into the remainder.
//
// Together with [Uint.MulWide] it allows reducing a product modulo y
// without an intermediate value ever exceeding the fixed width.
//
// If y is 0, DivideWide returns 0 and leaves x unchanged.
func (x *Uint) DivideWide(hi Uint, y Uint) Uint {
	var z Uint
	if y.IsZero() {
		return z
	}
	var u, q [2 * numWords]uint64
	copy(u[:numWords], x.words[:])
	copy(u[numWords:], hi.words[:])
	divide(u[:], q[:], &y)
	copy(x.words[:], u[:numWords]) // the remainder is less than y, so it fits the low half
	copy(z.words[:], q[:numWords])
	return z
}

// QuoRem calculates the quotient q = ⌊x / y⌋ and the remainder r = x - y * q.
func (x Uint) QuoRem(y Uint) (q, r Uint) {
	r = x
	q = r.Divide(y)
	return q, r
}

// Quo calculates ⌊x / y⌋.
func (x Uint) Quo(y Uint) Uint {
	q, _ := x.QuoRem(y)
	return q
}

// Rem calculates x mod y.
func (x Uint) Rem(y Uint) Uint {
	_, r := x.QuoRem(y)
	return r
}

// PowMod calculates x^p mod m using binary exponentiation, scanning the
// bits of p from the least significant up and reducing after every
// multiplication.
//
// The intermediate products are truncated to the fixed width before
// reduction, so the result is exact only while (m-1)^2 fits in [Bits]
// bits. See [Montgomery] for the fast path over repeated multiplications.
func (x Uint) PowMod(p, m Uint) Uint {
	res := New(1)
	sq := x
	n := p.BitLen()
	for i := 0; i < n; i++ {
		if p.Bit(i) == 1 {
			res = res.Mul(sq)
			res.Divide(m)
		}
		sq = sq.Mul(sq)
		sq.Divide(m)
	}
	return res
}

// divide runs the long-division loop over the dividend words u, leaving
// the remainder in u and accumulating quotient digits into q.
// q must be at least as long as u, v must be nonzero, and u must not be
// shorter than v's order.
func divide(u, q []uint64, v *Uint) {
	order1 := ordWords(u)
	order2 := v.Ord()
	if order1 < order2 {
		return
	}
	shf := order1 - order2
	for {
		var extra uint64
		if order2+shf < len(u) {
			extra = u[order2+shf]
		}

		// Move to the next lower position once the divisor shifted by
		// shf words no longer fits under the dividend window.
		if extra == 0 {
			less := false
			for i := order2 - 1; i >= 0; i-- {
				if u[i+shf] > v.words[i] {
					break
				}
				if u[i+shf] < v.words[i] {
					less = true
					break
				}
			}
			if less {
				if shf == 0 {
					break
				}
				shf--
				continue
			}
		}

		// Estimate the next quotient digit from the two leading words of
		// the dividend and the divisor. Dividing by bottom+1 keeps the
		// estimate from ever exceeding the true digit, at the cost of an
		// occasional extra round at the same shift.
		thi, tlo := leadWords(u)
		var bhi, blo uint64
		switch {
		case extra > 0:
			bhi, blo = 0, v.words[order2-1]
		case order2 == 1 && shf > 0:
			bhi, blo = v.words[0], 0
		default:
			bhi, blo = leadWords(v.words[:])
		}
		var factor uint64
		if thi == bhi && tlo == blo {
			factor = 1
		} else {
			blo++
			if blo == 0 {
				bhi++
			}
			factor = div128(thi, tlo, bhi, blo)
		}

		q[shf] += factor

		// u -= (v * factor) << (64 * shf)
		var mcarry, borrow uint64
		for i := 0; i < order2; i++ {
			hi, lo := bits.Mul64(v.words[i], factor)
			lo, c := bits.Add64(lo, mcarry, 0)
			hi += c
			u[i+shf], borrow = bits.Sub64(u[i+shf], lo, borrow)
			mcarry = hi
		}
		if order2+shf < len(u) {
			u[order2+shf] -= mcarry + borrow
		}
	}
}
