package bigint

import "fmt"

// Montgomery performs modular arithmetic in Montgomery representation:
// residues modulo n are scaled by 2^k, which turns modular multiplication
// into shifts, multiplications and additions without a full division.
// It is the fast path for long chains of multiplications under one
// modulus, such as modular exponentiation.
//
// The instance holds independent copies of the modulus and the derived
// constant. The modulus must be odd and k must not be less than its bit
// length; callers must also keep 2*k within [Bits] so that intermediate
// products do not truncate.
type Montgomery struct {
	k  uint
	n  Uint
	ni Uint // -n⁻¹ mod 2^k
}

// NewMontgomery returns a Montgomery instance for the modulus n and the
// scale 2^k. NewMontgomery panics if k is less than the bit length of n.
func NewMontgomery(k uint, n Uint) Montgomery {
	if int(k) < n.BitLen() {
		panic(fmt.Sprintf("NewMontgomery(%v, %v) failed: scale is below the modulus bit length", k, n))
	}
	_, _, ni := EuclideanExtended(New(1).Lsh(k), n)
	return Montgomery{k: k, n: n, ni: ni}
}

// ToRepr converts a into its Montgomery image (a << k) mod n.
func (mg Montgomery) ToRepr(a Uint) Uint {
	return a.Lsh(mg.k).Rem(mg.n)
}

// FromRepr converts a Montgomery image back to the integer it represents
// by multiplying it with the image of 1.
func (mg Montgomery) FromRepr(a Uint) Uint {
	return mg.Mul(a, New(1))
}

// Mul calculates the Montgomery product of two images: the image of the
// product of the integers they represent.
//
// The reduction offsets the classic REDC result by one and trims it back
// below n with trial subtractions, so results are bit-for-bit stable.
func (mg Montgomery) Mul(a, b Uint) Uint {
	t := a.Mul(b)
	if t.IsZero() {
		return Uint{}
	}
	u := t.mod2k(mg.k).Mul(mg.ni).mod2k(mg.k)
	res := u.Mul(mg.n).Rsh(mg.k).Add(t.Rsh(mg.k)).Add(New(1))
	for !res.Less(mg.n) {
		res = res.Sub(mg.n)
	}
	return res
}

// Pow calculates the Montgomery image of x^p, where a is the image of x,
// by square-and-multiply over the images starting from the image of 1.
func (mg Montgomery) Pow(a, p Uint) Uint {
	res := mg.ToRepr(New(1))
	sq := a
	n := p.BitLen()
	for i := 0; i < n; i++ {
		if p.Bit(i) == 1 {
			res = mg.Mul(res, sq)
		}
		sq = mg.Mul(sq, sq)
	}
	return res
}
