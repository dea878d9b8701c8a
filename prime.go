package bigint

// smallPrimes holds the odd primes up to 233, used to exclude candidates
// cheaply before running a probabilistic test.
var smallPrimes = [...]uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89,
	97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181,
	191, 193, 197, 199, 211, 223, 227, 229, 233,
}

// QuickPrimeCheck trial-divides x against a fixed table of small primes.
// It returns false if x is even or has a divisor in the table (unless x
// is that table prime itself), and true otherwise.
//
// A true result does not prove primality, it only means x was not
// excluded; confirm with [MillerRabin].
func QuickPrimeCheck(x Uint) bool {
	if x.IsEven() {
		return false
	}
	for _, p := range smallPrimes {
		b := New(p)
		if x.Rem(b).IsZero() {
			return x.Equal(b)
		}
	}
	return true
}

// Euclidean calculates the greatest common divisor of x and y using the
// classic Euclidean algorithm.
func Euclidean(x, y Uint) Uint {
	a, b := x, y
	for !b.IsZero() {
		a.Divide(b)
		a, b = b, a
	}
	return a
}

// EuclideanExtended applies the extended Euclidean algorithm to x and y,
// returning g, ra, rb such that g = gcd(x, y) and g = x*ra - y*rb.
// Both coefficients are non-negative: ra is less than y and rb is less
// than x (except in the trivial y = 0 case).
//
// The coefficients are tracked as running linear combinations with
// wrap-around arithmetic and corrected at the end, so the identity holds
// over exact integers.
func EuclideanExtended(x, y Uint) (g, ra, rb Uint) {
	a, b := x, y

	aa, ab := New(1), New(0)
	ba, bb := New(0), New(1)
	inv := false

	for !b.IsZero() {
		q := a.Divide(b)

		aa = aa.Sub(q.Mul(ba))
		ab = ab.Sub(q.Mul(bb))

		a, b = b, a
		aa, ba = ba, aa
		ab, bb = bb, ab

		inv = !inv
	}

	ab = Uint{}.Sub(ab)

	if inv {
		aa = aa.Add(y)
		ab = ab.Add(x)
	}

	return a, aa, ab
}

// addMod calculates (x + y) mod m for x and y already reduced modulo m.
// The modulus complement is subtracted instead of reducing x + y, so no
// intermediate value exceeds the fixed width.
func addMod(x, y, m Uint) Uint {
	yi := m.Sub(y)
	if x.Less(yi) {
		return x.Add(y)
	}
	return x.Sub(yi)
}

// subMod calculates (x - y) mod m for x and y already reduced modulo m.
func subMod(x, y, m Uint) Uint {
	if !x.Less(y) {
		return x.Sub(y)
	}
	return m.Sub(y).Add(x)
}

// mulMod calculates (x * y) mod m through the double-width product, so
// the reduction is exact for any x and y below m.
func mulMod(x, y, m Uint) Uint {
	hi, lo := x.MulWide(y)
	lo.DivideWide(hi, m)
	return lo
}

// invMod calculates y such that (x * y) mod m == 1.
// The result is undefined if x and m are not coprime.
func invMod(x, m Uint) Uint {
	_, ra, _ := EuclideanExtended(x, m)
	return ra
}

// divMod calculates z such that (y * z) mod m == x.
func divMod(x, y, m Uint) Uint {
	return mulMod(x, invMod(y, m), m)
}

// LegendreSymbol calculates the Legendre symbol of a and an odd prime p:
// +1 if a is a quadratic residue modulo p and -1 if it is not.
//
// The algorithm follows Bach and Shallit, "Algorithmic Number Theory",
// page 113: factors of two are stripped from a with a sign flip whenever
// p mod 8 is 3 or 5, then a and p are swapped and reduced, applying the
// quadratic reciprocity sign rule.
func LegendreSymbol(a, p Uint) int {
	t := 1
	ac, pc := a, p

	for !ac.IsZero() {
		r := pc.mod2k(3).Uint64()
		flip := r == 3 || r == 5
		for ac.IsEven() {
			ac = ac.Rsh(1)
			if flip {
				t = -t
			}
		}
		ac, pc = pc, ac
		if r%4 == 3 && pc.mod2k(2).Uint64() == 3 {
			t = -t
		}
		ac = ac.Rem(pc)
	}

	return t
}

// SqrtMod searches for x such that (x * x) mod p == n, where p is an odd
// prime, using the Tonelli-Shanks algorithm. It returns both roots, the
// smaller one first; the two roots always sum to p.
//
// SqrtMod returns [ErrNonResidue] if n has no square root modulo p.
func SqrtMod(n, p Uint) (Uint, Uint, error) {
	if LegendreSymbol(n, p) != 1 {
		return Uint{}, Uint{}, ErrNonResidue
	}

	one := New(1)
	var r Uint
	if p.mod2k(2).Uint64() == 3 {
		// For p = 3 (mod 4) the root is n^((p+1)/4).
		r = n.PowMod(p.Add(one).Rsh(2), p)
	} else {
		// Factor p - 1 = q * 2^s with q odd.
		q := p.Sub(one)
		s := 0
		for q.IsEven() {
			q = q.Rsh(1)
			s++
		}

		// Any quadratic non-residue will do.
		z := New(2)
		for LegendreSymbol(z, p) == 1 {
			z = z.Add(one)
		}

		c := z.PowMod(q, p)
		r = n.PowMod(q.Add(one).Rsh(1), p)
		t := n.PowMod(q, p)
		m := s

		for !t.Equal(one) {
			// Smallest i such that t^(2^i) == 1.
			tp := t
			i := 0
			for !tp.Equal(one) {
				tp = mulMod(tp, tp, p)
				i++
			}

			b := c.PowMod(one.Lsh(uint(m-i-1)), p)
			r = mulMod(r, b, p)
			c = mulMod(b, b, p)
			t = mulMod(t, c, p)
			m = i
		}
	}

	rc := p.Sub(r)
	if rc.Less(r) {
		r, rc = rc, r
	}
	return r, rc, nil
}

// FermatTest checks x for primality with k rounds of the Fermat test,
// drawing random bases from src. A false result is definitive; a true
// result means x is probably prime.
func FermatTest(x Uint, k int, src Source) bool {
	one := New(1)
	bitLen := x.BitLen()
	p := x.Sub(one)

	for i := 0; i < k; i++ {
		a := RandomBits(src, bitLen, false).Rem(x)
		if a.IsZero() {
			continue
		}
		if !a.PowMod(p, x).Equal(one) {
			return false
		}
	}

	return true
}

// MillerRabin checks x for primality with k rounds of the Miller-Rabin
// test, drawing random witnesses from src. A false result is definitive;
// a true result means x is prime with an error probability of at most
// 4^-k.
func MillerRabin(x Uint, k int, src Source) bool {
	one, two := New(1), New(2)
	bitLen := x.BitLen()
	n := x.Sub(one)

	// Factor x - 1 = d * 2^s with d odd.
	d := n
	s := 0
	for d.IsEven() {
		d = d.Rsh(1)
		s++
	}

	for i := 0; i < k; i++ {
		a := RandomBits(src, bitLen, false).Rem(x)
		if a.IsZero() {
			continue
		}

		b := a.PowMod(d, x)
		if b.Equal(one) {
			continue
		}
		found := false
		for r := 0; r < s; r++ {
			if b.Equal(n) {
				found = true
				break
			}
			b = b.PowMod(two, x)
		}
		if !found {
			return false
		}
	}

	return true
}

// GenPrime generates a random prime of exactly the given number of bits,
// drawing candidates from src. The top and bottom bits of each candidate
// are forced set, so the result has the requested bit length and is odd.
// Candidates are filtered with [QuickPrimeCheck] and confirmed with 100
// rounds of [MillerRabin].
//
// The retry loop is unbounded: termination is probabilistic and depends
// on the quality of src.
func GenPrime(src Source, bits int) Uint {
	for {
		x := RandomBits(src, bits, true)
		x.words[0] |= 1
		if !QuickPrimeCheck(x) {
			continue
		}
		if MillerRabin(x, 100, src) {
			return x
		}
	}
}
