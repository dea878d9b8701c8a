package bigint

import "math/bits"

// ordWords returns one plus the index of the highest nonzero word of u,
// or 0 if all words are zero.
func ordWords(u []uint64) int {
	i := len(u)
	for i > 0 && u[i-1] == 0 {
		i--
	}
	return i
}

// leadWords returns the two leading words of u as a 128-bit value:
// the highest nonzero word and the word just below it.
// leadWords assumes that 0 has no leading words and returns 0, 0.
func leadWords(u []uint64) (hi, lo uint64) {
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != 0 {
			if i == 0 {
				return 0, u[0]
			}
			return u[i], u[i-1]
		}
	}
	return 0, 0
}

// div128 calculates the low 64 bits of ⌊(uhi:ulo) / (vhi:vlo)⌋.
// The divisor must not be zero.
func div128(uhi, ulo, vhi, vlo uint64) uint64 {
	if vhi == 0 {
		// The upper quotient word uhi/vlo is discarded: only the low
		// word of the quotient is needed.
		if uhi >= vlo {
			uhi %= vlo
		}
		q, _ := bits.Div64(uhi, ulo, vlo)
		return q
	}

	// A two-word divisor bounds the quotient to a single word.
	// Normalize so that the divisor's top bit is set, divide the two
	// leading words of the shifted dividend by the divisor's high word,
	// then correct the estimate downwards; for a two-word divisor the
	// corrected estimate is exact.
	s := uint(bits.LeadingZeros64(vhi))
	vh := vhi<<s | vlo>>(64-s)
	vl := vlo << s
	u2 := uhi >> (64 - s)
	u1 := uhi<<s | ulo>>(64-s)
	u0 := ulo << s

	qhat, rhat := bits.Div64(u2, u1, vh)
	for {
		mh, ml := bits.Mul64(qhat, vl)
		if mh < rhat || (mh == rhat && ml <= u0) {
			break
		}
		qhat--
		rhat += vh
		if rhat < vh {
			break
		}
	}
	return qhat
}
