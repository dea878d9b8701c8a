package bigint

// Modulo binds a modulus and performs arithmetic over the residues.
// It holds an independent copy of the modulus, so later mutation of the
// caller's value never affects an already-constructed instance.
//
// All operations expect their operands to be already reduced modulo the
// modulus; use [Modulo.Normalize] first when in doubt.
type Modulo struct {
	m Uint
}

// NewModulo returns a Modulo bound to a copy of m.
func NewModulo(m Uint) Modulo {
	return Modulo{m: m}
}

// Mod returns a copy of the bound modulus.
func (mo Modulo) Mod() Uint {
	return mo.m
}

// Normalize reduces x in place to x mod m.
func (mo Modulo) Normalize(x *Uint) {
	x.Divide(mo.m)
}

// Add calculates (x + y) mod m.
func (mo Modulo) Add(x, y Uint) Uint {
	return addMod(x, y, mo.m)
}

// Sub calculates (x - y) mod m.
func (mo Modulo) Sub(x, y Uint) Uint {
	return subMod(x, y, mo.m)
}

// Mul calculates (x * y) mod m.
// The product is carried through a double-width intermediate, so the
// result is exact for any modulus representable in the fixed width.
func (mo Modulo) Mul(x, y Uint) Uint {
	return mulMod(x, y, mo.m)
}

// Div calculates (x * y⁻¹) mod m.
// The result is undefined if y and m are not coprime.
func (mo Modulo) Div(x, y Uint) Uint {
	return divMod(x, y, mo.m)
}

// Inv calculates the modular inverse of x using the extended Euclidean
// algorithm. The result is undefined if x and m are not coprime.
func (mo Modulo) Inv(x Uint) Uint {
	return invMod(x, mo.m)
}

// Pow calculates x^k mod m.
func (mo Modulo) Pow(x, k Uint) Uint {
	return x.PowMod(k, mo.m)
}

// Sqrt calculates both square roots of x modulo the bound prime modulus,
// the smaller root first. It returns [ErrNonResidue] if x has no square
// root modulo m.
func (mo Modulo) Sqrt(x Uint) (Uint, Uint, error) {
	return SqrtMod(x, mo.m)
}
