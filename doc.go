/*
Package bigint implements fixed-width multi-precision unsigned integers.
It is specifically designed for implementing cryptographic protocols,
where operand sizes are known in advance and heap allocation on every
operation is undesirable.

# Representation

[Uint] is a struct holding an array of 64-bit words in little-endian
order: the word at index 0 carries the least significant bits.
The width is fixed at compile time by the [Bits] constant and selected
with build tags:

	| Build tag   | Bits | Words |
	| ----------- | ---- | ----- |
	| (default)   | 256  | 4     |
	| bigint512   | 512  | 8     |
	| bigint1024  | 1024 | 16    |

Because Uint contains no pointers, values are copied by assignment,
compared with ==, and never alias each other. All arithmetic is
performed modulo 2^[Bits]: results that do not fit wrap around silently,
like the built-in unsigned types do.

# Operations

The package provides three layers:

  - Raw arithmetic on [Uint]:
    [Uint.Add], [Uint.Sub], [Uint.Mul], [Uint.MulWide], [Uint.Divide],
    [Uint.DivideWide], [Uint.QuoRem], shifts, comparisons, and bit probes.
  - Modular arithmetic bound to a modulus:
    [Modulo] for plain reductions and [Montgomery] for multiplication
    chains in Montgomery representation.
  - Number theory:
    [Euclidean], [EuclideanExtended], [LegendreSymbol], [SqrtMod],
    [FermatTest], [MillerRabin], and [GenPrime].

[Uint.Divide] and [Uint.DivideWide] compute the quotient and the
remainder in a single pass: the receiver is reduced to the remainder in
place and the quotient is returned. [Uint.QuoRem] wraps the same pass
behind a pure interface.

Operations that draw randomness take a [Source], so deterministic
generators can be injected in tests and [CryptoSource] can be used in
production.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [MustParse], [Uint.String], [Uint.Hex].
  - from/to uint64 words:
    [New], [NewFromWords], [Uint.Uint64], [Uint.Words].
  - from/to bytes:
    [Uint.Bytes], [Uint.SetBytes], [MustSetBytes].

See the documentation for each method for more details.

# Errors

Arithmetic never returns errors: overflow wraps around and division by
zero yields a zero quotient with the dividend unchanged.
Errors are returned in the following cases:

  - Invalid Number.
    [Parse] returns an error for empty strings and for characters
    outside the expected digit set.

  - Binary Length.
    [Uint.SetBytes] returns [ErrBytesLength] for buffers longer than
    [Size] bytes.

  - Non-Residue.
    [SqrtMod] and [Modulo.Sqrt] return [ErrNonResidue] when the operand
    has no square root modulo the prime.
*/
package bigint
