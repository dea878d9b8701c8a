//go:build !bigint512 && !bigint1024

package bigint

// Bits is the total width of [Uint] in bits.
// It is fixed at build time: the default is 256, the bigint512 and
// bigint1024 build tags select wider instantiations.
const Bits = 256
