//go:build bigint512 && !bigint1024

package bigint

// Bits is the total width of [Uint] in bits, selected by the bigint512
// build tag.
const Bits = 512
