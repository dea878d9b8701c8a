//go:build bigint1024

package bigint

// Bits is the total width of [Uint] in bits, selected by the bigint1024
// build tag.
const Bits = 1024
