package bigint

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Uint {
	z, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// MustSetBytes is like [Uint.SetBytes] but panics if the buffer cannot
// be decoded.
func MustSetBytes(b []byte) Uint {
	var z Uint
	if err := z.SetBytes(b); err != nil {
		panic(fmt.Sprintf("MustSetBytes(%v) failed: %v", b, err))
	}
	return z
}
