package bigint

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// String implements the [fmt.Stringer] interface and returns x as a
// decimal string without leading zeros; the zero value yields "0".
func (x Uint) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, Bits/3+1)
	ten := New(10)
	for !x.IsZero() {
		q := x.Divide(ten)
		buf = append(buf, byte('0'+x.words[0]))
		x = q
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Hex returns x as a hexadecimal string with a literal "0x" prefix and
// uppercase digits, without leading zeros; the zero value yields "0x0".
func (x Uint) Hex() string {
	var sb strings.Builder
	sb.WriteString("0x")
	started := false
	for i := numWords - 1; i >= 0; i-- {
		switch {
		case started:
			fmt.Fprintf(&sb, "%016X", x.words[i])
		case x.words[i] > 0:
			fmt.Fprintf(&sb, "%X", x.words[i])
			started = true
		}
	}
	if !started {
		sb.WriteString("0")
	}
	return sb.String()
}

// Parse converts a string to a Uint.
// The input must be a decimal number, or a hexadecimal number with a
// "0x" or "0X" prefix.
//
// Parse returns an error if the string is empty or contains a character
// outside the expected digit set. Values exceeding the fixed width wrap
// around silently, like arithmetic does.
func Parse(s string) (Uint, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return parseHex(s[2:])
	}
	return parseDecimal(s)
}

func parseDecimal(s string) (Uint, error) {
	if s == "" {
		return Uint{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
	}
	var z Uint
	ten := New(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
		}
		z = z.Mul(ten).Add(New(uint64(c - '0')))
	}
	return z, nil
}

func parseHex(s string) (Uint, error) {
	if s == "" {
		return Uint{}, fmt.Errorf("parsing %q: %w", "0x"+s, errInvalidNumber)
	}
	var z Uint
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint64
		switch {
		case '0' <= c && c <= '9':
			d = uint64(c - '0')
		case 'a' <= c && c <= 'f':
			d = uint64(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return Uint{}, fmt.Errorf("parsing %q: %w", "0x"+s, errInvalidNumber)
		}
		z = z.Lsh(4).Add(New(d))
	}
	return z, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// It returns x as a decimal string.
func (x Uint) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It accepts the same formats as [Parse].
func (x *Uint) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// Bytes returns x as exactly [Size] bytes in little-endian order.
// Each word is packed explicitly, so the result is identical on all
// architectures.
func (x Uint) Bytes() []byte {
	b := make([]byte, Size)
	for i := 0; i < numWords; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], x.words[i])
	}
	return b
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// It returns the same bytes as [Uint.Bytes].
func (x Uint) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

// SetBytes sets x from a little-endian byte buffer.
// Buffers shorter than [Size] bytes are zero-extended; buffers longer
// than [Size] bytes yield [ErrBytesLength].
func (x *Uint) SetBytes(b []byte) error {
	if len(b) > Size {
		return fmt.Errorf("decoding %v bytes: %w", len(b), ErrBytesLength)
	}
	var buf [Size]byte
	copy(buf[:], b)
	for i := 0; i < numWords; i++ {
		x.words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// It accepts the same buffers as [Uint.SetBytes].
func (x *Uint) UnmarshalBinary(b []byte) error {
	return x.SetBytes(b)
}
