// Package hexutil implements the strict hex codec used for curve object
// identifiers and test vectors. Unlike encoding/hex it reports the two
// failure modes as distinct error values so callers can tell an odd-length
// input apart from a bad digit.
package hexutil

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength is returned when the input has an odd number of characters.
	ErrOddLength = errors.New("hexutil: odd-length string")

	// ErrNonHexDigit is returned when the input contains a character outside
	// [0-9a-fA-F].
	ErrNonHexDigit = errors.New("hexutil: non-hex digit found")
)

const digits = "0123456789abcdef"

// Decode converts a hex string to bytes. The length check runs before any
// digit is examined.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := digitVal(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNonHexDigit, s[i])
		}
		lo, ok := digitVal(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNonHexDigit, s[i+1])
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// Encode converts bytes to a lowercase hex string.
func Encode(b []byte) string {
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, digits[c>>4], digits[c&0x0f])
	}
	return string(out)
}

func digitVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
