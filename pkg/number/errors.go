package number

import (
	"errors"
	"fmt"
)

// Common errors returned by the number package.
var (
	ErrInvalidModulus = errors.New("number: invalid modulus")
	ErrNoInverse      = errors.New("number: no modular inverse exists")
	ErrBitsOutOfRange = errors.New("number: number of bits to generate must be in range 16-4096")
)

// BitLenError reports a generated prime whose bit length does not match the
// requested one.
type BitLenError struct {
	Got  int
	Want int
}

func (e *BitLenError) Error() string {
	return fmt.Sprintf("number: prime is %d, not %d bits", e.Got, e.Want)
}
