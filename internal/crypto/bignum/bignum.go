// Package bignum bridges between the sign+magnitude representation used at
// the engine boundary and math/big. The conversion is lossless for any bit
// width and keeps zero canonical: no sign, empty magnitude.
package bignum

import "math/big"

// FromSignMagnitude builds a big.Int from a sign flag and a big-endian
// magnitude. A zero magnitude always yields a non-negative zero, regardless
// of the sign flag.
func FromSignMagnitude(negative bool, magnitude []byte) *big.Int {
	x := new(big.Int).SetBytes(magnitude)
	if negative && x.Sign() != 0 {
		x.Neg(x)
	}
	return x
}

// ToSignMagnitude splits x into a sign flag and a big-endian magnitude with
// no leading zero bytes. Zero maps to (false, nil).
func ToSignMagnitude(x *big.Int) (negative bool, magnitude []byte) {
	if x.Sign() == 0 {
		return false, nil
	}
	return x.Sign() < 0, new(big.Int).Abs(x).Bytes()
}
