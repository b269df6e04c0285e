package number

import (
	"math/big"

	"github.com/Machally/ucrypto/internal/crypto/bignum"
)

// FromSignMagnitude builds a big.Int from the neutral sign+magnitude form
// used at the engine boundary. The conversion is lossless and keeps zero
// canonical (non-negative, empty magnitude).
func FromSignMagnitude(negative bool, magnitude []byte) *big.Int {
	return bignum.FromSignMagnitude(negative, magnitude)
}

// ToSignMagnitude is the inverse of FromSignMagnitude. The magnitude carries
// no leading zero bytes.
func ToSignMagnitude(x *big.Int) (negative bool, magnitude []byte) {
	return bignum.ToSignMagnitude(x)
}
