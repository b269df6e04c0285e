package ecc

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature pair (r, s). Sign produces values already
// reduced mod the curve order; NewSignature performs no such reduction, so a
// directly constructed signature carries whatever the caller supplied.
type Signature struct {
	R, S *big.Int
}

// NewSignature builds a signature from its two components.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{
		R: new(big.Int).Set(r),
		S: new(big.Int).Set(s),
	}
}

// Equal reports component-wise equality.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("<Signature r=%s s=%s>", sig.R, sig.S)
}
