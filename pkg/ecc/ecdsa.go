package ecc

import (
	"fmt"
	"math/big"

	"github.com/Machally/ucrypto/pkg/number"
)

// digestToInt interprets digestHex as the hex encoding of a message digest
// and converts it to an integer, keeping only the leftmost Q.BitLen() bits
// when the digest is longer than the curve order. Callers pre-hash and
// hex-encode; raw digest bytes are not accepted.
func digestToInt(digestHex string, curve *Curve) (*big.Int, error) {
	e, ok := new(big.Int).SetString(digestHex, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigest, digestHex)
	}
	digestBits := len(digestHex) * 4
	if orderBits := curve.Q.BitLen(); digestBits > orderBits {
		e.Rsh(e, uint(digestBits-orderBits))
	}
	return e, nil
}

// Sign produces an ECDSA signature over the given pre-hashed, hex-encoded
// digest with private key d and nonce k. The nonce is supplied by the
// caller, never generated here: nonce quality, uniqueness included, is the
// caller's responsibility. A nonce with no inverse mod the curve order is
// rejected.
func Sign(digestHex string, d, k *big.Int, curve *Curve) (*Signature, error) {
	// R = k*G, r = R.x mod q
	R := ScalarMul(curve.G(), k, curve)
	r := new(big.Int).Mod(R.X, curve.Q)

	e, err := digestToInt(digestHex, curve)
	if err != nil {
		return nil, err
	}

	kinv, err := number.InvMod(k, curve.Q)
	if err != nil {
		return nil, fmt.Errorf("ecc: sign: degenerate nonce: %w", err)
	}

	// s = k^-1 * (e + d*r) mod q
	s := new(big.Int).Mul(d, r)
	s.Add(s, e)
	s.Mul(s, kinv)
	s.Mod(s, curve.Q)

	return &Signature{R: r, S: s}, nil
}

// Verify checks sig over the given digest against public key pub. It fails
// with an error, not false, when sig.S has no inverse mod the curve order;
// false means a well-formed but wrong signature.
func Verify(sig *Signature, digestHex string, pub *Point, curve *Curve) (bool, error) {
	e, err := digestToInt(digestHex, curve)
	if err != nil {
		return false, err
	}

	w, err := number.InvMod(sig.S, curve.Q)
	if err != nil {
		return false, fmt.Errorf("ecc: verify: %w", err)
	}

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, curve.Q)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, curve.Q)

	// u1*G + u2*Q in one combined pass
	t := ShamirTrick(curve.G(), u1, pub, u2, curve)
	x := new(big.Int).Mod(t.X, curve.Q)

	return x.Cmp(sig.R) == 0, nil
}
