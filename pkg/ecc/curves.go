package ecc

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// DER-encoded object identifiers of the named curves.
var (
	oidSecp256k1 = []byte{0x2b, 0x81, 0x04, 0x00, 0x0a}                   // 1.3.132.0.10
	oidP256      = []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07} // 1.2.840.10045.3.1.7
	oidP384      = []byte{0x2b, 0x81, 0x04, 0x00, 0x22}                   // 1.3.132.0.34
)

// Secp256k1 returns the secp256k1 parameter set (a = 0, b = 7).
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	c, _ := NewCurve(params.P, big.NewInt(0), params.B, params.N, params.Gx, params.Gy,
		"secp256k1", oidSecp256k1)
	return c
}

// P256 returns the NIST P-256 (secp256r1) parameter set.
func P256() *Curve {
	return fromStdlib(elliptic.P256().Params(), "secp256r1", oidP256)
}

// P384 returns the NIST P-384 (secp384r1) parameter set.
func P384() *Curve {
	return fromStdlib(elliptic.P384().Params(), "secp384r1", oidP384)
}

// fromStdlib adapts a crypto/elliptic parameter set. The NIST curves all use
// a = -3 mod p, which CurveParams leaves implicit.
func fromStdlib(params *elliptic.CurveParams, name string, oid []byte) *Curve {
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	c, _ := NewCurve(params.P, a, params.B, params.N, params.Gx, params.Gy, name, oid)
	return c
}

// ByName looks up a named parameter set. Matching is exact.
func ByName(name string) (*Curve, bool) {
	switch name {
	case "secp256k1":
		return Secp256k1(), true
	case "secp256r1", "p256", "P-256":
		return P256(), true
	case "secp384r1", "p384", "P-384":
		return P384(), true
	}
	return nil, false
}
