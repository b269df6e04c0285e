// Package ecc implements elliptic-curve group arithmetic and ECDSA over
// curves in short Weierstrass form, y^2 = x^3 + ax + b (mod p). Curve,
// Point and Signature are plain value types; all group operations are pure
// functions taking an explicit curve parameter set.
//
// The group identity (point at infinity) is represented by the coordinate
// pair (0, 0). This convention is shared with the arithmetic in this
// package's callers and must not be confused with an affine point that
// genuinely has both coordinates zero.
package ecc

import (
	"fmt"
	"math/big"

	"github.com/Machally/ucrypto/internal/crypto/hexutil"
)

// Curve holds the domain parameters of a short Weierstrass curve over a
// prime field, plus descriptive metadata. Treat a Curve as immutable once
// constructed: points keep a reference to it.
type Curve struct {
	P      *big.Int // prime modulus of the field
	A      *big.Int // curve coefficient a
	B      *big.Int // curve coefficient b
	Q      *big.Int // order of the subgroup generated by (Gx, Gy)
	Gx, Gy *big.Int // base point coordinates

	Name string // human-readable label, excluded from equality
	OID  []byte // DER-encoded object identifier, excluded from equality
}

// NewCurve builds a curve from its six scalar parameters. All six must be
// set; metadata is optional.
func NewCurve(p, a, b, q, gx, gy *big.Int, name string, oid []byte) (*Curve, error) {
	for _, v := range []*big.Int{p, a, b, q, gx, gy} {
		if v == nil {
			return nil, ErrInvalidCurve
		}
	}
	return &Curve{
		P:    new(big.Int).Set(p),
		A:    new(big.Int).Set(a),
		B:    new(big.Int).Set(b),
		Q:    new(big.Int).Set(q),
		Gx:   new(big.Int).Set(gx),
		Gy:   new(big.Int).Set(gy),
		Name: name,
		OID:  append([]byte(nil), oid...),
	}, nil
}

// OIDFromHex decodes a hex-encoded object identifier, for callers that carry
// OIDs as strings rather than raw bytes.
func OIDFromHex(s string) ([]byte, error) {
	return hexutil.Decode(s)
}

// G returns the curve's base point as a standalone Point.
func (c *Curve) G() *Point {
	return &Point{
		X:     new(big.Int).Set(c.Gx),
		Y:     new(big.Int).Set(c.Gy),
		Curve: c,
	}
}

// Equal reports whether the two parameter sets describe the same curve.
// Only the six scalar fields take part; name and OID are metadata.
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.P.Cmp(other.P) == 0 &&
		c.A.Cmp(other.A) == 0 &&
		c.B.Cmp(other.B) == 0 &&
		c.Q.Cmp(other.Q) == 0 &&
		c.Gx.Cmp(other.Gx) == 0 &&
		c.Gy.Cmp(other.Gy) == 0
}

// Contains reports whether p satisfies the curve equation
// y^2 = x^3 + ax + b (mod P).
func (c *Curve) Contains(p *Point) bool {
	left := new(big.Int).Mul(p.Y, p.Y)

	right := new(big.Int).Mul(p.X, p.X)
	right.Mul(right, p.X)
	ax := new(big.Int).Mul(c.A, p.X)
	right.Add(right, ax)
	right.Add(right, c.B)

	left.Sub(left, right)
	left.Mod(left, c.P)
	return left.Sign() == 0
}

func (c *Curve) String() string {
	return fmt.Sprintf("<Curve name=%s oid=%s p=%s a=%s b=%s q=%s gx=%s gy=%s>",
		c.Name, hexutil.Encode(c.OID), c.P, c.A, c.B, c.Q, c.Gx, c.Gy)
}
