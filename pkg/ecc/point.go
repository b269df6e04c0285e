package ecc

import (
	"fmt"
	"math/big"
)

// Point is an affine point (x, y) on a specific curve. The pair (0, 0)
// represents the group identity.
type Point struct {
	X, Y  *big.Int
	Curve *Curve
}

// NewPoint builds a point on the given curve. Coordinates and curve must be
// set; membership is not checked (use Curve.Contains).
func NewPoint(x, y *big.Int, curve *Curve) (*Point, error) {
	if x == nil || y == nil {
		return nil, ErrInvalidPoint
	}
	if curve == nil {
		return nil, ErrInvalidCurve
	}
	return &Point{
		X:     new(big.Int).Set(x),
		Y:     new(big.Int).Set(y),
		Curve: curve,
	}, nil
}

// Infinity returns the identity element of the curve's group.
func Infinity(curve *Curve) *Point {
	return &Point{X: new(big.Int), Y: new(big.Int), Curve: curve}
}

// IsIdentity reports whether p is the identity element (0, 0).
func (p *Point) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// PointEqual reports coordinate-wise equality. The points' curves are not
// examined.
func PointEqual(p1, p2 *Point) bool {
	return p1.X.Cmp(p2.X) == 0 && p1.Y.Cmp(p2.Y) == 0
}

// Equal reports coordinate-wise equality after checking that both points
// live on the same curve.
func (p *Point) Equal(other *Point) (bool, error) {
	if !p.Curve.Equal(other.Curve) {
		return false, ErrMismatchedCurve
	}
	return PointEqual(p, other), nil
}

// Add returns p + other, failing when the curves differ.
func (p *Point) Add(other *Point) (*Point, error) {
	if !p.Curve.Equal(other.Curve) {
		return nil, ErrMismatchedCurve
	}
	return Add(p, other, p.Curve), nil
}

// Sub returns p - other, failing when the curves differ.
func (p *Point) Sub(other *Point) (*Point, error) {
	if !p.Curve.Equal(other.Curve) {
		return nil, ErrMismatchedCurve
	}
	return Sub(p, other, p.Curve), nil
}

// Mul returns k * p on p's own curve.
func (p *Point) Mul(k *big.Int) *Point {
	return ScalarMul(p, k, p.Curve)
}

// Neg returns -p on p's own curve.
func (p *Point) Neg() *Point {
	return Neg(p, p.Curve)
}

func (p *Point) String() string {
	return fmt.Sprintf("<Point x=%s y=%s curve=%s>", p.X, p.Y, p.Curve)
}

// clone copies a point's coordinates onto the given curve reference.
func clone(p *Point, curve *Curve) *Point {
	return &Point{
		X:     new(big.Int).Set(p.X),
		Y:     new(big.Int).Set(p.Y),
		Curve: curve,
	}
}
