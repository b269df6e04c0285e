package ecc

import "math/big"

// Double returns 2p by the tangent formula. It returns the identity when p
// is the identity, and also when the tangent denominator 2y has no inverse
// mod P: that case means 2p is the point at infinity (p has order two), so
// the substitution is silent rather than an error.
func Double(p *Point, curve *Curve) *Point {
	if p.IsIdentity() {
		return Infinity(curve)
	}

	// lambda = (3x^2 + a) / 2y
	numer := new(big.Int).Mul(p.X, p.X)
	numer.Mul(numer, three)
	numer.Add(numer, curve.A)
	denom := new(big.Int).Lsh(p.Y, 1)

	if denom.ModInverse(denom, curve.P) == nil {
		return Infinity(curve)
	}

	lambda := new(big.Int).Mul(numer, denom)
	lambda.Mod(lambda, curve.P)

	// x' = lambda^2 - 2x
	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, p.X)
	x.Sub(x, p.X)
	x.Mod(x, curve.P)

	// y' = lambda*(x - x') - y
	y := new(big.Int).Sub(p.X, x)
	y.Mul(lambda, y)
	y.Sub(y, p.Y)
	y.Mod(y, curve.P)

	return &Point{X: x, Y: y, Curve: curve}
}

// Add returns p1 + p2 by chord-and-tangent addition. The identity cases are
// dispatched before any field arithmetic so the slope denominator is never
// zero on the generic path.
func Add(p1, p2 *Point, curve *Curve) *Point {
	switch {
	case p1.IsIdentity() && p2.IsIdentity():
		return Infinity(curve)
	case p1.IsIdentity():
		return clone(p2, curve)
	case p2.IsIdentity():
		return clone(p1, curve)
	}

	if PointEqual(p1, p2) {
		return Double(p1, curve)
	}

	// p1 + (-p1) = identity: same x, y coordinates summing to P
	negY := new(big.Int).Sub(curve.P, p2.Y)
	if p1.X.Cmp(p2.X) == 0 && p1.Y.Cmp(negY) == 0 {
		return Infinity(curve)
	}

	// lambda = (y2 - y1) / (x2 - x1)
	ydiff := new(big.Int).Sub(p2.Y, p1.Y)
	xdiff := new(big.Int).Sub(p2.X, p1.X)
	if xdiff.ModInverse(xdiff, curve.P) == nil {
		// unreachable for reduced coordinates: equal x was handled above
		return Infinity(curve)
	}
	lambda := new(big.Int).Mul(ydiff, xdiff)
	lambda.Mod(lambda, curve.P)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, p1.X)
	x.Sub(x, p2.X)
	x.Mod(x, curve.P)

	y := new(big.Int).Sub(p1.X, x)
	y.Mul(lambda, y)
	y.Sub(y, p1.Y)
	y.Mod(y, curve.P)

	return &Point{X: x, Y: y, Curve: curve}
}

// Neg returns the point with the y-coordinate negated mod P. The identity
// negates to itself.
func Neg(p *Point, curve *Curve) *Point {
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, curve.P)
	return &Point{X: new(big.Int).Set(p.X), Y: y, Curve: curve}
}

// Sub returns p1 - p2.
func Sub(p1, p2 *Point, curve *Curve) *Point {
	return Add(p1, Neg(p2, curve), curve)
}

// ScalarMul returns scalar * p by a ladder-shaped double-and-add walking the
// scalar from the most significant bit downward. It branches on scalar bits
// and is not constant-time. A negative scalar multiplies the negated point
// by the scalar's magnitude; the inputs are never modified.
func ScalarMul(p *Point, scalar *big.Int, curve *Curve) *Point {
	if p.IsIdentity() {
		return Infinity(curve)
	}
	if scalar.Cmp(two) == 0 {
		return Double(p, curve)
	}

	k := scalar
	if scalar.Sign() < 0 {
		p = Neg(p, curve)
		k = new(big.Int).Neg(scalar)
	}

	r0 := clone(p, curve)
	r1 := Double(p, curve)
	for i := k.BitLen() - 2; i >= 0; i-- {
		if k.Bit(i) == 1 {
			r0 = Add(r1, r0, curve)
			r1 = Double(r1, curve)
		} else {
			r1 = Add(r0, r1, curve)
			r0 = Double(r0, curve)
		}
	}
	return r0
}

// ShamirTrick returns scalar1*point1 + scalar2*point2 in a single
// most-significant-bit-down pass over the two scalars, selecting among
// point1, point2 and the precomputed sum point1+point2 by the bit pair at
// each position. It costs roughly one scalar multiplication and is used to
// speed up ECDSA verification.
func ShamirTrick(point1 *Point, scalar1 *big.Int, point2 *Point, scalar2 *big.Int, curve *Curve) *Point {
	sum := Add(point1, point2, curve)

	l := scalar1.BitLen()
	if b := scalar2.BitLen(); b > l {
		l = b
	}
	l--
	if l < 0 {
		return Infinity(curve)
	}

	var r *Point
	switch {
	case scalar1.Bit(l) == 1 && scalar2.Bit(l) == 1:
		r = clone(sum, curve)
	case scalar1.Bit(l) == 1:
		r = clone(point1, curve)
	default:
		r = clone(point2, curve)
	}

	for l--; l >= 0; l-- {
		r = Double(r, curve)
		switch {
		case scalar1.Bit(l) == 1 && scalar2.Bit(l) == 1:
			r = Add(r, sum, curve)
		case scalar1.Bit(l) == 1:
			r = Add(r, point1, curve)
		case scalar2.Bit(l) == 1:
			r = Add(r, point2, curve)
		}
	}
	return r
}

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)
