// Package number implements the arbitrary-precision side of the engine:
// modular exponentiation, modular inverse, GCD, probabilistic primality
// testing and random prime generation. All functions are pure; prime
// generation reads from an injected random source.
package number

import (
	"fmt"
	"math/big"
)

// FastPow computes base^exp mod m by binary square-and-multiply. It is
// correct for any non-zero modulus, even or odd, and makes no effort to be
// constant-time. A non-positive exponent yields 1.
func FastPow(base, exp, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() == 0 {
		return nil, ErrInvalidModulus
	}

	x := new(big.Int).Set(base)
	e := new(big.Int).Set(exp)
	y := big.NewInt(1)

	for e.Sign() > 0 {
		if e.Bit(0) == 0 {
			x.Mul(x, x).Mod(x, m)
			e.Rsh(e, 1)
		} else {
			y.Mul(x, y).Mod(y, m)
			e.Sub(e, oneInt)
		}
	}
	return y, nil
}

// ExptMod computes base^exp mod m on the Montgomery-backed fast path, which
// requires an odd modulus. For an even modulus the call falls back to
// FastPow when safe is true and fails otherwise, so callers never get the
// slow path without opting in.
func ExptMod(base, exp, m *big.Int, safe bool) (*big.Int, error) {
	if m == nil || m.Sign() == 0 {
		return nil, ErrInvalidModulus
	}
	if m.Bit(0) == 0 {
		if safe {
			return FastPow(base, exp, m)
		}
		return nil, fmt.Errorf("%w: ExptMod needs an odd modulus, set safe or use FastPow", ErrInvalidModulus)
	}

	r := new(big.Int).Exp(base, exp, m)
	if r == nil {
		// negative exponent and base not invertible mod m
		return nil, ErrNoInverse
	}
	return r, nil
}

// InvMod computes the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. It fails when gcd(a, m) != 1.
func InvMod(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// GCD returns the greatest common divisor of a and b. The result is always
// non-negative.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

var oneInt = big.NewInt(1)
