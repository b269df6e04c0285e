package number

import (
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultRounds is the Miller-Rabin iteration count used when callers
	// pass rounds <= 0. The composite false-positive probability is bounded
	// by 4^-rounds.
	DefaultRounds = 25

	minPrimeBits = 16
	maxPrimeBits = 4096

	// Candidate attempts per requested bit before giving up. A healthy
	// random source finds a prime in O(bits) candidates, so hitting this
	// bound means the source is degenerate.
	attemptsPerBit = 10000
)

// IsPrime reports whether n is probably prime after the given number of
// Miller-Rabin rounds.
func IsPrime(n *big.Int, rounds int) bool {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return n.ProbablyPrime(rounds)
}

// GeneratePrime returns a probable prime of exactly bits bits read from the
// given random source. bits must be in [16, 4096]. When safe is true the
// result p additionally satisfies that (p-1)/2 is prime.
//
// Candidates are sampled with the top bit and the low bit forced on; one
// coin flipped per call decides whether the second-most-significant bit is
// forced on or off for every candidate, so the sampling is deterministic
// given the reader. The retry loop is bounded; a random source that cannot
// produce a conforming candidate yields an error instead of spinning
// forever.
func GeneratePrime(random io.Reader, bits, rounds int, safe bool) (*big.Int, error) {
	if bits < minPrimeBits || bits > maxPrimeBits {
		return nil, fmt.Errorf("%w, not %d bits", ErrBitsOutOfRange, bits)
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	var coin [1]byte
	if _, err := io.ReadFull(random, coin[:]); err != nil {
		return nil, fmt.Errorf("number: reading random source: %w", err)
	}
	secondMSB := uint(coin[0] & 1)

	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)

	p := new(big.Int)
	half := new(big.Int)
	for attempts := 0; attempts < bits*attemptsPerBit; attempts++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("number: reading random source: %w", err)
		}
		buf[0] &= 0xff >> excess

		p.SetBytes(buf)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, secondMSB)
		p.SetBit(p, 0, 1)

		if !p.ProbablyPrime(rounds) {
			continue
		}
		if safe {
			half.Sub(p, oneInt)
			half.Rsh(half, 1)
			if !half.ProbablyPrime(rounds) {
				continue
			}
		}
		if p.BitLen() != bits {
			return nil, &BitLenError{Got: p.BitLen(), Want: bits}
		}
		return p, nil
	}
	return nil, fmt.Errorf("number: no %d-bit prime found, random source exhausted", bits)
}
