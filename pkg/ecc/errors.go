package ecc

import "errors"

// Common errors returned by the ecc package.
var (
	ErrMismatchedCurve = errors.New("ecc: curve of the two points must be the same")
	ErrInvalidCurve    = errors.New("ecc: curve parameters p, a, b, q, gx, gy must all be set")
	ErrInvalidPoint    = errors.New("ecc: point coordinates must both be set")
	ErrInvalidDigest   = errors.New("ecc: message digest must be a hex string")
)
