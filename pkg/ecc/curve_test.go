package ecc

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveEqualIgnoresMetadata(t *testing.T) {
	c1, err := NewCurve(
		big.NewInt(97), big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), big.NewInt(6),
		"tiny97", []byte{0x01})
	require.NoError(t, err)

	c2, err := NewCurve(
		big.NewInt(97), big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), big.NewInt(6),
		"a different label", []byte{0xff, 0xee})
	require.NoError(t, err)

	assert.True(t, c1.Equal(c2), "name and oid must not take part in equality")
}

func TestCurveNotEqual(t *testing.T) {
	c1 := Secp256k1()
	c2, err := NewCurve(c1.P, c1.A, big.NewInt(8), c1.Q, c1.Gx, c1.Gy, c1.Name, c1.OID)
	require.NoError(t, err)
	assert.False(t, c1.Equal(c2))
}

func TestNewCurveValidation(t *testing.T) {
	_, err := NewCurve(nil, big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), big.NewInt(6), "", nil)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(big.NewInt(97), big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), nil, "", nil)
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestNewCurveCopiesInputs(t *testing.T) {
	p := big.NewInt(97)
	c, err := NewCurve(p, big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), big.NewInt(6), "", nil)
	require.NoError(t, err)

	p.SetInt64(13) // mutating the argument must not reach the curve
	assert.Equal(t, int64(97), c.P.Int64())
}

func TestMismatchedCurveOperations(t *testing.T) {
	tiny, err := NewCurve(
		big.NewInt(97), big.NewInt(2), big.NewInt(3),
		big.NewInt(5), big.NewInt(3), big.NewInt(6),
		"tiny97", nil)
	require.NoError(t, err)

	k1 := Secp256k1()
	p1 := tiny.G()
	p2 := k1.G()

	_, err = p1.Add(p2)
	assert.ErrorIs(t, err, ErrMismatchedCurve)

	_, err = p1.Sub(p2)
	assert.ErrorIs(t, err, ErrMismatchedCurve)

	_, err = p1.Equal(p2)
	assert.ErrorIs(t, err, ErrMismatchedCurve)
}

func TestNamedCurves(t *testing.T) {
	for _, c := range []*Curve{Secp256k1(), P256(), P384()} {
		assert.True(t, c.Contains(c.G()), "%s: generator must satisfy the curve equation", c.Name)
		assert.NotEmpty(t, c.OID)
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("secp256k1")
	require.True(t, ok)
	assert.Equal(t, "secp256k1", c.Name)

	_, ok = ByName("no-such-curve")
	assert.False(t, ok)
}

func TestOIDFromHex(t *testing.T) {
	oid, err := OIDFromHex("2b8104000a")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2b, 0x81, 0x04, 0x00, 0x0a}, oid)

	_, err = OIDFromHex("abc")
	assert.Error(t, err)
	_, err = OIDFromHex("zz")
	assert.Error(t, err)
}

func TestCurveString(t *testing.T) {
	c := Secp256k1()
	s := c.String()
	assert.True(t, strings.HasPrefix(s, "<Curve name=secp256k1 oid=2b8104000a"))
	assert.Contains(t, s, "p="+c.P.String())
	assert.Contains(t, s, "gy="+c.Gy.String())
}

func TestPointString(t *testing.T) {
	c := Secp256k1()
	s := c.G().String()
	assert.Contains(t, s, "x="+c.Gx.String())
	assert.Contains(t, s, "curve=<Curve name=secp256k1")
}

func TestGReturnsCopy(t *testing.T) {
	c := Secp256k1()
	g := c.G()
	g.X.SetInt64(0)
	assert.NotZero(t, c.Gx.Sign(), "mutating a derived point must not reach the curve")
}
