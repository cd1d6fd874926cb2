package rns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttring/rnsntt/bigint"
)

func bi(x int) bigint.Int { return bigint.FromInt(x) }

func TestDirectMultiplier(t *testing.T) {
	d := &Direct{}
	got := d.Mult(bi(123), bi(456))
	require.True(t, got.Equal(bi(123 * 456)))
}

func TestNewCRTRejectsNonCoprimeModuli(t *testing.T) {
	_, err := NewCRT([]bigint.Int{bi(4), bi(6)}, bi(5))
	require.Error(t, err)
}

func TestNewCRTRejectsInsufficientBasis(t *testing.T) {
	// moduli product must exceed q^2; q=17 needs product > 289.
	_, err := NewCRT([]bigint.Int{bi(5), bi(7)}, bi(17))
	require.Error(t, err)
}

func TestCRTMultiplierMatchesDirectProduct(t *testing.T) {
	c, err := NewCRT([]bigint.Int{bi(17), bi(19), bi(23)}, bi(17))
	require.NoError(t, err)

	a, b := bi(12345), bi(6789)
	got := c.Mult(a, b)

	want := a.Mul(b).Mod(c.Modulus())
	require.True(t, got.Equal(want))
}

func TestCRTSatisfiesEngineContract(t *testing.T) {
	q := bi(17)
	c, err := NewCRT([]bigint.Int{bi(17), bi(19), bi(23)}, q)
	require.NoError(t, err)

	qSquared := q.Mul(q)
	require.True(t, c.Modulus().Cmp(qSquared) > 0)
}
