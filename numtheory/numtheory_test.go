package numtheory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttring/rnsntt/bigint"
)

func bi(x int) bigint.Int { return bigint.FromInt(x) }

func TestPowMod(t *testing.T) {
	require.True(t, PowMod(bi(4), bi(13), bi(497)).Equal(bi(445)))
	require.True(t, PowMod(bi(2), bi(10), bi(1000)).Equal(bi(24)))
	require.True(t, PowMod(bi(5), bi(0), bi(13)).Equal(bi(1)))
	require.True(t, PowMod(bi(5), bi(3), bi(1)).IsZero())
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(bi(3), bi(11))
	require.NoError(t, err)
	require.True(t, inv.Equal(bi(4))) // 3*4 = 12 = 1 mod 11

	_, err = ModInverse(bi(2), bi(4))
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, NoInverse, nerr.Kind)
}

func TestFactorizeBoundedBySqrtNotHalf(t *testing.T) {
	// Trial division stops at the square root of what remains: once 2 is
	// stripped from 194, the remainder 97 exceeds sqrt(97)~9.8 and is kept
	// whole as the last prime factor.
	got := Factorize(bi(194))
	require.ElementsMatch(t, []bigint.Int{bi(2), bi(97)}, got)
}

func TestFactorizePrimePower(t *testing.T) {
	got := Factorize(bi(360)) // 2^3 * 3^2 * 5
	require.ElementsMatch(t, []bigint.Int{bi(2), bi(2), bi(2), bi(3), bi(3), bi(5)}, got)
}

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(bi(2)))
	require.True(t, IsPrime(bi(17)))
	require.True(t, IsPrime(bi(12289)))
	require.False(t, IsPrime(bi(1)))
	require.False(t, IsPrime(bi(15)))
}

func TestSqrtMod(t *testing.T) {
	r, err := SqrtMod(bi(4), bi(17))
	require.NoError(t, err)
	require.True(t, r.Mul(r).Mod(bi(17)).Equal(bi(4)))

	// m ≡ 3 mod 4 path.
	r, err = SqrtMod(bi(5), bi(11))
	require.NoError(t, err)
	require.True(t, r.Mul(r).Mod(bi(11)).Equal(bi(5)))

	_, err = SqrtMod(bi(0), bi(17))
	require.NoError(t, err)

	// A non-residue fails explicitly rather than wrapping a sentinel.
	_, err = SqrtMod(bi(3), bi(17))
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, NoSqrt, nerr.Kind)
}

func TestSqrtModGeneralCase(t *testing.T) {
	// 17 ≡ 1 (mod 4): exercises the general Tonelli-Shanks loop, not the
	// m ≡ 3 (mod 4) shortcut.
	for _, a := range []int{2, 8, 9, 15, 16} {
		r, err := SqrtMod(bi(a), bi(17))
		if err != nil {
			continue // a is not a quadratic residue; skip
		}
		require.True(t, r.Mul(r).Mod(bi(17)).Equal(bi(a)))
	}
}

func TestGenerator(t *testing.T) {
	factors := UniqueFactors(Factorize(bi(16))) // q=17, q-1=16
	g, err := Generator(bi(17), factors)
	require.NoError(t, err)
	require.True(t, PowMod(g, bi(16), bi(17)).Equal(bi(1)))
	require.False(t, PowMod(g, bi(8), bi(17)).Equal(bi(1)))
}

func TestAnyPrimitiveRoot(t *testing.T) {
	root, err := AnyPrimitiveRoot(bi(8), bi(17))
	require.NoError(t, err)
	require.True(t, PowMod(root, bi(8), bi(17)).Equal(bi(1)))
	require.False(t, PowMod(root, bi(4), bi(17)).Equal(bi(1)))
}

func TestUniqueFactors(t *testing.T) {
	got := UniqueFactors(Factorize(bi(360)))
	require.Equal(t, []bigint.Int{bi(2), bi(3), bi(5)}, got)
}

func TestCheckFactors(t *testing.T) {
	require.NoError(t, CheckFactors(bi(360), []bigint.Int{bi(2), bi(3), bi(5)}))
	require.Error(t, CheckFactors(bi(360), []bigint.Int{bi(2), bi(3)}))
}
