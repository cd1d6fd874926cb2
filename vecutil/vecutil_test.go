package vecutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttring/rnsntt/bigint"
)

func bi(x int) bigint.Int { return bigint.FromInt(x) }

func biSlice(xs ...int) []bigint.Int {
	out := make([]bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bi(x)
	}
	return out
}

func requireEqualInts(t *testing.T, want, got []bigint.Int) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "index %d: want %s got %s", i, want[i], got[i])
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(8))
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(-2))
	require.False(t, IsPowerOfTwo(6))
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(1))
	require.Equal(t, 3, Log2(8))
	require.Panics(t, func() { Log2(6) })
}

func TestBitReversePermute(t *testing.T) {
	in := biSlice(0, 1, 2, 3, 4, 5, 6, 7)
	out := BitReversePermute(in)
	requireEqualInts(t, biSlice(0, 4, 2, 6, 1, 5, 3, 7), out)

	// The input slice itself must be left untouched.
	requireEqualInts(t, biSlice(0, 1, 2, 3, 4, 5, 6, 7), in)
}

func TestBitReversePermuteInvalidLength(t *testing.T) {
	require.Panics(t, func() { BitReversePermute(biSlice(1, 2, 3)) })
}

func TestHadamardProduct(t *testing.T) {
	got := HadamardProduct(biSlice(2, 3, 4), biSlice(5, 6, 7), bi(17))
	requireEqualInts(t, biSlice(10, 1, 11), got) // 2*5=10, 3*6=18 mod17=1, 4*7=28 mod17=11
}

func TestHadamardProductLengthMismatch(t *testing.T) {
	require.Panics(t, func() { HadamardProduct(biSlice(1, 2), biSlice(1), bi(17)) })
}

func TestMultByPower(t *testing.T) {
	got := MultByPower(biSlice(1, 1, 1, 1), bi(2), bi(17))
	requireEqualInts(t, biSlice(1, 2, 4, 8), got)
}

func TestZeroPad(t *testing.T) {
	got := ZeroPad(biSlice(1, 2))
	requireEqualInts(t, biSlice(1, 2, 0, 0), got)
}

func TestConstantVector(t *testing.T) {
	got := ConstantVector(4, bi(9))
	requireEqualInts(t, biSlice(9, 9, 9, 9), got)
}

func TestStatsReportsMeanAndLog2Stddev(t *testing.T) {
	stats := Stats(biSlice(2, 4, 6, 8), 128)
	require.InDelta(t, 5.0, stats[1], 1e-9) // mean = (2+4+6+8)/4
	require.True(t, stats[0] > 0)           // stddev here is > 1, so log2 > 0
}

func TestStatsTooFewSamples(t *testing.T) {
	require.Equal(t, [2]float64{0, 0}, Stats(biSlice(5), 128))
}
