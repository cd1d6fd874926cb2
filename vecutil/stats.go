package vecutil

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/nttring/rnsntt/bigint"
)

// Stats returns [log2(stddev), mean] of the coefficients of values, computed
// at the given bit precision. This is the domain's analogue of
// ring.Ring.Stats (ring/ring.go): the teacher computes log2 of a float64
// standard deviation because its coefficients are bounded 62-bit limbs; here
// coefficients are unbounded bigint.Int, so the reduction itself needs
// arbitrary-precision floats, hence ALTree/bigfloat.Log in place of
// math.Log2. Useful as a pre-dump sanity check before hwdump.SaveTwiddleTable
// (flags a coefficient that silently exceeds the expected modulus width).
func Stats(values []bigint.Int, prec uint) [2]float64 {
	n := len(values)
	if n < 2 {
		return [2]float64{0, 0}
	}

	mean := big.NewFloat(0).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)

	for i := range values {
		mean.Add(mean, tmp.SetInt(values[i].Big()))
	}
	mean.Quo(mean, new(big.Float).SetPrec(prec).SetInt64(int64(n)))

	variance := big.NewFloat(0).SetPrec(prec)
	for i := range values {
		tmp.SetInt(values[i].Big())
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		variance.Add(variance, tmp)
	}
	variance.Quo(variance, new(big.Float).SetPrec(prec).SetInt64(int64(n-1)))

	stddev := variance.Sqrt(variance)

	two := new(big.Float).SetPrec(prec).SetInt64(2)
	log2Std := new(big.Float).Quo(bigfloat.Log(stddev), bigfloat.Log(two))

	log2StdF64, _ := log2Std.Float64()
	meanF64, _ := mean.Float64()

	return [2]float64{log2StdF64, meanF64}
}
