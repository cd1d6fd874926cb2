package ntt

import (
	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/numtheory"
	"github.com/nttring/rnsntt/vecutil"
)

// Forward computes the forward NTT of a, spec.md §4.5: in-place iterative
// radix-2 decimation-in-time with a bit-reversal permutation up front and
// log2(n) butterfly stages driven by a twiddle table materialized for this
// call. a is read, never mutated; the result is a fresh slice.
func (e *Engine) Forward(a []bigint.Int) ([]bigint.Int, error) {
	return e.transform(a, false)
}

// Inverse computes the inverse NTT of a: the same butterfly network run
// with ω^-1 in place of ω, followed by a scaling of every output by n^-1
// mod q (spec.md §4.5).
func (e *Engine) Inverse(a []bigint.Int) ([]bigint.Int, error) {
	return e.transform(a, true)
}

func (e *Engine) transform(a []bigint.Int, inverse bool) ([]bigint.Int, error) {
	if err := e.checkLength(a); err != nil {
		return nil, err
	}

	A := e.butterflyNetwork(a, inverse)

	if inverse {
		n := e.p.N
		q := e.p.Q
		nInv, err := numtheory.ModInverse(bigint.FromInt(n), q)
		if err != nil {
			return nil, err
		}
		A = vecutil.HadamardProduct(A, vecutil.ConstantVector(n, nInv), q)
	}

	return A, nil
}

// butterflyNetwork runs the permutation and butterfly stages with no final
// n^-1 scaling, so the inverse-direction network can be driven and scaled
// separately when a caller needs to verify the two steps commute (spec.md
// §8's invariant 5).
func (e *Engine) butterflyNetwork(a []bigint.Int, inverse bool) []bigint.Int {
	n := e.p.N
	q := e.p.Q

	omegaHat := e.p.Omega
	if inverse {
		omegaHat = e.p.OmegaInv
	}

	// Twiddle table: T[k] = omegaHat^k mod q, materialized fresh per call
	// (spec.md §4.5's lifecycle note), rather than cached on the Engine.
	half := n / 2
	twiddle := make([]bigint.Int, half)
	twiddle[0] = bigint.One.Mod(q)
	for k := 1; k < half; k++ {
		twiddle[k] = e.multiplier.Mult(twiddle[k-1], omegaHat).Mod(q)
	}

	A := vecutil.BitReversePermute(a)

	for size := 2; size <= n; size *= 2 {
		h := size / 2
		step := n / size
		for i := 0; i < n; i += size {
			for j := 0; j < h; j++ {
				left := A[i+j]
				right := e.multiplier.Mult(A[i+j+h], twiddle[j*step]).Mod(q)

				newLeft := left.Add(right).Mod(q)
				newRight := left.Add(q).Sub(right).Mod(q)

				A[i+j] = newLeft
				A[i+j+h] = newRight

				if e.trace != nil {
					e.trace(stageName(inverse), i+j, i+j+h, newLeft, newRight)
				}
			}
		}
	}

	return A
}

func stageName(inverse bool) string {
	if inverse {
		return "inverse"
	}
	return "forward"
}
