package ntt

import (
	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/numtheory"
)

// ReferenceForward computes the forward NTT by direct evaluation of the
// defining sum Z[i] = Σ_j a[j] * ω^(i*j) mod q, spec.md §4.4's quadratic
// definition. It exists to cross-check Forward, not for production use.
func (e *Engine) ReferenceForward(a []bigint.Int) ([]bigint.Int, error) {
	return e.referenceTransform(a, false)
}

// ReferenceInverse is ReferenceForward's inverse counterpart, using ω^-1 and
// scaling the result by n^-1 mod q.
func (e *Engine) ReferenceInverse(a []bigint.Int) ([]bigint.Int, error) {
	return e.referenceTransform(a, true)
}

func (e *Engine) referenceTransform(a []bigint.Int, inverse bool) ([]bigint.Int, error) {
	if err := e.checkLength(a); err != nil {
		return nil, err
	}

	n := e.p.N
	q := e.p.Q

	omegaHat := e.p.Omega
	if inverse {
		omegaHat = e.p.OmegaInv
	}

	out := make([]bigint.Int, n)
	for i := 0; i < n; i++ {
		acc := bigint.Zero
		for j := 0; j < n; j++ {
			power := numtheory.PowMod(omegaHat, bigint.FromInt(i*j), q)
			acc = acc.Add(e.multiplier.Mult(a[j], power)).Mod(q)
		}
		out[i] = acc
	}

	if inverse {
		nInv, err := numtheory.ModInverse(bigint.FromInt(n), q)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = e.multiplier.Mult(out[i], nInv).Mod(q)
		}
	}

	return out, nil
}
