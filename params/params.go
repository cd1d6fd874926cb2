// Package params implements the parameter solver (spec.md §4.2): from a
// transform length n and a modulus floor M_min, it derives a working prime
// q with q ≡ 1 (mod n), a primitive n-th root of unity ω in (Z/qZ)*, and
// the derived ω^-1, φ = √ω, φ^-1.
//
// Grounded on ring.Ring.GenNTTTable and ring.PrimitiveRoot (ring/ring.go):
// q ≡ 1 (mod NthRoot) is checked the same way, a generator of (Z/qZ)* is
// found by trial exactly as ring.PrimitiveRoot does, and ω is derived as
// g^((q-1)/n). Where the teacher operates over a fixed 62-bit uint64
// modulus with Montgomery constants, params.Parameters carries
// arbitrary-precision bigint.Int throughout, matching spec.md's "arbitrary
// precision integer rings" scope.
package params

import (
	"github.com/google/go-cmp/cmp"

	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/ntterr"
	"github.com/nttring/rnsntt/numtheory"
	"github.com/nttring/rnsntt/vecutil"
)

// maxModulusSearchSteps bounds the search for a working modulus so a
// pathological (n, M_min) pair fails fast with NoModulus instead of looping
// forever — the "resource budget" spec.md §4.2/§7 alludes to without fixing
// a number.
const maxModulusSearchSteps = 1_000_000

// Parameters is the NTT parameter tuple of spec.md §3, computed once per
// engine and immutable afterward.
type Parameters struct {
	N        int
	MMin     bigint.Int
	Q        bigint.Int
	Omega    bigint.Int
	OmegaInv bigint.Int

	// Phi and PhiInv hold φ = √ω and its inverse. PhiOK is false when no
	// square root of ω was found mod Q (spec.md §3: "may be absent").
	Phi    bigint.Int
	PhiInv bigint.Int
	PhiOK  bool
}

// Equal reports whether p and other hold the same parameter tuple. Built on
// go-cmp the way rlwe.Parameters.Equal (rlwe/params.go) compares parameter
// literals; bigint.Int's own Equal method makes it a valid cmp leaf type
// without needing cmp.AllowUnexported.
func (p Parameters) Equal(other Parameters) bool {
	// plain has Parameters' fields but not this Equal method, so cmp compares
	// it field by field instead of calling back into Equal.
	type plain Parameters
	return cmp.Equal(plain(p), plain(other))
}

// Solve runs parameter discovery for a transform of length n with modulus
// floor mMin. If modulusIsPrimeHint is true, the caller asserts mMin is
// already a valid working modulus (prime, ≡ 1 mod n) and q := mMin is used
// directly, skipping the search.
func Solve(n int, mMin bigint.Int, modulusIsPrimeHint bool) (Parameters, error) {
	if n < 2 || !vecutil.IsPowerOfTwo(n) {
		return Parameters{}, ntterr.New(ntterr.BadLength, "n=%d must be a power of two >= 2", n)
	}

	nBig := bigint.FromInt(n)

	var q bigint.Int
	if modulusIsPrimeHint {
		q = mMin
	} else {
		var err error
		q, err = findModulus(nBig, mMin)
		if err != nil {
			return Parameters{}, err
		}
	}

	tMinus1 := q.Sub(bigint.One)
	factors := numtheory.UniqueFactors(numtheory.Factorize(tMinus1))

	g, err := numtheory.Generator(q, factors)
	if err != nil {
		return Parameters{}, err
	}

	omega := numtheory.PowMod(g, tMinus1.Quo(nBig), q)

	omegaInv, err := numtheory.ModInverse(omega, q)
	if err != nil {
		return Parameters{}, err
	}

	p := Parameters{
		N:        n,
		MMin:     mMin,
		Q:        q,
		Omega:    omega,
		OmegaInv: omegaInv,
	}

	if phi, sqrtErr := numtheory.SqrtMod(omega, q); sqrtErr == nil {
		if phiInv, invErr := numtheory.ModInverse(phi, q); invErr == nil {
			p.Phi = phi
			p.PhiInv = phiInv
			p.PhiOK = true
		}
	}

	return p, nil
}

// findModulus implements spec.md §4.2's "Finding q": starting from
// k = floor((M_min-1)/n), form q := k*n+1 and increment k until q is prime
// and q >= M_min.
func findModulus(n, mMin bigint.Int) (bigint.Int, error) {
	k := mMin.Sub(bigint.One).Quo(n)
	q := k.Mul(n).Add(bigint.One)

	for step := 0; q.Cmp(mMin) < 0 || !numtheory.IsPrime(q); step++ {
		if step >= maxModulusSearchSteps {
			return bigint.Int{}, ntterr.New(ntterr.NoModulus, "no prime >= %s with q ≡ 1 (mod %s) found within %d candidates", mMin, n, maxModulusSearchSteps)
		}
		k = k.Add(bigint.One)
		q = k.Mul(n).Add(bigint.One)
	}

	return q, nil
}
