// Package ntt implements the in-place iterative radix-2 Cooley-Tukey NTT
// engine of spec.md §4.5, built on the parameter solver (params.Solve), the
// vector utilities (vecutil) and an RNS collaborator (rns.Multiplier) for
// the per-butterfly modular product.
//
// Shape is grounded on lattigo's ring.Ring / ring.NumberTheoreticTransformer
// split (ring/ntt.go): an immutable parameter/table block constructed once,
// consumed by stateless Forward/Backward calls. Where the teacher hand-
// unrolls the butterfly loop over uint64 limbs for speed (ring/ntt_standard.go),
// this engine keeps the textbook two-temporary butterfly the reference
// implementation's NTT.cpp describes, over bigint.Int coefficients, with the
// RNS collaborator standing in for the teacher's inlined Montgomery
// multiplication.
package ntt

import (
	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/ntterr"
	"github.com/nttring/rnsntt/numtheory"
	"github.com/nttring/rnsntt/params"
	"github.com/nttring/rnsntt/rns"
)

// TraceFunc is invoked once per butterfly when the engine carries a
// non-nil trace hook. The default is a silent no-op — the reference
// implementation's NTT.cpp prints two lines per butterfly to stdout; spec.md
// §9's redesign note replaces that ambient side effect with an opt-in
// caller-supplied callback.
type TraceFunc func(stage string, i, j int, left, right bigint.Int)

// Engine is an immutable, parameterized NTT. Constructing an Engine runs
// parameter discovery once; Forward/Inverse/ReferenceForward/ReferenceInverse
// are pure with respect to the engine's own state (they borrow the caller's
// polynomial for the duration of the call, spec.md §5) and may be called
// concurrently provided the RNS collaborator is itself reentrant.
type Engine struct {
	p          params.Parameters
	multiplier rns.Multiplier
	phiTable   []bigint.Int // nil if no φ was found

	trace TraceFunc
}

// New constructs an Engine for a transform of length n with modulus floor
// mMin, delegating per-butterfly modular products to multiplier. If
// modulusIsPrimeHint is true, mMin is asserted to already be a valid
// working modulus.
func New(n int, mMin bigint.Int, multiplier rns.Multiplier, modulusIsPrimeHint bool) (*Engine, error) {
	p, err := params.Solve(n, mMin, modulusIsPrimeHint)
	if err != nil {
		return nil, err
	}

	e := &Engine{p: p, multiplier: multiplier}

	if p.PhiOK {
		e.phiTable = make([]bigint.Int, n/2)
		e.phiTable[0] = bigint.One.Mod(p.Q)
		for i := 1; i < n/2; i++ {
			e.phiTable[i] = numtheory.PowMod(p.Phi, bigint.FromInt(i), p.Q)
		}
	}

	return e, nil
}

// SetTrace installs (or clears, with nil) a per-butterfly trace callback.
func (e *Engine) SetTrace(fn TraceFunc) {
	e.trace = fn
}

// N returns the transform length.
func (e *Engine) N() int { return e.p.N }

// Modulus returns q.
func (e *Engine) Modulus() bigint.Int { return e.p.Q }

// Omega returns ω.
func (e *Engine) Omega() bigint.Int { return e.p.Omega }

// OmegaInv returns ω^-1.
func (e *Engine) OmegaInv() bigint.Int { return e.p.OmegaInv }

// Phi returns φ = √ω. Fails with a NoSqrt error if no square root of ω was
// found at construction (spec.md §3, §4.7).
func (e *Engine) Phi() (bigint.Int, error) {
	if !e.p.PhiOK {
		return bigint.Int{}, &numtheory.Error{Kind: numtheory.NoSqrt, Msg: "no φ = √ω available for this engine"}
	}
	return e.p.Phi, nil
}

// PhiInv returns φ^-1. Fails the same way Phi does when φ is absent.
func (e *Engine) PhiInv() (bigint.Int, error) {
	if !e.p.PhiOK {
		return bigint.Int{}, &numtheory.Error{Kind: numtheory.NoSqrt, Msg: "no φ^-1 available for this engine"}
	}
	return e.p.PhiInv, nil
}

// PhiTable returns the length-n/2 table of φ^0..φ^(n/2-1) mod q, exposed
// (but not applied) for a caller implementing a negacyclic convolution on
// top of this engine (spec.md §1 Non-goals).
func (e *Engine) PhiTable() ([]bigint.Int, error) {
	if !e.p.PhiOK {
		return nil, &numtheory.Error{Kind: numtheory.NoSqrt, Msg: "no φ table available for this engine"}
	}
	return e.phiTable, nil
}

// Parameters returns the engine's solved parameter tuple.
func (e *Engine) Parameters() params.Parameters { return e.p }

func (e *Engine) checkLength(a []bigint.Int) error {
	if len(a) != e.p.N {
		return ntterr.New(ntterr.BadInput, "input length %d != engine length %d", len(a), e.p.N)
	}
	return nil
}
