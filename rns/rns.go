// Package rns provides the RNS (Residue Number System) collaborators the
// NTT engine delegates its per-butterfly modular multiplication to
// (spec.md §6). spec.md treats the RNS subsystem as an external
// collaborator and fixes only its contract; this package supplies the two
// concrete implementations SPEC_FULL.md §11.1 adds so the engine is
// runnable end to end without a hardware RNS backend.
package rns

import "github.com/nttring/rnsntt/bigint"

// Multiplier is the capability the NTT engine consumes (spec.md §6): it
// returns any nonnegative representative of a*b mod R, where R is the
// multiplier's own product modulus, chosen large enough (R > q^2) that the
// engine can safely reduce the result mod q to recover the canonical value.
// The engine makes no assumption about R beyond that bound.
type Multiplier interface {
	Mult(a, b bigint.Int) bigint.Int
}

// Direct multiplies operands with plain arbitrary-precision multiplication,
// no residue decomposition. Its effective R is unbounded, so R > q^2 holds
// trivially for any q — it is the default collaborator and the one used
// wherever a test needs a multiplier with no internal state to reason
// about.
type Direct struct{}

// Mult returns a*b exactly.
func (Direct) Mult(a, b bigint.Int) bigint.Int {
	return a.Mul(b)
}
