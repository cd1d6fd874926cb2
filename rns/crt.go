package rns

import (
	"fmt"
	"math/big"

	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/numtheory"
)

// Error reports why a CRT basis could not be built.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "rns: " + e.Msg }

// CRT is a residue-decomposition multiplier: each operand is split into
// residues modulo a set of small pairwise-coprime moduli, multiplied
// residue-wise (the parallel, limb-wise step the RNS acceleration is named
// for), then reconstructed through the Chinese Remainder Theorem. Grounded
// on the reconstruction arithmetic of ring.PolyToBigintCentered
// (ring/ring.go: per-modulus term (R/mi) * ((R/mi)^-1 mod mi), summed and
// reduced mod R) and the residue/basis-extension shape of
// ring/rns_basis_extension.go.
type CRT struct {
	moduli []bigint.Int
	r      *big.Int   // product of moduli
	coeff  []*big.Int // (R/mi) * ((R/mi)^-1 mod mi), precomputed once
}

// NewCRT builds a CRT multiplier from a set of pairwise-coprime moduli. q is
// the NTT engine's working modulus; NewCRT fails if the resulting product
// modulus R does not exceed q^2, which the engine's contract (spec.md §6)
// requires for its final `mod q` reduction to recover the canonical value.
func NewCRT(moduli []bigint.Int, q bigint.Int) (*CRT, error) {
	if len(moduli) == 0 {
		return nil, &Error{Msg: "no moduli supplied"}
	}

	for i := range moduli {
		for j := i + 1; j < len(moduli); j++ {
			if !numtheory.AreCoprime(moduli[i], moduli[j]) {
				return nil, &Error{Msg: fmt.Sprintf("moduli %s and %s are not coprime", moduli[i], moduli[j])}
			}
		}
	}

	r := big.NewInt(1)
	for _, m := range moduli {
		r.Mul(r, m.Big())
	}

	qSquared := q.Mul(q).Big()
	if r.Cmp(qSquared) <= 0 {
		return nil, &Error{Msg: fmt.Sprintf("product modulus %s does not exceed q^2=%s", r, qSquared)}
	}

	coeff := make([]*big.Int, len(moduli))
	for i, m := range moduli {
		mi := m.Big()
		rOverMi := new(big.Int).Div(r, mi)
		inv := new(big.Int).ModInverse(rOverMi, mi)
		coeff[i] = new(big.Int).Mul(rOverMi, inv)
	}

	return &CRT{moduli: moduli, r: r, coeff: coeff}, nil
}

// Mult returns a representative of a*b mod R, where R is the product of the
// CRT basis moduli.
func (c *CRT) Mult(a, b bigint.Int) bigint.Int {
	ab := a.Big()
	bb := b.Big()

	acc := new(big.Int)
	for i, m := range c.moduli {
		mi := m.Big()
		ri := new(big.Int).Mod(ab, mi)
		bi := new(big.Int).Mod(bb, mi)
		ri.Mul(ri, bi)
		ri.Mod(ri, mi)
		ri.Mul(ri, c.coeff[i])
		acc.Add(acc, ri)
	}
	acc.Mod(acc, c.r)

	return bigint.FromBigInt(acc)
}

// Modulus returns the CRT basis's product modulus R.
func (c *CRT) Modulus() bigint.Int {
	return bigint.FromBigInt(c.r)
}
