// Package bigint is the arbitrary-precision integer facade used throughout
// the engine. It wraps math/big.Int behind a value type so that operations
// never alias a caller's storage: every arithmetic method returns a fresh
// Int, the way lattigo's utils/bignum helpers treat *big.Int as owned,
// short-lived temporaries.
package bigint

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Int is a non-negative arbitrary-precision integer. The zero value is 0.
type Int struct {
	v big.Int
}

// FromUint64 returns the Int equal to x.
func FromUint64(x uint64) Int {
	var i Int
	i.v.SetUint64(x)
	return i
}

// FromInt returns the Int equal to x. Panics if x is negative.
func FromInt(x int) Int {
	if x < 0 {
		panic("bigint: FromInt: negative value")
	}
	return FromUint64(uint64(x))
}

// FromString parses x in the given base (0 means auto-detect, as
// math/big.Int.SetString). Panics on malformed input: callers at a system
// boundary (CLI flags, file parsing) should pre-validate.
func FromString(x string, base int) Int {
	var i Int
	if _, ok := i.v.SetString(x, base); !ok {
		panic(fmt.Sprintf("bigint: invalid integer literal %q", x))
	}
	return i
}

// FromBigInt copies x into a fresh Int. Panics if x is negative.
func FromBigInt(x *big.Int) Int {
	if x.Sign() < 0 {
		panic("bigint: FromBigInt: negative value")
	}
	var i Int
	i.v.Set(x)
	return i
}

// Big returns a *big.Int copy of i, safe for the caller to mutate.
func (i Int) Big() *big.Int {
	return new(big.Int).Set(&i.v)
}

// Uint64 returns i as a uint64. The result is undefined if i does not fit.
func (i Int) Uint64() uint64 {
	return i.v.Uint64()
}

// Int64 returns i as an int64. The result is undefined if i does not fit.
func (i Int) Int64() int64 {
	return i.v.Int64()
}

// BitLen returns the length of i in bits. BitLen(0) == 0.
func (i Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns -1, 0 or +1. Ints produced by this package are always >= 0.
func (i Int) Sign() int {
	return i.v.Sign()
}

// IsZero reports whether i == 0.
func (i Int) IsZero() bool {
	return i.v.Sign() == 0
}

// Cmp compares i and j.
func (i Int) Cmp(j Int) int {
	return i.v.Cmp(&j.v)
}

// Equal reports whether i == j.
func (i Int) Equal(j Int) bool {
	return i.v.Cmp(&j.v) == 0
}

// Add returns i + j.
func (i Int) Add(j Int) Int {
	var r Int
	r.v.Add(&i.v, &j.v)
	return r
}

// Sub returns i - j. Panics if the result would be negative.
func (i Int) Sub(j Int) Int {
	var r Int
	r.v.Sub(&i.v, &j.v)
	if r.v.Sign() < 0 {
		panic("bigint: Sub: negative result")
	}
	return r
}

// Mul returns i * j.
func (i Int) Mul(j Int) Int {
	var r Int
	r.v.Mul(&i.v, &j.v)
	return r
}

// Quo returns i / j, truncated toward zero.
func (i Int) Quo(j Int) Int {
	var r Int
	r.v.Quo(&i.v, &j.v)
	return r
}

// Rem returns i % j.
func (i Int) Rem(j Int) Int {
	var r Int
	r.v.Rem(&i.v, &j.v)
	return r
}

// Mod returns the Euclidean i mod j (always in [0, j)).
func (i Int) Mod(j Int) Int {
	var r Int
	r.v.Mod(&i.v, &j.v)
	return r
}

// String returns the base-10 representation of i.
func (i Int) String() string {
	return i.v.String()
}

// Text returns the representation of i in the given base.
func (i Int) Text(base int) string {
	return i.v.Text(base)
}

// Random returns a uniformly random Int in [0, max). Uses crypto/rand, the
// same source lattigo's bignum.RandInt wraps — the engine never recreates
// the seeded-squaring low-entropy sampler the source used (spec §9 OQ3).
func Random(max Int) Int {
	n, err := rand.Int(rand.Reader, max.Big())
	if err != nil {
		panic(fmt.Errorf("bigint: Random: %w", err))
	}
	return FromBigInt(n)
}

// One is the multiplicative identity.
var One = FromUint64(1)

// Zero is the additive identity.
var Zero = FromUint64(0)

// Two is a small constant used throughout parity checks.
var Two = FromUint64(2)
