// Package vecutil implements the vector-level helpers the NTT engine builds
// on: bit-reversal permutation, Hadamard product, zero-padding and
// scalar-power scaling (spec.md §4.3), generalized from lattigo's
// ring/utils.go (BitReverse64-driven table construction) and the reference
// implementation's general_functions.cpp (bitReverse, hadamard_product,
// zero_pad, mult_by_power) to arbitrary-precision bigint.Int coefficients.
package vecutil

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/numtheory"
)

// IsPowerOfTwo reports whether n is a power of two. n <= 0 is never a power
// of two. Generic over any integer type, the same constraints.Integer shape
// lattigo's utils/structs.Map[K, T] uses for its key type.
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a power-of-two n. Panics otherwise.
func Log2[T constraints.Integer](n T) int {
	if !IsPowerOfTwo(n) {
		panic(fmt.Sprintf("vecutil: %d is not a power of two", n))
	}
	log := 0
	for (T(1) << log) < n {
		log++
	}
	return log
}

// BitReversePermute returns a fresh slice where the element at position i of
// a is placed at position reverseBits(i, log2(len(a))). Requires len(a) to
// be a power of two.
func BitReversePermute(a []bigint.Int) []bigint.Int {
	n := len(a)
	if !IsPowerOfTwo(n) {
		panic(fmt.Sprintf("vecutil: BitReversePermute: length %d is not a power of two", n))
	}

	bits := Log2(n)
	out := make([]bigint.Int, n)
	for i := range a {
		out[reverseBits(i, bits)] = a[i]
	}
	return out
}

func reverseBits(i, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		if i&(1<<b) != 0 {
			r |= 1 << (bits - 1 - b)
		}
	}
	return r
}

// HadamardProduct returns the componentwise (a[i] * b[i]) mod m. Requires
// len(a) == len(b).
func HadamardProduct(a, b []bigint.Int, m bigint.Int) []bigint.Int {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vecutil: HadamardProduct: length mismatch %d != %d", len(a), len(b)))
	}
	out := make([]bigint.Int, len(a))
	for i := range a {
		out[i] = a[i].Mul(b[i]).Mod(m)
	}
	return out
}

// MultByPower returns (v[i] * x^i) mod m.
func MultByPower(v []bigint.Int, x, m bigint.Int) []bigint.Int {
	out := make([]bigint.Int, len(v))
	for i := range v {
		out[i] = v[i].Mul(numtheory.PowMod(x, bigint.FromInt(i), m)).Mod(m)
	}
	return out
}

// ZeroPad appends len(a) zeros to a, doubling its length. Used to lift a
// length-n/2 polynomial product into a length-n cyclic convolution that
// equals the true (non-wrapping) product, spec.md §4.3.
func ZeroPad(a []bigint.Int) []bigint.Int {
	out := make([]bigint.Int, len(a)*2)
	copy(out, a)
	return out
}

// ConstantVector returns a length-n vector with every entry equal to val.
func ConstantVector(n int, val bigint.Int) []bigint.Int {
	out := make([]bigint.Int, n)
	for i := range out {
		out[i] = val
	}
	return out
}
