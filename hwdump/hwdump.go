// Package hwdump writes NTT twiddle tables in the hexadecimal,
// one-entry-per-line format FPGA test-vector consumers expect (spec.md §6),
// grounded on the reference implementation's save_twiddle_table
// (NTT.cpp): the loop that starts temp at 1 and repeatedly multiplies by
// ω mod q is kept; the field width is fixed to exactly
// ceil(bitlength(q)/4) nibbles rather than the source's ad hoc
// bitLength/4+2.
package hwdump

import (
	"fmt"
	"os"
	"strings"

	"github.com/nttring/rnsntt/bigint"
)

// SaveTwiddleTable writes n/2 lines to path, each the hexadecimal, lowercase,
// zero-padded representation of ω^i mod q for i in [0, n/2), LF-terminated.
func SaveTwiddleTable(path string, n int, omega, q bigint.Int) error {
	width := nibbleWidth(q)

	var sb strings.Builder
	temp := bigint.One.Mod(q)
	for i := 0; i < n/2; i++ {
		fmt.Fprintf(&sb, "%0*s\n", width, temp.Text(16))
		temp = temp.Mul(omega).Mod(q)
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// nibbleWidth returns ceil(bitlength(q)/4), the number of hex digits needed
// to represent any value in [0, q).
func nibbleWidth(q bigint.Int) int {
	bits := q.BitLen()
	return (bits + 3) / 4
}
