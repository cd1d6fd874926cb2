package hwdump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttring/rnsntt/bigint"
)

func TestSaveTwiddleTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "twiddle.hex")

	// q=17 (bitlength 5, so 2 hex nibbles), omega=4, n=4: entries 4^0, 4^1 mod 17.
	require.NoError(t, SaveTwiddleTable(path, 4, bigint.FromInt(4), bigint.FromInt(17)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, []string{"01", "04"}, lines)
}

func TestSaveTwiddleTableWidthMatchesModulus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "twiddle.hex")

	require.NoError(t, SaveTwiddleTable(path, 2, bigint.FromInt(1), bigint.FromInt(12289)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Len(t, lines[0], nibbleWidth(bigint.FromInt(12289)))
}
