package results

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ising/internal/sims/ising"
)

func TestFormatRow(t *testing.T) {
	row := FormatRow(ising.Result{Size: 40, Temperature: 2.25, Magnetization: 0.123456, Susceptibility: 12.3456789})
	require.Equal(t, "40 2.25 0.12346 12.34568", row)
	require.Equal(t, "6 1.00 1.00000 0.00000", FormatRow(ising.Result{Size: 6, Temperature: 1, Magnetization: 1}))
}

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	in := []ising.Result{
		{Size: 6, Temperature: 1.05, Magnetization: 0.99871, Susceptibility: 0.00412},
		{Size: 70, Temperature: 4.95, Magnetization: 0.01234, Susceptibility: 0.5},
	}
	for _, r := range in {
		require.NoError(t, w.Record(r))
	}
	require.NoError(t, w.Close())
	require.Equal(t, 2, w.Rows())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{"l t m s", "6 1.05 0.99871 0.00412", "70 4.95 0.01234 0.50000"}, lines)

	out, err := ReadTable(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestCreateAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ising.txt")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Record(ising.Result{Size: 15, Temperature: 2.3, Magnetization: 0.5, Susceptibility: 3}))
	require.NoError(t, w.Close())

	out, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []ising.Result{{Size: 15, Temperature: 2.3, Magnetization: 0.5, Susceptibility: 3}}, out)
}

func TestCreateFailsOnMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "nope", "ising.txt"))
	require.Error(t, err)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRecordPropagatesWriteErrors(t *testing.T) {
	// The header sits in the buffer until the first flush.
	w, err := NewWriter(failingWriter{})
	require.NoError(t, err)
	err = w.Record(ising.Result{Size: 6, Temperature: 1})
	require.ErrorIs(t, err, errDiskFull)
	require.Zero(t, w.Rows())
}

func TestReadTableErrors(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"bad header": "a b c d\n",
		"short row":  "l t m s\n6 1.00 0.5\n",
		"bad size":   "l t m s\nsix 1.00 0.5 0.1\n",
		"bad float":  "l t m s\n6 1.00 x 0.1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(body))
			require.Error(t, err)
		})
	}

	out, err := ReadTable(strings.NewReader("l  t m s\n\n6 1.00 0.50000 0.10000\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
}
