package tsio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDirectAccess lays out a fixed-record file with the given time array
// and response rows. The header record stores ndat in its leading bytes,
// either as int32 or as float32 for the .tda flavour.
func writeDirectAccess(t *testing.T, name string, floatHeader bool, time []float64, responses ...[]float64) string {
	t.Helper()
	ndat := len(time)
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	header := make([]float32, ndat)
	if floatHeader {
		require.NoError(t, binary.Write(f, binary.LittleEndian, float32(ndat)))
	} else {
		require.NoError(t, binary.Write(f, binary.LittleEndian, int32(ndat)))
	}
	require.NoError(t, binary.Write(f, binary.LittleEndian, header[1:]))

	for _, row := range append([][]float64{time}, responses...) {
		require.Len(t, row, ndat)
		buf := make([]float32, ndat)
		for i, v := range row {
			buf[i] = float32(v)
		}
		require.NoError(t, binary.Write(f, binary.LittleEndian, buf))
	}
	return path
}

func TestReadDirectAccess(t *testing.T) {
	time := []float64{0, 0.5, 1, 1.5}
	r1 := []float64{1, 2, 3, 4}
	r2 := []float64{-1, -2, -3, -4}
	path := writeDirectAccess(t, "resp.ts", false, time, r1, r2)

	rows, err := ReadDirectAccess(path, []int{0, 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDeltaSlice(t, time, rows[0], 1e-6)
	assert.InDeltaSlice(t, r2, rows[1], 1e-6)
}

func TestReadDirectAccessAllSeries(t *testing.T) {
	time := []float64{0, 1, 2}
	r1 := []float64{5, 6, 7}
	path := writeDirectAccess(t, "resp.dis", false, time, r1)

	rows, err := ReadDirectAccess(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDeltaSlice(t, time, rows[0], 1e-6)
	assert.InDeltaSlice(t, r1, rows[1], 1e-6)
}

func TestReadDirectAccessFloatHeader(t *testing.T) {
	time := []float64{0, 0.1, 0.2, 0.3, 0.4}
	r1 := []float64{1, 1, 2, 3, 5}
	path := writeDirectAccess(t, "resp.tda", true, time, r1)

	rows, err := ReadDirectAccess(path, []int{1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, r1, rows[0], 1e-6)
}

func TestReadDirectAccessIndexOutOfRange(t *testing.T) {
	path := writeDirectAccess(t, "resp.ts", false, []float64{0, 1}, []float64{1, 2})
	_, err := ReadDirectAccess(path, []int{2})
	require.Error(t, err)
}

func TestReadDirectAccessTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ts")
	require.NoError(t, os.WriteFile(path, []byte{4, 0, 0, 0, 1, 2}, 0o644))
	_, err := ReadDirectAccess(path, nil)
	require.Error(t, err)
}

func TestReadASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resp.dat")
	content := "# time  heave  pitch\n" +
		"0.0  1.0  -0.5\n" +
		"0.5  2.0  -1.5\n" +
		"1.0  3.0  -2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadASCII(path, []int{0, 2}, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{0, 0.5, 1}, rows[0])
	assert.Equal(t, []float64{-0.5, -1.5, -2.5}, rows[1])
}

func TestReadASCIIAllColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resp.dat")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n"), 0o644))

	rows, err := ReadASCII(path, nil, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{0, 1}, rows[0])
	assert.Equal(t, []float64{1, 2}, rows[1])
}

func TestReadASCIIRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resp.dat")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2 3\n"), 0o644))
	_, err := ReadASCII(path, nil, 0)
	require.Error(t, err)
}

func TestReadASCIIEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resp.dat")
	require.NoError(t, os.WriteFile(path, []byte("# only a header\n"), 0o644))
	_, err := ReadASCII(path, nil, 1)
	require.Error(t, err)
}
