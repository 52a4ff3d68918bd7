package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpiricalCDFMean(t *testing.T) {
	f, err := EmpiricalCDF(4, CDFMean)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6, 0.8}, f, 1e-12)
}

func TestEmpiricalCDFSymmetrical(t *testing.T) {
	f, err := EmpiricalCDF(5, CDFSymmetrical)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.3, 0.5, 0.7, 0.9}, f, 1e-12)
}

func TestEmpiricalCDFBounds(t *testing.T) {
	for _, kind := range []CDFKind{CDFMean, CDFMedian, CDFSymmetrical, CDFBeard, CDFGringorten} {
		f, err := EmpiricalCDF(100, kind)
		require.NoError(t, err, string(kind))
		for i, v := range f {
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 1.0)
			if i > 0 {
				assert.Greater(t, v, f[i-1])
			}
		}
	}
}

func TestEmpiricalCDFErrors(t *testing.T) {
	_, err := EmpiricalCDF(0, CDFMean)
	require.Error(t, err)
	_, err = EmpiricalCDF(10, "hazen")
	require.Error(t, err)
}

func TestDescribeConstant(t *testing.T) {
	x := []float64{2, 2, 2, 2}
	s := Describe(x)
	assert.Equal(t, 4, s.N)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 2.0, s.Max)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, 0.0, s.Std, 1e-12)
	assert.InDelta(t, 2.0, s.RMS, 1e-12)
}

func TestDescribeSine(t *testing.T) {
	n := 10000
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 100)
	}
	s := Describe(x)
	assert.InDelta(t, 0, s.Mean, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, s.RMS, 1e-3)
	assert.InDelta(t, 0, s.Skewness, 1e-6)
	// a sine is platykurtic: excess kurtosis -1.5
	assert.InDelta(t, -1.5, s.Kurtosis, 1e-2)
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)
	assert.Equal(t, 0, s.N)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.RMS))
}
