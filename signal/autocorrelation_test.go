package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocorrelationAlternatingSeries(t *testing.T) {
	// x[i] = (-1)^i has zero mean, unit variance and a closed-form
	// autocorrelation r(h) = (-1)^h * (n-h)/n
	n := 10
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
		if i%2 == 1 {
			x[i] = -1
		}
	}

	got := AutocorrelationCoeffs(x)
	require.Len(t, got, n-1)
	want := []float64{-0.9, 0.8, -0.7, 0.6, -0.5, 0.4, -0.3, 0.2, -0.1}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestAutocorrelationRoundsToThreeDecimals(t *testing.T) {
	x := []float64{0.2, 1.7, -0.3, 2.9, -1.1, 0.6, 1.4, -2.2}
	for _, r := range AutocorrelationCoeffs(x) {
		assert.Equal(t, math.Round(r*1000)/1000, r)
	}
}

func TestAutocorrelationIsRestartable(t *testing.T) {
	x := []float64{1, 3, 2, 5, 4, 6, 2, 1}
	seq := Autocorrelation(x)

	var first, second []float64
	for r := range seq {
		first = append(first, r)
	}
	for r := range seq {
		second = append(second, r)
	}
	assert.Equal(t, first, second)

	// early termination must not poison later iterations
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	var third []float64
	for r := range seq {
		third = append(third, r)
	}
	assert.Equal(t, first, third)
}

func TestAutocorrelationConstantSeriesYieldsNaN(t *testing.T) {
	x := []float64{4, 4, 4, 4, 4, 4}
	coeffs := AutocorrelationCoeffs(x)
	require.Len(t, coeffs, len(x)-1)
	for _, r := range coeffs {
		assert.True(t, math.IsNaN(r))
	}
}

func TestAutocorrelationDegenerateInputs(t *testing.T) {
	assert.Empty(t, AutocorrelationCoeffs(nil))
	assert.Empty(t, AutocorrelationCoeffs([]float64{1.5}))
}
