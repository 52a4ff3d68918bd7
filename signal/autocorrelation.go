package signal

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Autocorrelation returns a lazy sequence of autocorrelation coefficients of
// series for lags 1 through len(series)-1:
//
//	r(h) = sum((x[:n-h]-mean) * (x[h:]-mean)) / n / c0
//
// where c0 is the biased sample variance sum((x-mean)^2)/n. Each coefficient
// is rounded to three decimals. The sequence is a pure function of the input
// and can be ranged over any number of times.
//
// A zero-variance series has c0 = 0 and deterministically yields NaN for
// every lag.
func Autocorrelation(series []float64) iter.Seq[float64] {
	n := len(series)
	mean := stat.Mean(series, nil)
	var c0 float64
	for _, v := range series {
		d := v - mean
		c0 += d * d
	}
	c0 /= float64(n)

	return func(yield func(float64) bool) {
		for h := 1; h < n; h++ {
			var sum float64
			for i := 0; i < n-h; i++ {
				sum += (series[i] - mean) * (series[i+h] - mean)
			}
			r := sum / float64(n) / c0
			if !yield(math.Round(r*1000) / 1000) {
				return
			}
		}
	}
}

// AutocorrelationCoeffs collects the coefficient sequence into a slice of
// length len(series)-1.
func AutocorrelationCoeffs(series []float64) []float64 {
	out := make([]float64, 0, max(len(series)-1, 0))
	for r := range Autocorrelation(series) {
		out = append(out, r)
	}
	return out
}
