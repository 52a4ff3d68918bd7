package signal

import "fmt"

// Taper multiplies x element-wise with a window of the same length and
// returns the tapered signal together with a correction factor.
//
// Tapering forces the signal towards zero at the block boundaries so that
// FFT-based estimates see a periodic signal and spectral leakage is reduced.
// The correction factor is the mean square of the window, sum(w^2)/n, and is
// applied downstream to restore the spectral amplitude lost to the
// windowing. For a rectangular window it is exactly 1.
//
// alpha parameterizes the Tukey (tapered fraction of the length) and Kaiser
// (beta) windows and is ignored for the other shapes.
func Taper(x []float64, window WindowType, alpha float64) ([]float64, float64, error) {
	n := len(x)
	if n == 0 {
		return nil, 0, fmt.Errorf("cannot taper an empty signal: %w", ErrInvalidArgument)
	}
	w, err := Window(window, n, alpha)
	if err != nil {
		return nil, 0, err
	}
	y := make([]float64, n)
	var ss float64
	for i := range x {
		y[i] = x[i] * w[i]
		ss += w[i] * w[i]
	}
	return y, ss / float64(n), nil
}
