package signal

import (
	"github.com/mjibson/go-dsp/spectral"
	"gonum.org/v1/gonum/stat"
)

// DetrendMode selects how PSD detrends the signal before estimation.
type DetrendMode string

const (
	// DetrendConstant removes the mean. This is the default.
	DetrendConstant DetrendMode = "constant"
	// DetrendLinear removes a least-squares linear trend.
	DetrendLinear DetrendMode = "linear"
	// DetrendNone leaves the signal as is.
	DetrendNone DetrendMode = "none"
)

// PSDOptions tunes the Welch estimate. The zero value selects the defaults
// documented on PSD.
type PSDOptions struct {
	// NPerSeg is the segment length. Set it to the signal length for full
	// frequency resolution. Defaults to a quarter of the signal length.
	NPerSeg int
	// NOverlap is the number of samples adjacent segments share. Zero
	// selects the default of half a segment; a negative value disables
	// overlap, which makes the estimate equivalent to Bartlett's method.
	NOverlap int
	// NFFT is the transform length when a zero-padded FFT is wanted.
	// Defaults to the segment length.
	NFFT int
	// Detrend defaults to DetrendConstant.
	Detrend DetrendMode
}

// PSD estimates the one-sided power spectral density of x with time step dt
// using Welch's method: the signal is split into overlapping Hann-windowed
// segments whose periodograms are averaged and scaled to density. The
// averaging is delegated to the go-dsp spectral estimator. Welch's method is
// preferred over a raw periodogram because the segment averaging smooths the
// estimate; the segment length trades frequency resolution against variance.
//
// Returns sample frequencies in Hz and the corresponding densities, both of
// the same length.
func PSD(x []float64, dt float64, opts *PSDOptions) (freqs, power []float64) {
	if opts == nil {
		opts = &PSDOptions{}
	}
	n := len(x)
	nperseg := opts.NPerSeg
	if nperseg <= 0 {
		nperseg = n / 4
	}
	if nperseg > n {
		nperseg = n
	}
	noverlap := opts.NOverlap
	switch {
	case noverlap < 0:
		noverlap = 0
	case noverlap == 0:
		noverlap = nperseg / 2
	}
	nfft := opts.NFFT
	if nfft <= 0 {
		nfft = nperseg
	}

	p, f := spectral.Pwelch(detrend(x, opts.Detrend), 1/dt, &spectral.PwelchOptions{
		NFFT:     nperseg,
		Pad:      nfft,
		Noverlap: noverlap,
	})
	return f, p
}

// detrend returns a copy of x with the requested trend removed.
func detrend(x []float64, mode DetrendMode) []float64 {
	out := make([]float64, len(x))
	switch mode {
	case DetrendNone:
		copy(out, x)
	case DetrendLinear:
		t := make([]float64, len(x))
		for i := range t {
			t[i] = float64(i)
		}
		alpha, beta := stat.LinearRegression(t, x, nil, false)
		for i := range x {
			out[i] = x[i] - (alpha + beta*float64(i))
		}
	default:
		mean := stat.Mean(x, nil)
		for i := range x {
			out[i] = x[i] - mean
		}
	}
	return out
}
