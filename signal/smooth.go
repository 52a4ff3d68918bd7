package signal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ConvMode selects which part of the padded convolution Smooth returns.
type ConvMode string

const (
	// ModeSame returns a result aligned with and equal in length to the
	// input signal.
	ModeSame ConvMode = "same"
	// ModeValid returns only the part where the kernel fully overlaps the
	// reflection-padded signal, len(x)+windowLen-1 samples.
	ModeValid ConvMode = "valid"
	// ModeFull returns the full overlap of kernel and padded signal trimmed
	// to len(x)+windowLen-1 samples.
	ModeFull ConvMode = "full"
)

// smoothWindows are the shapes the reflective edge padding is calibrated for.
var smoothWindows = map[WindowType]bool{
	Rectangular: true,
	Hann:        true,
	Hanning:     true,
	Hamming:     true,
	Bartlett:    true,
	Blackman:    true,
}

// Smooth smooths x by convolving it with a normalized window kernel. A
// rectangular window produces a moving average.
//
// The signal is padded with windowLen-1 reflected samples at each end so
// transients at the boundaries are suppressed: ModeValid reflects the
// boundary samples directly, while ModeSame and ModeFull reflect each end
// point-wise through 2*x[0] and 2*x[n-1].
//
// A windowLen below 3 returns a copy of x unchanged. An input shorter than
// the window, an unsupported window or an unknown mode fail with
// ErrInvalidArgument.
func Smooth(x []float64, windowLen int, window WindowType, mode ConvMode) ([]float64, error) {
	n := len(x)
	if n < windowLen {
		return nil, fmt.Errorf("input length %d is shorter than window length %d: %w", n, windowLen, ErrInvalidArgument)
	}
	if windowLen < 3 {
		out := make([]float64, n)
		copy(out, x)
		return out, nil
	}
	if !smoothWindows[window] {
		return nil, fmt.Errorf("window %q is not supported for smoothing: %w", window, ErrInvalidArgument)
	}
	if mode != ModeSame && mode != ModeValid && mode != ModeFull {
		return nil, fmt.Errorf("unknown convolution mode %q: %w", mode, ErrInvalidArgument)
	}

	w, err := Window(window, windowLen, 0)
	if err != nil {
		return nil, err
	}
	kernel := make([]float64, windowLen)
	wsum := floats.Sum(w)
	for i := range w {
		kernel[i] = w[i] / wsum
	}

	s := make([]float64, 0, n+2*(windowLen-1))
	if mode == ModeValid {
		// boundary reflection
		for i := windowLen - 1; i >= 1; i-- {
			s = append(s, x[i])
		}
		s = append(s, x...)
		for i := n - 1; i >= n-windowLen+1; i-- {
			s = append(s, x[i])
		}
		return convolve(kernel, s, ModeValid), nil
	}

	// point reflection through the end samples; the start offset is clamped
	// when the window spans the whole signal
	for i := min(windowLen, n-1); i >= 2; i-- {
		s = append(s, 2*x[0]-x[i])
	}
	s = append(s, x...)
	for i := n - 1; i >= n-windowLen+1; i-- {
		s = append(s, 2*x[n-1]-x[i])
	}
	y := convolve(kernel, s, mode)
	return y[windowLen-1 : len(y)-windowLen+1], nil
}

// convolve computes the 1-D convolution of kernel w with signal s and
// returns the slice selected by mode.
func convolve(w, s []float64, mode ConvMode) []float64 {
	nw, ns := len(w), len(s)
	full := make([]float64, nw+ns-1)
	for i := range s {
		for j := range w {
			full[i+j] += s[i] * w[j]
		}
	}
	switch mode {
	case ModeSame:
		out := max(ns, nw)
		start := (len(full) - out) / 2
		return full[start : start+out]
	case ModeValid:
		lo := min(ns, nw) - 1
		return full[lo:max(ns, nw)]
	default:
		return full
	}
}
