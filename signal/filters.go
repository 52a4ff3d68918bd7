package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// The filters share one skeleton: zero-pad to the next power of two,
// transform, multiply with a binary gain mask over the bin frequencies,
// inverse transform and truncate to the original length. Real input goes
// through the real-input optimized transform; the ...C variants take complex
// signals through the general transform.

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// binFreq returns the frequency in Hz of bin i of an nfft-point transform
// with sample spacing dt, with negative frequencies in the upper half of the
// bin range.
func binFreq(i, nfft int, dt float64) float64 {
	if i <= (nfft-1)/2 {
		return float64(i) / (float64(nfft) * dt)
	}
	return float64(i-nfft) / (float64(nfft) * dt)
}

// nudge replaces an exact zero cutoff with the smallest positive float so
// the mask is not degenerate at the DC bin.
func nudge(fc float64) float64 {
	if fc == 0 {
		return math.SmallestNonzeroFloat64
	}
	return fc
}

// applyFreqMask runs the filter skeleton for a real-valued signal. pass
// receives the absolute bin frequency.
func applyFreqMask(x []float64, dt float64, pass func(absFreq float64) bool) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}
	nfft := nextPow2(n)
	padded := make([]float64, nfft)
	copy(padded, x)
	fa := fft.FFTReal(padded)
	for i := range fa {
		if !pass(math.Abs(binFreq(i, nfft, dt))) {
			fa[i] = 0
		}
	}
	inv := fft.IFFT(fa)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(inv[i])
	}
	return out
}

// applyFreqMaskC runs the filter skeleton for a complex-valued signal.
func applyFreqMaskC(x []complex128, dt float64, pass func(absFreq float64) bool) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}
	nfft := nextPow2(n)
	padded := make([]complex128, nfft)
	copy(padded, x)
	fa := fft.FFT(padded)
	for i := range fa {
		if !pass(math.Abs(binFreq(i, nfft, dt))) {
			fa[i] = 0
		}
	}
	inv := fft.IFFT(fa)
	out := make([]complex128, n)
	copy(out, inv[:n])
	return out
}

// Lowpass filters x with time step dt, blocking harmonic content above the
// cutoff frequency fc.
func Lowpass(x []float64, dt, fc float64) []float64 {
	fc = nudge(fc)
	return applyFreqMask(x, dt, func(f float64) bool { return f <= fc })
}

// LowpassC is Lowpass for complex-valued signals.
func LowpassC(x []complex128, dt, fc float64) []complex128 {
	fc = nudge(fc)
	return applyFreqMaskC(x, dt, func(f float64) bool { return f <= fc })
}

// Highpass filters x with time step dt, blocking harmonic content below the
// cutoff frequency fc.
func Highpass(x []float64, dt, fc float64) []float64 {
	fc = nudge(fc)
	return applyFreqMask(x, dt, func(f float64) bool { return f >= fc })
}

// HighpassC is Highpass for complex-valued signals.
func HighpassC(x []complex128, dt, fc float64) []complex128 {
	fc = nudge(fc)
	return applyFreqMaskC(x, dt, func(f float64) bool { return f >= fc })
}

// Bandpass filters x with time step dt, blocking harmonic content outside
// the frequency band [flow, fupp]. A band with flow > fupp fails with
// ErrInvalidArgument.
func Bandpass(x []float64, dt, flow, fupp float64) ([]float64, error) {
	if err := checkBand(flow, fupp); err != nil {
		return nil, err
	}
	flow, fupp = nudge(flow), nudge(fupp)
	return applyFreqMask(x, dt, func(f float64) bool { return f >= flow && f <= fupp }), nil
}

// BandpassC is Bandpass for complex-valued signals.
func BandpassC(x []complex128, dt, flow, fupp float64) ([]complex128, error) {
	if err := checkBand(flow, fupp); err != nil {
		return nil, err
	}
	flow, fupp = nudge(flow), nudge(fupp)
	return applyFreqMaskC(x, dt, func(f float64) bool { return f >= flow && f <= fupp }), nil
}

// Bandblock filters x with time step dt, blocking harmonic content inside
// the frequency band [flow, fupp]. The mask is the complement of the
// Bandpass mask for the same band, so for any signal
// Bandpass(x)+Bandblock(x) reconstructs x up to transform error. A band with
// flow > fupp fails with ErrInvalidArgument.
func Bandblock(x []float64, dt, flow, fupp float64) ([]float64, error) {
	if err := checkBand(flow, fupp); err != nil {
		return nil, err
	}
	flow, fupp = nudge(flow), nudge(fupp)
	return applyFreqMask(x, dt, func(f float64) bool { return f < flow || f > fupp }), nil
}

// BandblockC is Bandblock for complex-valued signals.
func BandblockC(x []complex128, dt, flow, fupp float64) ([]complex128, error) {
	if err := checkBand(flow, fupp); err != nil {
		return nil, err
	}
	flow, fupp = nudge(flow), nudge(fupp)
	return applyFreqMaskC(x, dt, func(f float64) bool { return f < flow || f > fupp }), nil
}

func checkBand(flow, fupp float64) error {
	if flow > fupp {
		return fmt.Errorf("lower cutoff %g exceeds upper cutoff %g: %w", flow, fupp, ErrInvalidArgument)
	}
	return nil
}

// Threshold passes only transform components whose magnitude lies in
// (lower*max, upper*max], where max is the largest component magnitude and
// lower, upper are fractions of it. Unlike the frequency filters the mask
// selects on amplitude, not on bin frequency. Thresholds with lower > upper
// fail with ErrInvalidArgument.
func Threshold(x []float64, lower, upper float64) ([]float64, error) {
	if lower > upper {
		return nil, fmt.Errorf("lower threshold %g exceeds upper threshold %g: %w", lower, upper, ErrInvalidArgument)
	}
	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}
	nfft := nextPow2(n)
	padded := make([]float64, nfft)
	copy(padded, x)
	fa := fft.FFTReal(padded)
	maskAmplitudes(fa, lower, upper)
	inv := fft.IFFT(fa)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(inv[i])
	}
	return out, nil
}

// ThresholdC is Threshold for complex-valued signals.
func ThresholdC(x []complex128, lower, upper float64) ([]complex128, error) {
	if lower > upper {
		return nil, fmt.Errorf("lower threshold %g exceeds upper threshold %g: %w", lower, upper, ErrInvalidArgument)
	}
	n := len(x)
	if n == 0 {
		return []complex128{}, nil
	}
	nfft := nextPow2(n)
	padded := make([]complex128, nfft)
	copy(padded, x)
	fa := fft.FFT(padded)
	maskAmplitudes(fa, lower, upper)
	inv := fft.IFFT(fa)
	out := make([]complex128, n)
	copy(out, inv[:n])
	return out, nil
}

// maskAmplitudes zeroes components whose magnitude falls outside
// (lower*max, upper*max].
func maskAmplitudes(fa []complex128, lower, upper float64) {
	var maxMag float64
	for _, c := range fa {
		if m := cmplx.Abs(c); m > maxMag {
			maxMag = m
		}
	}
	for i, c := range fa {
		m := cmplx.Abs(c)
		if !(m > lower*maxMag && m <= upper*maxMag) {
			fa[i] = 0
		}
	}
}
