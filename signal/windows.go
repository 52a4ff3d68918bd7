package signal

import (
	"fmt"
	"math"
)

// WindowType names a window function shape.
type WindowType string

const (
	Rectangular WindowType = "rectangular"
	Hann        WindowType = "hann"
	Hanning     WindowType = "hanning" // alias for Hann
	Hamming     WindowType = "hamming"
	Bartlett    WindowType = "bartlett"
	Blackman    WindowType = "blackman"
	Tukey       WindowType = "tukey"
	Cosine      WindowType = "cosine" // also known as the sine window
	Kaiser      WindowType = "kaiser"
)

// generator builds window coefficients of length n. The alpha parameter is
// only consulted by the parameterized shapes: the Tukey edge fraction and the
// Kaiser beta.
type generator func(n int, alpha float64) []float64

// windowTable is the closed dispatch over the supported window shapes.
// Names resolve through this table only, so unrecognized names fail with
// ErrInvalidArgument instead of being evaluated dynamically.
var windowTable = map[WindowType]generator{
	Rectangular: func(n int, _ float64) []float64 { return rectangularWindow(n) },
	Hann:        func(n int, _ float64) []float64 { return hannWindow(n) },
	Hanning:     func(n int, _ float64) []float64 { return hannWindow(n) },
	Hamming:     func(n int, _ float64) []float64 { return hammingWindow(n) },
	Bartlett:    func(n int, _ float64) []float64 { return bartlettWindow(n) },
	Blackman:    func(n int, _ float64) []float64 { return blackmanWindow(n) },
	Tukey:       tukeyWindow,
	Cosine:      func(n int, _ float64) []float64 { return cosineWindow(n) },
	Kaiser:      kaiserWindow,
}

// Window returns the coefficients of the named window shape with n samples.
// alpha parameterizes the Tukey (tapered edge fraction) and Kaiser (beta)
// shapes and is ignored otherwise.
func Window(window WindowType, n int, alpha float64) ([]float64, error) {
	gen, ok := windowTable[window]
	if !ok {
		return nil, fmt.Errorf("unknown window %q: %w", window, ErrInvalidArgument)
	}
	if n < 1 {
		return nil, fmt.Errorf("window length must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	return gen(n, alpha), nil
}

func rectangularWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func bartlettWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		if 2*i <= n-1 {
			w[i] = 2 * float64(i) / float64(n-1)
		} else {
			w[i] = 2 - 2*float64(i)/float64(n-1)
		}
	}
	return w
}

func blackmanWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		arg := 2 * math.Pi * float64(i) / float64(n-1)
		w[i] = 0.42 - 0.5*math.Cos(arg) + 0.08*math.Cos(2*arg)
	}
	return w
}

// tukeyWindow is flat in the middle with half-cosine tapers covering the
// alpha fraction of the length. alpha 0 degenerates to rectangular and
// alpha 1 to a Hann-like shape.
func tukeyWindow(n int, alpha float64) []float64 {
	w := make([]float64, n)
	fn := float64(n)
	for i := range w {
		fi := float64(i)
		switch {
		case fi < alpha*fn/2:
			w[i] = 0.5 * (1 + math.Cos(math.Pi*(2*fi/(alpha*fn)-1)))
		case fi <= fn*(1-alpha/2):
			w[i] = 1
		default:
			w[i] = 0.5 * (1 + math.Cos(math.Pi*(2*fi/(alpha*fn)-2/alpha+1)))
		}
	}
	return w
}

// cosineWindow is a half period of a sine over the window length.
func cosineWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = math.Sin(math.Pi * float64(i) / float64(n-1))
	}
	return w
}

func kaiserWindow(n int, beta float64) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	i0beta := besselI0(beta)
	for i := range w {
		arg := 2*float64(i)/float64(n-1) - 1
		w[i] = besselI0(beta*math.Sqrt(1-arg*arg)) / i0beta
	}
	return w
}

// besselI0 computes the zero-order modified Bessel function of the first
// kind by series expansion.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	for i := 1; i < 50; i++ {
		term *= (x / (2 * float64(i))) * (x / (2 * float64(i)))
		sum += term
		if term < 1e-12 {
			break
		}
	}
	return sum
}
