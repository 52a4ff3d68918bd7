package signal

import (
	"math"
	"math/rand"
)

const tolerance = 1e-9

// linspace returns num evenly spaced samples over [start, stop], both ends
// inclusive.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// sineAt samples amplitude*sin(2*pi*freq*t) on the given time vector.
func sineAt(t []float64, amplitude, freq float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*ti)
	}
	return out
}

// generateSine creates numCycles full cycles of a unit-rate sine sampled
// with samplesPerCycle points per period.
func generateSine(amplitude float64, samplesPerCycle, numCycles int) []float64 {
	n := samplesPerCycle * numCycles
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(i)/float64(samplesPerCycle))
	}
	return out
}

// noisyTwoTone reproduces the reference fixture: a 0.05 Hz carrier with a
// smaller 0.15 Hz component and seeded Gaussian noise.
func noisyTwoTone(t []float64, noise float64) []float64 {
	rng := rand.New(rand.NewSource(42))
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2*math.Pi*0.05*ti) +
			0.15*math.Sin(2*math.Pi*0.15*ti) +
			noise*rng.NormFloat64()
	}
	return out
}

func rms(x []float64) float64 {
	var ss float64
	for _, v := range x {
		ss += v * v
	}
	return math.Sqrt(ss / float64(len(x)))
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}
