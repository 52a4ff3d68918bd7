package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSDLocatesPeak(t *testing.T) {
	// 1 Hz sine sampled at 100 Hz
	const dt = 0.01
	n := 4096
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 1.0 * float64(i) * dt)
	}

	freqs, power := PSD(x, dt, nil)
	require.NotEmpty(t, freqs)
	require.Len(t, power, len(freqs))

	peak := 0
	for i := range power {
		if power[i] > power[peak] {
			peak = i
		}
	}
	// default segment length n/4 = 1024 gives ~0.1 Hz resolution
	assert.InDelta(t, 1.0, freqs[peak], 0.1)
}

func TestPSDFrequencyAxis(t *testing.T) {
	x := make([]float64, 1024)
	for i := range x {
		x[i] = math.Sin(0.3 * float64(i))
	}
	freqs, _ := PSD(x, 0.1, &PSDOptions{NPerSeg: 256})
	require.NotEmpty(t, freqs)
	assert.Equal(t, 0.0, freqs[0])
	for i := 1; i < len(freqs); i++ {
		assert.Greater(t, freqs[i], freqs[i-1])
	}
	// one-sided axis tops out at the Nyquist frequency
	assert.InDelta(t, 5.0, freqs[len(freqs)-1], 1e-9)
}

func TestPSDDensityIntegratesToVariance(t *testing.T) {
	const dt = 0.05
	n := 8192
	x := make([]float64, n)
	for i := range x {
		x[i] = 2 * math.Sin(2*math.Pi*0.5*float64(i)*dt)
	}

	freqs, power := PSD(x, dt, &PSDOptions{NPerSeg: 2048})
	df := freqs[1] - freqs[0]
	var integral float64
	for _, p := range power {
		integral += p * df
	}
	// variance of a 2-amplitude sine is 2
	assert.InEpsilon(t, 2.0, integral, 0.2)
}

func TestPSDDetrendRemovesOffset(t *testing.T) {
	const dt = 0.1
	n := 2048
	x := make([]float64, n)
	for i := range x {
		x[i] = 100 + math.Sin(2*math.Pi*0.4*float64(i)*dt)
	}

	_, withDetrend := PSD(x, dt, &PSDOptions{Detrend: DetrendConstant})
	_, without := PSD(x, dt, &PSDOptions{Detrend: DetrendNone})

	// the constant offset dominates the DC bin unless detrended
	assert.Greater(t, without[0], withDetrend[0])
}

func TestDetrendLinear(t *testing.T) {
	x := make([]float64, 100)
	for i := range x {
		x[i] = 3 + 0.5*float64(i)
	}
	y := detrend(x, DetrendLinear)
	for _, v := range y {
		assert.InDelta(t, 0, v, 1e-9)
	}
}
