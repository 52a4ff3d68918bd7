package signal

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// crossingIndices returns the sample indices where the demeaned signal
// crosses its mean level in the requested direction. An up-crossing at index
// i means x[i-1] is at or below the mean while x[i] is above it; a
// down-crossing is the mirrored transition out of the negative side.
func crossingIndices(x []float64, up bool) []int {
	mean := stat.Mean(x, nil)
	var idx []int
	for i := 1; i < len(x); i++ {
		prev := x[i-1] - mean
		cur := x[i] - mean
		if up {
			if prev <= 0 && cur > 0 {
				idx = append(idx, i)
			}
		} else {
			if prev < 0 && cur >= 0 {
				idx = append(idx, i)
			}
		}
	}
	return idx
}

// AverageFrequency returns the average frequency in Hz of mean-level
// crossings of x in the requested direction, estimated as the crossing count
// minus one divided by the duration between the first and last crossing.
// t holds the sample times of x.
//
// Fewer than two crossings of the requested direction fail with
// ErrInsufficientData.
func AverageFrequency(t, x []float64, up bool) (float64, error) {
	if len(t) != len(x) {
		return 0, fmt.Errorf("time vector length %d does not match signal length %d: %w", len(t), len(x), ErrInvalidArgument)
	}
	idx := crossingIndices(x, up)
	if len(idx) < 2 {
		direction := "up"
		if !up {
			direction = "down"
		}
		return 0, fmt.Errorf("found %d %s-crossings, need at least 2: %w", len(idx), direction, ErrInsufficientData)
	}
	d := (t[idx[len(idx)-1]] - t[idx[0]]) / float64(len(idx)-1)
	return 1 / d, nil
}
