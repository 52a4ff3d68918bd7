package signal

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// FindMaxima returns the maxima of x sorted ascending by value, along with
// the corresponding sample indices permuted identically.
//
// With local false only global maxima are considered: the largest sample
// between each pair of consecutive mean-level crossings in the direction
// selected by up, with ties resolved to the first occurrence. The final
// sample index is appended as an implicit crossing boundary so the tail
// segment is not dropped, which matters for low-frequent oscillations.
//
// With local true every turning point where the derivative changes sign from
// positive to negative is returned, independent of crossing segmentation.
//
// A signal with fewer than two crossings of the requested direction yields
// an empty result, not an error.
func FindMaxima(x []float64, local, up bool) ([]float64, []int) {
	crossings := crossingIndices(x, up)
	if len(crossings) < 2 {
		return []float64{}, []int{}
	}
	if crossings[len(crossings)-1] < len(x)-1 {
		crossings = append(crossings, len(x)-1)
	}

	maxima := []float64{}
	indices := []int{}
	if !local {
		for j := 0; j+1 < len(crossings); j++ {
			start, stop := crossings[j], crossings[j+1]
			off := floats.MaxIdx(x[start:stop])
			maxima = append(maxima, x[start+off])
			indices = append(indices, start+off)
		}
	} else {
		// descending indicator per sample; a flip from ascending to
		// descending marks a maximum
		n := len(x)
		ds := make([]int, n)
		for i := 0; i+1 < n; i++ {
			if x[i+1]-x[i] < 0 {
				ds[i] = 1
			}
		}
		for i := 1; i < n; i++ {
			if ds[i]-ds[i-1] == 1 {
				maxima = append(maxima, x[i])
				indices = append(indices, i)
			}
		}
	}

	sortByValue(maxima, indices)
	return maxima, indices
}

// FindMaximaAbove behaves like FindMaxima but discards maxima strictly below
// threshold. A NaN threshold fails with ErrInvalidArgument.
func FindMaximaAbove(x []float64, threshold float64, local, up bool) ([]float64, []int, error) {
	if math.IsNaN(threshold) {
		return nil, nil, fmt.Errorf("threshold must be a number, got NaN: %w", ErrInvalidArgument)
	}
	maxima, indices := FindMaxima(x, local, up)
	outV := []float64{}
	outI := []int{}
	for i, m := range maxima {
		if m >= threshold {
			outV = append(outV, m)
			outI = append(outI, indices[i])
		}
	}
	return outV, outI, nil
}

// sortByValue sorts values ascending and permutes indices identically.
func sortByValue(values []float64, indices []int) {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })
	sortedV := make([]float64, len(values))
	sortedI := make([]int, len(indices))
	for k, o := range order {
		sortedV[k] = values[o]
		sortedI[k] = indices[o]
	}
	copy(values, sortedV)
	copy(indices, sortedI)
}
