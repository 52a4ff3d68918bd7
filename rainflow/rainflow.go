// Package rainflow implements rainflow cycle counting according to
// ASTM E1049-85 (2011), section 5.4.4, for fatigue assessment of dynamic
// response time series.
package rainflow

import (
	"fmt"
	"math"
	"sort"
)

// Cycle holds the start and end value of a counted load cycle. Keeping the
// orientation allows a time history to be reconstructed from the counted
// matrix, which range counting alone cannot do.
type Cycle struct {
	From float64
	To   float64
}

// Range returns the load range of the cycle.
func (c Cycle) Range() float64 { return math.Abs(c.To - c.From) }

// Mean returns the mean value of the cycle.
func (c Cycle) Mean() float64 { return 0.5 * (c.From + c.To) }

// CycleCount is one row of a cycle distribution table: the cycle range and
// mean together with the number of occurrences. Half cycles contribute 0.5,
// so counts need not be whole numbers.
type CycleCount struct {
	Range float64
	Mean  float64
	Count float64
}

// Reversals returns the points at which the first derivative of series
// changes sign. The first and last points of the series are never included.
func Reversals(series []float64) []float64 {
	if len(series) < 3 {
		return nil
	}
	var out []float64
	x := series[1]
	dLast := series[1] - series[0]
	for _, xNext := range series[2:] {
		if xNext == x {
			continue
		}
		dNext := xNext - x
		if dLast*dNext < 0 {
			out = append(out, x)
		}
		x = xNext
		dLast = dNext
	}
	return out
}

// Cycles extracts full and half cycles from series, keeping the from-to
// orientation of each cycle.
func Cycles(series []float64) (full, half []Cycle) {
	var points []float64
	for _, r := range Reversals(series) {
		points = append(points, r)
		for len(points) >= 3 {
			n := len(points)
			x := math.Abs(points[n-2] - points[n-1])
			y := math.Abs(points[n-3] - points[n-2])
			c := Cycle{From: points[n-2], To: points[n-3]}
			if x < y {
				// range X not yet closed, read the next reversal
				break
			}
			if n == 3 {
				// Y contains the starting point: count one half cycle
				// and discard the first point
				half = append(half, c)
				points = points[1:]
			} else {
				// count Y as one full cycle and discard its peak and valley
				full = append(full, c)
				last := points[n-1]
				points = points[:n-3]
				points = append(points, last)
			}
		}
	}
	// the remaining ranges count as half cycles
	for n := len(points); n > 1; n-- {
		half = append(half, Cycle{From: points[n-1], To: points[n-2]})
		points = points[:n-1]
	}
	return full, half
}

// CountOptions controls rounding and rebinning of the distribution returned
// by CountCycles.
type CountOptions struct {
	// NDigits rounds cycle ranges and means to the given number of decimals
	// before counting. Nil disables rounding.
	NDigits *int
	// NBins rebins the counted distribution to this many equidistant bins
	// covering [0, max range]. Ignored when it does not reduce the number
	// of rows.
	NBins int
	// BinWidth rebins the counted distribution to bins of this width,
	// starting at zero. NBins takes precedence when both are set.
	BinWidth float64
}

// CountCycles counts the cycles of series and returns (range, mean, count)
// rows sorted by increasing range, then mean. Half cycles are weighted 0.5.
func CountCycles(series []float64, opts *CountOptions) ([]CycleCount, error) {
	if opts == nil {
		opts = &CountOptions{}
	}
	full, half := Cycles(series)

	type rangeMean struct{ r, m float64 }
	counts := make(map[rangeMean]float64)
	accumulate := func(cycles []Cycle, weight float64) {
		for _, c := range cycles {
			key := rangeMean{c.Range(), c.Mean()}
			if opts.NDigits != nil {
				key.r = roundTo(key.r, *opts.NDigits)
				key.m = roundTo(key.m, *opts.NDigits)
			}
			counts[key] += weight
		}
	}
	accumulate(full, 1)
	accumulate(half, 0.5)

	rows := make([]CycleCount, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, CycleCount{Range: key.r, Mean: key.m, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Range != rows[j].Range {
			return rows[i].Range < rows[j].Range
		}
		return rows[i].Mean < rows[j].Mean
	})

	if opts.NBins > 0 && opts.NBins < len(rows) {
		return RebinNBins(rows, opts.NBins, opts.NDigits)
	}
	if opts.BinWidth > 0 {
		return RebinWidth(rows, opts.BinWidth, opts.NDigits)
	}
	return rows, nil
}

// RebinNBins rebins a cycle distribution to nbins equidistant bins covering
// [0, max range].
func RebinNBins(rows []CycleCount, nbins int, ndigits *int) ([]CycleCount, error) {
	maxRange := maxCycleRange(rows)
	bins := make([]float64, nbins+1)
	for i := range bins {
		bins[i] = maxRange * float64(i) / float64(nbins)
	}
	return Rebin(rows, bins, ndigits)
}

// RebinWidth rebins a cycle distribution to bins of the given width,
// starting at zero and covering the maximum range.
func RebinWidth(rows []CycleCount, width float64, ndigits *int) ([]CycleCount, error) {
	maxRange := maxCycleRange(rows)
	var bins []float64
	for b := 0.0; b < maxRange+width; b += width {
		bins = append(bins, b)
	}
	return Rebin(rows, bins, ndigits)
}

// Rebin gathers cycle counts into the bins given by their boundaries: a
// cycle falls in a bin when lower < range <= upper. The rebinned rows are
// discretized by the bin midpoints; the mean of each bin is the
// count-weighted average of the gathered cycle means, NaN for empty bins.
//
// Rebinning may shift a significant share of the count to rows with a
// different midpoint than the original cycle range.
func Rebin(rows []CycleCount, bins []float64, ndigits *int) ([]CycleCount, error) {
	maxRange := maxCycleRange(rows)
	var maxBin float64
	for _, b := range bins {
		if b > maxBin {
			maxBin = b
		}
	}
	if maxRange > maxBin {
		return nil, fmt.Errorf("maximum cycle range %g exceeds the upper bin boundary %g", maxRange, maxBin)
	}

	out := make([]CycleCount, 0, len(bins)-1)
	for i := 0; i+1 < len(bins); i++ {
		lo, hi := bins[i], bins[i+1]
		var n, weighted float64
		for _, row := range rows {
			if row.Range > lo && row.Range <= hi {
				n += row.Count
				weighted += row.Count * row.Mean
			}
		}
		mid := 0.5 * (lo + hi)
		if ndigits != nil {
			mid = roundTo(mid, *ndigits)
		}
		mean := math.NaN()
		if n > 0 {
			mean = weighted / n
		}
		out = append(out, CycleCount{Range: mid, Mean: mean, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Range < out[j].Range })
	return out, nil
}

func maxCycleRange(rows []CycleCount) float64 {
	var m float64
	for _, row := range rows {
		if row.Range > m {
			m = row.Range
		}
	}
	return m
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
