// Package stats provides sample statistics and empirical distribution
// helpers for dynamic response records.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CDFKind names an empirical CDF plotting position formula.
type CDFKind string

const (
	// CDFMean is Gumbel's i/(n+1), also known as the Weibull method. It
	// produces the same positions whether the sample is assembled in
	// ascending or descending order.
	CDFMean CDFKind = "mean"
	// CDFMedian is (i-0.3)/(n+0.4), which approximates the median of the
	// distribution-free estimate to about 0.1% even for small n.
	CDFMedian CDFKind = "median"
	// CDFSymmetrical is (i-0.5)/n.
	CDFSymmetrical CDFKind = "symmetrical"
	// CDFBeard is Jenkinson's/Beard's (i-0.31)/(n+0.38).
	CDFBeard CDFKind = "beard"
	// CDFGringorten is (i-0.44)/(n+0.12), unbiased for the type 1 extreme
	// value distribution.
	CDFGringorten CDFKind = "gringorten"
)

// EmpiricalCDF returns the empirical cumulative distribution function for a
// sample of size n as plotting positions for i = 1..n.
func EmpiricalCDF(n int, kind CDFKind) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}
	f := make([]float64, n)
	fn := float64(n)
	for j := range f {
		i := float64(j + 1)
		switch kind {
		case CDFMean:
			f[j] = i / (fn + 1)
		case CDFMedian:
			f[j] = (i - 0.3) / (fn + 0.4)
		case CDFSymmetrical:
			f[j] = (i - 0.5) / fn
		case CDFBeard:
			f[j] = (i - 0.31) / (fn + 0.38)
		case CDFGringorten:
			f[j] = (i - 0.44) / (fn + 0.12)
		default:
			return nil, fmt.Errorf("unknown empirical CDF kind %q", kind)
		}
	}
	return f, nil
}

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N        int
	Min      float64
	Max      float64
	Mean     float64
	Std      float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
	RMS      float64
}

// Describe computes a descriptive summary of x. An empty sample yields NaN
// for every moment.
func Describe(x []float64) Summary {
	s := Summary{N: len(x)}
	if len(x) == 0 {
		s.Min, s.Max = math.NaN(), math.NaN()
		s.Mean, s.Std = math.NaN(), math.NaN()
		s.Skewness, s.Kurtosis = math.NaN(), math.NaN()
		s.RMS = math.NaN()
		return s
	}
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.Mean = stat.Mean(x, nil)
	s.Std = math.Sqrt(stat.Variance(x, nil))
	s.Skewness = stat.Skew(x, nil)
	s.Kurtosis = stat.ExKurtosis(x, nil)
	var ss float64
	for _, v := range x {
		ss += v * v
	}
	s.RMS = math.Sqrt(ss / float64(len(x)))
	return s
}
