package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haukland/seastate/logging"
	"github.com/haukland/seastate/tsio"
)

// loadSeries reads a time series file and returns the time array plus the
// response series. Direct-access extensions go through the binary reader,
// everything else is treated as whitespace-separated ASCII columns.
func loadSeries(path string, ind []int, skipRows int) (t []float64, responses [][]float64, err error) {
	// index 0 is always the time array
	var sel []int
	if ind != nil {
		sel = append([]int{0}, ind...)
	}

	var rows [][]float64
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".dis", ".tda":
		rows, err = tsio.ReadDirectAccess(path, sel)
	default:
		rows, err = tsio.ReadASCII(path, sel, skipRows)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%s holds no response series", path)
	}

	logging.Global().Debug("loaded time series", logging.Fields{
		"path": path, "responses": len(rows) - 1, "samples": len(rows[0]),
	})
	return rows[0], rows[1:], nil
}

// timeStep returns the sampling interval of an equidistant time array.
func timeStep(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, fmt.Errorf("time array has %d samples, need at least 2", len(t))
	}
	return (t[len(t)-1] - t[0]) / float64(len(t)-1), nil
}
