// Package tsio reads time series records from direct-access binary files and
// plain ASCII column files.
//
// The direct-access layout is the fixed-record format written by SIMO and
// RIFLEX: every record holds ndat 4-byte samples, the first record carries
// ndat itself in its leading bytes, the second record is the shared time
// array, and each following record is one response series. Series are
// addressed by index where index 0 is the time array and index k is the k-th
// response.
package tsio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/haukland/seastate/logging"
)

const recordSampleSize = 4

// ReadDirectAccess reads the series at the given indices from a direct-access
// file. For `.ts` and `.dis` files the record length is stored as an int32,
// for `.tda` files as a float32. A nil ind reads the time array and every
// response.
func ReadDirectAccess(path string, ind []int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open direct-access file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat direct-access file: %w", err)
	}

	ndat, err := readRecordLength(f, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	recordSize := int64(ndat) * recordSampleSize
	if info.Size()%recordSize != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of the record size %d", info.Size(), recordSize)
	}
	nrec := int(info.Size() / recordSize)
	// header record plus time record
	nts := nrec - 2
	if nts < 0 {
		return nil, fmt.Errorf("file holds %d records, need at least 2", nrec)
	}

	if ind == nil {
		ind = make([]int, nts+1)
		for i := range ind {
			ind[i] = i
		}
	}

	logging.Global().Debug("reading direct-access file", logging.Fields{
		"path": path, "ndat": ndat, "nts": nts, "series": len(ind),
	})

	out := make([][]float64, len(ind))
	buf := make([]float32, ndat)
	for k, i := range ind {
		if i < 0 || i > nts {
			return nil, fmt.Errorf("series index %d out of range [0, %d]", i, nts)
		}
		// record 0 is the header, the time array starts at record 1
		if _, err := f.Seek(int64(i+1)*recordSize, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek to series %d: %w", i, err)
		}
		if err := binary.Read(f, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("read series %d: %w", i, err)
		}
		row := make([]float64, ndat)
		for j, v := range buf {
			row[j] = float64(v)
		}
		out[k] = row
	}
	return out, nil
}

func readRecordLength(r io.Reader, ext string) (int, error) {
	var ndat int
	if strings.EqualFold(ext, ".tda") {
		var v float32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, fmt.Errorf("read record length: %w", err)
		}
		ndat = int(v)
	} else {
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, fmt.Errorf("read record length: %w", err)
		}
		ndat = int(v)
	}
	if ndat < 1 || ndat > math.MaxInt32 {
		return 0, fmt.Errorf("invalid record length %d", ndat)
	}
	return ndat, nil
}

// ReadASCII reads whitespace-separated numeric columns. Column 0 is the time
// array. The first skipRows lines are discarded, which covers the usual
// header comment lines. A nil ind reads every column.
func ReadASCII(path string, ind []int, skipRows int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ascii file: %w", err)
	}
	defer f.Close()

	var cols [][]float64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if line <= skipRows {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == nil {
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			return nil, fmt.Errorf("line %d has %d columns, expected %d", line, len(fields), len(cols))
		}
		for j, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, j, err)
			}
			cols[j] = append(cols[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ascii file: %w", err)
	}
	if cols == nil {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	logging.Global().Debug("read ascii file", logging.Fields{
		"path": path, "columns": len(cols), "rows": len(cols[0]),
	})

	if ind == nil {
		return cols, nil
	}
	out := make([][]float64, len(ind))
	for k, i := range ind {
		if i < 0 || i >= len(cols) {
			return nil, fmt.Errorf("column index %d out of range [0, %d]", i, len(cols)-1)
		}
		out[k] = cols[i]
	}
	return out, nil
}
