// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/numopt/fit"
)

// ReadPoints parses samples from r.
//
// Errors:
//   - ErrMalformedRow (with line number) for a bad row.
//   - ErrEmpty when no sample is found.
//   - read errors from r, wrapped.
func ReadPoints(r io.Reader) ([]fit.Point, error) {
	var (
		points   []fit.Point
		sc       = bufio.NewScanner(r)
		line     = 0
		seenData = false
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields, err := split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedRow)
		}
		p, err := parse(fields)
		if err != nil {
			if !seenData && isHeader(fields) {
				seenData = true
				continue
			}
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedRow)
		}
		seenData = true
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadPoints: %w", err)
	}
	if len(points) == 0 {
		return nil, ErrEmpty
	}

	return points, nil
}

// LoadPoints opens path and reads it with ReadPoints.
func LoadPoints(path string) ([]fit.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadPoints: %w", err)
	}
	defer f.Close()

	points, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("LoadPoints(%s): %w", path, err)
	}

	return points, nil
}

// split breaks one line into fields: CSV when it contains a comma,
// whitespace otherwise.
func split(text string) ([]string, error) {
	if !strings.Contains(text, ",") {
		return strings.Fields(text), nil
	}
	cr := csv.NewReader(strings.NewReader(text))
	cr.TrimLeadingSpace = true
	fields, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, nil
}

func parse(fields []string) (fit.Point, error) {
	if len(fields) != 2 {
		return fit.Point{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	var xy [2]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fit.Point{}, fmt.Errorf("field %d %q: not a number", i+1, s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fit.Point{}, fmt.Errorf("field %d %q: not finite", i+1, s)
		}
		xy[i] = v
	}

	return fit.Point{X: xy[0], Y: xy[1]}, nil
}

// isHeader reports whether fields look like column names: no field parses
// as a number.
func isHeader(fields []string) bool {
	for _, s := range fields {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return false
		}
	}

	return len(fields) > 0
}
