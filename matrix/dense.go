// SPDX-License-Identifier: MIT

// Dense storage for Jacobians and their inverses. Accessors return errors,
// never panic, and Set refuses non-finite values.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numopt/vector"
)

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the accessor and the cell it was asked for, so a
// bad Jacobian entry reads as "Dense.Set(1,0): matrix: NaN or Inf encountered".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the matrix type of the toolkit: finitediff assembles Jacobians
// into it row by row, and newton inverts it. Cell (i, j) lives at data[i*c+j].
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense returns an r×c zero matrix, e.g. the empty m×n Jacobian that
// finitediff then fills. Both sizes must be positive (ErrInvalidDimensions).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a matrix from row literals, e.g. {{4, 7}, {2, 6}}.
// Every row must have the same, positive length; values go through Set so the
// numeric policy applies.
//
// Errors:
//   - ErrInvalidDimensions for no rows, empty rows or ragged rows.
//   - ErrNaNInf for non-finite entries.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewFromRows: no rows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrInvalidDimensions)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NewFromVectors stacks vectors as rows. All vectors must share one dimension.
func NewFromVectors(rows ...vector.Vector) (*Dense, error) {
	lits := make([][]float64, len(rows))
	for i, v := range rows {
		lits[i] = v.Values()
	}

	return NewFromRows(lits)
}

// Rows is the number of field components for a Jacobian.
func (m *Dense) Rows() int { return m.r }

// Cols is the dimension of the point for a Jacobian.
func (m *Dense) Cols() int { return m.c }

// Shape returns Rows and Cols.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) into data; callers add the cell context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads one partial derivative (or any cell); ErrOutOfRange outside the shape.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes one cell. It is how Jacobians and literals are assembled, and
// the one place where a non-finite derivative is caught (ErrNaNInf) before it
// can reach Inverse. Kernels never call Set on their operands.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row extracts row i as a vector.
func (m *Dense) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.r {
		return vector.Vector{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return vector.New(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col extracts column j as a vector.
func (m *Dense) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= m.c {
		return vector.Vector{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return vector.New(out...), nil
}

// Clone copies m, buffer included.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
