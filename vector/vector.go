// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// normalizeFloor is the magnitude below which Normalize returns the zero vector.
const normalizeFloor = 1e-12

// Vector is an immutable ordered tuple of float64 values.
// The zero value is a valid vector of dimension 0.
type Vector struct {
	data []float64
}

// New builds a Vector holding a copy of values.
// Complexity: O(n).
func New(values ...float64) Vector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Vector{data: cp}
}

// Zeros returns the n-dimensional zero vector.
// Returns ErrInvalidDimension when n <= 0.
func Zeros(n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, fmt.Errorf("Zeros(%d): %w", n, ErrInvalidDimension)
	}

	return Vector{data: make([]float64, n)}, nil
}

// Basis returns h·e_i in n dimensions: zero everywhere except coordinate i.
// It is the perturbation used by forward differencing.
//
// Errors:
//   - ErrInvalidDimension when n <= 0.
//   - ErrOutOfRange when i is outside [0, n).
func Basis(n, i int, h float64) (Vector, error) {
	v, err := Zeros(n)
	if err != nil {
		return Vector{}, err
	}
	if i < 0 || i >= n {
		return Vector{}, fmt.Errorf("Basis(%d,%d): %w", n, i, ErrOutOfRange)
	}
	v.data[i] = h

	return v, nil
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.data) }

// At returns component i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("At(%d) on dim %d: %w", i, len(v.data), ErrOutOfRange)
	}

	return v.data[i], nil
}

// With returns a copy of v whose component i is replaced by x.
// The receiver is left untouched.
func (v Vector) With(i int, x float64) (Vector, error) {
	if i < 0 || i >= len(v.data) {
		return Vector{}, fmt.Errorf("With(%d) on dim %d: %w", i, len(v.data), ErrOutOfRange)
	}
	out := v.clone()
	out.data[i] = x

	return out, nil
}

// Values returns a copy of the components.
func (v Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := sameDim("Add", v, w); err != nil {
		return Vector{}, err
	}

	return Vector{data: floats.AddTo(make([]float64, len(v.data)), v.data, w.data)}, nil
}

// Sub returns v − w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := sameDim("Sub", v, w); err != nil {
		return Vector{}, err
	}

	return Vector{data: floats.SubTo(make([]float64, len(v.data)), v.data, w.data)}, nil
}

// Hadamard returns the element-wise product v ⊙ w.
func (v Vector) Hadamard(w Vector) (Vector, error) {
	if err := sameDim("Hadamard", v, w); err != nil {
		return Vector{}, err
	}

	return Vector{data: floats.MulTo(make([]float64, len(v.data)), v.data, w.data)}, nil
}

// Scale returns alpha·v.
func (v Vector) Scale(alpha float64) Vector {
	return Vector{data: floats.ScaleTo(make([]float64, len(v.data)), alpha, v.data)}
}

// Negate returns −v.
func (v Vector) Negate() Vector { return v.Scale(-1) }

// Dot returns the inner product Σ v_i·w_i.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := sameDim("Dot", v, w); err != nil {
		return 0, err
	}

	return floats.Dot(v.data, w.data), nil
}

// Norm returns the Euclidean magnitude ‖v‖₂. The empty vector has norm 0.
func (v Vector) Norm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(v.data, 2)
}

// Normalize returns v/‖v‖. A vector whose magnitude is below 1e-12 maps to
// the zero vector of the same dimension instead of dividing by ~0.
func (v Vector) Normalize() Vector {
	mag := v.Norm()
	if math.Abs(mag) < normalizeFloor {
		return Vector{data: make([]float64, len(v.data))}
	}

	return v.Scale(1 / mag)
}

// Equal reports exact component-wise equality. Vectors of different
// dimension are never equal.
func (v Vector) Equal(w Vector) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every pair of components agrees within tol,
// absolute or relative. Vectors of different dimension are never equal.
func (v Vector) ApproxEqual(w Vector, tol float64) bool {
	if len(v.data) != len(w.data) {
		return false
	}

	return floats.EqualApprox(v.data, w.data, tol)
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// String renders the vector as "(a, b, c)".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}

func (v Vector) clone() Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return Vector{data: cp}
}

// sameDim guards every binary kernel; floats.*To panics on length mismatch.
func sameDim(op string, v, w Vector) error {
	if len(v.data) != len(w.data) {
		return fmt.Errorf("%s(%d,%d): %w", op, len(v.data), len(w.data), ErrDimensionMismatch)
	}

	return nil
}
