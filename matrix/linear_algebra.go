// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels over *Dense.
//
// Purpose:
//   - Element-wise Add/Sub/Scale/Negate, products (Mul, MulVec), Transpose.
//   - Determinant by cofactor expansion and the 2×2 closed-form Inverse.
//
// Notes:
//   - Every kernel validates first, allocates one fresh result, then runs a
//     fixed-order loop. Operands are never mutated.
//   - Errors are sentinels wrapped via matrixErrorf with an op tag.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numopt/vector"
)

// SingularThreshold is the |det| below which Inverse reports ErrSingular.
const SingularThreshold = 1e-10

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

func validateSameShape(a, b *Dense) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

func validateSquare(m *Dense) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidShape)
	}

	return nil
}

// blank allocates an r×c result carrying the policy of src.
func blank(r, c int, src *Dense) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: src.validateNaNInf}
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub: one validation, one allocation, one flat loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := blank(a.r, a.c, a)
	for k := range out.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := blank(m.r, m.c, m)
	for k, v := range m.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Negate returns −m.
func Negate(m *Dense) (*Dense, error) { return Scale(m, -1) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate non-nil and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks both b and out rows contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	out := blank(a.r, b.c, a)
	var i, k, j int
	var aik float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec computes y = m·x. Requires m.Cols() == x.Dim().
func MulVec(m *Dense, x vector.Vector) (vector.Vector, error) {
	if err := validateNotNil(m); err != nil {
		return vector.Vector{}, matrixErrorf(opMulVec, err)
	}
	if m.c != x.Dim() {
		return vector.Vector{}, matrixErrorf(opMulVec, fmt.Errorf("%dx%d · dim %d: %w", m.r, m.c, x.Dim(), ErrDimensionMismatch))
	}
	xs := x.Values()
	y := make([]float64, m.r)
	var sum float64
	for i := 0; i < m.r; i++ {
		sum = 0
		for j, xj := range xs {
			sum += m.data[i*m.c+j] * xj
		}
		y[i] = sum
	}

	return vector.New(y...), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := blank(m.c, m.r, m)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Determinant returns det(m) by Laplace expansion along the first row.
// MAIN DESCRIPTION:
//   - Closed forms for 1×1 and 2×2; recursive cofactor expansion above that.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square).
//
// Complexity:
//   - Time O(n!); meant for the small systems handled here.
func Determinant(m *Dense) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(m.data, m.r), nil
}

// cofactorDet expands an n×n row-major block along row 0.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}
	sub := make([]float64, (n-1)*(n-1))
	var det, sign float64 = 0, 1
	for col := 0; col < n; col++ {
		// minor: drop row 0 and column col
		k := 0
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				sub[k] = a[i*n+j]
				k++
			}
		}
		det += sign * a[col] * cofactorDet(sub, n-1)
		sign = -sign
	}

	return det
}

// Inverse returns m⁻¹ for a 2×2 matrix via the adjugate formula.
// MAIN DESCRIPTION:
//   - [[a, b], [c, d]]⁻¹ = 1/det · [[d, −b], [−c, a]].
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidShape when m is not exactly 2×2 (larger systems are unsupported).
//   - ErrSingular when |det| < SingularThreshold.
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.r != 2 || m.c != 2 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%dx%d, want 2x2: %w", m.r, m.c, ErrInvalidShape))
	}
	a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
	det := a*d - b*c
	if math.Abs(det) < SingularThreshold {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	out := blank(2, 2, m)
	inv := 1 / det
	out.data[0], out.data[1] = d*inv, -b*inv
	out.data[2], out.data[3] = -c*inv, a*inv

	return out, nil
}
