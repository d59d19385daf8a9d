// SPDX-License-Identifier: MIT
// Package complexmat wraps gonum's complex dense matrix type (mat.CDense)
// with the tolerance-aware comparisons and determinant check that the
// matrix-closure step needs. gonum's mat.CMatrix surface gives us storage,
// products and conjugate-transpose for free; it does not expose a complex
// determinant or LU (those only exist for mat.Dense's real entries), so
// Det is a direct cofactor-free Gaussian elimination over complex128.
package complexmat

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a square complex matrix of fixed dimension.
//
// Matrix values are used only up through the closure and Cayley-table
// construction stages (see group-analysis lifecycle); once a Cayley table
// exists, all further work happens on integer element indices.
type Matrix struct {
	dim  int
	data *mat.CDense
}

// NewMatrix builds a Matrix from row-major entries. len(entries) must equal
// dim*dim; entries[i*dim+j] is row i, column j.
func NewMatrix(dim int, entries []complex128) (*Matrix, error) {
	if dim <= 0 || len(entries) != dim*dim {
		return nil, ErrNonSquare
	}
	cp := make([]complex128, len(entries))
	copy(cp, entries)

	return &Matrix{dim: dim, data: mat.NewCDense(dim, dim, cp)}, nil
}

// Identity returns the dim x dim identity matrix.
func Identity(dim int) *Matrix {
	entries := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		entries[i*dim+i] = 1
	}
	m, _ := NewMatrix(dim, entries)

	return m
}

// Dim returns the side length of the (square) matrix.
func (m *Matrix) Dim() int { return m.dim }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) complex128 { return m.data.At(i, j) }

// Mul returns m · other as a new Matrix. Both operands must share dim.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.dim != other.dim {
		return nil, ErrDimensionMismatch
	}
	out := mat.NewCDense(m.dim, m.dim, nil)
	out.Mul(m.data, other.data)

	return &Matrix{dim: m.dim, data: out}, nil
}

// Equal reports whether m and other agree entrywise within epsilon:
// |Re(a-b)| <= eps && |Im(a-b)| <= eps for every entry. This is the
// "tolerance compare" the spec's closure and Cayley-table steps rely on;
// it is deliberately looser than gonum's exact mat.CEqual.
func (m *Matrix) Equal(other *Matrix, eps float64) bool {
	if m.dim != other.dim {
		return false
	}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			d := m.At(i, j) - other.At(i, j)
			if math.Abs(real(d)) > eps || math.Abs(imag(d)) > eps {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m equals the identity matrix within epsilon.
func (m *Matrix) IsIdentity(eps float64) bool {
	return m.Equal(Identity(m.dim), eps)
}

// Det computes the determinant via Gaussian elimination with partial
// pivoting (largest-magnitude pivot in the working column). Generators
// accepted by the closure step are unitary-or-near-unitary by contract
// (|det|-1| <= eps is checked by the caller), so pivots never vanish in
// practice; a zero pivot after search yields a determinant of exactly 0.
func (m *Matrix) Det() complex128 {
	n := m.dim
	work := make([][]complex128, n)
	for i := range work {
		work[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			work[i][j] = m.At(i, j)
		}
	}

	det := complex(1, 0)
	for col := 0; col < n; col++ {
		pivot := col
		best := cmplx.Abs(work[col][col])
		for r := col + 1; r < n; r++ {
			if mag := cmplx.Abs(work[r][col]); mag > best {
				pivot, best = r, mag
			}
		}
		if best == 0 {
			return 0
		}
		if pivot != col {
			work[col], work[pivot] = work[pivot], work[col]
			det = -det
		}
		det *= work[col][col]
		for r := col + 1; r < n; r++ {
			factor := work[r][col] / work[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				work[r][c] -= factor * work[col][c]
			}
		}
	}

	return det
}

// ApproxUnitary is an auxiliary diagnostic (not part of the core closure
// contract, which only checks |det|-1|): it reports whether m·mᴴ is close
// to the identity within epsilon, using gonum's H() conjugate-transpose.
func (m *Matrix) ApproxUnitary(eps float64) bool {
	conj := mat.NewCDense(m.dim, m.dim, nil)
	conj.Mul(m.data, mat.Conjugate{CMatrix: m.data})
	wrapped := &Matrix{dim: m.dim, data: conj}

	return wrapped.IsIdentity(eps)
}
