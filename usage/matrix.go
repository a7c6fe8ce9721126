package usage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfBounds indicates that a row or column index is outside the matrix.
var ErrIndexOutOfBounds = errors.New("usage: index out of bounds")

// matrixErrorf wraps err with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square row-major matrix of crossing counts.
// A 0×0 matrix is valid: graphs may be empty.
type Matrix struct {
	n    int
	data []int // length n*n
}

// NewMatrix returns an n×n zero matrix. Negative n is treated as 0.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}

	return &Matrix{n: n, data: make([]int, n*n)}
}

// Size returns the matrix order.
func (m *Matrix) Size() int {
	return m.n
}

func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At returns the count at (row, col).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// addSymmetric increments (i, j) and (j, i). Indices come from the analyzer's
// node index and are always in range.
func (m *Matrix) addSymmetric(i, j int) {
	m.data[i*m.n+j]++
	m.data[j*m.n+i]++
}

// Row returns a copy of row i, or nil when out of range.
func (m *Matrix) Row(i int) []int {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// IsSymmetric reports whether M[i][j] == M[j][i] for every cell.
func (m *Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// UpperTriangle returns every M[i][j] with i < j in row-major order.
func (m *Matrix) UpperTriangle() []int {
	if m.n < 2 {
		return []int{}
	}
	out := make([]int, 0, m.n*(m.n-1)/2)
	for i := 0; i < m.n; i++ {
		out = append(out, m.data[i*m.n+i+1:(i+1)*m.n]...)
	}

	return out
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
