package core

import "errors"

// Matrix is a dense row-major matrix of float64 values.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromColumns builds an r x len(cols) matrix whose j-th column is cols[j].
// All columns must have length r.
func FromColumns(r int, cols ...[]float64) (*Matrix, error) {
	m := NewMatrix(r, len(cols))
	for j, col := range cols {
		if len(col) != r {
			return nil, errors.New("core: column length mismatch")
		}
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// Rows returns the matrix as a slice of row views sharing the backing array.
// This is the layout the tree learners consume.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.R)
	for i := 0; i < m.R; i++ {
		out[i] = m.Data[i*m.C : (i+1)*m.C : (i+1)*m.C]
	}
	return out
}
