package vec

import (
	"fmt"
	"sort"

	"github.com/sarchlab/cohort/scalar"
)

// A Sparse is a rows-by-cols matrix that stores only its non-zero entries.
// Entries are staged with Insert and become readable once Compress fixes the
// internal layout.
type Sparse[T scalar.Number[T]] struct {
	rows, cols int

	staged []sparseEntry[T]

	rowPtr     []int
	colIdx     []int
	values     []T
	compressed bool
}

type sparseEntry[T scalar.Number[T]] struct {
	row, col int
	value    T
}

// NewSparse creates an empty sparse matrix with the given shape.
func NewSparse[T scalar.Number[T]](rows, cols int) *Sparse[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf(
			"vec: sparse dimensions must be positive, got %dx%d", rows, cols))
	}

	return &Sparse[T]{rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Sparse[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Sparse[T]) Cols() int {
	return m.cols
}

// NonZeroCount returns the number of stored entries.
func (m *Sparse[T]) NonZeroCount() int {
	if m.compressed {
		return len(m.values)
	}

	return len(m.staged)
}

// Insert stages an entry. Each position may be inserted at most once.
func (m *Sparse[T]) Insert(row, col int, value T) {
	if m.compressed {
		panic("vec: cannot insert into a compressed matrix")
	}

	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("vec: row %d out of range [0, %d)", row, m.rows))
	}

	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("vec: column %d out of range [0, %d)", col, m.cols))
	}

	m.staged = append(m.staged, sparseEntry[T]{row: row, col: col, value: value})
}

// Compress sorts the staged entries into row-major order and freezes the
// matrix. Compressing an already compressed matrix is a no-op.
func (m *Sparse[T]) Compress() {
	if m.compressed {
		return
	}

	sort.Slice(m.staged, func(i, j int) bool {
		a, b := m.staged[i], m.staged[j]
		if a.row != b.row {
			return a.row < b.row
		}

		return a.col < b.col
	})

	m.rowPtr = make([]int, m.rows+1)
	m.colIdx = make([]int, 0, len(m.staged))
	m.values = make([]T, 0, len(m.staged))

	row := 0
	for i, e := range m.staged {
		if i > 0 &&
			e.row == m.staged[i-1].row && e.col == m.staged[i-1].col {
			panic(fmt.Sprintf(
				"vec: duplicate entry at (%d, %d)", e.row, e.col))
		}

		for row < e.row {
			row++
			m.rowPtr[row] = len(m.values)
		}

		m.colIdx = append(m.colIdx, e.col)
		m.values = append(m.values, e.value)
	}

	for row < m.rows {
		row++
		m.rowPtr[row] = len(m.values)
	}

	m.staged = nil
	m.compressed = true
}

// At returns the entry at the given position, or zero if none is stored. The
// matrix must be compressed.
func (m *Sparse[T]) At(row, col int) T {
	m.mustBeCompressed()

	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("vec: row %d out of range [0, %d)", row, m.rows))
	}

	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("vec: column %d out of range [0, %d)", col, m.cols))
	}

	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], col)
	if k < hi && m.colIdx[k] == col {
		return m.values[k]
	}

	return scalar.FromFloat[T](0)
}

// MulVec multiplies the matrix with a column vector. Within each row the
// products are accumulated in ascending column order, starting from zero. The
// matrix must be compressed.
func (m *Sparse[T]) MulVec(x Vector[T]) Vector[T] {
	m.mustBeCompressed()

	if len(x) != m.cols {
		panic(fmt.Sprintf(
			"vec: vector length %d does not match %d columns",
			len(x), m.cols))
	}

	y := make(Vector[T], m.rows)
	for row := 0; row < m.rows; row++ {
		acc := scalar.FromFloat[T](0)
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			acc = acc.Add(m.values[k].Mul(x[m.colIdx[k]]))
		}

		y[row] = acc
	}

	return y
}

func (m *Sparse[T]) mustBeCompressed() {
	if !m.compressed {
		panic("vec: matrix must be compressed before reading")
	}
}
