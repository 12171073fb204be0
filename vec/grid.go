package vec

import (
	"fmt"

	"github.com/sarchlab/cohort/scalar"
)

// A Grid is a dense rows-by-cols matrix of scalars stored column by column.
// Column views share storage with the grid, so writing through a view is
// visible to every other reader.
type Grid[T scalar.Number[T]] struct {
	rows, cols int
	data       []T
}

// NewGrid creates a zero-valued grid with the given shape.
func NewGrid[T scalar.Number[T]](rows, cols int) Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf(
			"vec: grid dimensions must be positive, got %dx%d", rows, cols))
	}

	data := make([]T, rows*cols)
	zero := scalar.FromFloat[T](0)
	for i := range data {
		data[i] = zero
	}

	return Grid[T]{rows: rows, cols: cols, data: data}
}

// GridFromColumns assembles a grid from equally sized column vectors. The
// columns are copied.
func GridFromColumns[T scalar.Number[T]](columns ...Vector[T]) Grid[T] {
	if len(columns) == 0 {
		panic("vec: grid needs at least one column")
	}

	rows := len(columns[0])
	g := NewGrid[T](rows, len(columns))
	for j, col := range columns {
		if len(col) != rows {
			panic(fmt.Sprintf(
				"vec: column %d has length %d, want %d", j, len(col), rows))
		}

		copy(g.Col(j), col)
	}

	return g
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid[T]) Cols() int {
	return g.cols
}

// At returns the element at the given row and column.
func (g Grid[T]) At(row, col int) T {
	g.mustBeInRange(row, col)

	return g.data[col*g.rows+row]
}

// Set writes the element at the given row and column.
func (g Grid[T]) Set(row, col int, value T) {
	g.mustBeInRange(row, col)

	g.data[col*g.rows+row] = value
}

// Col returns the column as a vector view. The view shares storage with the
// grid.
func (g Grid[T]) Col(col int) Vector[T] {
	if col < 0 || col >= g.cols {
		panic(fmt.Sprintf("vec: column %d out of range [0, %d)", col, g.cols))
	}

	return Vector[T](g.data[col*g.rows : (col+1)*g.rows])
}

// Fill sets every element to the given value.
func (g Grid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

func (g Grid[T]) mustBeInRange(row, col int) {
	if row < 0 || row >= g.rows {
		panic(fmt.Sprintf("vec: row %d out of range [0, %d)", row, g.rows))
	}

	if col < 0 || col >= g.cols {
		panic(fmt.Sprintf("vec: column %d out of range [0, %d)", col, g.cols))
	}
}
