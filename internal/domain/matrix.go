package domain

import "fmt"

// MaxCost is the solver's "no path / not computed" duration.
const MaxCost uint32 = 99999999

// RoutingStatus - статус пары origin/destination
type RoutingStatus string

const (
	RoutingStatusReached   RoutingStatus = "reached"
	RoutingStatusUnreached RoutingStatus = "unreached"
	RoutingStatusUnknown   RoutingStatus = "unknown"
)

// PairResult - результат для одной пары
type PairResult struct {
	Duration uint32        `json:"duration"`
	Status   RoutingStatus `json:"routing_status"`
}

// ResponseRow wraps every pair result of a request, origins-major.
type ResponseRow []PairResult

// MatrixEntry - сырой результат решателя для одной пары
type MatrixEntry struct {
	Duration uint32
	Distance float64
}

// Matrix - результаты решателя в виде двумерной таблицы origins x destinations
type Matrix struct {
	rows  int
	cols  int
	cells []MatrixEntry
}

// NewMatrix allocates a rows x cols matrix filled with MaxCost.
func NewMatrix(rows, cols int) Matrix {
	cells := make([]MatrixEntry, rows*cols)
	for i := range cells {
		cells[i].Duration = MaxCost
	}
	return Matrix{rows: rows, cols: cols, cells: cells}
}

// NewMatrixFromFlat builds a matrix from a row-major sequence. The length must be rows*cols.
func NewMatrixFromFlat(rows, cols int, flat []MatrixEntry) (Matrix, error) {
	if rows < 0 || cols < 0 || len(flat) != rows*cols {
		return Matrix{}, fmt.Errorf("matrix of %dx%d cannot hold %d results", rows, cols, len(flat))
	}
	cells := make([]MatrixEntry, len(flat))
	copy(cells, flat)
	return Matrix{rows: rows, cols: cols, cells: cells}, nil
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

func (m Matrix) At(i, j int) MatrixEntry {
	return m.cells[i*m.cols+j]
}

func (m Matrix) Set(i, j int, e MatrixEntry) {
	m.cells[i*m.cols+j] = e
}

// Flatten returns the entries origins-major, destinations-minor.
func (m Matrix) Flatten() []MatrixEntry {
	out := make([]MatrixEntry, len(m.cells))
	copy(out, m.cells)
	return out
}

// PairGrid - классифицированные результаты, grid[origin][destination]
type PairGrid [][]PairResult

// Flatten builds the single response row jormun expects.
func (g PairGrid) Flatten() ResponseRow {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	out := make(ResponseRow, 0, n)
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}
