package desk

const (
	NumColumns  = 5
	NumRows     = 4
	NumCells    = 16
	NumDiscards = 4

	// MaxDestination is the highest destination number; 1-16 are game
	// cells and 17-20 are discard slots.
	MaxDestination = NumCells + NumDiscards
)

// Layout maps the columns and rows of the game desk to cell numbers.
//
// The outer columns hold 2 cells and the inner ones 4. Numbering runs
// across the desk row by row:
//
//	1   2   3   4   5
//	6   7   8   9   10
//	    11  12  13
//	    14  15  16
type Layout struct {
	columns [][]int
	rows    [][]int
}

// NewLayout builds the desk layout
func NewLayout() *Layout {
	l := &Layout{
		columns: make([][]int, NumColumns),
		rows:    make([][]int, NumRows),
	}

	for i := range l.columns {
		// first and last column have 2 cells, the rest 4
		n := NumRows
		if i == 0 || i == NumColumns-1 {
			n = 2
		}

		col := make([]int, n)
		for j := range col {
			if j == 0 {
				col[j] = i + 1
			} else {
				col[j] = col[j-1] + NumColumns - (j - 1)
			}
		}
		l.columns[i] = col
	}

	for j := range l.rows {
		for _, col := range l.columns {
			if j < len(col) {
				l.rows[j] = append(l.rows[j], col[j])
			}
		}
	}

	return l
}

// Columns returns the cell numbers of every column, left to right
func (l *Layout) Columns() [][]int {
	return copyLines(l.columns)
}

// Rows returns the cell numbers of every row, top to bottom
func (l *Layout) Rows() [][]int {
	return copyLines(l.rows)
}

// Column returns the cell numbers of column i (0-based)
func (l *Layout) Column(i int) []int {
	return append([]int(nil), l.columns[i]...)
}

// Row returns the cell numbers of row j (0-based)
func (l *Layout) Row(j int) []int {
	return append([]int(nil), l.rows[j]...)
}

// CellAt returns the cell number at row j of column i. ok is false when
// the column is too short to have that row.
func (l *Layout) CellAt(i, j int) (cell int, ok bool) {
	if i < 0 || i >= len(l.columns) || j < 0 || j >= len(l.columns[i]) {
		return 0, false
	}
	return l.columns[i][j], true
}

func copyLines(lines [][]int) [][]int {
	out := make([][]int, len(lines))
	for i, line := range lines {
		out[i] = append([]int(nil), line...)
	}
	return out
}
