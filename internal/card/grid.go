// Package card builds bingo cards that are engineered to win at a specific
// call when items are called in order 1, 2, 3, ...
//
// The package is pure: it does no I/O and never touches a global random
// source. Every randomized function takes an explicit *rand.Rand.
package card

import (
	"fmt"
	"strings"
)

// Size is the width and height of a card.
const Size = 5

// Grid is a 5x5 card of item orders. Grid is a value type; copies are
// independent.
type Grid [Size][Size]int

// Position identifies a cell by row and column, both in [0, Size).
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds returns true if the position lies on the card.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// OnMainDiagonal returns true for cells from top-left to bottom-right.
func (p Position) OnMainDiagonal() bool {
	return p.Row == p.Col
}

// OnAntiDiagonal returns true for cells from top-right to bottom-left.
func (p Position) OnAntiDiagonal() bool {
	return p.Row+p.Col == Size-1
}

// At returns the value at the given position.
func (g Grid) At(p Position) int {
	return g[p.Row][p.Col]
}

// Find returns the position holding value v.
func (g Grid) Find(v int) (Position, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == v {
				return P(r, c), true
			}
		}
	}
	return Position{}, false
}

// Values returns all 25 values in row-major order.
func (g Grid) Values() []int {
	values := make([]int, 0, Size*Size)
	for r := 0; r < Size; r++ {
		values = append(values, g[r][:]...)
	}
	return values
}

// Validate checks that every value is distinct and in [1, totalItems].
func (g Grid) Validate(totalItems int) error {
	seen := make(map[int]Position, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v < 1 || v > totalItems {
				return fmt.Errorf("card: value %d at %s outside [1, %d]", v, P(r, c), totalItems)
			}
			if prev, dup := seen[v]; dup {
				return fmt.Errorf("card: value %d repeated at %s and %s", v, prev, P(r, c))
			}
			seen[v] = P(r, c)
		}
	}
	return nil
}

// String renders the grid as five rows of right-aligned numbers.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%3d", g[r][c])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Line is one of the 12 winning five-cell sequences.
type Line struct {
	Name  string
	Cells [Size]Position
}

// Lines holds the 5 rows, 5 columns, main diagonal and anti-diagonal,
// in that order.
var Lines = buildLines()

func buildLines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for r := 0; r < Size; r++ {
		l := Line{Name: fmt.Sprintf("row %d", r+1)}
		for c := 0; c < Size; c++ {
			l.Cells[c] = P(r, c)
		}
		lines = append(lines, l)
	}
	for c := 0; c < Size; c++ {
		l := Line{Name: fmt.Sprintf("column %d", c+1)}
		for r := 0; r < Size; r++ {
			l.Cells[r] = P(r, c)
		}
		lines = append(lines, l)
	}
	diag := Line{Name: "main diagonal"}
	anti := Line{Name: "anti-diagonal"}
	for i := 0; i < Size; i++ {
		diag.Cells[i] = P(i, i)
		anti.Cells[i] = P(i, Size-1-i)
	}
	return append(lines, diag, anti)
}

// Intersecting returns every other cell that shares a row, column or
// diagonal with p. Cells reachable through more than one line appear once.
// Order is row-major.
func Intersecting(p Position) []Position {
	var mask [Size][Size]bool
	for i := 0; i < Size; i++ {
		mask[p.Row][i] = true
		mask[i][p.Col] = true
		if p.OnMainDiagonal() {
			mask[i][i] = true
		}
		if p.OnAntiDiagonal() {
			mask[i][Size-1-i] = true
		}
	}
	mask[p.Row][p.Col] = false

	out := make([]Position, 0, 4*(Size-1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if mask[r][c] {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}
