package card

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of rows and columns on a card
const Size = 5

// Position of the free space
const (
	FreeRow = 2
	FreeCol = 2
)

// Letters heads the columns, one letter per column
const Letters = "BINGO"

// FreeLabel is how the free space is written in card files and output
const FreeLabel = "FREE"

// ColumnRange is an inclusive range of numbers a column draws from
type ColumnRange struct {
	Start int
	End   int
}

// Len returns how many numbers the range holds
func (r ColumnRange) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether n lies within the range
func (r ColumnRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Ranges holds the American convention, column 0 (B) through column 4 (O)
var Ranges = [Size]ColumnRange{
	{Start: 1, End: 15},
	{Start: 16, End: 30},
	{Start: 31, End: 45},
	{Start: 46, End: 60},
	{Start: 61, End: 75},
}

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellNumber
	cellFree
)

// Cell holds either a number or the free space. The zero Cell is empty and
// never appears on a generated card.
type Cell struct {
	kind  cellKind
	value int
}

// Number returns a cell holding n
func Number(n int) Cell {
	return Cell{kind: cellNumber, value: n}
}

// FreeSpace returns the free space marker cell
func FreeSpace() Cell {
	return Cell{kind: cellFree}
}

// IsFree reports whether the cell is the free space
func (c Cell) IsFree() bool {
	return c.kind == cellFree
}

// IsEmpty reports whether the cell was never filled
func (c Cell) IsEmpty() bool {
	return c.kind == cellEmpty
}

// Number returns the cell's value and true, or 0 and false for a free or
// empty cell.
func (c Cell) Number() (int, bool) {
	if c.kind != cellNumber {
		return 0, false
	}
	return c.value, true
}

func (c Cell) String() string {
	switch c.kind {
	case cellFree:
		return FreeLabel
	case cellNumber:
		return strconv.Itoa(c.value)
	default:
		return ""
	}
}

// MarshalText writes the cell as a decimal number or FREE
func (c Cell) MarshalText() ([]byte, error) {
	if c.kind == cellEmpty {
		return nil, ErrEmptyCell
	}
	return []byte(c.String()), nil
}

// UnmarshalText reads a decimal number or FREE (any case)
func (c *Cell) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.EqualFold(s, FreeLabel) {
		*c = FreeSpace()
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}
	*c = Number(n)
	return nil
}

// MarshalJSON writes numbers as JSON numbers and the free space as "FREE"
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case cellNumber:
		return json.Marshal(c.value)
	case cellFree:
		return json.Marshal(FreeLabel)
	default:
		return nil, ErrEmptyCell
	}
}

// UnmarshalJSON accepts a JSON number or the string "FREE"
func (c *Cell) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCell, data)
	}
	return c.UnmarshalText([]byte(s))
}

// Card is a 5x5 bingo card. A Card is never modified once built.
type Card struct {
	grid [Size][Size]Cell
}

// At returns the cell at row, col. It panics if either index is outside 0..4.
func (c *Card) At(row, col int) Cell {
	return c.grid[row][col]
}

// Grid returns a copy of the card's cells indexed [row][col]
func (c *Card) Grid() [Size][Size]Cell {
	return c.grid
}

// Numbers returns the 24 numbers on the card in row-major order
func (c *Card) Numbers() []int {
	numbers := make([]int, 0, Size*Size-1)
	for _, row := range c.grid {
		for _, cell := range row {
			if n, ok := cell.Number(); ok {
				numbers = append(numbers, n)
			}
		}
	}
	return numbers
}

// Contains reports where n sits on the card, if it does
func (c *Card) Contains(n int) (row, col int, ok bool) {
	for r := range c.grid {
		for k, cell := range c.grid[r] {
			if v, isNum := cell.Number(); isNum && v == n {
				return r, k, true
			}
		}
	}
	return 0, 0, false
}

// Equal reports whether both cards hold the same cells
func (c *Card) Equal(other *Card) bool {
	return c.grid == other.grid
}

// Rows renders the grid as strings, the form used by card files
func (c *Card) Rows() [][]string {
	rows := make([][]string, Size)
	for r, row := range c.grid {
		rows[r] = make([]string, Size)
		for k, cell := range row {
			rows[r][k] = cell.String()
		}
	}
	return rows
}

type cardJSON struct {
	Grid [Size][Size]Cell `json:"grid"`
}

func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Grid: c.grid})
}

// UnmarshalJSON decodes {"grid": [[...]]} and checks it with FromGrid
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromGrid(raw.Grid)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// FromGrid builds a card from stored cells. The grid must satisfy every rule
// a generated card does.
func FromGrid(grid [Size][Size]Cell) (*Card, error) {
	seen := make(map[int]struct{}, Size*Size-1)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if err := CheckCell(grid[row][col], row, col, seen); err != nil {
				return nil, err
			}
		}
	}
	return &Card{grid: grid}, nil
}

// ParseRows builds a card from the string form written by Rows
func ParseRows(rows [][]string) (*Card, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShape, len(rows), Size)
	}
	var grid [Size][Size]Cell
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, r, len(row), Size)
		}
		for k, s := range row {
			if err := grid[r][k].UnmarshalText([]byte(s)); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, k, err)
			}
		}
	}
	return FromGrid(grid)
}

// CheckCell applies the card rules to a single cell. seen collects numbers
// already checked so duplicates across calls are caught.
func CheckCell(cell Cell, row, col int, seen map[int]struct{}) error {
	center := row == FreeRow && col == FreeCol
	switch {
	case cell.IsEmpty():
		return fmt.Errorf("%w at (%d,%d)", ErrEmptyCell, row, col)
	case center && !cell.IsFree():
		return fmt.Errorf("%w: center (%d,%d) holds %s", ErrFreeSpace, row, col, cell)
	case center:
		return nil
	case cell.IsFree():
		return fmt.Errorf("%w: (%d,%d) is not the center", ErrFreeSpace, row, col)
	}

	n, _ := cell.Number()
	if r := Ranges[col]; !r.Contains(n) {
		return fmt.Errorf("%w: %d in column %c (%d-%d)", ErrOutOfRange, n, Letters[col], r.Start, r.End)
	}
	if _, dup := seen[n]; dup {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrDuplicate, n, row, col)
	}
	seen[n] = struct{}{}
	return nil
}
