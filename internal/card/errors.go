package card

import "errors"

var (
	// ErrEmptyCell is returned when a cell holds neither a number nor the free space
	ErrEmptyCell = errors.New("empty cell")
	// ErrInvalidCell is returned when a cell's text is not a number or FREE
	ErrInvalidCell = errors.New("invalid cell")
	// ErrShape is returned when a grid is not 5x5
	ErrShape = errors.New("grid must be 5x5")
	// ErrFreeSpace is returned when the free space is missing from the center or appears elsewhere
	ErrFreeSpace = errors.New("free space must be the center cell only")
	// ErrOutOfRange is returned when a number lies outside its column's range
	ErrOutOfRange = errors.New("number outside column range")
	// ErrDuplicate is returned when a number appears twice on a card
	ErrDuplicate = errors.New("duplicate number")
)
