package validator

import (
	"fmt"
	"os"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/library"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	CardPath string
	Results  ValidationResults

	file *library.File
}

func NewValidator(cardPath string) *Validator {
	return &Validator{
		CardPath: cardPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a card file against the card rules. It collects every
// problem it finds; an error is returned only if the file cannot be read.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.loadCardFile(); err != nil {
		return v.Results, err
	}

	v.validateMetadata()
	grid, ok := v.validateShape()
	if ok {
		v.validateCells(grid)
	}

	return v.Results, nil
}

func (v *Validator) loadCardFile() error {
	if _, err := os.Stat(v.CardPath); os.IsNotExist(err) {
		return fmt.Errorf("card file not found: %s", v.CardPath)
	}

	f, err := library.DecodeFile(v.CardPath)
	if err != nil {
		return err
	}
	v.file = f
	return nil
}

func (v *Validator) validateMetadata() {
	if v.file.ID == "" {
		v.warn("id is missing")
	}
	if v.file.Created.IsZero() {
		v.warn("created timestamp is missing")
	}
}

// validateShape parses every cell, reporting shape and parse errors. ok is
// false when the grid is too broken for the rule checks to mean anything.
func (v *Validator) validateShape() (grid [card.Size][card.Size]card.Cell, ok bool) {
	rows := v.file.Grid
	if len(rows) == 0 {
		v.fail("grid is missing")
		return grid, false
	}

	ok = true
	if len(rows) != card.Size {
		v.fail(fmt.Sprintf("grid has %d rows, want %d", len(rows), card.Size))
		ok = false
	}

	for r, row := range rows {
		if len(row) != card.Size {
			v.fail(fmt.Sprintf("row %d has %d cells, want %d", r, len(row), card.Size))
			ok = false
		}
		if r >= card.Size {
			continue
		}
		for c, text := range row {
			if c >= card.Size {
				break
			}
			if err := grid[r][c].UnmarshalText([]byte(text)); err != nil {
				v.fail(fmt.Sprintf("cell (%d,%d): %v", r, c, err))
				ok = false
			}
		}
	}
	return grid, ok
}

// validateCells applies the card rules to every cell
func (v *Validator) validateCells(grid [card.Size][card.Size]card.Cell) {
	seen := make(map[int]struct{}, card.Size*card.Size)
	for r := 0; r < card.Size; r++ {
		for c := 0; c < card.Size; c++ {
			if err := card.CheckCell(grid[r][c], r, c, seen); err != nil {
				v.fail(err.Error())
			}
		}
	}
}

func (v *Validator) fail(msg string) {
	v.Results.Errors = append(v.Results.Errors, msg)
}

func (v *Validator) warn(msg string) {
	v.Results.Warnings = append(v.Results.Warnings, msg)
}
