package card

import (
	"fmt"
	"math/rand/v2"
)

// Generator draws cards from a random source. A Generator built with
// NewGenerator is not safe for concurrent use; the package-level Generate is.
type Generator struct {
	perm func(n int) []int
}

// NewGenerator returns a generator drawing from src. The same source state
// always yields the same card.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{perm: rand.New(src).Perm}
}

var defaultGenerator = &Generator{perm: rand.Perm}

// Generate returns a new card drawn from the global random source
func Generate() *Card {
	return defaultGenerator.Generate()
}

// Generate fills every column with numbers drawn without replacement from
// its range, in draw order, then puts the free space in the center.
func (g *Generator) Generate() *Card {
	var c Card
	for col, r := range Ranges {
		for row, n := range g.sample(r, Size) {
			c.grid[row][col] = Number(n)
		}
	}

	// The number drawn for the center is dropped
	c.grid[FreeRow][FreeCol] = FreeSpace()
	return &c
}

// sample draws k distinct numbers from r. A range smaller than k is a
// programming error.
func (g *Generator) sample(r ColumnRange, k int) []int {
	if r.Len() < k {
		panic(fmt.Sprintf("card: range %d-%d holds %d numbers, need %d", r.Start, r.End, r.Len(), k))
	}
	offsets := g.perm(r.Len())[:k]
	numbers := make([]int, k)
	for i, off := range offsets {
		numbers[i] = r.Start + off
	}
	return numbers
}
