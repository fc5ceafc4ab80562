package card

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireValid checks every rule a generated card must satisfy
func requireValid(t *testing.T, c *Card) {
	t.Helper()
	grid := c.Grid()
	require.Len(t, grid, Size)

	seen := make(map[int]bool)
	for row := 0; row < Size; row++ {
		require.Len(t, grid[row], Size)
		for col := 0; col < Size; col++ {
			cell := grid[row][col]
			if row == FreeRow && col == FreeCol {
				require.True(t, cell.IsFree(), "center must be free")
				continue
			}
			n, ok := cell.Number()
			require.True(t, ok, "cell (%d,%d) = %v, want a number", row, col, cell)
			r := Ranges[col]
			require.True(t, r.Contains(n), "number %d in column %d is out of range %d-%d", n, col, r.Start, r.End)
			require.False(t, seen[n], "duplicate number %d", n)
			seen[n] = true
		}
	}
	require.Len(t, seen, 24)
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 500; i++ {
		requireValid(t, Generate())
	}
}

func TestGenerateScenario(t *testing.T) {
	c := Generate()

	assert.True(t, c.At(2, 2).IsFree())

	first, ok := c.At(0, 0).Number()
	require.True(t, ok)
	assert.GreaterOrEqual(t, first, 1)
	assert.LessOrEqual(t, first, 15)

	last, ok := c.At(4, 4).Number()
	require.True(t, ok)
	assert.GreaterOrEqual(t, last, 61)
	assert.LessOrEqual(t, last, 75)

	set := make(map[int]struct{})
	for _, n := range c.Numbers() {
		set[n] = struct{}{}
	}
	assert.Len(t, set, 24)
}

func TestGenerateOnlyCenterIsFree(t *testing.T) {
	c := Generate()
	free := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if c.At(row, col).IsFree() {
				free++
			}
		}
	}
	assert.Equal(t, 1, free)
}

func TestGenerateDiffers(t *testing.T) {
	// Two equal cards come up with negligible probability
	a, b := Generate(), Generate()
	assert.False(t, a.Equal(b), "two generated cards are identical")
}

func TestGeneratorSeeded(t *testing.T) {
	a := NewGenerator(rand.NewPCG(42, 7)).Generate()
	b := NewGenerator(rand.NewPCG(42, 7)).Generate()
	c := NewGenerator(rand.NewPCG(43, 7)).Generate()

	requireValid(t, a)
	requireValid(t, c)
	assert.True(t, a.Equal(b), "same seed should give the same card")
	assert.False(t, a.Equal(c), "different seeds should give different cards")
}

func TestGeneratorKeepsDrawOrder(t *testing.T) {
	// Offsets come back highest first, so each column should read downward
	g := &Generator{perm: func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n - 1 - i
		}
		return out
	}}
	c := g.Generate()

	for col, r := range Ranges {
		for row := 0; row < Size; row++ {
			if row == FreeRow && col == FreeCol {
				assert.True(t, c.At(row, col).IsFree())
				continue
			}
			n, _ := c.At(row, col).Number()
			assert.Equal(t, r.End-row, n, "cell (%d,%d)", row, col)
		}
	}
}

func TestGeneratorCoversRanges(t *testing.T) {
	g := NewGenerator(rand.NewPCG(1, 2))
	counts := make(map[int]int)
	for i := 0; i < 2000; i++ {
		for _, n := range g.Generate().Numbers() {
			counts[n]++
		}
	}
	for n := 1; n <= 75; n++ {
		assert.Positive(t, counts[n], "number %d never drawn", n)
	}
	assert.Len(t, counts, 75)
}

func TestSamplePanicsOnShortRange(t *testing.T) {
	g := NewGenerator(rand.NewPCG(1, 1))
	assert.Panics(t, func() {
		g.sample(ColumnRange{Start: 1, End: 4}, Size)
	})
	assert.NotPanics(t, func() {
		g.sample(ColumnRange{Start: 1, End: 5}, Size)
	})
}

func TestSampleDistinct(t *testing.T) {
	g := NewGenerator(rand.NewPCG(9, 9))
	r := ColumnRange{Start: 31, End: 45}
	for i := 0; i < 200; i++ {
		numbers := g.sample(r, Size)
		seen := make(map[int]bool)
		for _, n := range numbers {
			assert.True(t, r.Contains(n))
			assert.False(t, seen[n], "duplicate %d in %v", n, numbers)
			seen[n] = true
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	cards := make([]*Card, 16)
	for i := range cards {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cards[i] = Generate()
		}(i)
	}
	wg.Wait()

	for _, c := range cards {
		requireValid(t, c)
	}
}
