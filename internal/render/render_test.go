package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/config"
)

func lowCard(t *testing.T) *card.Card {
	t.Helper()
	var grid [card.Size][card.Size]card.Cell
	for col, r := range card.Ranges {
		for row := 0; row < card.Size; row++ {
			grid[row][col] = card.Number(r.Start + row)
		}
	}
	grid[card.FreeRow][card.FreeCol] = card.FreeSpace()
	c, err := card.FromGrid(grid)
	require.NoError(t, err)
	return c
}

func TestLinesPlain(t *testing.T) {
	want := []string{
		"+----+----+----+----+----+",
		"| B  | I  | N  | G  | O  |",
		"+----+----+----+----+----+",
		"|  1 | 16 | 31 | 46 | 61 |",
		"|  2 | 17 | 32 | 47 | 62 |",
		"|  3 | 18 |FREE| 48 | 63 |",
		"|  4 | 19 | 34 | 49 | 64 |",
		"|  5 | 20 | 35 | 50 | 65 |",
		"+----+----+----+----+----+",
	}
	got := Lines(lowCard(t), Options{})
	assert.Equal(t, want, got)
	for _, line := range got {
		assert.Len(t, line, CardWidth)
	}
}

func TestLinesColor(t *testing.T) {
	c := lowCard(t)
	colored := Lines(c, Options{Color: true})
	plain := Lines(c, Options{})

	require.Len(t, colored, len(plain))
	assert.Contains(t, colored[1], "\x1b[1;38;2;")
	assert.Contains(t, colored[5], "\x1b[")
	for i := range colored {
		assert.Equal(t, plain[i], StripAnsi(colored[i]))
	}
}

func TestWriteSideBySide(t *testing.T) {
	cards := []*card.Card{lowCard(t), lowCard(t), lowCard(t)}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cards, Options{Width: 80}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 19)
	assert.Len(t, lines[0], 2*CardWidth+gap)
	assert.Equal(t, "", lines[9])
	assert.Len(t, lines[10], CardWidth)
}

func TestWriteNarrowTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []*card.Card{lowCard(t), lowCard(t)}, Options{Width: 10}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 19)
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "FREE", StripAnsi("\x1b[93;1mFREE\x1b[0m"))
	assert.Equal(t, "plain", StripAnsi("plain"))
}

func TestTerminalHelpersOnPlainFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultWidth, TerminalWidth(f))
	assert.False(t, ColorEnabled(config.ColorAuto, f), "a regular file is not a terminal")
	assert.True(t, ColorEnabled(config.ColorAlways, f))
	assert.False(t, ColorEnabled(config.ColorNever, f))
}
