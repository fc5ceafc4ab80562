// Package render draws bingo cards for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/config"
)

const (
	cellWidth = 4
	gap       = 3

	// DefaultWidth is used when the terminal width is unknown
	DefaultWidth = 80
)

// CardWidth is the visible width of every line of a rendered card
const CardWidth = card.Size*(cellWidth+1) + 1

// Options controls how cards are drawn
type Options struct {
	Color bool
	Width int
}

// Lines draws c as a boxed grid headed by the column letters
func Lines(c *card.Card, opts Options) []string {
	p := newPainter(opts.Color)
	border := p.border(strings.Repeat("+"+strings.Repeat("-", cellWidth), card.Size) + "+")
	bar := p.border("|")

	var header strings.Builder
	header.WriteString(bar)
	for col := 0; col < card.Size; col++ {
		header.WriteString(p.letter(col, fmt.Sprintf(" %c  ", card.Letters[col])))
		header.WriteString(bar)
	}

	lines := []string{border, header.String(), border}
	for row := 0; row < card.Size; row++ {
		var line strings.Builder
		line.WriteString(bar)
		for col := 0; col < card.Size; col++ {
			cell := c.At(row, col)
			if n, ok := cell.Number(); ok {
				line.WriteString(fmt.Sprintf("%3d ", n))
			} else {
				line.WriteString(p.free(fmt.Sprintf("%-*s", cellWidth, cell.String())))
			}
			line.WriteString(bar)
		}
		lines = append(lines, line.String())
	}
	return append(lines, border)
}

// Write draws cards side by side, as many per row as fit in opts.Width
func Write(w io.Writer, cards []*card.Card, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	perRow := max(1, (width+gap)/(CardWidth+gap))

	for start := 0; start < len(cards); start += perRow {
		if start > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		end := min(start+perRow, len(cards))
		var blocks [][]string
		for _, c := range cards[start:end] {
			blocks = append(blocks, Lines(c, opts))
		}

		for i := range blocks[0] {
			parts := make([]string, len(blocks))
			for b := range blocks {
				parts[b] = blocks[b][i]
			}
			if _, err := fmt.Fprintln(w, strings.Join(parts, strings.Repeat(" ", gap))); err != nil {
				return err
			}
		}
	}
	return nil
}

// TerminalWidth returns the width of the terminal on f, or DefaultWidth
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// ColorEnabled resolves a color mode for output written to f
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor && term.IsTerminal(int(f.Fd()))
	}
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

type painter struct {
	enabled bool
	frame   *color.Color
	marker  *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		enabled: enabled,
		frame:   color.New(color.FgHiBlack),
		marker:  color.New(color.FgHiYellow, color.Bold),
	}
	if enabled {
		p.frame.EnableColor()
		p.marker.EnableColor()
	} else {
		p.frame.DisableColor()
		p.marker.DisableColor()
	}
	return p
}

func (p painter) border(s string) string {
	return p.frame.Sprint(s)
}

func (p painter) free(s string) string {
	return p.marker.Sprint(s)
}

// letter paints a column header along a hue gradient
func (p painter) letter(col int, s string) string {
	if !p.enabled {
		return s
	}
	hue := float64(col) * 360 / card.Size
	r, g, b := colorful.Hcl(hue, 0.6, 0.7).Clamped().RGB255()
	return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
