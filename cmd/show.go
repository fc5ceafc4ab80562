package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/library"
	"github.com/arcanaland/bingo/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [name|path]",
	Short: "Display a saved bingo card",
	Long: `Show displays a card from your card library, or a card file given by path,
next to its details.

Examples:
  bingo show friday-night
  bingo show ./cards/hall-a.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := library.Resolve(cfg.GetLibraryPath(), args[0])
		if err != nil {
			return err
		}

		s, err := library.Load(path)
		if err != nil {
			return fmt.Errorf("error loading card: %w", err)
		}

		out := cmd.OutOrStdout()
		displayCard(out, s, renderOptions(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the grid on the left and the card details on the right
func displayCard(w io.Writer, s *library.Stored, opts render.Options) {
	label := color.New(color.FgCyan)
	value := color.New(color.FgHiWhite)
	if opts.Color {
		label.EnableColor()
		value.EnableColor()
	} else {
		label.DisableColor()
		value.DisableColor()
	}

	created := "unknown"
	if !s.Created.IsZero() {
		created = s.Created.Local().Format(time.DateTime)
	}

	infoLines := []string{
		"",
		"",
		"",
		label.Sprint("Card:    ") + value.Sprint(s.Name),
		label.Sprint("ID:      ") + value.Sprint(s.ID),
		label.Sprint("Created: ") + value.Sprint(created),
		label.Sprint("Path:    ") + value.Sprint(s.Path),
	}
	gridLines := render.Lines(s.Card, opts)

	spacing := 4
	fmt.Fprintln(w)
	for i := 0; i < max(len(gridLines), len(infoLines)); i++ {
		// 2-character left padding
		fmt.Fprint(w, "  ")
		if i < len(gridLines) {
			fmt.Fprint(w, gridLines[i])
		} else {
			fmt.Fprint(w, strings.Repeat(" ", render.CardWidth))
		}
		if i < len(infoLines) && infoLines[i] != "" {
			fmt.Fprint(w, strings.Repeat(" ", spacing), infoLines[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
