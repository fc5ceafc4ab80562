package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/library"
	"github.com/arcanaland/bingo/internal/render"
)

var (
	generateCount  int
	generateSeed   uint64
	generateSave   bool
	generateName   string
	generateFormat string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate bingo cards",
	Long: `Generate prints one or more new bingo cards.

Use --seed to get the same cards on every run, and --save to keep the cards
in your card library.

Examples:
  bingo generate
  bingo generate -n 4
  bingo generate --seed 42 --format json
  bingo generate --save --name friday-night`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", generateCount)
		}
		switch generateFormat {
		case "text", "json", "toml":
		default:
			return fmt.Errorf("unknown format %q (use text, json or toml)", generateFormat)
		}
		if generateName != "" && !generateSave {
			return fmt.Errorf("--name requires --save")
		}

		generate := card.Generate
		if cmd.Flags().Changed("seed") {
			generate = card.NewGenerator(rand.NewPCG(generateSeed, generateSeed)).Generate
		}

		cards := make([]*card.Card, generateCount)
		for i := range cards {
			cards[i] = generate()
		}
		slog.Debug("cards generated", "count", len(cards), "seeded", cmd.Flags().Changed("seed"))

		files := make([]library.File, len(cards))
		for i, c := range cards {
			files[i] = library.NewFile(c)
		}

		if generateSave {
			dir := cfg.GetLibraryPath()
			for i, c := range cards {
				s, err := library.Save(dir, c, cardName(generateName, i, len(cards)))
				if err != nil {
					return fmt.Errorf("error saving card: %w", err)
				}
				files[i].ID, files[i].Created = s.ID, s.Created
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s to %s\n", s.Name, s.Path)
			}
		}

		out := cmd.OutOrStdout()
		switch generateFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cards)
		case "toml":
			return toml.NewEncoder(out).Encode(struct {
				Cards []library.File `toml:"cards"`
			}{Cards: files})
		default:
			return render.Write(out, cards, renderOptions(out))
		}
	},
}

// cardName numbers names when saving more than one card
func cardName(name string, i, total int) string {
	if name == "" || total == 1 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, i+1)
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of cards to generate")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Seed for reproducible cards")
	generateCmd.Flags().BoolVarP(&generateSave, "save", "s", false, "Save the cards to the card library")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Name for saved cards (default: card ID)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "text", "Output format: text, json or toml")
}
