package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/library"
	"github.com/arcanaland/bingo/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [name|path]",
	Short: "Validate a bingo card file",
	Long: `Validate checks that a card file follows the American bingo layout:
a 5x5 grid, FREE in the center only, every number inside its column's range
and no number repeated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardPath, err := library.Resolve(cfg.GetLibraryPath(), args[0])
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(cardPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Card '%s' is valid.\n", cardPath)
		} else {
			fmt.Fprintf(out, "❌ Card '%s' has %d validation errors:\n", cardPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
