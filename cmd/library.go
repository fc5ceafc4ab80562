package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/library"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved bingo cards",
	Long:  `Commands for managing the cards in your card library.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cards in your card library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := cfg.GetLibraryPath()
		out := cmd.OutOrStdout()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Card library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'bingo library init' to create it.")
			return nil
		}

		cards, err := library.List(libraryPath)
		if err != nil {
			return err
		}

		if len(cards) == 0 {
			fmt.Fprintln(out, "No cards found in your card library.")
			fmt.Fprintln(out, "Save one with: bingo generate --save")
			return nil
		}

		for _, s := range cards {
			created := "-"
			if !s.Created.IsZero() {
				created = s.Created.Local().Format(time.DateTime)
			}
			fmt.Fprintf(out, "  %s (%s)\n", s.Name, created)
		}
		return nil
	},
}

// libraryRemoveCmd represents the library rm command
var libraryRemoveCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Remove a card from your card library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := library.Remove(cfg.GetLibraryPath(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed card: %s\n", args[0])
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := cfg.GetLibraryPath()
		out := cmd.OutOrStdout()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating card library: %w", err)
		}

		fmt.Fprintln(out, "Card library initialized at:", libraryPath)
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}
