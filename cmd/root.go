package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/logger"
	"github.com/arcanaland/bingo/internal/render"
)

var (
	logLevel string
	noColor  bool

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Generate and manage American bingo cards",
	Long: `Bingo generates 5x5 bingo cards using the American convention:
B draws from 1-15, I from 16-30, N from 31-45, G from 46-60 and O from 61-75,
with a free space in the center.

Cards can be printed, saved to a card library (XDG_DATA_HOME/bingo/cards)
and validated.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger.Setup(level, cmd.ErrOrStderr())

		if noColor {
			cfg.Color = config.ColorNever
		}
		slog.Debug("config loaded", "path", config.GetConfigFilePath(), "color", cfg.Color)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// renderOptions picks color and width for output written to w
func renderOptions(w io.Writer) render.Options {
	f, ok := w.(*os.File)
	if !ok {
		return render.Options{
			Color: cfg.Color == config.ColorAlways,
			Width: render.DefaultWidth,
		}
	}
	return render.Options{
		Color: render.ColorEnabled(cfg.Color, f),
		Width: render.TerminalWidth(f),
	}
}
