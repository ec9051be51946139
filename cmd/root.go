package cmd

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hearth-sh/hearth/internal/core"
)

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "Declare your home. Hearth makes it so.",
	Long: `Hearth is a declarative personal-machine configuration tool:
declare the symlinks and packages your home should have, and hearth
reconciles the machine to match.`,
}

var verboseCount int

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	// PTerm output to Stderr (to keep Stdout clean for piping)
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.DefaultHeader.Writer = os.Stderr

	rootCmd.PersistentFlags().StringP("config", "c", "hearth.yaml", "config file path")
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "Increase verbosity level (-v, -vv, -vvv)")
}

// logLevel maps repeated -v flags to a logger level.
func logLevel() core.LogLevel {
	switch verboseCount {
	case 0:
		return core.LevelInfo
	case 1:
		return core.LevelDebug
	default:
		return core.LevelTrace
	}
}
