package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hearth-sh/hearth/internal/adapters/ui"
	"github.com/hearth-sh/hearth/internal/config"
	"github.com/hearth-sh/hearth/internal/core"
	"github.com/hearth-sh/hearth/internal/home"
	"github.com/hearth-sh/hearth/internal/system"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Apply the configured home resources",
	Long:  `Reads the configuration file and reconciles the machine state to match it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgFile, _ := cmd.Flags().GetString("config")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		strict, _ := cmd.Flags().GetBool("strict")

		// Catch Ctrl+C so a long package install can be interrupted
		// between resources.
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			pterm.Error.Printf("Configuration error: %v\n", err)
			os.Exit(1)
		}

		sysCtx := system.Detect(ctx, dryRun)
		sysCtx.ResourceRoot = cfg.Root
		for k, v := range cfg.Vars {
			sysCtx.Vars[k] = v
		}
		sysCtx.Logger = core.NewDefaultLogger(os.Stderr, logLevel())

		h, err := home.Build(cfg, sysCtx, ui.NewPtermUI().WithWriter(os.Stderr), home.Options{Strict: strict})
		if err != nil {
			pterm.Error.Printf("Configuration error: %v\n", err)
			os.Exit(1)
		}

		report := h.Generate()

		if report.Status == home.StatusAborted && ctx.Err() != nil {
			// Interrupted by the user: conventional SIGINT exit code.
			os.Exit(130)
		}
		os.Exit(report.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("dry-run", false, "Show what would change without doing it")
	generateCmd.Flags().Bool("strict", false, "Abort the run on any failed resource")
}
