package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thruflo/revloop/internal/config"
	"github.com/thruflo/revloop/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	projectDir string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "revloop",
	Short: "Find the loops that reverse-subtract sequences fall into",
	Long: `revloop repeatedly reverses a number's digits and subtracts the smaller
value from the larger until a value repeats, then reports the loop the
sequence entered.

Run without a subcommand for the interactive prompt, or use "number" to
trace one starting value and "range" to tally the loops reached by every
value in an inclusive range.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyLogLevel,
	RunE:              runInteractive,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("revloop version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "project directory holding .revloop/ (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

// Execute runs the root command. An interrupt cancels any analysis in flight.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadProject resolves the project directory and loads its config.
func loadProject() (*config.Config, string, error) {
	base := projectDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
		base = cwd
	}

	cfg, err := config.LoadConfig(base)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, base, nil
}

func applyLogLevel(cmd *cobra.Command, args []string) error {
	name := logLevel
	if name == "" {
		cfg, _, err := loadProject()
		if err != nil {
			// Commands report config errors themselves; init must still run.
			return nil
		}
		name = cfg.LogLevel
	}

	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
