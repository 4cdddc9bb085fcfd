package cli

import (
	"github.com/spf13/cobra"
)

var (
	numberSave          bool
	numberMaxIterations int
)

var numberCmd = &cobra.Command{
	Use:   "number <n>",
	Short: "Trace one starting value to its loop",
	Long: `Walks the reverse-subtract sequence from a single non-negative integer,
printing every step, the raw loop and its canonical rotation.

The transcript is saved to a timestamped file in the results directory
unless --save=false is given or output.save is false in the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runNumber,
}

func init() {
	numberCmd.Flags().BoolVarP(&numberSave, "save", "s", true, "save the transcript to a file")
	numberCmd.Flags().IntVar(&numberMaxIterations, "max-iterations", 0, "step limit before giving up (default from config)")
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	cfg, base, err := loadProject()
	if err != nil {
		return err
	}

	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	save := cfg.Output.Save
	if cmd.Flags().Changed("save") {
		save = numberSave
	}
	maxIterations := cfg.Limits.MaxIterations
	if cmd.Flags().Changed("max-iterations") {
		maxIterations = numberMaxIterations
	}

	return analyzeNumber(cmd.OutOrStdout(), writerFor(base, cfg), numberRequest{
		Number:        n,
		Save:          save,
		MaxIterations: maxIterations,
	})
}
