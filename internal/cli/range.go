package cli

import (
	"github.com/spf13/cobra"
)

var (
	rangeShowSteps     bool
	rangeSave          bool
	rangeWorkers       int
	rangeMaxIterations int
)

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "Tally the loops reached from every value in a range",
	Long: `Finds the canonical loop for every integer from start to end inclusive
and prints how many starting values ended in each loop, most common first.

The summary is saved to a timestamped file in the results directory
unless --save=false is given or output.save is false in the config.

Values are 64-bit integers. A sequence whose digit reversal would exceed
9223372036854775807 stops the whole analysis with an overflow error, so
ranges near that limit cannot be analyzed.`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().BoolVar(&rangeShowSteps, "show-steps", false, "print the step-by-step transcript for every value")
	rangeCmd.Flags().BoolVarP(&rangeSave, "save", "s", true, "save the summary to a file")
	rangeCmd.Flags().IntVarP(&rangeWorkers, "workers", "w", 0, "goroutines to shard the range across (default from config)")
	rangeCmd.Flags().IntVar(&rangeMaxIterations, "max-iterations", 0, "step limit per value before giving up (default from config)")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	cfg, base, err := loadProject()
	if err != nil {
		return err
	}

	// Sign checks belong to ValidateRange so negative bounds report as an
	// invalid range.
	start, err := parseInteger(args[0])
	if err != nil {
		return err
	}
	end, err := parseInteger(args[1])
	if err != nil {
		return err
	}

	save := cfg.Output.Save
	if cmd.Flags().Changed("save") {
		save = rangeSave
	}
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = rangeWorkers
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.Limits.MaxIterations = rangeMaxIterations
	}

	return analyzeRange(commandContext(cmd), cmd.OutOrStdout(), writerFor(base, cfg), rangeRequest{
		Start:     start,
		End:       end,
		ShowSteps: rangeShowSteps,
		Save:      save,
		Workers:   workers,
		Config:    cfg,
	})
}
