package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/revloop/internal/config"
	"github.com/thruflo/revloop/internal/results"
)

// ResultLister abstracts saved-result listing for testability.
type ResultLister interface {
	List() ([]results.Record, error)
}

// resultLister is the lister used by the results command.
// It can be overridden in tests.
var resultLister ResultLister

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List saved result files",
	Long:  `Lists the summaries and transcripts saved in the results directory, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	lister := resultLister
	if lister == nil {
		cfg, base, err := loadProject()
		if err != nil {
			return err
		}
		lister = results.NewStore(config.ResultsDir(base, cfg))
	}

	records, err := lister.List()
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No saved results found.")
		return nil
	}

	nameWidth := len("NAME")
	for _, r := range records {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	fmt.Fprintf(out, "%-*s  %-6s  %s\n", nameWidth, "NAME", "KIND", "MODIFIED")
	fmt.Fprintf(out, "%s  %s  %s\n", strings.Repeat("-", nameWidth), "------", "-------------------")
	for _, r := range records {
		fmt.Fprintf(out, "%-*s  %-6s  %s\n", nameWidth, r.Name, r.Kind, r.ModTime.Format("2006-01-02 15:04:05"))
	}
	return nil
}
