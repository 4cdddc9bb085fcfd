package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/revloop/internal/logging"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for a mode and inputs until exit",
	Long: `Repeatedly asks whether to analyze a single number or a range, reads
the inputs, runs the analysis and offers to save the result. Type "exit" or
close stdin to quit.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

var separator = strings.Repeat("-", 60)

// prompter reads one answer per line.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints the prompt and returns the trimmed answer; ok is false once
// the input is exhausted.
func (p *prompter) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

func (p *prompter) askNumber(prompt string) (int64, bool, error) {
	answer, ok := p.ask(prompt)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	return n, true, err
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, base, err := loadProject()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := &prompter{scanner: bufio.NewScanner(cmd.InOrStdin()), out: out}
	w := writerFor(base, cfg)
	ctx := commandContext(cmd)

	for {
		fmt.Fprintf(out, "\n%s\n", separator)
		mode, ok := p.ask("Choose mode: (1) Analyze a single number with details, (2) Analyze a range of numbers, (exit) to quit: ")
		if !ok {
			return nil
		}
		fmt.Fprintln(out, separator)

		var runErr error
		switch strings.ToLower(mode) {
		case "exit":
			fmt.Fprintln(out, "Exiting program.")
			return nil

		case "1":
			n, ok, err := p.askNumber("Enter a non-negative integer to analyze: ")
			if !ok {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, "Invalid input. Please enter valid integers where required.")
				continue
			}
			if n < 0 {
				fmt.Fprintln(out, "Please enter a non-negative integer.")
				continue
			}
			answer, ok := p.ask("Save detailed analysis to file? (yes/no, default: yes): ")
			if !ok {
				return nil
			}
			runErr = analyzeNumber(out, w, numberRequest{
				Number:        n,
				Save:          strings.ToLower(answer) != "no",
				MaxIterations: cfg.Limits.MaxIterations,
			})

		case "2":
			start, ok, err := p.askNumber("Enter the start of the range (non-negative integer): ")
			if !ok {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, "Invalid input. Please enter valid integers where required.")
				continue
			}
			end, ok, err := p.askNumber("Enter the end of the range (non-negative integer): ")
			if !ok {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, "Invalid input. Please enter valid integers where required.")
				continue
			}
			if start < 0 || end < 0 {
				fmt.Fprintln(out, "Range values must be non-negative integers.")
				continue
			}
			if end < start {
				fmt.Fprintln(out, "End of range cannot be less than the start of the range.")
				continue
			}
			steps, ok := p.ask("Show step-by-step for each number in range? (yes/no, default: no): ")
			if !ok {
				return nil
			}
			answer, ok := p.ask("Save summary results to file? (yes/no, default: yes): ")
			if !ok {
				return nil
			}
			runErr = analyzeRange(ctx, out, w, rangeRequest{
				Start:     start,
				End:       end,
				ShowSteps: strings.ToLower(steps) == "yes",
				Save:      strings.ToLower(answer) != "no",
				Workers:   cfg.Workers,
				Config:    cfg,
			})

		default:
			fmt.Fprintln(out, "Invalid mode selected. Please choose '1', '2', or 'exit'.")
		}

		if runErr != nil {
			if ctx.Err() != nil {
				return runErr
			}
			logging.Error("analysis failed", "error", runErr)
			fmt.Fprintf(out, "An unexpected error occurred: %v\n", runErr)
		}
	}
}
