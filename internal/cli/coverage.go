package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/pkg/query"
)

// coverageOpts holds the command-line flags for the coverage command.
type coverageOpts struct {
	stopAtGap  bool // stop scanning at the first unachievable target
	workers    int  // solver parallelism
	noCache    bool // bypass the count cache
	noProgress bool // disable the progress display
}

// coverageCommand creates the coverage command: report the contiguous
// ranges of targets the given numbers can reach.
func (c *CLI) coverageCommand() *cobra.Command {
	var opts coverageOpts

	cmd := &cobra.Command{
		Use:   "coverage NUMBER...",
		Short: "Report contiguous achievable-target ranges",
		Long: `Coverage scans every target from 1 up to the largest total the numbers can
produce (ones are summed, the rest multiplied) and reports the contiguous
runs of achievable targets. With --stop-at-gap the scan ends at the first
target that has no solution.`,
		Example: `  make-expr-answer coverage 2 3 5
  make-expr-answer coverage 1 2 3 4 --stop-at-gap`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			runner := c.newRunner(opts.workers, opts.noCache)

			var ranges []query.Range
			var limit int
			scan := func(ctx context.Context, progress func(done, total int)) error {
				runner.Progress = progress
				var err error
				ranges, limit, err = runner.Coverage(ctx, numbers, opts.stopAtGap)
				return err
			}
			if opts.noProgress {
				err = scan(cmd.Context(), nil)
			} else {
				err = runWithProgress(cmd.Context(), "Scanning coverage", scan)
			}
			if err != nil {
				return err
			}

			printInfo("Targets 1..%d for numbers %s", limit, formatNumbers(numbers))
			if len(ranges) == 0 {
				printWarning("No achievable targets")
				return nil
			}
			for _, rng := range ranges {
				if rng.From == rng.To {
					fmt.Println("  " + styleNumber.Render(fmt.Sprintf("%d", rng.From)))
				} else {
					fmt.Println("  " + styleNumber.Render(fmt.Sprintf("%d–%d", rng.From, rng.To)))
				}
			}
			covered := 0
			for _, rng := range ranges {
				covered += rng.To - rng.From + 1
			}
			printSuccess("%d of %d targets achievable in %d range(s)", covered, limit, len(ranges))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.stopAtGap, "stop-at-gap", false, "stop at the first unachievable target")
	addScanFlags(cmd, &opts.workers, &opts.noCache, &opts.noProgress)

	return cmd
}
