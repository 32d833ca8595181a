package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/pkg/query"
)

// countOpts holds the command-line flags for the count command.
type countOpts struct {
	from       int  // first target (inclusive)
	to         int  // last target (inclusive)
	min        int  // window minimum solution count
	max        int  // window maximum solution count (0 = unbounded)
	workers    int  // solver parallelism
	noCache    bool // bypass the count cache
	noProgress bool // disable the progress display
}

// countCommand creates the count command: tabulate solution counts across
// a range of targets.
func (c *CLI) countCommand() *cobra.Command {
	var opts countOpts

	cmd := &cobra.Command{
		Use:   "count NUMBER...",
		Short: "Count solutions for each target in a range",
		Long: `Count runs the solver once per target in the range [--from, --to] and
prints the targets whose solution count falls inside the [--min, --max]
window. Counts are cached, so overlapping scans reuse earlier work.`,
		Example: `  make-expr-answer count 2 3 5 7 --from 1 --to 100
  make-expr-answer count 1 2 3 4 --from 1 --to 36 --min 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			runner := c.newRunner(opts.workers, opts.noCache)
			window := query.Window{Min: opts.min, Max: opts.max}

			var rows []query.TargetCount
			scan := func(ctx context.Context, progress func(done, total int)) error {
				runner.Progress = progress
				var err error
				rows, err = runner.ScanTargets(ctx, numbers, opts.from, opts.to, window)
				return err
			}
			if opts.noProgress {
				err = scan(cmd.Context(), nil)
			} else {
				err = runWithProgress(cmd.Context(), "Scanning targets", scan)
			}
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				printInfo("No targets matched the window")
				return nil
			}
			for _, row := range rows {
				fmt.Printf("%s  %s\n",
					styleNumber.Render(fmt.Sprintf("%6d", row.Target)),
					styleValue.Render(fmt.Sprintf("%d solution(s)", row.Count)))
			}
			printSuccess("%d of %d targets in window", len(rows), opts.to-opts.from+1)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.from, "from", 1, "first target (inclusive)")
	cmd.Flags().IntVar(&opts.to, "to", 100, "last target (inclusive)")
	addWindowFlags(cmd, &opts.min, &opts.max)
	addScanFlags(cmd, &opts.workers, &opts.noCache, &opts.noProgress)

	return cmd
}

// addWindowFlags registers the shared [min,max] solution-count window flags.
func addWindowFlags(cmd *cobra.Command, min, max *int) {
	cmd.Flags().IntVar(min, "min", 1, "minimum solution count to report")
	cmd.Flags().IntVar(max, "max", 0, "maximum solution count to report (0 = unbounded)")
}

// addScanFlags registers the shared scan execution flags.
func addScanFlags(cmd *cobra.Command, workers *int, noCache, noProgress *bool) {
	cmd.Flags().IntVar(workers, "workers", 0, "worker goroutines (default from config)")
	cmd.Flags().BoolVar(noCache, "no-cache", false, "bypass the solution-count cache")
	cmd.Flags().BoolVar(noProgress, "no-progress", false, "disable the progress display")
}

// formatNumbers renders a number bag as space-separated text.
func formatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}
