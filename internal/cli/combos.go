package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/pkg/query"
)

// combosOpts holds the command-line flags for the combos command.
type combosOpts struct {
	answer     int  // target value
	length     int  // digits per combination
	digits     int  // largest digit in the pool
	min        int  // window minimum solution count
	max        int  // window maximum solution count (0 = unbounded)
	workers    int  // solver parallelism
	noCache    bool // bypass the count cache
	noProgress bool // disable the progress display
}

// combosCommand creates the combos command: tabulate solution counts over
// every digit combination of a given length.
func (c *CLI) combosCommand() *cobra.Command {
	var opts combosOpts

	cmd := &cobra.Command{
		Use:   "combos",
		Short: "Count solutions across digit combinations",
		Long: `Combos enumerates every multiset of --length digits drawn from 1..--digits,
counts the solutions each one has for the target, and prints the
combinations whose count falls inside the [--min, --max] window.`,
		Example: `  make-expr-answer combos --length 4 --answer 24
  make-expr-answer combos --length 3 --digits 6 --answer 10 --max 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(opts.workers, opts.noCache)
			window := query.Window{Min: opts.min, Max: opts.max}

			var rows []query.ComboCount
			scan := func(ctx context.Context, progress func(done, total int)) error {
				runner.Progress = progress
				var err error
				rows, err = runner.ScanCombos(ctx, opts.length, opts.digits, opts.answer, window)
				return err
			}
			var err error
			if opts.noProgress {
				err = scan(cmd.Context(), nil)
			} else {
				err = runWithProgress(cmd.Context(), "Scanning combinations", scan)
			}
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				printInfo("No combinations matched the window")
				return nil
			}
			for _, row := range rows {
				fmt.Printf("%s  %s\n",
					styleNumber.Render(formatNumbers(row.Numbers)),
					styleValue.Render(fmt.Sprintf("%d solution(s)", row.Count)))
			}
			printSuccess("%d combination(s) in window", len(rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.answer, "answer", "a", 0, "target value to reach")
	cmd.Flags().IntVar(&opts.length, "length", 4, "digits per combination")
	cmd.Flags().IntVar(&opts.digits, "digits", 9, "largest digit in the pool")
	addWindowFlags(cmd, &opts.min, &opts.max)
	addScanFlags(cmd, &opts.workers, &opts.noCache, &opts.noProgress)
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}
