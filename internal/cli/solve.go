package cli

import (
	"github.com/spf13/cobra"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	answer  int // target value to reach
	workers int // solver parallelism (0 = config default)
}

// solveCommand creates the solve command: print every distinct expression
// over the given numbers that evaluates to the target.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve NUMBER...",
		Short: "Find all expressions that reach the target",
		Long: `Solve searches every distinct way to combine the given numbers, each used
exactly once, with + - × ÷ into an expression evaluating exactly to the
target. Algebraically equivalent expressions are reported once, in a
canonical parenthesized form.`,
		Example: `  make-expr-answer solve 2 3 5 --answer 13
  make-expr-answer solve 1 2 3 4 --answer 24 --workers 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			count := 0
			solver := c.solver(opts.workers)
			if err := solver.Solve(numbers, opts.answer, func(match string) {
				count++
				printAnswer(count, match)
			}); err != nil {
				return err
			}

			if count == 0 {
				printInfo("No answers found")
				return nil
			}
			printSuccess("%d answer(s)", count)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.answer, "answer", "a", 0, "target value to reach")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (default from config; >1 makes output order unspecified)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}
