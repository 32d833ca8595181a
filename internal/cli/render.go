package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/pkg/errors"
	"github.com/ldo/make-expr-answer/pkg/expr"
	"github.com/ldo/make-expr-answer/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	answer int    // target value
	index  int    // which solution to draw (1-based)
	format string // output format: dot, svg, png
	output string // output file path
}

// renderCommand creates the render command: draw one solution's expression
// tree as a Graphviz diagram.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		index:  1,
		format: formatSVG,
	}

	cmd := &cobra.Command{
		Use:   "render NUMBER...",
		Short: "Draw a solution's expression tree",
		Long: `Render solves the given numbers for the target and draws the chosen
solution's expression tree: operators as circles, numbers as boxes.
Output formats are Graphviz DOT source, SVG, and PNG.`,
		Example: `  make-expr-answer render 2 3 5 --answer 13 -o tree.svg
  make-expr-answer render 1 2 3 4 --answer 24 --index 2 -f dot -o tree.dot`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}

			answers, err := expr.Answers(numbers, opts.answer)
			if err != nil {
				return err
			}
			if len(answers) == 0 {
				printError("No answers found, nothing to render")
				return nil
			}
			if opts.index < 1 || opts.index > len(answers) {
				return errors.New(errors.ErrCodeNotFound,
					"solution index %d out of range (1..%d)", opts.index, len(answers))
			}
			tree := answers[opts.index-1]

			dot := render.ToDOT(tree)
			var data []byte
			switch opts.format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = render.SVG(dot)
			case formatPNG:
				data, err = render.PNG(dot)
			}
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "rendering %s", opts.format)
			}

			out := opts.output
			if out == "" {
				out = "expression." + opts.format
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}

			printSuccess("Rendered %s (solution %d of %d)", tree, opts.index, len(answers))
			printFile(absPath(out))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.answer, "answer", "a", 0, "target value to reach")
	cmd.Flags().IntVar(&opts.index, "index", opts.index, "which solution to draw (1-based)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default expression.<format>)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func validateRenderFormat(format string) error {
	switch strings.ToLower(format) {
	case formatDOT, formatSVG, formatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg or png)", format)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
