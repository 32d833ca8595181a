// Package render draws expression trees as Graphviz diagrams: operator
// nodes as circles, number leaves as boxes, edges running from each
// operator down to its operands in canonical order.
//
// Convert a tree to DOT format, then render it:
//
//	dot := render.ToDOT(tree)
//	svg, err := render.SVG(dot)
//
// In-process rendering uses [github.com/goccy/go-graphviz]; the DOT source
// can also be saved and fed to external Graphviz tooling.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/ldo/make-expr-answer/pkg/expr"
)

// ToDOT converts an expression tree to Graphviz DOT format. The result can
// be rendered with [SVG] or [PNG], or saved as-is.
func ToDOT(root expr.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph expression {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=18, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("\n")

	next := 0
	writeNode(&buf, root, &next)

	buf.WriteString("}\n")
	return buf.String()
}

// writeNode emits the DOT statements for n and returns its node name.
// Operand order is preserved through ordering=out above.
func writeNode(buf *bytes.Buffer, n expr.Node, next *int) string {
	name := fmt.Sprintf("n%d", *next)
	*next++

	switch n := n.(type) {
	case expr.Num:
		fmt.Fprintf(buf, "  %s [shape=box, style=\"rounded,filled\", fillcolor=white, label=%q];\n", name, n.String())
	case *expr.Expr:
		fmt.Fprintf(buf, "  %s [shape=circle, style=filled, fillcolor=lightgrey, label=%q];\n", name, n.Op.Symbol)
		for _, operand := range n.Operands {
			child := writeNode(buf, operand, next)
			fmt.Fprintf(buf, "  %s -> %s;\n", name, child)
		}
	}
	return name
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
