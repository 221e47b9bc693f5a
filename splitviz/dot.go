// Package splitviz draws the optimal parenthesization of a matrix chain as
// a binary tree in Graphviz DOT, and renders that DOT to SVG.
//
// Leaves are the matrices C1..Cn labelled with their shapes. Every internal
// node is one product: it shows the shape of the product, the cost of that
// single multiplication and the accumulated cost of its sub-chain.
package splitviz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
)

// ToDOT converts the split tree stored in res into a DOT digraph.
// The chain must be valid and res must come from mcm.Solve on that chain.
// Output is deterministic: nodes are emitted in pre-order, left before right.
func ToDOT(c chain.Chain, res mcm.Result, nt mcm.Notation) string {
	if nt.Symbol == "" {
		nt.Symbol = mcm.DefaultSymbol
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	if c.Len() > 0 {
		writeNode(&buf, c, res, nt, 0, c.Len()-1)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// writeNode emits node (i,j), its edges and its subtree.
func writeNode(buf *bytes.Buffer, c chain.Chain, res mcm.Result, nt mcm.Notation, i, j int) {
	id := nodeID(i, j)
	if i == j {
		fmt.Fprintf(buf, "  %q [label=%q, fillcolor=lightgrey];\n", id, fmt.Sprintf("%s%d\n%s", nt.Symbol, i+1, c.At(i)))
		return
	}

	k := res.Splits[i][j]
	shape := chain.Dims{Rows: c.At(i).Rows, Cols: c.At(j).Cols}
	step := c.At(i).Rows * c.At(k).Cols * c.At(j).Cols
	label := fmt.Sprintf("%s\nstep %d\ntotal %d", shape, step, res.Costs[i][j])
	fmt.Fprintf(buf, "  %q [label=%q];\n", id, label)
	fmt.Fprintf(buf, "  %q -> %q;\n", id, nodeID(i, k))
	fmt.Fprintf(buf, "  %q -> %q;\n", id, nodeID(k+1, j))

	writeNode(buf, c, res, nt, i, k)
	writeNode(buf, c, res, nt, k+1, j)
}

// nodeID names the node for sub-chain i..j.
func nodeID(i, j int) string {
	return fmt.Sprintf("r%d_%d", i, j)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("splitviz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("splitviz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("splitviz: render: %w", err)
	}

	return buf.Bytes(), nil
}
