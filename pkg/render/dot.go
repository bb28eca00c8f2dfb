// Package render exports transit networks as Graphviz diagrams for
// topology debugging.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes node indices, routes and edge weights in labels.
	// When false, only stop names (or IDs) are shown.
	Detailed bool
}

// ToDOT converts a transit graph to Graphviz DOT format. The relation is
// symmetric, so the output is an undirected graph. Transfer edges are
// drawn dashed to stand out from route edges. The resulting DOT string
// can be rendered with [RenderSVG].
func ToDOT(g *transit.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for i := 0; i < g.NumNodes(); i++ {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, fmtLabel(i, g.Stop(i), opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := fmtEdgeAttrs(e, opts.Detailed)
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, s transit.Stop, detailed bool) string {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("#%d %s", i, name)}
	if len(s.Routes) > 0 {
		parts = append(parts, strings.Join(s.Routes, " "))
	}
	return strings.Join(parts, "\n")
}

func fmtEdgeAttrs(e transit.Edge, detailed bool) []string {
	var attrs []string
	if e.IsTransfer() {
		attrs = append(attrs, "style=dashed")
	}
	if detailed && e.Weight != transit.WeightAggregate {
		attrs = append(attrs, fmt.Sprintf("label=\"%g\"", e.Weight))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
