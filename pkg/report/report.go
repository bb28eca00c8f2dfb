// Package report emits the rank report consumed by downstream tooling.
//
// The format is line-oriented, semicolon-separated text beginning with the
// literal `sep=;` hint, one line per node in node-index order. It must
// stay byte-compatible with existing consumers; change nothing here
// without versioning the format.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// Write writes the rank report for g to w. Each node produces one line of
// the form
//
//	nodeIndex;stopId;stopName;stopRoutes;rank
//
// preceded by the literal header line `sep=;`. Routes are rendered in
// their default collection-to-text form, ranks as plain shortest
// decimals. The ranks slice must hold one value per node.
func Write(w io.Writer, g *transit.Graph, ranks []float64) error {
	if len(ranks) != g.NumNodes() {
		return fmt.Errorf("report: %d ranks for %d nodes", len(ranks), g.NumNodes())
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "sep=;"); err != nil {
		return err
	}
	for i := 0; i < g.NumNodes(); i++ {
		s := g.Stop(i)
		_, err := fmt.Fprintf(bw, "%d;%s;%s;%v;%s\n",
			i, s.ID, s.Name, s.Routes, strconv.FormatFloat(ranks[i], 'f', -1, 64))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the rank report to path, creating or truncating the
// file with 0644 permissions.
func WriteFile(path string, g *transit.Graph, ranks []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, g, ranks)
}
