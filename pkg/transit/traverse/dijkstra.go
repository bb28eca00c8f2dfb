package traverse

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// Unreached is the sentinel distance for nodes no path has reached.
// Callers of [ShortestPath] must check for it: an unreachable target is an
// informational condition, never an error.
var Unreached = math.Inf(1)

// ShortestPath computes single-source shortest paths from source using the
// classic O(V²) array-based Dijkstra scan over non-negative edge weights,
// then reconstructs the path to target and feeds its edges, in forward
// order, to the traverser's Visit before a terminal Summary carrying the
// total path length.
//
// The returned slice holds the computed distance for every node;
// unreachable nodes retain [Unreached]. When the target itself is
// unreachable this is reported on the logger at info level, no path edges
// are visited and no Summary is emitted.
//
// Predecessors use -1 as the "no predecessor" sentinel so that node 0 can
// appear mid-path; the zero-valued sentinel of earlier revisions made
// paths through node 0 ambiguous to reconstruct.
//
// If logger is nil, log.Default() is used.
func ShortestPath(g *transit.Graph, source, target int, t Traverser, logger *log.Logger) []float64 {
	if logger == nil {
		logger = log.Default()
	}

	n := g.NumNodes()
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = Unreached
		prev[i] = -1
	}
	dist[source] = 0

	for i := 0; i < n; i++ {
		u := -1
		best := Unreached
		for v := 0; v < n; v++ {
			if !done[v] && dist[v] < best {
				best = dist[v]
				u = v
			}
		}
		if u == -1 {
			break // every undone node is unreached
		}
		done[u] = true

		for v := 0; v < n; v++ {
			if v == u || done[v] {
				continue
			}
			w, ok := g.Weight(u, v)
			if !ok {
				continue
			}
			if d := dist[u] + w; d < dist[v] {
				dist[v] = d
				prev[v] = u
			}
		}
	}

	if math.IsInf(dist[target], 1) {
		logger.Info("no path between stops",
			"source", source,
			"target", target)
		return dist
	}

	var rev []int
	for at := target; at != -1; at = prev[at] {
		rev = append(rev, at)
	}
	for i := len(rev) - 1; i > 0; i-- {
		if e, ok := g.Edge(rev[i], rev[i-1]); ok {
			t.Visit(e)
		}
	}
	t.Summary(Stats{PathLength: dist[target]})
	return dist
}
