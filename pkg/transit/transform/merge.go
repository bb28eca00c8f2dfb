package transform

import (
	"errors"
	"fmt"

	"github.com/matzehuels/transitrank/pkg/transit"
	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// ErrNoTransferEdges is returned by [CollapseTransfers] when the input
// graph contains no transfer edge at all. It signals "nothing to merge";
// the caller keeps using the original graph.
var ErrNoTransferEdges = errors.New("graph has no transfer edges")

// CollapseTransfers repeatedly collapses transfer-connected stop clusters
// until no transfer edges remain, and returns the final graph. Exactly one
// pair of nodes is merged per iteration; clusters larger than two shrink
// over successive iterations, whose component discovery restarts from
// scratch because node indices shift with every merge.
//
// The input graph is never mutated. If the very first check finds zero
// transfer edges, CollapseTransfers returns (nil, ErrNoTransferEdges)
// rather than a copy of the input.
func CollapseTransfers(g *transit.Graph) (*transit.Graph, error) {
	merged := false
	for {
		if len(g.TransferEdges()) == 0 {
			if !merged {
				return nil, ErrNoTransferEdges
			}
			return g, nil
		}

		lo, hi, ok := firstMergeablePair(g)
		if !ok {
			// Transfer edges exist, so component discovery must find a
			// cluster of at least two nodes. Anything else is a defect.
			panic("transform: transfer edges present but no mergeable cluster found")
		}

		next, err := mergePair(g, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("merge %d and %d: %w", lo, hi, err)
		}
		g = next
		merged = true
	}
}

// firstMergeablePair discovers the connected components of the
// transfer-only sub-graph and returns the first two node indices of the
// first component of size at least two, ordered lo < hi.
func firstMergeablePair(g *transit.Graph) (lo, hi int, ok bool) {
	sub, err := transferSubgraph(g)
	if err != nil {
		panic(fmt.Sprintf("transform: rebuild transfer sub-graph: %v", err))
	}

	visited := make([]bool, sub.NumNodes())
	for start := 0; start < sub.NumNodes(); start++ {
		if visited[start] {
			continue
		}
		rec := traverse.NewRecorder()
		traverse.DFSComponent(sub, start, visited, rec)
		if len(rec.VisitedNodes) < 2 {
			continue // isolated node, no transfer edge
		}
		lo, hi = rec.VisitedNodes[0], rec.VisitedNodes[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
	return 0, 0, false
}

// transferSubgraph builds a graph over the same stop sequence containing
// only the transfer edges.
func transferSubgraph(g *transit.Graph) (*transit.Graph, error) {
	return transit.NewGraph(g.Stops(), g.TransferEdges())
}

// mergePair collapses the two nodes lo < hi into one, producing a fresh
// graph with NumNodes()-1 nodes. Surviving stops keep their relative
// order; the merged stop, Stop(lo).MergeWith(Stop(hi)), is appended last.
//
// Edges not touching lo or hi are copied with remapped indices and their
// weights intact. For every other node w, the merged node's relation to w
// is the union of the lo-relation and the hi-relation: absent when both
// are absent, transfer when either side is a transfer, route otherwise.
// Unioned edges carry [transit.WeightAggregate], since the original
// weights are not composable. The now-internal lo–hi edge is dropped.
func mergePair(g *transit.Graph, lo, hi int) (*transit.Graph, error) {
	n := g.NumNodes()
	mergedIdx := n - 2

	// Old index -> new index for survivors.
	remap := func(old int) int {
		idx := old
		if old > lo {
			idx--
		}
		if old > hi {
			idx--
		}
		return idx
	}

	stops := make([]transit.Stop, 0, n-1)
	for i := 0; i < n; i++ {
		if i == lo || i == hi {
			continue
		}
		stops = append(stops, g.Stop(i))
	}
	stops = append(stops, g.Stop(lo).MergeWith(g.Stop(hi)))

	var edges []transit.Edge
	for _, e := range g.Edges() {
		touchesFrom := e.From == lo || e.From == hi
		touchesTo := e.To == lo || e.To == hi
		if touchesFrom && touchesTo {
			continue // internal edge of the merged pair
		}
		if touchesFrom || touchesTo {
			continue // handled below via the union rule
		}
		edges = append(edges, transit.Edge{
			From:   remap(e.From),
			To:     remap(e.To),
			Type:   e.Type,
			Weight: e.Weight,
		})
	}

	for w := 0; w < n; w++ {
		if w == lo || w == hi {
			continue
		}
		a, aok := g.Edge(lo, w)
		b, bok := g.Edge(hi, w)
		if !aok && !bok {
			continue
		}
		typ := transit.EdgeRoute
		if (aok && a.IsTransfer()) || (bok && b.IsTransfer()) {
			typ = transit.EdgeTransfer
		}
		edges = append(edges, transit.Edge{
			From:   mergedIdx,
			To:     remap(w),
			Type:   typ,
			Weight: transit.WeightAggregate,
		})
	}

	return transit.NewGraph(stops, edges)
}
