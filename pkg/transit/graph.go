package transit

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNodeOutOfRange is returned by [NewGraph] when an edge references a
	// node index outside [0, len(stops)).
	ErrNodeOutOfRange = errors.New("edge references node index out of range")

	// ErrSelfEdge is returned by [NewGraph] when an edge connects a node to
	// itself. The relation is defined over unordered pairs of distinct nodes.
	ErrSelfEdge = errors.New("edge connects node to itself")
)

// pairKey identifies an unordered pair of node indices with lo < hi.
type pairKey struct {
	lo, hi int
}

func pairOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// relation is the stored attribute set of an edge, without endpoints.
type relation struct {
	typ    EdgeType
	weight float64
}

// Graph is an immutable transit network of contiguously indexed nodes,
// each associated with one [Stop], and a symmetric edge relation keyed by
// unordered node pairs.
//
// Node indices run over [0, NumNodes()). Later edges between the same pair
// overwrite earlier ones during construction; afterwards the relation never
// changes. All query methods are pure reads and safe for concurrent use.
type Graph struct {
	stops []Stop
	edges map[pairKey]relation
}

// NewGraph builds a graph from a stop sequence and an edge sequence. Node
// indices referenced by edges must fall inside [0, len(stops)). The input
// slices are copied; callers may reuse them afterwards.
func NewGraph(stops []Stop, edges []Edge) (*Graph, error) {
	g := &Graph{
		stops: slices.Clone(stops),
		edges: make(map[pairKey]relation, len(edges)),
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(stops) || e.To < 0 || e.To >= len(stops) {
			return nil, fmt.Errorf("%w: %d-%d with %d stops", ErrNodeOutOfRange, e.From, e.To, len(stops))
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: node %d", ErrSelfEdge, e.From)
		}
		g.edges[pairOf(e.From, e.To)] = relation{typ: e.Type, weight: e.Weight}
	}
	return g, nil
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.stops) }

// EdgeCount returns the number of stored edges, each unordered pair
// counted once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Stop returns the stop at the given node index.
func (g *Graph) Stop(i int) Stop { return g.stops[i] }

// Stops returns a copy of the stop sequence in node-index order.
func (g *Graph) Stops() []Stop { return slices.Clone(g.stops) }

// EdgeExists reports whether an edge connects u and v. The query is
// symmetric: EdgeExists(u, v) == EdgeExists(v, u).
func (g *Graph) EdgeExists(u, v int) bool {
	_, ok := g.edges[pairOf(u, v)]
	return ok
}

// Weight returns the weight of the edge between u and v. The second return
// value is false when no edge exists, so a zero-weight edge is never
// confused with an absent one.
func (g *Graph) Weight(u, v int) (float64, bool) {
	rel, ok := g.edges[pairOf(u, v)]
	if !ok {
		return 0, false
	}
	return rel.weight, true
}

// Edge materializes the edge between u and v, oriented from u to v, with
// type and weight taken from storage. The second return value is false
// when no edge exists.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	rel, ok := g.edges[pairOf(u, v)]
	if !ok {
		return Edge{}, false
	}
	return Edge{From: u, To: v, Type: rel.typ, Weight: rel.weight}, true
}

// Neighbors returns the nodes adjacent to u in increasing index order.
func (g *Graph) Neighbors(u int) []int {
	var out []int
	for v := 0; v < len(g.stops); v++ {
		if v != u && g.EdgeExists(u, v) {
			out = append(out, v)
		}
	}
	return out
}

// Edges returns every stored edge exactly once, oriented lo→hi and sorted
// by node pair for deterministic iteration.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for k, rel := range g.edges {
		out = append(out, Edge{From: k.lo, To: k.hi, Type: rel.typ, Weight: rel.weight})
	}
	sortEdges(out)
	return out
}

// TransferEdges returns every stored transfer edge, each pair reported
// once, sorted by node pair.
func (g *Graph) TransferEdges() []Edge {
	var out []Edge
	for k, rel := range g.edges {
		if rel.typ == EdgeTransfer {
			out = append(out, Edge{From: k.lo, To: k.hi, Type: rel.typ, Weight: rel.weight})
		}
	}
	sortEdges(out)
	return out
}

func sortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})
}
