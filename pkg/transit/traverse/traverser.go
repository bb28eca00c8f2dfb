package traverse

import (
	"slices"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// Stats is the open record delivered with a traversal's terminal Summary
// event. Only the fields relevant to the reporting algorithm are set.
type Stats struct {
	// StationsVisited is the number of distinct nodes visited (DFS, BFS).
	StationsVisited int `json:"stations_visited,omitempty"`
	// PathLength is the total weight of the reconstructed shortest path.
	PathLength float64 `json:"path_length,omitempty"`
	// Ranks is the final rank vector, indexed by node (rank propagation).
	Ranks []float64 `json:"ranks,omitempty"`
}

// Traverser is the observer contract through which algorithms report
// progress and results. Implementations are single-use and single-owner:
// create one per algorithm invocation and never share it across calls.
type Traverser interface {
	// VisitNode reports that a node was entered.
	VisitNode(node int)
	// Visit reports a tree or path edge that was discovered or taken.
	Visit(e transit.Edge)
	// Leave reports that a subtree below the edge's origin is fully
	// explored (depth-first traversal only). The edge points back toward
	// the parent.
	Leave(e transit.Edge)
	// RecordRanks delivers the final rank vector (rank propagation only).
	RecordRanks(ranks []float64)
	// Summary is the terminal event of every traversal.
	Summary(stats Stats)
}

// Recorder is the accumulating Traverser used by callers to observe
// traversal order, discovered edges and final numeric results. The order
// of VisitedNodes is the only channel by which the merge engine learns
// component membership.
type Recorder struct {
	// VisitedNodes holds node indices in the order VisitNode reported them.
	VisitedNodes []int
	// Visited holds edges in the order Visit reported them.
	Visited []transit.Edge
	// Left holds edges in the order Leave reported them.
	Left []transit.Edge
	// Ranks holds the vector delivered by RecordRanks, nil until then.
	Ranks []float64
	// Stats holds the terminal summary; valid once Done is true.
	Stats Stats
	// Done reports whether Summary has been delivered.
	Done bool
}

// NewRecorder returns an empty recorder ready for one traversal.
func NewRecorder() *Recorder { return &Recorder{} }

// VisitNode appends node to VisitedNodes.
func (r *Recorder) VisitNode(node int) { r.VisitedNodes = append(r.VisitedNodes, node) }

// Visit appends e to Visited.
func (r *Recorder) Visit(e transit.Edge) { r.Visited = append(r.Visited, e) }

// Leave appends e to Left.
func (r *Recorder) Leave(e transit.Edge) { r.Left = append(r.Left, e) }

// RecordRanks stores a copy of the rank vector.
func (r *Recorder) RecordRanks(ranks []float64) { r.Ranks = slices.Clone(ranks) }

// Summary stores the terminal stats and marks the recorder done.
func (r *Recorder) Summary(stats Stats) {
	r.Stats = stats
	r.Done = true
}

var _ Traverser = (*Recorder)(nil)
