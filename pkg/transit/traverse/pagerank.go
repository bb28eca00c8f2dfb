package traverse

import "github.com/matzehuels/transitrank/pkg/transit"

// RankOptions configures iterative rank propagation.
type RankOptions struct {
	// Damping is the weight given to propagated rank versus the uniform
	// base term. The engine's historical value is 1.0: pure linear
	// propagation with no random-restart term and no normalization
	// guarantee. Keep 1.0 for output compatibility; values below 1
	// recover the classical formulation.
	Damping float64
	// Iterations is the fixed number of synchronous sweeps.
	Iterations int
}

// DefaultRankOptions returns the engine's historical configuration:
// damping 1.0 and 10 iterations.
func DefaultRankOptions() RankOptions {
	return RankOptions{Damping: 1.0, Iterations: 10}
}

// Rank runs fixed-iteration rank propagation over the graph and returns
// the final rank vector, indexed by node. Every node starts at rank 1.0.
// Each sweep recomputes every node's rank as
//
//	(1-damping)/N + damping * Σ rank[in]/outDegree[in]
//
// over the nodes with an edge into it, reading only the previous sweep's
// vector (a synchronous update). The relation is symmetric, so a node's
// incoming nodes and its out-degree are both derived from its neighbor
// set, precomputed once.
//
// After the final sweep the vector is delivered via RecordRanks and a
// Summary carrying the same vector. Emitting the line-oriented report is
// the caller's job (see package report).
func Rank(g *transit.Graph, t Traverser, opts RankOptions) []float64 {
	n := g.NumNodes()
	if n == 0 {
		t.RecordRanks(nil)
		t.Summary(Stats{})
		return nil
	}

	incoming := make([][]int, n)
	outDegree := make([]int, n)
	for v := 0; v < n; v++ {
		incoming[v] = g.Neighbors(v)
		outDegree[v] = len(incoming[v])
	}

	ranks := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1.0
	}

	base := (1 - opts.Damping) / float64(n)
	for iter := 0; iter < opts.Iterations; iter++ {
		next := make([]float64, n)
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, u := range incoming[v] {
				if outDegree[u] > 0 {
					sum += ranks[u] / float64(outDegree[u])
				}
			}
			next[v] = base + opts.Damping*sum
		}
		ranks = next
	}

	t.RecordRanks(ranks)
	t.Summary(Stats{Ranks: ranks})
	return ranks
}
