package traverse

import (
	"slices"
	"testing"

	"github.com/matzehuels/transitrank/pkg/transit"
)

func TestRankDeterministic(t *testing.T) {
	g := mustGraph(t, 5, []transit.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 1, To: 3},
		{From: 3, To: 4},
	})

	first := Rank(g, NewRecorder(), DefaultRankOptions())
	second := Rank(g, NewRecorder(), DefaultRankOptions())

	if !slices.Equal(first, second) {
		t.Errorf("rank vectors differ across runs:\n%v\n%v", first, second)
	}
}

func TestRankSymmetricCycleEqualRanks(t *testing.T) {
	// On a 4-cycle every node has degree 2; propagation is symmetric and
	// all ranks stay equal.
	g := mustGraph(t, 4, []transit.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 0},
	})

	ranks := Rank(g, NewRecorder(), DefaultRankOptions())

	if len(ranks) != 4 {
		t.Fatalf("len(ranks) = %d, want 4", len(ranks))
	}
	for i, r := range ranks {
		if r != ranks[0] {
			t.Errorf("ranks[%d] = %v, want %v", i, r, ranks[0])
		}
	}
	// Degree-regular graph with damping 1: values never move from 1.0.
	if ranks[0] != 1.0 {
		t.Errorf("ranks[0] = %v, want 1.0", ranks[0])
	}
}

func TestRankDeliversVectorToTraverser(t *testing.T) {
	g := mustGraph(t, 3, []transit.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
	})

	rec := NewRecorder()
	ranks := Rank(g, rec, DefaultRankOptions())

	if !slices.Equal(rec.Ranks, ranks) {
		t.Errorf("RecordRanks vector %v differs from return %v", rec.Ranks, ranks)
	}
	if !rec.Done {
		t.Fatal("no summary delivered")
	}
	if !slices.Equal(rec.Stats.Ranks, ranks) {
		t.Errorf("summary ranks %v differ from return %v", rec.Stats.Ranks, ranks)
	}
}

func TestRankSynchronousSweep(t *testing.T) {
	// Path 0-1-2 after one sweep reading only the previous vector:
	// rank[0] = rank_prev[1]/2 = 0.5, rank[1] = 1/1 + 1/1 = 2,
	// rank[2] = 0.5. An in-place update would yield different values.
	g := mustGraph(t, 3, []transit.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
	})

	ranks := Rank(g, NewRecorder(), RankOptions{Damping: 1.0, Iterations: 1})

	want := []float64{0.5, 2, 0.5}
	if !slices.Equal(ranks, want) {
		t.Errorf("ranks after one sweep = %v, want %v", ranks, want)
	}
}

func TestRankClassicalDamping(t *testing.T) {
	// With damping 0 every node's rank collapses to the uniform base.
	g := mustGraph(t, 4, []transit.Edge{
		{From: 0, To: 1},
		{From: 2, To: 3},
	})

	ranks := Rank(g, NewRecorder(), RankOptions{Damping: 0, Iterations: 3})

	for i, r := range ranks {
		if r != 0.25 {
			t.Errorf("ranks[%d] = %v, want 0.25", i, r)
		}
	}
}

func TestRankEmptyGraph(t *testing.T) {
	g := mustGraph(t, 0, nil)

	rec := NewRecorder()
	ranks := Rank(g, rec, DefaultRankOptions())

	if ranks != nil {
		t.Errorf("ranks = %v, want nil", ranks)
	}
	if !rec.Done {
		t.Error("no summary delivered for empty graph")
	}
}
