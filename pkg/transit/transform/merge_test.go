package transform

import (
	"errors"
	"testing"

	"github.com/matzehuels/transitrank/pkg/transit"
)

func mustGraph(t *testing.T, stops []transit.Stop, edges []transit.Edge) *transit.Graph {
	t.Helper()
	g, err := transit.NewGraph(stops, edges)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestCollapseNothingToMerge(t *testing.T) {
	g := mustGraph(t,
		[]transit.Stop{{ID: "a"}, {ID: "b"}},
		[]transit.Edge{{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 5}},
	)

	got, err := CollapseTransfers(g)
	if !errors.Is(err, ErrNoTransferEdges) {
		t.Fatalf("error = %v, want ErrNoTransferEdges", err)
	}
	if got != nil {
		t.Errorf("graph = %v, want nil on the nothing-to-merge signal", got)
	}
}

func TestCollapseSinglePair(t *testing.T) {
	// Three stops: 0 -route(5)- 1 -transfer- 2.
	g := mustGraph(t,
		[]transit.Stop{
			{ID: "s0", Name: "West"},
			{ID: "s1", Name: "Central", Routes: []string{"U1"}},
			{ID: "s2", Name: "Central", Routes: []string{"U2"}},
		},
		[]transit.Edge{
			{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 5},
			{From: 1, To: 2, Type: transit.EdgeTransfer, Weight: 1},
		},
	)

	got, err := CollapseTransfers(g)
	if err != nil {
		t.Fatalf("CollapseTransfers: %v", err)
	}

	if got.NumNodes() != 2 {
		t.Fatalf("NumNodes() = %d, want 2", got.NumNodes())
	}
	if n := len(got.TransferEdges()); n != 0 {
		t.Errorf("transfer edges remaining = %d, want 0", n)
	}

	// Survivor keeps index 0; merged stop is appended last.
	if got.Stop(0).ID != "s0" {
		t.Errorf("Stop(0).ID = %q, want s0", got.Stop(0).ID)
	}
	want := g.Stop(1).MergeWith(g.Stop(2))
	merged := got.Stop(1)
	if merged.ID != want.ID || merged.Name != want.Name {
		t.Errorf("merged stop = %+v, want %+v", merged, want)
	}

	e, ok := got.Edge(0, 1)
	if !ok {
		t.Fatal("no edge between survivor and merged node")
	}
	if e.Type != transit.EdgeRoute {
		t.Errorf("edge type = %v, want route", e.Type)
	}
	if e.Weight != transit.WeightAggregate {
		t.Errorf("edge weight = %v, want aggregate sentinel %v", e.Weight, transit.WeightAggregate)
	}
}

func TestCollapseTransferChain(t *testing.T) {
	// A three-platform station 1-2-3 linked by transfers, with route
	// links to outer stops 0 and 4. The whole chain collapses over
	// successive iterations.
	g := mustGraph(t,
		[]transit.Stop{
			{ID: "w"}, {ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "e"},
		},
		[]transit.Edge{
			{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 3},
			{From: 1, To: 2, Type: transit.EdgeTransfer},
			{From: 2, To: 3, Type: transit.EdgeTransfer},
			{From: 3, To: 4, Type: transit.EdgeRoute, Weight: 7},
		},
	)

	got, err := CollapseTransfers(g)
	if err != nil {
		t.Fatalf("CollapseTransfers: %v", err)
	}

	if got.NumNodes() != 3 {
		t.Fatalf("NumNodes() = %d, want 3", got.NumNodes())
	}
	if n := len(got.TransferEdges()); n != 0 {
		t.Errorf("transfer edges remaining = %d, want 0", n)
	}

	// Find the merged station: the one node holding all three platform IDs.
	mergedIdx := -1
	for i := 0; i < got.NumNodes(); i++ {
		id := got.Stop(i).ID
		if id != "w" && id != "e" {
			mergedIdx = i
		}
	}
	if mergedIdx == -1 {
		t.Fatal("merged station not found")
	}

	for i := 0; i < got.NumNodes(); i++ {
		if i == mergedIdx {
			continue
		}
		e, ok := got.Edge(mergedIdx, i)
		if !ok {
			t.Errorf("no edge from merged station to %q", got.Stop(i).ID)
			continue
		}
		if e.Type != transit.EdgeRoute || e.Weight != transit.WeightAggregate {
			t.Errorf("edge to %q = %+v, want route with aggregate weight", got.Stop(i).ID, e)
		}
	}
}

func TestCollapseKeepsUntouchedWeights(t *testing.T) {
	// The 0-1 route edge does not touch the merged pair 2/3 and must
	// keep its weight through the index remap.
	g := mustGraph(t,
		[]transit.Stop{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]transit.Edge{
			{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 42},
			{From: 2, To: 3, Type: transit.EdgeTransfer},
			{From: 1, To: 2, Type: transit.EdgeRoute, Weight: 5},
		},
	)

	got, err := CollapseTransfers(g)
	if err != nil {
		t.Fatalf("CollapseTransfers: %v", err)
	}

	if got.NumNodes() != 3 {
		t.Fatalf("NumNodes() = %d, want 3", got.NumNodes())
	}
	w, ok := got.Weight(0, 1)
	if !ok || w != 42 {
		t.Errorf("untouched edge weight = %v, %v; want 42, true", w, ok)
	}
	// b's link now reaches the merged node with the sentinel weight.
	e, ok := got.Edge(1, 2)
	if !ok {
		t.Fatal("no edge from b to merged node")
	}
	if e.Weight != transit.WeightAggregate {
		t.Errorf("reattached edge weight = %v, want %v", e.Weight, transit.WeightAggregate)
	}
}

func TestCollapseUnionPrefersTransfer(t *testing.T) {
	// Node 0 has a route link to 1 and a transfer link to 2; when 1 and
	// 2 merge, the unioned link must stay a transfer so a later
	// iteration absorbs node 0 as well. Full collapse therefore ends at
	// a single node.
	g := mustGraph(t,
		[]transit.Stop{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]transit.Edge{
			{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 2},
			{From: 0, To: 2, Type: transit.EdgeTransfer},
			{From: 1, To: 2, Type: transit.EdgeTransfer},
		},
	)

	got, err := CollapseTransfers(g)
	if err != nil {
		t.Fatalf("CollapseTransfers: %v", err)
	}
	if got.NumNodes() != 1 {
		t.Errorf("NumNodes() = %d, want 1 after full collapse", got.NumNodes())
	}
	if n := len(got.TransferEdges()); n != 0 {
		t.Errorf("transfer edges remaining = %d, want 0", n)
	}
}

func TestCollapseInputUnchanged(t *testing.T) {
	g := mustGraph(t,
		[]transit.Stop{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]transit.Edge{
			{From: 0, To: 1, Type: transit.EdgeRoute, Weight: 5},
			{From: 1, To: 2, Type: transit.EdgeTransfer},
		},
	)

	if _, err := CollapseTransfers(g); err != nil {
		t.Fatalf("CollapseTransfers: %v", err)
	}

	if g.NumNodes() != 3 {
		t.Errorf("input NumNodes() = %d, want 3", g.NumNodes())
	}
	if len(g.TransferEdges()) != 1 {
		t.Error("input graph lost its transfer edge")
	}
	if w, ok := g.Weight(0, 1); !ok || w != 5 {
		t.Error("input graph lost its route edge")
	}
}
