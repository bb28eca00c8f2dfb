package transit

import (
	"errors"
	"testing"
)

func testStops(n int) []Stop {
	stops := make([]Stop, n)
	for i := range stops {
		stops[i] = Stop{ID: string(rune('A' + i))}
	}
	return stops
}

func TestNewGraphValidation(t *testing.T) {
	tests := []struct {
		name    string
		stops   []Stop
		edges   []Edge
		wantErr error
	}{
		{
			name:  "valid",
			stops: testStops(3),
			edges: []Edge{{From: 0, To: 1}, {From: 1, To: 2, Type: EdgeTransfer}},
		},
		{
			name:  "empty",
			stops: nil,
			edges: nil,
		},
		{
			name:    "from out of range",
			stops:   testStops(2),
			edges:   []Edge{{From: 2, To: 0}},
			wantErr: ErrNodeOutOfRange,
		},
		{
			name:    "negative index",
			stops:   testStops(2),
			edges:   []Edge{{From: 0, To: -1}},
			wantErr: ErrNodeOutOfRange,
		},
		{
			name:    "self loop",
			stops:   testStops(2),
			edges:   []Edge{{From: 1, To: 1}},
			wantErr: ErrSelfEdge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraph(tt.stops, tt.edges)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewGraph() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGraph() error = %v", err)
			}
			if got := g.NumNodes(); got != len(tt.stops) {
				t.Errorf("NumNodes() = %d, want %d", got, len(tt.stops))
			}
			if got := g.EdgeCount(); got != len(tt.edges) {
				t.Errorf("EdgeCount() = %d, want %d", got, len(tt.edges))
			}
		})
	}
}

func TestEdgeExistsSymmetric(t *testing.T) {
	g, err := NewGraph(testStops(3), []Edge{{From: 0, To: 1, Weight: 5}})
	if err != nil {
		t.Fatal(err)
	}

	if !g.EdgeExists(0, 1) || !g.EdgeExists(1, 0) {
		t.Error("edge 0-1 should exist in both query orders")
	}
	if g.EdgeExists(0, 2) || g.EdgeExists(2, 0) {
		t.Error("edge 0-2 should not exist")
	}
}

func TestWeightDistinguishesZeroFromAbsent(t *testing.T) {
	g, err := NewGraph(testStops(3), []Edge{{From: 0, To: 1, Weight: 0}})
	if err != nil {
		t.Fatal(err)
	}

	if w, ok := g.Weight(1, 0); !ok || w != 0 {
		t.Errorf("Weight(1,0) = %v, %v; want 0, true", w, ok)
	}
	if _, ok := g.Weight(0, 2); ok {
		t.Error("Weight(0,2) reported an absent edge as present")
	}
}

func TestEdgeOrientation(t *testing.T) {
	g, err := NewGraph(testStops(2), []Edge{{From: 1, To: 0, Type: EdgeTransfer, Weight: 3}})
	if err != nil {
		t.Fatal(err)
	}

	e, ok := g.Edge(0, 1)
	if !ok {
		t.Fatal("Edge(0,1) not found")
	}
	if e.From != 0 || e.To != 1 {
		t.Errorf("Edge(0,1) oriented %d→%d, want 0→1", e.From, e.To)
	}
	if e.Type != EdgeTransfer || e.Weight != 3 {
		t.Errorf("Edge(0,1) = %+v, want transfer weight 3", e)
	}
}

func TestLaterEdgeOverwritesEarlier(t *testing.T) {
	g, err := NewGraph(testStops(2), []Edge{
		{From: 0, To: 1, Type: EdgeRoute, Weight: 5},
		{From: 1, To: 0, Type: EdgeTransfer, Weight: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	e, _ := g.Edge(0, 1)
	if e.Type != EdgeTransfer || e.Weight != 1 {
		t.Errorf("later edge should win, got %+v", e)
	}
}

func TestNeighborsIncreasingOrder(t *testing.T) {
	g, err := NewGraph(testStops(5), []Edge{
		{From: 3, To: 4},
		{From: 3, To: 0},
		{From: 1, To: 3},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := g.Neighbors(3)
	want := []int{0, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(3) = %v, want %v", got, want)
		}
	}
}

func TestEdgesDeterministicOrder(t *testing.T) {
	edges := []Edge{
		{From: 4, To: 2, Weight: 1},
		{From: 0, To: 3, Weight: 2},
		{From: 1, To: 0, Weight: 3},
	}
	g, err := NewGraph(testStops(5), edges)
	if err != nil {
		t.Fatal(err)
	}

	got := g.Edges()
	wantPairs := [][2]int{{0, 1}, {0, 3}, {2, 4}}
	if len(got) != len(wantPairs) {
		t.Fatalf("Edges() returned %d edges, want %d", len(got), len(wantPairs))
	}
	for i, e := range got {
		if e.From != wantPairs[i][0] || e.To != wantPairs[i][1] {
			t.Errorf("Edges()[%d] = %d→%d, want %d→%d", i, e.From, e.To, wantPairs[i][0], wantPairs[i][1])
		}
	}
}

func TestTransferEdges(t *testing.T) {
	g, err := NewGraph(testStops(4), []Edge{
		{From: 0, To: 1, Type: EdgeRoute, Weight: 5},
		{From: 2, To: 1, Type: EdgeTransfer},
		{From: 2, To: 3, Type: EdgeTransfer},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := g.TransferEdges()
	if len(got) != 2 {
		t.Fatalf("TransferEdges() returned %d edges, want 2", len(got))
	}
	for _, e := range got {
		if !e.IsTransfer() {
			t.Errorf("TransferEdges() returned non-transfer edge %+v", e)
		}
	}
	if got[0].From != 1 || got[0].To != 2 || got[1].From != 2 || got[1].To != 3 {
		t.Errorf("TransferEdges() order = %v", got)
	}
}

func TestStopsReturnsCopy(t *testing.T) {
	g, err := NewGraph(testStops(2), nil)
	if err != nil {
		t.Fatal(err)
	}

	stops := g.Stops()
	stops[0].ID = "mutated"
	if g.Stop(0).ID == "mutated" {
		t.Error("Stops() exposed internal storage")
	}
}
