package traverse

import (
	"testing"

	"github.com/matzehuels/transitrank/pkg/transit"
)

func mustGraph(t *testing.T, n int, edges []transit.Edge) *transit.Graph {
	t.Helper()
	stops := make([]transit.Stop, n)
	for i := range stops {
		stops[i] = transit.Stop{ID: string(rune('a' + i))}
	}
	g, err := transit.NewGraph(stops, edges)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestDFSVisitsEveryNodeOnce(t *testing.T) {
	// Connected graph with a cycle: 0-1, 1-2, 2-0, 2-3.
	g := mustGraph(t, 4, []transit.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 2, To: 0},
		{From: 2, To: 3},
	})

	rec := NewRecorder()
	DFS(g, 0, rec)

	if !rec.Done {
		t.Fatal("no summary delivered")
	}
	if rec.Stats.StationsVisited != 4 {
		t.Errorf("StationsVisited = %d, want 4", rec.Stats.StationsVisited)
	}
	seen := make(map[int]int)
	for _, n := range rec.VisitedNodes {
		seen[n]++
	}
	if len(seen) != 4 {
		t.Errorf("visited %d distinct nodes, want 4", len(seen))
	}
	for n, c := range seen {
		if c != 1 {
			t.Errorf("node %d visited %d times", n, c)
		}
	}
}

func TestDFSTreeEdgeCounts(t *testing.T) {
	// Connected graph on N nodes emits N-1 visit and N-1 leave events.
	tests := []struct {
		name  string
		n     int
		edges []transit.Edge
	}{
		{
			name: "path",
			n:    4,
			edges: []transit.Edge{
				{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
			},
		},
		{
			name: "cycle",
			n:    5,
			edges: []transit.Edge{
				{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
				{From: 3, To: 4}, {From: 4, To: 0},
			},
		},
		{
			name: "star",
			n:    5,
			edges: []transit.Edge{
				{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 0, To: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t, tt.n, tt.edges)
			rec := NewRecorder()
			DFS(g, 0, rec)

			if len(rec.Visited) != tt.n-1 {
				t.Errorf("visit events = %d, want %d", len(rec.Visited), tt.n-1)
			}
			if len(rec.Left) != tt.n-1 {
				t.Errorf("leave events = %d, want %d", len(rec.Left), tt.n-1)
			}
		})
	}
}

func TestDFSLeaveAfterVisit(t *testing.T) {
	g := mustGraph(t, 4, []transit.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 3},
	})

	// Interleave events in one log to check ordering per edge.
	type event struct {
		leave bool
		e     transit.Edge
	}
	var events []event
	rec := &eventTraverser{
		onVisit: func(e transit.Edge) { events = append(events, event{e: e}) },
		onLeave: func(e transit.Edge) { events = append(events, event{leave: true, e: e}) },
	}
	DFS(g, 0, rec)

	visited := make(map[[2]int]bool)
	for _, ev := range events {
		pair := [2]int{min(ev.e.From, ev.e.To), max(ev.e.From, ev.e.To)}
		if ev.leave {
			if !visited[pair] {
				t.Errorf("leave for edge %v before its visit", pair)
			}
		} else {
			visited[pair] = true
		}
	}
}

func TestDFSNeighborOrder(t *testing.T) {
	// Start 2 with neighbors 0, 1, 3: exploration picks increasing order.
	g := mustGraph(t, 4, []transit.Edge{
		{From: 2, To: 3}, {From: 2, To: 0}, {From: 2, To: 1},
	})

	rec := NewRecorder()
	DFS(g, 2, rec)

	want := []int{2, 0, 1, 3}
	for i, n := range want {
		if rec.VisitedNodes[i] != n {
			t.Fatalf("VisitedNodes = %v, want %v", rec.VisitedNodes, want)
		}
	}
}

func TestDFSComponentPartitions(t *testing.T) {
	// Two components: {0,1} and {2,3,4}.
	g := mustGraph(t, 5, []transit.Edge{
		{From: 0, To: 1},
		{From: 2, To: 3}, {From: 3, To: 4},
	})

	visited := make([]bool, g.NumNodes())
	var components [][]int
	for start := 0; start < g.NumNodes(); start++ {
		if visited[start] {
			continue
		}
		rec := NewRecorder()
		DFSComponent(g, start, visited, rec)
		components = append(components, rec.VisitedNodes)
	}

	if len(components) != 2 {
		t.Fatalf("found %d components, want 2", len(components))
	}
	if len(components[0]) != 2 || len(components[1]) != 3 {
		t.Errorf("component sizes = %d, %d; want 2, 3", len(components[0]), len(components[1]))
	}
}

// eventTraverser adapts callbacks to the Traverser interface for tests.
type eventTraverser struct {
	onVisitNode func(int)
	onVisit     func(transit.Edge)
	onLeave     func(transit.Edge)
}

func (e *eventTraverser) VisitNode(n int) {
	if e.onVisitNode != nil {
		e.onVisitNode(n)
	}
}

func (e *eventTraverser) Visit(edge transit.Edge) {
	if e.onVisit != nil {
		e.onVisit(edge)
	}
}

func (e *eventTraverser) Leave(edge transit.Edge) {
	if e.onLeave != nil {
		e.onLeave(edge)
	}
}

func (e *eventTraverser) RecordRanks([]float64) {}
func (e *eventTraverser) Summary(Stats)         {}
