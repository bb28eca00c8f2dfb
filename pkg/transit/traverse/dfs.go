package traverse

import "github.com/matzehuels/transitrank/pkg/transit"

// DFS explores the graph depth-first from start, visiting each reachable
// node exactly once. Unvisited neighbors are taken in increasing index
// order. For every tree edge the traverser receives Visit(parent→node)
// followed by VisitNode(node); once a node's full subtree is explored the
// traverser receives Leave(node→parent). The start node gets only a
// VisitNode event, having no parent. A terminal Summary carries the count
// of nodes visited.
func DFS(g *transit.Graph, start int, t Traverser) {
	visited := make([]bool, g.NumNodes())
	count := DFSComponent(g, start, visited, t)
	t.Summary(Stats{StationsVisited: count})
}

// dfsFrame is one level of the explicit exploration stack. next is the
// lowest neighbor index not yet considered at this level.
type dfsFrame struct {
	node   int
	parent int // -1 for the start node
	next   int
}

// DFSComponent explores only the nodes reachable from start, marking them
// in visited, and returns how many it visited. It emits Visit, VisitNode
// and Leave events but no Summary, which makes it usable as the
// component-discovery primitive of the merge engine: launched from every
// still-unvisited node with a shared visited slice, it partitions the
// graph into connected components.
//
// The traversal uses an explicit stack so its depth is bounded regardless
// of graph size.
func DFSComponent(g *transit.Graph, start int, visited []bool, t Traverser) int {
	n := g.NumNodes()
	if start < 0 || start >= n || visited[start] {
		return 0
	}

	visited[start] = true
	t.VisitNode(start)
	count := 1

	stack := []dfsFrame{{node: start, parent: -1}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		descended := false
		for v := f.next; v < n; v++ {
			if v == f.node || visited[v] || !g.EdgeExists(f.node, v) {
				continue
			}
			stack[top].next = v + 1
			visited[v] = true
			if e, ok := g.Edge(f.node, v); ok {
				t.Visit(e)
			}
			t.VisitNode(v)
			count++
			stack = append(stack, dfsFrame{node: v, parent: f.node})
			descended = true
			break
		}
		if descended {
			continue
		}

		// Subtree under f.node is complete.
		if f.parent >= 0 {
			if e, ok := g.Edge(f.node, f.parent); ok {
				t.Leave(e)
			}
		}
		stack = stack[:top]
	}
	return count
}
