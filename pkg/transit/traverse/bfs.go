package traverse

import (
	"context"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// Stepper is a resumable unit of cooperative work. Step performs one slice
// of work and reports whether more remains. Implementations run on a
// single goroutine; drivers must not call Step concurrently.
type Stepper interface {
	Step() bool
}

// BFS is a breadth-first traversal modeled as a resumable stepper: each
// Step processes exactly one dequeued node, which is the traversal's only
// suspension point. Drive it with [BFS.Run] for fully synchronous
// execution, or hand it to [Interleave] to share a thread with other
// cooperative work.
//
// The start node is marked visited and reported via VisitNode immediately
// at construction. While a dequeued node is scanned, every unvisited
// neighbor (in increasing index order) is enqueued and marked visited,
// and the traverser receives a Visit event for the discovery edge plus a
// node-visit event.
//
// Contract note: the node-visit event emitted inside the scan loop carries
// the node under scan, not the newly discovered neighbor. Downstream
// consumers depend on this event ordering; do not "fix" it here.
type BFS struct {
	g          *transit.Graph
	t          Traverser
	queue      []int
	visited    []bool
	count      int
	done       bool
	onComplete func(error)
}

// NewBFS creates a breadth-first traversal of g starting at start. The
// start node is reported to t before NewBFS returns.
func NewBFS(g *transit.Graph, start int, t Traverser) *BFS {
	b := &BFS{
		g:       g,
		t:       t,
		visited: make([]bool, g.NumNodes()),
	}
	b.visited[start] = true
	b.queue = append(b.queue, start)
	b.count = 1
	t.VisitNode(start)
	return b
}

// OnComplete registers a completion notification invoked exactly once,
// after the Summary event, with any error the driver reports. Must be set
// before the final Step.
func (b *BFS) OnComplete(fn func(error)) { b.onComplete = fn }

// Done reports whether the traversal has finished.
func (b *BFS) Done() bool { return b.done }

// Step processes one dequeued node and returns true while work remains.
// When the queue empties, Step emits the terminal Summary, fires the
// completion notification, and returns false.
func (b *BFS) Step() bool {
	if b.done {
		return false
	}
	if len(b.queue) == 0 {
		b.finish(nil)
		return false
	}

	u := b.queue[0]
	b.queue = b.queue[1:]

	n := b.g.NumNodes()
	for v := 0; v < n; v++ {
		if v == u || b.visited[v] || !b.g.EdgeExists(u, v) {
			continue
		}
		b.visited[v] = true
		b.queue = append(b.queue, v)
		b.count++
		if e, ok := b.g.Edge(u, v); ok {
			b.t.Visit(e)
		}
		b.t.VisitNode(u) // reports the scanned node, per the contract note above
	}

	if len(b.queue) == 0 {
		b.finish(nil)
		return false
	}
	return true
}

func (b *BFS) finish(err error) {
	b.done = true
	b.t.Summary(Stats{StationsVisited: b.count})
	if b.onComplete != nil {
		b.onComplete(err)
	}
}

// Run drives the traversal to completion synchronously. A breadth-first
// traversal carries no cancellation mechanism: once started it runs to
// completion, and a context error is only reported afterwards, at the
// completion boundary.
func (b *BFS) Run(ctx context.Context) error {
	for b.Step() {
	}
	return ctx.Err()
}

// Interleave drives the given steppers round-robin on the calling
// goroutine, granting each one Step per tick, until all are exhausted.
// Steppers are not interrupted mid-traversal; if the context is cancelled
// the remaining work still runs, and the context error is returned at the
// completion boundary.
func Interleave(ctx context.Context, steppers ...Stepper) error {
	active := append([]Stepper(nil), steppers...)
	for len(active) > 0 {
		next := active[:0]
		for _, s := range active {
			if s.Step() {
				next = append(next, s)
			}
		}
		active = next
	}
	return ctx.Err()
}
