// Package traverse implements the traversal and ranking algorithms of the
// transit graph engine: depth-first and breadth-first exploration,
// single-source shortest paths, and iterative rank propagation.
//
// All algorithms report progress through the [Traverser] observer contract
// and never mutate the graph they read. A Traverser is created fresh per
// invocation and owned by a single caller; [Recorder] is the standard
// accumulating implementation.
//
// Depth-first search, shortest paths and rank propagation run to
// completion synchronously. Breadth-first search is the one cooperative
// operation: it is modeled as a resumable [BFS] stepper that processes one
// dequeued node per tick, so long traversals can interleave with other
// work on a shared thread (see [Interleave]).
package traverse
