// Package pkg provides the core libraries for transitrank network analysis.
//
// # Overview
//
// Transitrank computes structural importance metrics over transit networks
// modeled as graphs of stops and typed edges. The pkg directory is
// organized into:
//
//  1. [transit] - Graph model (stops, typed edges, immutable graphs)
//  2. [transit/traverse] - Algorithms (DFS, cooperative BFS, Dijkstra, rank propagation)
//  3. [transit/transform] - Graph simplification (transfer-cluster collapse)
//  4. [network] - Serialization (JSON/BSON network exchange files)
//  5. [gtfs] - Feed loading (CSV stop and link tables)
//  6. [report] - Rank report emission (semicolon-separated text)
//  7. [pipeline] - Orchestration (load → collapse → rank → report) with caching
//  8. [cache] - Content-addressed result cache (file, Redis, null backends)
//  9. [api] - Read-only HTTP surface for computed results
//
// # Architecture
//
// The typical data flow:
//
//	GTFS-style CSV feed / network JSON
//	         ↓
//	    [gtfs] or [network] (build the stop/link sequences)
//	         ↓
//	    [transit] package (immutable graph)
//	         ↓
//	    [transit/transform] (collapse transfer clusters)
//	         ↓
//	    [transit/traverse] (rank propagation, paths, exploration)
//	         ↓
//	    [report] / [network] / [api] output
//
// # Quick Start
//
// Load a network, collapse transfer clusters and rank the stops:
//
//	import (
//	    "github.com/matzehuels/transitrank/pkg/network"
//	    "github.com/matzehuels/transitrank/pkg/transit/transform"
//	    "github.com/matzehuels/transitrank/pkg/transit/traverse"
//	)
//
//	n, _ := network.ReadFile("metro.json")
//	g, _ := network.ToGraph(n)
//	if merged, err := transform.CollapseTransfers(g); err == nil {
//	    g = merged
//	}
//	rec := traverse.NewRecorder()
//	ranks := traverse.Rank(g, rec, traverse.DefaultRankOptions())
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/transit/...       # Graph engine only
//
// [transit]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/transit
// [transit/traverse]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/transit/traverse
// [transit/transform]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/transit/transform
// [network]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/network
// [gtfs]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/gtfs
// [report]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/transitrank/pkg/api
package pkg
