// Package pipeline orchestrates the load → collapse → rank → report flow
// with content-addressed caching of intermediate results.
//
// Both the CLI and the API drive the same [Runner], so caching and
// logging behavior stays identical across entry points.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/transitrank/pkg/cache"
	"github.com/matzehuels/transitrank/pkg/gtfs"
	"github.com/matzehuels/transitrank/pkg/network"
	"github.com/matzehuels/transitrank/pkg/observability"
	"github.com/matzehuels/transitrank/pkg/report"
	"github.com/matzehuels/transitrank/pkg/transit"
	"github.com/matzehuels/transitrank/pkg/transit/transform"
	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// Stats collects per-stage timings and graph dimensions.
type Stats struct {
	LoadTime     time.Duration `json:"load_time"`
	CollapseTime time.Duration `json:"collapse_time"`
	RankTime     time.Duration `json:"rank_time"`

	// NodeCount and EdgeCount describe the graph that was ranked, i.e.
	// after collapsing when it was requested.
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`

	// MergedNodes is how many nodes collapsing removed.
	MergedNodes int `json:"merged_nodes"`
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	CollapseHit bool `json:"collapse_hit"`
	RankHit     bool `json:"rank_hit"`
}

// Result is the outcome of one pipeline execution.
type Result struct {
	// RunID uniquely identifies this execution in logs and API responses.
	RunID string

	// Graph is the ranked graph (collapsed when requested).
	Graph *transit.Graph

	// Ranks is the final rank vector, indexed by node.
	Ranks []float64

	// NetworkHash is the content hash of the loaded network document,
	// before collapsing. It keys every cached artifact of this network.
	NetworkHash string

	Stats     Stats
	CacheInfo CacheInfo
}

// Runner executes pipelines with caching. It is stateless apart from the
// cache and logger; multiple goroutines can share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching via
// [cache.NullCache], a nil keyer falls back to [cache.DefaultKeyer], and
// a nil logger falls back to log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete load → collapse → rank → report pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: load.
	loadStart := time.Now()
	n, hash, err := r.Load(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.NetworkHash = hash

	g, err := network.ToGraph(n)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	logger.Info("loaded network",
		"stops", g.NumNodes(),
		"links", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: collapse.
	if opts.Collapse {
		collapseStart := time.Now()
		collapsed, hit, err := r.CollapseWithCacheInfo(ctx, g, hash, opts.Refresh)
		result.Stats.CollapseTime = time.Since(collapseStart)
		if err != nil {
			return nil, fmt.Errorf("collapse: %w", err)
		}
		result.Stats.MergedNodes = g.NumNodes() - collapsed.NumNodes()
		result.CacheInfo.CollapseHit = hit
		g = collapsed

		logger.Info("collapsed transfer clusters",
			"merged", result.Stats.MergedNodes,
			"stops", g.NumNodes(),
			"cached", hit,
			"duration", result.Stats.CollapseTime)
	}
	result.Graph = g
	result.Stats.NodeCount = g.NumNodes()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 3: rank.
	rankStart := time.Now()
	ranks, hit, err := r.RankWithCacheInfo(ctx, g, hash, opts)
	result.Stats.RankTime = time.Since(rankStart)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	result.Ranks = ranks
	result.CacheInfo.RankHit = hit

	logger.Info("computed ranks",
		"stops", len(ranks),
		"iterations", opts.Iterations,
		"cached", hit,
		"duration", result.Stats.RankTime)

	// Stage 4: report.
	if opts.ReportPath != "" {
		if err := report.WriteFile(opts.ReportPath, g, ranks); err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		logger.Info("wrote rank report", "path", opts.ReportPath)
	}

	return result, nil
}

// Load reads the network from the configured source and returns it along
// with its content hash. The hash is computed over the canonical JSON
// form, so feed-loaded and file-loaded copies of the same network share
// cache entries.
func (r *Runner) Load(ctx context.Context, opts Options) (network.Network, string, error) {
	source := opts.NetworkPath
	if source == "" {
		source = opts.FeedDir
	}
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)

	var (
		n   network.Network
		err error
	)
	if opts.FeedDir != "" {
		n, err = gtfs.LoadDir(opts.FeedDir)
	} else {
		n, err = network.ReadFile(opts.NetworkPath)
	}
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return network.Network{}, "", err
	}

	data, err := network.MarshalNetwork(n)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, len(n.Stops), time.Since(start), err)
		return network.Network{}, "", fmt.Errorf("hash network: %w", err)
	}

	observability.Pipeline().OnLoadComplete(ctx, source, len(n.Stops), time.Since(start), nil)
	return n, cache.Hash(data), nil
}

// CollapseWithCacheInfo collapses transfer clusters, serving the result
// from cache when possible, and reports whether it was a cache hit.
// A graph with no transfer edges collapses to itself.
func (r *Runner) CollapseWithCacheInfo(ctx context.Context, g *transit.Graph, networkHash string, refresh bool) (*transit.Graph, bool, error) {
	key := r.Keyer.CollapseKey(networkHash)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "collapse")
			if n, err := network.UnmarshalNetwork(data); err == nil {
				if cached, err := network.ToGraph(n); err == nil {
					return cached, true, nil
				}
			}
			// Corrupt entry, fall through and recompute.
		} else {
			observability.Cache().OnCacheMiss(ctx, "collapse")
		}
	}

	start := time.Now()
	observability.Pipeline().OnCollapseStart(ctx, g.NumNodes())

	collapsed, err := transform.CollapseTransfers(g)
	if errors.Is(err, transform.ErrNoTransferEdges) {
		collapsed, err = g, nil
	}
	if err != nil {
		observability.Pipeline().OnCollapseComplete(ctx, g.NumNodes(), 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnCollapseComplete(ctx, g.NumNodes(), g.NumNodes()-collapsed.NumNodes(), time.Since(start), nil)

	if data, err := network.MarshalNetwork(network.FromGraph(collapsed)); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLNetwork); err == nil {
			observability.Cache().OnCacheSet(ctx, "collapse", len(data))
		}
	}
	return collapsed, false, nil
}

// RankWithCacheInfo computes the rank vector, serving it from cache when
// possible, and reports whether it was a cache hit.
func (r *Runner) RankWithCacheInfo(ctx context.Context, g *transit.Graph, networkHash string, opts Options) ([]float64, bool, error) {
	key := r.Keyer.RankKey(networkHash, cache.RankKeyOpts{
		Damping:    opts.Damping,
		Iterations: opts.Iterations,
		Collapsed:  opts.Collapse,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var ranks []float64
			if err := json.Unmarshal(data, &ranks); err == nil && len(ranks) == g.NumNodes() {
				observability.Cache().OnCacheHit(ctx, "ranks")
				return ranks, true, nil
			}
		} else {
			observability.Cache().OnCacheMiss(ctx, "ranks")
		}
	}

	start := time.Now()
	observability.Pipeline().OnRankStart(ctx, g.NumNodes())
	ranks := traverse.Rank(g, traverse.NewRecorder(), opts.rankOptions())
	observability.Pipeline().OnRankComplete(ctx, g.NumNodes(), time.Since(start), nil)

	if data, err := json.Marshal(ranks); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLRanks); err == nil {
			observability.Cache().OnCacheSet(ctx, "ranks", len(data))
		}
	}
	return ranks, false, nil
}

// Close releases resources held by the runner, primarily the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
