package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// Options configures one pipeline execution.
type Options struct {
	// NetworkPath is a network document (.json or .bson) to load.
	// Exactly one of NetworkPath and FeedDir must be set.
	NetworkPath string

	// FeedDir is a CSV feed directory (stops.txt + links.txt) to load.
	FeedDir string

	// Collapse merges transfer-connected stop clusters before ranking.
	Collapse bool

	// Damping and Iterations configure rank propagation. Zero values are
	// replaced by the engine defaults (damping 1.0, 10 iterations).
	Damping    float64
	Iterations int

	// ReportPath, when set, receives the semicolon-separated rank report.
	ReportPath string

	// Refresh bypasses cached results and recomputes everything.
	Refresh bool

	// Logger overrides the runner's logger for this execution.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if (o.NetworkPath == "") == (o.FeedDir == "") {
		return fmt.Errorf("exactly one of network path and feed directory must be set")
	}

	defaults := traverse.DefaultRankOptions()
	if o.Damping == 0 {
		o.Damping = defaults.Damping
	}
	if o.Iterations == 0 {
		o.Iterations = defaults.Iterations
	}
	if o.Damping < 0 || o.Damping > 1 {
		return fmt.Errorf("damping %v outside [0, 1]", o.Damping)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", o.Iterations)
	}
	return nil
}

// rankOptions converts the pipeline options to algorithm options.
func (o *Options) rankOptions() traverse.RankOptions {
	return traverse.RankOptions{Damping: o.Damping, Iterations: o.Iterations}
}
