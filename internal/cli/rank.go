package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/pipeline"
)

// rankOpts holds the command-line flags for the rank command.
type rankOpts struct {
	collapse   bool    // merge transfer clusters before ranking
	damping    float64 // rank propagation damping factor
	iterations int     // number of propagation sweeps
	output     string  // report file path (skipped if empty)
	refresh    bool    // bypass cached results
	top        int     // how many top stops to print
}

// newRankCmd creates the rank command.
//
// Default options match the engine's historical configuration: damping
// 1.0 and 10 iterations. Values from the config file apply where the
// flag was not given.
func newRankCmd(configPath *string) *cobra.Command {
	src := &sourceOpts{}
	opts := rankOpts{damping: 1.0, iterations: 10, top: 5}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Compute stop importance scores and emit the rank report",
		Long: `Compute a structural importance score for every stop using iterative
rank propagation, optionally collapsing transfer-connected platform
clusters into single logical stops first.

Examples:
  transitrank rank -f network.json
  transitrank rank --feed ./feed --collapse -o ranks.csv
  transitrank rank -f network.json --iterations 20 --damping 0.85`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, src, &opts, *configPath)
		},
	}

	src.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "merge transfer clusters before ranking")
	cmd.Flags().Float64Var(&opts.damping, "damping", opts.damping, "damping factor for rank propagation")
	cmd.Flags().IntVar(&opts.iterations, "iterations", opts.iterations, "number of propagation sweeps")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "rank report file (skipped if empty)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().IntVar(&opts.top, "top", opts.top, "number of top-ranked stops to print")

	return cmd
}

func runRank(cmd *cobra.Command, src *sourceOpts, opts *rankOpts, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyRankConfig(cmd, opts, cfg)

	if err := src.validate(); err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		NetworkPath: src.networkPath,
		FeedDir:     src.feedDir,
		Collapse:    opts.collapse,
		Damping:     opts.damping,
		Iterations:  opts.iterations,
		ReportPath:  opts.output,
		Refresh:     opts.refresh,
		Logger:      logger,
	}

	sp := newSpinner("ranking stops")
	sp.Start()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		sp.StopWithError(fmt.Sprintf("Ranking failed: %v", err))
		return err
	}
	sp.StopWithSuccess(fmt.Sprintf("Ranked %d stops", result.Stats.NodeCount))

	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RankHit)
	if opts.collapse && result.Stats.MergedNodes > 0 {
		printDetail("collapsed %d platform nodes", result.Stats.MergedNodes)
	}

	printTopStops(result, opts.top)

	if opts.output != "" {
		printFile(opts.output)
	} else {
		printNextStep("Write the full report", "transitrank rank -f "+src.networkPath+" -o ranks.csv")
	}
	return nil
}

// applyRankConfig fills in config file values for flags the user did not set.
func applyRankConfig(cmd *cobra.Command, opts *rankOpts, cfg Config) {
	if !cmd.Flags().Changed("damping") && cfg.Rank.Damping != 0 {
		opts.damping = cfg.Rank.Damping
	}
	if !cmd.Flags().Changed("iterations") && cfg.Rank.Iterations != 0 {
		opts.iterations = cfg.Rank.Iterations
	}
	if !cmd.Flags().Changed("collapse") && cfg.Rank.Collapse {
		opts.collapse = true
	}
	if !cmd.Flags().Changed("output") && cfg.Report.Path != "" {
		opts.output = cfg.Report.Path
	}
}

// printTopStops prints the highest-ranked stops, ties broken by node index.
func printTopStops(result *pipeline.Result, top int) {
	if top <= 0 || len(result.Ranks) == 0 {
		return
	}

	order := make([]int, len(result.Ranks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return result.Ranks[order[a]] > result.Ranks[order[b]]
	})
	if top > len(order) {
		top = len(order)
	}

	for pos := 0; pos < top; pos++ {
		i := order[pos]
		stop := result.Graph.Stop(i)
		name := stop.Name
		if name == "" {
			name = stop.ID
		}
		line := fmt.Sprintf("%2d. %-30s %s", pos+1, name,
			strconv.FormatFloat(result.Ranks[i], 'f', 4, 64))
		if len(stop.Routes) > 0 {
			line += "  " + strings.Join(stop.Routes, " ")
		}
		printDetail("%s", line)
	}
}
