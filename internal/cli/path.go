package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/transit"
	"github.com/matzehuels/transitrank/pkg/transit/transform"
	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	collapse bool // merge transfer clusters before routing
}

// newPathCmd creates the path command. Endpoints may be given as stop
// IDs or node indices; when omitted they are picked interactively.
func newPathCmd() *cobra.Command {
	src := &sourceOpts{}
	opts := pathOpts{}

	cmd := &cobra.Command{
		Use:   "path [from] [to]",
		Short: "Find the shortest path between two stops",
		Long: `Find the shortest path between two stops over route link weights.

Endpoints may be stop IDs or node indices. When omitted, stops are
selected interactively.

Examples:
  transitrank path -f network.json S001 S042
  transitrank path --feed ./feed 0 17
  transitrank path -f network.json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, src, &opts, args)
		},
	}

	src.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "merge transfer clusters before routing")

	return cmd
}

func runPath(cmd *cobra.Command, src *sourceOpts, opts *pathOpts, args []string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := src.loadGraph()
	if err != nil {
		return err
	}
	if g.NumNodes() == 0 {
		return fmt.Errorf("network has no stops")
	}

	if opts.collapse {
		collapsed, err := transform.CollapseTransfers(g)
		switch {
		case err == transform.ErrNoTransferEdges:
			logger.Debug("no transfer links to collapse")
		case err != nil:
			return err
		default:
			g = collapsed
		}
	}

	from, to, err := resolveEndpoints(g, args)
	if err != nil {
		return err
	}

	rec := traverse.NewRecorder()
	dist := traverse.ShortestPath(g, from, to, rec, logger)

	if math.IsInf(dist[to], 1) {
		printWarning("No path from %s to %s", stopLabel(g.Stop(from)), stopLabel(g.Stop(to)))
		return nil
	}

	printSuccess("Path with %d legs, total weight %s",
		len(rec.Visited), strconv.FormatFloat(dist[to], 'f', -1, 64))
	printDetail("%s", stopLabel(g.Stop(from)))
	for _, e := range rec.Visited {
		leg := fmt.Sprintf("%s %s", iconArrow, stopLabel(g.Stop(e.To)))
		if e.Weight == transit.WeightAggregate {
			leg += "  " + StyleDim.Render("(merged link)")
		} else {
			leg += "  " + StyleDim.Render(strconv.FormatFloat(e.Weight, 'f', -1, 64))
		}
		printDetail("%s", leg)
	}
	return nil
}

// resolveEndpoints maps the positional arguments to node indices,
// prompting interactively for any that are missing.
func resolveEndpoints(g *transit.Graph, args []string) (from, to int, err error) {
	if len(args) > 0 {
		from, err = resolveStopArg(g, args[0])
	} else {
		from, err = selectStop("Select origin stop", g)
	}
	if err != nil {
		return 0, 0, err
	}

	if len(args) > 1 {
		to, err = resolveStopArg(g, args[1])
	} else {
		to, err = selectStop("Select destination stop", g)
	}
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// resolveStopArg maps a stop ID or node index to a node index. Stop IDs
// take precedence so that purely numeric IDs still work.
func resolveStopArg(g *transit.Graph, raw string) (int, error) {
	for i := 0; i < g.NumNodes(); i++ {
		if g.Stop(i).ID == raw {
			return i, nil
		}
	}
	if idx, err := strconv.Atoi(raw); err == nil {
		if idx < 0 || idx >= g.NumNodes() {
			return 0, fmt.Errorf("node %d outside [0, %d)", idx, g.NumNodes())
		}
		return idx, nil
	}
	return 0, fmt.Errorf("no stop with id %q", raw)
}

// stopLabel renders a stop for terminal output.
func stopLabel(s transit.Stop) string {
	if s.Name == "" {
		return s.ID
	}
	if strings.EqualFold(s.Name, s.ID) {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}
