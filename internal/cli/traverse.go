package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/transit"
	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// newTraverseCmd creates the traverse command with dfs and bfs subcommands.
func newTraverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Explore the network depth-first or breadth-first",
	}

	cmd.AddCommand(newDFSCmd())
	cmd.AddCommand(newBFSCmd())

	return cmd
}

// newDFSCmd creates the "traverse dfs" subcommand.
func newDFSCmd() *cobra.Command {
	src := &sourceOpts{}

	cmd := &cobra.Command{
		Use:   "dfs <start>",
		Short: "Depth-first exploration from a stop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := src.loadGraph()
			if err != nil {
				return err
			}
			start, err := resolveStopArg(g, args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			rec := traverse.NewRecorder()
			traverse.DFS(g, start, rec)
			prog.done(fmt.Sprintf("Visited %d of %d stops", rec.Stats.StationsVisited, g.NumNodes()))

			printVisitOrder(g, rec.VisitedNodes)
			if rec.Stats.StationsVisited < g.NumNodes() {
				printWarning("%d stops are unreachable from %s",
					g.NumNodes()-rec.Stats.StationsVisited, stopLabel(g.Stop(start)))
			}
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}

// newBFSCmd creates the "traverse bfs" subcommand. With several start
// stops the traversals share the thread cooperatively, one processed
// node per turn.
func newBFSCmd() *cobra.Command {
	src := &sourceOpts{}

	cmd := &cobra.Command{
		Use:   "bfs <start> [start...]",
		Short: "Breadth-first exploration from one or more stops",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := src.loadGraph()
			if err != nil {
				return err
			}

			recs := make([]*traverse.Recorder, len(args))
			steppers := make([]traverse.Stepper, len(args))
			for i, arg := range args {
				start, err := resolveStopArg(g, arg)
				if err != nil {
					return err
				}
				recs[i] = traverse.NewRecorder()
				steppers[i] = traverse.NewBFS(g, start, recs[i])
			}

			prog := newProgress(logger)
			if err := traverse.Interleave(cmd.Context(), steppers...); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Completed %d traversal(s)", len(steppers)))

			for i, rec := range recs {
				printInfo("Traversal from %s reached %d stops",
					args[i], rec.Stats.StationsVisited)
				printVisitOrder(g, rec.VisitedNodes)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}

// printVisitOrder prints the visited stop IDs, truncated past 20 entries.
func printVisitOrder(g *transit.Graph, order []int) {
	const max = 20
	ids := make([]string, 0, len(order))
	for i, node := range order {
		if i == max {
			ids = append(ids, fmt.Sprintf("… %d more", len(order)-max))
			break
		}
		ids = append(ids, g.Stop(node).ID)
	}
	printDetail("%s", strings.Join(ids, " "+iconArrow+" "))
}
