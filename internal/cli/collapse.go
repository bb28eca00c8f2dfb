package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/network"
	"github.com/matzehuels/transitrank/pkg/transit/transform"
)

// newCollapseCmd creates the collapse command.
func newCollapseCmd() *cobra.Command {
	src := &sourceOpts{}
	var output string

	cmd := &cobra.Command{
		Use:   "collapse",
		Short: "Merge transfer-connected stop clusters",
		Long: `Merge every cluster of stops connected by transfer links into a
single logical stop and write the resulting network. Links produced by
merging carry the aggregate weight sentinel -1.

Examples:
  transitrank collapse -f network.json -o collapsed.json
  transitrank collapse --feed ./feed -o collapsed.bson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := src.loadGraph()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			collapsed, err := transform.CollapseTransfers(g)
			if errors.Is(err, transform.ErrNoTransferEdges) {
				printInfo("Network has no transfer links, nothing to collapse")
				return nil
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Collapsed %d stops into %d",
				g.NumNodes(), collapsed.NumNodes()))

			doc := network.FromGraph(collapsed)
			if output == "" {
				return network.WriteNetwork(doc, os.Stdout)
			}
			if err := network.WriteFile(doc, output); err != nil {
				return err
			}
			printSuccess("Collapsed %d platform nodes", g.NumNodes()-collapsed.NumNodes())
			printFile(output)
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output network file (stdout if empty)")

	return cmd
}
