package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // "dot" or "svg"
	output   string // output file path (stdout if empty)
	detailed bool   // include indices, routes and weights in labels
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	src := &sourceOpts{}
	opts := renderOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the network as a Graphviz diagram",
		Long: `Export the network topology as a Graphviz diagram. Transfer links
are drawn dashed.

Examples:
  transitrank render -f network.json -o network.dot
  transitrank render -f network.json --format svg -o network.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.loadGraph()
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

			var data []byte
			switch opts.format {
			case "dot":
				data = []byte(dot)
			case "svg":
				sp := newSpinner("rendering diagram")
				sp.Start()
				data, err = render.RenderSVG(dot)
				sp.Stop()
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (expected dot or svg)", opts.format)
			}

			if opts.output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Rendered %d stops and %d links", g.NumNodes(), g.EdgeCount())
			printFile(opts.output)
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format (dot, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include indices, routes and weights in labels")

	return cmd
}
