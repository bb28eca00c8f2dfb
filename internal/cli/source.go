package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/gtfs"
	"github.com/matzehuels/transitrank/pkg/network"
	"github.com/matzehuels/transitrank/pkg/transit"
)

// sourceOpts selects where a command reads its network from: a network
// document or a CSV feed directory.
type sourceOpts struct {
	networkPath string
	feedDir     string
}

// addFlags registers the shared --network / --feed flags on cmd.
func (o *sourceOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.networkPath, "network", "f", "", "network file (.json or .bson)")
	cmd.Flags().StringVar(&o.feedDir, "feed", "", "feed directory with stops.txt and links.txt")
}

// validate checks that exactly one source is configured.
func (o *sourceOpts) validate() error {
	if (o.networkPath == "") == (o.feedDir == "") {
		return fmt.Errorf("exactly one of --network and --feed must be set")
	}
	return nil
}

// load reads the configured source into a network document.
func (o *sourceOpts) load() (network.Network, error) {
	if err := o.validate(); err != nil {
		return network.Network{}, err
	}
	if o.feedDir != "" {
		return gtfs.LoadDir(o.feedDir)
	}
	return network.ReadFile(o.networkPath)
}

// loadGraph reads the configured source and builds the graph.
func (o *sourceOpts) loadGraph() (*transit.Graph, error) {
	n, err := o.load()
	if err != nil {
		return nil, err
	}
	return network.ToGraph(n)
}
