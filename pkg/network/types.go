package network

import (
	"fmt"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Link type names used in serialized networks.
const (
	LinkRoute    = "route"
	LinkTransfer = "transfer"
)

// File extensions understood by ReadFile and WriteFile.
const (
	ExtJSON = ".json"
	ExtBSON = ".bson"
)

// =============================================================================
// Network - Transit Network Serialization
// =============================================================================

// Network is the canonical serialization format for transit networks.
// Used for network exchange files, API responses and cache entries.
//
// The format is designed for round-trip fidelity: load → transform →
// export → re-import produces identical results. Link endpoints reference
// positions in the stop sequence.
type Network struct {
	Stops []StopRecord `json:"stops" bson:"stops"`
	Links []LinkRecord `json:"links" bson:"links"`
}

// StopRecord is the serialized form of a stop.
type StopRecord struct {
	ID     string   `json:"id" bson:"id"`
	Name   string   `json:"name,omitempty" bson:"name,omitempty"`
	Lat    float64  `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon    float64  `json:"lon,omitempty" bson:"lon,omitempty"`
	Routes []string `json:"routes,omitempty" bson:"routes,omitempty"`
}

// LinkRecord is the serialized form of an edge between two stop indices.
type LinkRecord struct {
	From   int     `json:"from" bson:"from"`
	To     int     `json:"to" bson:"to"`
	Type   string  `json:"type" bson:"type"`
	Weight float64 `json:"weight" bson:"weight"`
}

// =============================================================================
// Graph ↔ Network Conversion
// =============================================================================

// FromGraph converts a graph to its serialization format. Stops appear in
// node-index order and links in the graph's deterministic edge order, so
// output is stable across runs.
func FromGraph(g *transit.Graph) Network {
	out := Network{
		Stops: make([]StopRecord, g.NumNodes()),
		Links: make([]LinkRecord, 0, g.EdgeCount()),
	}
	for i := 0; i < g.NumNodes(); i++ {
		s := g.Stop(i)
		out.Stops[i] = StopRecord{
			ID:     s.ID,
			Name:   s.Name,
			Lat:    s.Lat,
			Lon:    s.Lon,
			Routes: s.Routes,
		}
	}
	for _, e := range g.Edges() {
		out.Links = append(out.Links, LinkRecord{
			From:   e.From,
			To:     e.To,
			Type:   typeToString(e.Type),
			Weight: e.Weight,
		})
	}
	return out
}

// ToGraph converts a serialized network to a graph. Returns an error for
// unknown link types or links referencing stop indices out of range.
func ToGraph(n Network) (*transit.Graph, error) {
	stops := make([]transit.Stop, len(n.Stops))
	for i, s := range n.Stops {
		stops[i] = transit.Stop{
			ID:     s.ID,
			Name:   s.Name,
			Lat:    s.Lat,
			Lon:    s.Lon,
			Routes: s.Routes,
		}
	}

	edges := make([]transit.Edge, 0, len(n.Links))
	for _, l := range n.Links {
		typ, err := stringToType(l.Type)
		if err != nil {
			return nil, fmt.Errorf("link %d→%d: %w", l.From, l.To, err)
		}
		edges = append(edges, transit.Edge{
			From:   l.From,
			To:     l.To,
			Type:   typ,
			Weight: l.Weight,
		})
	}

	return transit.NewGraph(stops, edges)
}

// =============================================================================
// Internal Helpers
// =============================================================================

func typeToString(t transit.EdgeType) string {
	if t == transit.EdgeTransfer {
		return LinkTransfer
	}
	return LinkRoute
}

func stringToType(s string) (transit.EdgeType, error) {
	switch s {
	case LinkRoute:
		return transit.EdgeRoute, nil
	case LinkTransfer:
		return transit.EdgeTransfer, nil
	default:
		return 0, fmt.Errorf("unknown link type %q", s)
	}
}
