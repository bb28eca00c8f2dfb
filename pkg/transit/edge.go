package transit

// EdgeType distinguishes travel edges from interchange edges.
type EdgeType int

const (
	// EdgeRoute represents travel along a transit line between two stops.
	EdgeRoute EdgeType = iota
	// EdgeTransfer represents a zero-cost interchange between co-located
	// platforms or stations.
	EdgeTransfer
)

// String returns the canonical lowercase name of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeTransfer:
		return "transfer"
	default:
		return "route"
	}
}

// WeightAggregate is the sentinel weight carried by edges produced when two
// nodes are collapsed into one. Weights of the original edges are not
// numerically composable across a merge, so the combined edge carries this
// marker instead of a distance.
const WeightAggregate = -1.0

// Edge is a relation between two node indices with a type and a weight.
// Edges are constructed with an origin and a destination, but the graph
// relation they encode is symmetric: an edge between u and v answers
// adjacency queries in either direction.
type Edge struct {
	From   int
	To     int
	Type   EdgeType
	Weight float64
}

// IsTransfer reports whether the edge is an interchange edge.
func (e Edge) IsTransfer() bool { return e.Type == EdgeTransfer }
