package transit

import "slices"

// Stop is a station or platform in the transit network.
//
// ID, Name, coordinates and Routes form the persisted identity produced by
// network loaders. Rank is transient: it is derived by the ranking
// algorithm and never part of a stored network.
type Stop struct {
	ID     string
	Name   string
	Lat    float64
	Lon    float64
	Routes []string

	// Rank is the most recently computed importance score for the stop.
	// Zero until a ranking algorithm assigns it.
	Rank float64
}

// MergeWith combines two stops into one logical station, as used when a
// transfer-connected cluster is collapsed to a single node. Neither
// receiver nor argument is mutated; the result is a fresh Stop.
//
// The combined stop joins the two IDs with "+", keeps the first
// non-empty name (both names joined with " / " when they differ), the
// coordinate midpoint, and the sorted union of the serving routes. Rank
// is reset: ranks are not composable across a merge.
func (s Stop) MergeWith(o Stop) Stop {
	merged := Stop{
		ID:   s.ID + "+" + o.ID,
		Name: s.Name,
		Lat:  (s.Lat + o.Lat) / 2,
		Lon:  (s.Lon + o.Lon) / 2,
	}
	switch {
	case s.Name == "":
		merged.Name = o.Name
	case o.Name != "" && o.Name != s.Name:
		merged.Name = s.Name + " / " + o.Name
	}

	routes := make([]string, 0, len(s.Routes)+len(o.Routes))
	routes = append(routes, s.Routes...)
	for _, r := range o.Routes {
		if !slices.Contains(routes, r) {
			routes = append(routes, r)
		}
	}
	slices.Sort(routes)
	if len(routes) > 0 {
		merged.Routes = routes
	}
	return merged
}
