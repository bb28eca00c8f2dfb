// Package transit provides the core graph model for transit networks.
//
// A network is a set of stops (stations or platforms) connected by typed
// edges. Route edges represent travel along a transit line; transfer edges
// represent zero-cost interchanges between co-located platforms. The
// [Graph] type indexes stops by contiguous node indices and answers
// symmetric adjacency queries.
//
// Graphs are immutable once constructed: every structural change (such as
// collapsing transfer clusters, see package transform) builds a brand-new
// Graph. This copy-on-write discipline keeps superseded graphs safe for
// concurrent readers without locks.
package transit
