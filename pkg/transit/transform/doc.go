// Package transform rewrites transit graphs into simplified equivalents.
//
// Its one transformation, [CollapseTransfers], folds every cluster of
// stops connected purely by transfer edges into a single logical station,
// so ranking treats split platforms as one node. Transformations never
// mutate their input: each step builds a brand-new graph.
package transform
