// Package tuples provides an immutable ordered pair, Tuple[K, V], and
// adapters that lift plain key/value functions into tuple functions for
// iterator pipelines over maps.
//
// Common usage:
// - Of/WithKey/WithValue/Swap: construct and reshape tuples
// - FromMap/FromSeq2/CollectMap: bridge maps and iter.Seq2 to tuple streams
// - Entries/Keys/Values: mapper constructors
// - ToEntry/ToKey/ToValue: consumer constructors
// - IsEntry/IsKey/IsValue: predicate constructors
// - ByKey/ByValue: comparisons for slices.SortFunc
// - WithKeys/WithValues: flat-map expanders preserving the other side
// - MapSeq/FilterSeq/FlatMapSeq: generic iterator plumbing
package tuples
