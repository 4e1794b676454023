// Package optional provides a present/absent value container used across
// the library wherever an operation may legitimately yield nothing.
//
// Common usage:
// - Some/None/OfPtr: construct Optional[T]
// - Get/MustGet/OrElse: extract the value (MustGet panics when absent)
// - ForEach/Filter/Map: combinators that never touch an absent value
package optional
