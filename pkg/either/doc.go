// Package either provides a generic two-variant value, Either[L, R], for
// pipelines that carry either a result or an alternative without raising.
//
// Highlights:
// - Left/Right: construct a value holding exactly one payload
// - ToLeft/ToRight: derive a value from an optional plus a default
// - IsLeft/IsRight/Swap: inspect or flip the discriminant
// - Left()/Right(): side-bound projections with Get, GetOrElse, Peek,
//   ForEach, Exists, ToOptional and Filter
// - Fold/MapLeft/MapRight/FlatMapLeft/FlatMapRight: package-level
//   type-changing combinators
//
// Values are immutable after construction and safe to share between
// goroutines. Unchecked access to the side a value does not hold panics
// with AccessError; use Fold or the total projection operations instead.
package either
