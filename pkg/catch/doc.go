// Package catch bridges panicking code into the either/optional value
// model. A Catcher[E] intercepts panics whose dynamic type is exactly E and
// converts them into a left-holding either or an absent optional; every
// other panic propagates to the caller unchanged.
//
// Common usage:
// - Catching[E](): build a reusable, shareable catcher
// - Either/Optional: run a supplier under the catcher
// - EitherInt/EitherInt64/EitherFloat64: result-typed shorthands
// - Try: adapt a plain (R, error) call into Either[error, R]
package catch
