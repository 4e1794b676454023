// Package funct contains stateless helpers that reshape function
// signatures: Swap* reverse the arguments of a binary function, consumer or
// predicate; Curried*/Uncurried* convert between binary and chained
// one-argument forms.
package funct
