package funct

// Signature transformations for binary functions, consumers and
// predicates: argument swapping and currying in both directions.

func Swap[T1, T2, R any](f func(T1, T2) R) func(T2, T1) R {
	return func(t2 T2, t1 T1) R { return f(t1, t2) }
}

func SwapConsumer[T1, T2 any](consume func(T1, T2)) func(T2, T1) {
	return func(t2 T2, t1 T1) { consume(t1, t2) }
}

func SwapPredicate[T1, T2 any](predicate func(T1, T2) bool) func(T2, T1) bool {
	return func(t2 T2, t1 T1) bool { return predicate(t1, t2) }
}

func Curried[T1, T2, R any](f func(T1, T2) R) func(T1) func(T2) R {
	return func(t1 T1) func(T2) R {
		return func(t2 T2) R { return f(t1, t2) }
	}
}

func CurriedConsumer[T1, T2 any](consume func(T1, T2)) func(T1) func(T2) {
	return func(t1 T1) func(T2) {
		return func(t2 T2) { consume(t1, t2) }
	}
}

func CurriedPredicate[T1, T2 any](predicate func(T1, T2) bool) func(T1) func(T2) bool {
	return func(t1 T1) func(T2) bool {
		return func(t2 T2) bool { return predicate(t1, t2) }
	}
}

func Uncurried[T1, T2, R any](f func(T1) func(T2) R) func(T1, T2) R {
	return func(t1 T1, t2 T2) R { return f(t1)(t2) }
}

func UncurriedConsumer[T1, T2 any](f func(T1) func(T2)) func(T1, T2) {
	return func(t1 T1, t2 T2) { f(t1)(t2) }
}

func UncurriedPredicate[T1, T2 any](f func(T1) func(T2) bool) func(T1, T2) bool {
	return func(t1 T1, t2 T2) bool { return f(t1)(t2) }
}
