package funct

import (
	"strconv"
	"testing"
)

func TestSwap(t *testing.T) {
	t.Parallel()
	concat := func(a string, b int) string { return a + strconv.Itoa(b) }

	if got := Swap(concat)(7, "n"); got != "n7" {
		t.Fatalf("expected 'n7', got: %q", got)
	}
}

func TestSwapConsumer(t *testing.T) {
	t.Parallel()
	var got string
	record := func(a string, b int) { got = a + strconv.Itoa(b) }

	SwapConsumer(record)(3, "k")
	if got != "k3" {
		t.Fatalf("expected 'k3', got: %q", got)
	}
}

func TestSwapPredicate(t *testing.T) {
	t.Parallel()
	longer := func(s string, n int) bool { return len(s) > n }

	if !SwapPredicate(longer)(2, "abc") {
		t.Fatalf("expected swapped predicate to hold")
	}
	if SwapPredicate(longer)(5, "abc") {
		t.Fatalf("expected swapped predicate to fail")
	}
}

func TestCurriedAndUncurried(t *testing.T) {
	t.Parallel()
	add := func(a, b int) int { return a + b }

	curried := Curried(add)
	if got := curried(2)(3); got != 5 {
		t.Fatalf("expected 5, got: %d", got)
	}

	if got := Uncurried(curried)(4, 6); got != 10 {
		t.Fatalf("expected round trip to behave like the original, got: %d", got)
	}
}

func TestCurriedConsumer(t *testing.T) {
	t.Parallel()
	var sum int
	accumulate := func(a, b int) { sum = a + b }

	CurriedConsumer(accumulate)(1)(2)
	if sum != 3 {
		t.Fatalf("expected 3, got: %d", sum)
	}

	UncurriedConsumer(CurriedConsumer(accumulate))(5, 6)
	if sum != 11 {
		t.Fatalf("expected 11, got: %d", sum)
	}
}

func TestCurriedPredicate(t *testing.T) {
	t.Parallel()
	divides := func(a, b int) bool { return b%a == 0 }

	if !CurriedPredicate(divides)(3)(9) {
		t.Fatalf("expected curried predicate to hold")
	}
	if UncurriedPredicate(CurriedPredicate(divides))(4, 9) {
		t.Fatalf("expected round-tripped predicate to fail")
	}
}
