package either

import (
	"strconv"
	"testing"
)

func TestFold(t *testing.T) {
	t.Parallel()
	f := func(s string) string { return "L:" + s }
	g := func(v int) string { return "R:" + strconv.Itoa(v) }

	if got := Fold(Left[string, int]("e"), f, g); got != "L:e" {
		t.Fatalf("expected 'L:e', got: %q", got)
	}
	if got := Fold(Right[string](7), f, g); got != "R:7" {
		t.Fatalf("expected 'R:7', got: %q", got)
	}
}

func TestMapLeft_ActiveSide(t *testing.T) {
	t.Parallel()
	out := MapLeft(Left[string, int]("abc"), func(s string) int { return len(s) })
	if !out.IsLeft() || out.Left().Get() != 3 {
		t.Fatalf("expected left-holding 3, got: isLeft=%v", out.IsLeft())
	}
}

func TestMapLeft_InactiveSidePassesThrough(t *testing.T) {
	t.Parallel()
	u := Right[string](9)

	called := false
	out := MapLeft(u, func(string) int { called = true; return 0 })
	if called {
		t.Fatalf("transform must not run against a right-holding value")
	}
	if !out.IsRight() || out.Right().Get() != 9 {
		t.Fatalf("expected right payload to pass through, got: isRight=%v", out.IsRight())
	}
	if out.Id() != u.Id() || out.CreatedAt() != u.CreatedAt() {
		t.Fatalf("expected pass-through to keep id and creation time")
	}
}

func TestMapRight(t *testing.T) {
	t.Parallel()
	out := MapRight(Right[string](4), func(v int) int { return v * v })
	if !out.IsRight() || out.Right().Get() != 16 {
		t.Fatalf("expected right-holding 16, got: isRight=%v", out.IsRight())
	}

	passed := MapRight(Left[string, int]("e"), func(v int) string { return strconv.Itoa(v) })
	if !passed.IsLeft() || passed.Left().Get() != "e" {
		t.Fatalf("expected left payload to pass through, got: isLeft=%v", passed.IsLeft())
	}
}

func TestFlatMapRight(t *testing.T) {
	t.Parallel()
	out := FlatMapRight(Right[string](2), func(v int) Either[string, string] {
		return Right[string](strconv.Itoa(v * 10))
	})
	if !out.IsRight() || out.Right().Get() != "20" {
		t.Fatalf("expected right-holding '20', got: isRight=%v", out.IsRight())
	}

	called := false
	passed := FlatMapRight(Left[string, int]("e"), func(int) Either[string, string] {
		called = true
		return Right[string]("x")
	})
	if called {
		t.Fatalf("bind must not run against a left-holding value")
	}
	if !passed.IsLeft() || passed.Left().Get() != "e" {
		t.Fatalf("expected left payload to pass through, got: isLeft=%v", passed.IsLeft())
	}
}
