package gamelisp

import (
	"errors"
	"testing"
)

func TestArithmetic(t *testing.T) {
	e := newTestEngine(t, Config{})

	if got := runNum(t, e, "(+ 2 3)"); got != 5 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(- 2 3)"); got != -1 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(* 4 3)"); got != 12 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(/ 7 2)"); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(+ (* 2 3) (- 10 4))"); got != 12 {
		t.Fatalf("got %v", got)
	}
}

func TestComparisons(t *testing.T) {
	e := newTestEngine(t, Config{})

	if got := run(t, e, "(< 2 3)"); !e.Truthy(got) {
		t.Fatal()
	}
	if got := run(t, e, "(> 2 3)"); e.Truthy(got) {
		t.Fatal()
	}
	if got := run(t, e, "(= 3 3)"); !e.Truthy(got) {
		t.Fatal()
	}
}

func TestIfZeroIsFalse(t *testing.T) {
	e := newTestEngine(t, Config{})

	if got := runNum(t, e, "(if 0 1 2)"); got != 2 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(if 5 1 2)"); got != 1 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "(if () 1 2)"); got != 2 {
		t.Fatalf("got %v", got)
	}
	// missing else branch is nil
	if got := run(t, e, "(if 0 1)"); got != Nil {
		t.Fatalf("got %s", e.Render(got))
	}
}

func TestLambdaAndClosure(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := runNum(t, e, `
		(define inc (lambda (x) (+ x 1)))
		(inc 41)
	`)
	if got != 42 {
		t.Fatalf("got %v", got)
	}

	// closure captures its creation environment
	got = runNum(t, e, `
		(define make-adder (lambda (n) (lambda (x) (+ x n))))
		(define add3 (make-adder 3))
		(add3 4)
	`)
	if got != 7 {
		t.Fatalf("got %v", got)
	}
}

func TestLambdaBodySequence(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := runNum(t, e, `
		(define f (lambda ()
			(define a 1)
			(define b 2)
			(+ a b)))
		(f)
	`)
	if got != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestLambdaArity(t *testing.T) {
	e := newTestEngine(t, Config{})

	run(t, e, "(define f (lambda (a b) b))")

	// missing arguments bind to nil
	if got := run(t, e, "(f 1)"); got != Nil {
		t.Fatalf("got %s", e.Render(got))
	}
	// extra arguments are ignored
	if got := runNum(t, e, "(f 1 2 3)"); got != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestRepeatedCallsDoNotAccumulateBindings(t *testing.T) {
	e := newTestEngine(t, Config{HeapCapacity: 512})

	run(t, e, "(define f (lambda (x) x))")
	for i := 0; i < 200; i++ {
		if got := runNum(t, e, "(f 1)"); got != 1 {
			t.Fatalf("got %v", got)
		}
	}
}

func TestRecursion(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := runNum(t, e, `
		(define fact (lambda (n)
			(if (< n 2)
				1
				(* n (fact (- n 1))))))
		(fact 6)
	`)
	if got != 720 {
		t.Fatalf("got %v", got)
	}
}

func TestRecursionDepthBounded(t *testing.T) {
	e := newTestEngine(t, Config{MaxEvalDepth: 64})

	_, err := e.EvalToplevel(`
		(define loop (lambda (n) (loop (+ n 1))))
		(loop 0)
	`)
	if !errors.Is(err, ErrStackExhausted) {
		t.Fatalf("got %v", err)
	}
}

func TestUnresolvedSymbolIsNil(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := run(t, e, "no-such-thing")
	if got != Nil {
		t.Fatalf("got %s", e.Render(got))
	}
}

func TestApplyNonCallable(t *testing.T) {
	e := newTestEngine(t, Config{})

	_, err := e.EvalToplevel("(1 2 3)")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestSelfEvaluating(t *testing.T) {
	e := newTestEngine(t, Config{})
	h := e.Heap()

	got := run(t, e, `"text"`)
	if h.Kind(got) != KindString || h.TextValue(got) != "text" {
		t.Fatalf("got %s", e.Render(got))
	}

	got = run(t, e, "+")
	if h.Kind(got) != KindBuiltin {
		t.Fatalf("got %v", h.Kind(got))
	}
}

func TestEvalKeepsValuesAliveThroughCollection(t *testing.T) {
	// a heap this small forces collections between calls; live values and
	// protected temporaries must survive them
	e := newTestEngine(t, Config{HeapCapacity: 256})

	run(t, e, `
		(define sum (lambda (n)
			(if (< n 1)
				0
				(+ n (sum (- n 1))))))
	`)
	for i := 0; i < 50; i++ {
		if got := runNum(t, e, "(sum 10)"); got != 55 {
			t.Fatalf("got %v", got)
		}
	}
	if e.Heap().Collections() == 0 {
		t.Fatal("expected at least one collection")
	}
}
