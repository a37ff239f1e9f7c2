package gamelisp

import (
	"errors"
	"testing"
)

func TestDefineAndLookup(t *testing.T) {
	e := newTestEngine(t, Config{})

	if got := runNum(t, e, "(define x 10) x"); got != 10 {
		t.Fatalf("got %v", got)
	}

	// redefinition shadows the older binding
	if got := runNum(t, e, "(define x 20) x"); got != 20 {
		t.Fatalf("got %v", got)
	}
}

func TestDefineInsideLambdaIsGlobal(t *testing.T) {
	e := newTestEngine(t, Config{})

	run(t, e, `
		(define setup (lambda () (define hidden 9)))
		(setup)
	`)
	if got := runNum(t, e, "hidden"); got != 9 {
		t.Fatalf("got %v", got)
	}
}

func TestSetMutatesBinding(t *testing.T) {
	e := newTestEngine(t, Config{})

	if got := runNum(t, e, "(define n 1) (set! n 5) n"); got != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestSetUnbound(t *testing.T) {
	e := newTestEngine(t, Config{})

	_, err := e.EvalToplevel("(set! nope 1)")
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("got %v", err)
	}
}

func TestSetParameterShadowsGlobal(t *testing.T) {
	e := newTestEngine(t, Config{})

	// set! inside the lambda hits the parameter binding, not the global
	got := runNum(t, e, `
		(define n 1)
		(define f (lambda (n) (set! n 99) n))
		(f 2)
	`)
	if got != 99 {
		t.Fatalf("got %v", got)
	}
	if got := runNum(t, e, "n"); got != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestClosureSeesLaterGlobals(t *testing.T) {
	e := newTestEngine(t, Config{})

	// f closes over the global chain before g exists; the fallback to the
	// live global chain still resolves it
	got := runNum(t, e, `
		(define f (lambda () (g)))
		(define g (lambda () 42))
		(f)
	`)
	if got != 42 {
		t.Fatalf("got %v", got)
	}
}
