package gamelisp

import (
	"strings"
	"testing"
)

func TestRenderOpaqueForms(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := run(t, e, "+")
	if s := e.Render(got); s != "#<builtin +>" {
		t.Fatalf("got %s", s)
	}

	got = run(t, e, "(lambda (x y) x)")
	if s := e.Render(got); s != "#<lambda (x y)>" {
		t.Fatalf("got %s", s)
	}

	got = run(t, e, "(make-sprite 2 2)")
	if s := e.Render(got); s != "#<sprite 0>" {
		t.Fatalf("got %s", s)
	}
}

func TestRenderDottedPair(t *testing.T) {
	e := newTestEngine(t, Config{})
	h := e.Heap()

	a, err := h.Number(1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Number(2)
	if err != nil {
		t.Fatal(err)
	}
	c, err := h.Cons(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.Render(c); s != "(1 . 2)" {
		t.Fatalf("got %s", s)
	}
}

func TestRenderCycleBounded(t *testing.T) {
	e := newTestEngine(t, Config{})
	h := e.Heap()

	a, err := h.Number(1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := h.Cons(a, Nil)
	if err != nil {
		t.Fatal(err)
	}
	h.SetCdr(c, c)

	s := e.Render(c)
	if !strings.Contains(s, "...") {
		t.Fatalf("got %s", s)
	}
}
