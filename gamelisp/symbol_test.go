package gamelisp

import (
	"errors"
	"testing"
)

func TestInternIdempotent(t *testing.T) {
	s := NewSymbols(16)

	a, err := s.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("got %v and %v", a, b)
	}

	c, err := s.Intern("bar")
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Fatal()
	}

	if s.Name(a) != "foo" {
		t.Fatalf("got %q", s.Name(a))
	}
	if s.Len() != 2 {
		t.Fatalf("got %v", s.Len())
	}
}

func TestInternTableFull(t *testing.T) {
	s := NewSymbols(2)
	if _, err := s.Intern("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Intern("b"); err != nil {
		t.Fatal(err)
	}
	// re-interning is free
	if _, err := s.Intern("a"); err != nil {
		t.Fatal(err)
	}
	_, err := s.Intern("c")
	if !errors.Is(err, ErrSymbolTableFull) {
		t.Fatalf("got %v", err)
	}
}
