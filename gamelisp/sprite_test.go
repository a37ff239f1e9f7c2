package gamelisp

import (
	"errors"
	"testing"
)

func TestSpriteStoreLimits(t *testing.T) {
	s := NewSpriteStore(2, 8)

	if _, err := s.Make(4, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Make(8, 8); err != nil {
		t.Fatal(err)
	}

	_, err := s.Make(2, 2)
	if !errors.Is(err, ErrSpriteCapacityExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestSpriteTooLarge(t *testing.T) {
	s := NewSpriteStore(4, 8)

	for _, dims := range [][2]int32{
		{9, 4},
		{4, 9},
		{0, 4},
		{-1, 4},
	} {
		_, err := s.Make(dims[0], dims[1])
		if !errors.Is(err, ErrSpriteTooLarge) {
			t.Fatalf("%v: got %v", dims, err)
		}
	}
}

func TestSetPixelBounds(t *testing.T) {
	s := NewSpriteStore(4, 8)
	index, err := s.Make(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetPixel(index, 3, 3, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPixel(index, 4, 0, 1); err == nil {
		t.Fatal("should error")
	}
	if err := s.SetPixel(index+1, 0, 0, 1); err == nil {
		t.Fatal("should error")
	}
}

func TestRectsOverlap(t *testing.T) {
	if !RectsOverlap(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Fatal()
	}
	if RectsOverlap(0, 0, 10, 10, 20, 20, 10, 10) {
		t.Fatal()
	}
	// edge contact is not overlap
	if RectsOverlap(0, 0, 10, 10, 10, 0, 10, 10) {
		t.Fatal()
	}
	if !RectsOverlap(0, 0, 10, 10, 9, 9, 1, 1) {
		t.Fatal()
	}
}

func TestPointInRect(t *testing.T) {
	if !PointInRect(0, 0, 0, 0, 1, 1) {
		t.Fatal()
	}
	if PointInRect(1, 0, 0, 0, 1, 1) {
		t.Fatal()
	}
}
