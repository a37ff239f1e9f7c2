package inputs

import (
	"testing"

	"github.com/reusee/taisprite/gamelisp"
)

func TestJustPressedEdge(t *testing.T) {
	state := NewState()

	state.SetPressed(gamelisp.ButtonA, true)
	state.Poll()
	if !state.IsPressed(gamelisp.ButtonA) {
		t.Fatal()
	}
	if !state.JustPressed(gamelisp.ButtonA) {
		t.Fatal()
	}

	// still held, no longer an edge
	state.Poll()
	if !state.IsPressed(gamelisp.ButtonA) {
		t.Fatal()
	}
	if state.JustPressed(gamelisp.ButtonA) {
		t.Fatal()
	}

	state.SetPressed(gamelisp.ButtonA, false)
	state.Poll()
	if state.IsPressed(gamelisp.ButtonA) {
		t.Fatal()
	}

	state.SetPressed(gamelisp.ButtonA, true)
	state.Poll()
	if !state.JustPressed(gamelisp.ButtonA) {
		t.Fatal()
	}
}

func TestPendingLatchedAtPoll(t *testing.T) {
	state := NewState()
	state.SetPressed(gamelisp.ButtonB, true)
	// not visible until Poll latches it
	if state.IsPressed(gamelisp.ButtonB) {
		t.Fatal()
	}
	state.Poll()
	if !state.IsPressed(gamelisp.ButtonB) {
		t.Fatal()
	}
}
