package inputs

import (
	"sync"

	"github.com/reusee/taisprite/gamelisp"
)

// State is a latched button source. Hosts feed it asynchronously with
// SetPressed; the engine latches once per frame with Poll so that held
// and just-pressed queries are stable within the frame.
type State struct {
	mu      sync.Mutex
	pending [gamelisp.NumButtons]bool
	current [gamelisp.NumButtons]bool
	last    [gamelisp.NumButtons]bool
}

func NewState() *State {
	return &State{}
}

var _ gamelisp.Input = new(State)

func (s *State) SetPressed(b gamelisp.Button, pressed bool) {
	if b >= gamelisp.NumButtons {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[b] = pressed
}

func (s *State) Poll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = s.current
	s.current = s.pending
}

func (s *State) IsPressed(b gamelisp.Button) bool {
	if b >= gamelisp.NumButtons {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[b]
}

func (s *State) JustPressed(b gamelisp.Button) bool {
	if b >= gamelisp.NumButtons {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[b] && !s.last[b]
}
