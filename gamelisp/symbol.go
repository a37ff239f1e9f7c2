package gamelisp

import "fmt"

type SymbolID int32

// Symbols interns identifier text to small stable ids. The table has a
// fixed capacity; overflowing it is a hard error, never silent truncation.
// Symbol cells are not deduplicated, only their ids are: two interns of the
// same name yield distinct cells with equal ids, and the evaluator compares
// symbols by id only.
type Symbols struct {
	ids   map[string]SymbolID
	names []string
}

func NewSymbols(capacity int) *Symbols {
	return &Symbols{
		ids:   make(map[string]SymbolID, capacity),
		names: make([]string, 0, capacity),
	}
}

func (s *Symbols) Intern(name string) (SymbolID, error) {
	if id, ok := s.ids[name]; ok {
		return id, nil
	}
	if len(s.names) == cap(s.names) {
		return 0, fmt.Errorf("interning %q: %w", name, ErrSymbolTableFull)
	}
	id := SymbolID(len(s.names))
	s.names = append(s.names, name)
	s.ids[name] = id
	return id, nil
}

func (s *Symbols) Name(id SymbolID) string {
	if int(id) < 0 || int(id) >= len(s.names) {
		return fmt.Sprintf("#<symbol %d>", id)
	}
	return s.names[id]
}

func (s *Symbols) Len() int {
	return len(s.names)
}

// All returns the interned names in id order, for snapshots.
func (s *Symbols) All() []string {
	ret := make([]string, len(s.names))
	copy(ret, s.names)
	return ret
}
