package gamelisp

import (
	"encoding/gob"
	"fmt"
	"io"
)

// machineState is the gob wire form of a suspended engine. Builtin cells
// are indices into the builtin table, so the table's names are recorded
// and re-bound on restore; the functions themselves never travel.
type machineState struct {
	Capacity   int
	Used       int
	Cells      []Cell
	SlotHandle []Ref
	Handles    []int32
	Free       []Ref
	NextHandle int

	Symbols  []string
	Builtins []string

	Global    Ref
	Callbacks [numCallbacks]Ref
	Running   bool
	Sprites   []SpriteData
}

// Suspend writes the whole machine to w: arena, handle table, symbols,
// globals, callbacks and sprite store. A collection runs first so only
// live cells are written.
func (e *Engine) Suspend(w io.Writer) error {
	e.sem.Acquire()
	defer e.sem.Release()

	e.heap.Collect()
	h := e.heap

	builtins := make([]string, len(e.builtins))
	for i, b := range e.builtins {
		builtins[i] = b.Name
	}

	state := machineState{
		Capacity:   h.Capacity(),
		Used:       h.used,
		Cells:      h.cells[:h.used],
		SlotHandle: h.slotHandle[:h.used],
		Handles:    h.handles,
		Free:       h.free,
		NextHandle: h.nextHandle,
		Symbols:    e.symbols.All(),
		Builtins:   builtins,
		Global:     e.global,
		Callbacks:  e.callbacks,
		Running:    e.running,
		Sprites:    e.sprites.All(),
	}
	if err := gob.NewEncoder(w).Encode(state); err != nil {
		return wrap(err)
	}
	return nil
}

// Restore replaces the machine with a previously suspended one. The engine
// must have been built with the same arena capacity, and every builtin
// named by the snapshot must be registered; builtin cells re-bind by name,
// as native functions cannot travel through gob.
func (e *Engine) Restore(r io.Reader) error {
	e.sem.Acquire()
	defer e.sem.Release()

	var state machineState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return wrap(err)
	}

	h := e.heap
	if state.Capacity != h.Capacity() {
		return fmt.Errorf("snapshot arena capacity %d, engine has %d", state.Capacity, h.Capacity())
	}
	if state.Used != len(state.Cells) || len(state.Handles) != len(h.handles) {
		return fmt.Errorf("corrupt snapshot")
	}

	// re-bind builtin cells by name
	remap := make([]int32, len(state.Builtins))
	for i, name := range state.Builtins {
		index, ok := e.byName[name]
		if !ok {
			return fmt.Errorf("builtin %s is missing", name)
		}
		remap[i] = index
	}
	for i := range state.Cells {
		c := &state.Cells[i]
		if c.Kind != KindBuiltin {
			continue
		}
		if int(c.Num) >= len(remap) {
			return fmt.Errorf("corrupt snapshot: builtin %d", c.Num)
		}
		c.Num = remap[c.Num]
	}

	// replay the intern table so cell ids stay valid
	symbols := NewSymbols(e.config.SymbolCapacity)
	for _, name := range state.Symbols {
		if _, err := symbols.Intern(name); err != nil {
			return err
		}
	}
	e.symbols = symbols

	copy(h.cells, state.Cells)
	for i := state.Used; i < len(h.cells); i++ {
		h.cells[i] = Cell{}
	}
	copy(h.slotHandle, state.SlotHandle)
	copy(h.handles, state.Handles)
	h.free = append(h.free[:0], state.Free...)
	h.nextHandle = state.NextHandle
	h.used = state.Used

	e.global = state.Global
	e.callbacks = state.Callbacks
	e.running = state.Running
	e.sprites.restore(state.Sprites)

	// cached special-form ids may differ between intern histories
	return e.internSpecialForms()
}
