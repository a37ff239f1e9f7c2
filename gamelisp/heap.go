package gamelisp

import "fmt"

// Heap is a fixed-capacity arena of tagged cells. Cells are bump-allocated;
// the only way space is reclaimed is a compacting collection (gc.go).
//
// A Ref is never a raw arena offset. It indexes the handle table, and
// compaction rewrites the table when it moves cells, so Refs held in host
// locals stay valid across collections. Reachability is still the host's
// concern: a cell referenced only by an unprotected local is garbage to the
// collector, so temporaries that must survive an allocating call go on the
// protect stack.
type Heap struct {
	cells      []Cell
	used       int
	handles    []int32 // handle -> slot, -1 when free
	slotHandle []Ref   // slot -> handle
	free       []Ref
	nextHandle int

	roots     []*Ref
	protected []Ref

	marks       []bool
	markStack   []Ref
	collections int
}

func NewHeap(capacity int) *Heap {
	if capacity < 1 {
		capacity = 1
	}
	h := &Heap{
		cells:      make([]Cell, capacity),
		handles:    make([]int32, capacity),
		slotHandle: make([]Ref, capacity),
	}
	for i := range h.handles {
		h.handles[i] = -1
	}
	// the nil cell occupies slot 0 and is always live
	h.handles[0] = 0
	h.slotHandle[0] = Nil
	h.nextHandle = 1
	h.used = 1
	return h
}

func (h *Heap) Used() int {
	return h.used
}

func (h *Heap) Capacity() int {
	return len(h.cells)
}

func (h *Heap) Collections() int {
	return h.collections
}

// AddRoot registers a host-held reference as a member of the collector's
// root set. The pointed-to Ref is read at every collection.
func (h *Heap) AddRoot(ref *Ref) {
	h.roots = append(h.roots, ref)
}

// ProtectMark returns the current protect stack depth, to be passed to
// Unprotect when the protected temporaries go out of scope.
func (h *Heap) ProtectMark() int {
	return len(h.protected)
}

func (h *Heap) Protect(refs ...Ref) {
	h.protected = append(h.protected, refs...)
}

func (h *Heap) Unprotect(mark int) {
	h.protected = h.protected[:mark]
}

// Alloc returns a zero-initialized cell of the requested kind. When the
// arena is full it collects once; if still full, the request fails with
// ErrOutOfMemory and the caller must propagate that to the top level.
func (h *Heap) Alloc(kind Kind) (Ref, error) {
	if h.used == len(h.cells) {
		h.Collect()
		if h.used == len(h.cells) {
			return Nil, fmt.Errorf("allocating %v cell: %w", kind, ErrOutOfMemory)
		}
	}
	slot := h.used
	h.used++

	var ref Ref
	if n := len(h.free); n > 0 {
		ref = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		ref = Ref(h.nextHandle)
		h.nextHandle++
	}
	h.handles[ref] = int32(slot)
	h.slotHandle[slot] = ref
	h.cells[slot] = Cell{Kind: kind}
	return ref, nil
}

func (h *Heap) cell(r Ref) *Cell {
	return &h.cells[h.handles[r]]
}

func (h *Heap) Kind(r Ref) Kind {
	return h.cell(r).Kind
}

// Load returns a copy of the cell behind r.
func (h *Heap) Load(r Ref) Cell {
	return *h.cell(r)
}

func (h *Heap) Car(r Ref) Ref { return h.cell(r).Car }
func (h *Heap) Cdr(r Ref) Ref { return h.cell(r).Cdr }

func (h *Heap) SetCar(r Ref, v Ref) { h.cell(r).Car = v }
func (h *Heap) SetCdr(r Ref, v Ref) { h.cell(r).Cdr = v }

func (h *Heap) NumberValue(r Ref) int32    { return h.cell(r).Num }
func (h *Heap) SymbolValue(r Ref) SymbolID { return h.cell(r).Sym }
func (h *Heap) TextValue(r Ref) string     { return h.cell(r).Str }
func (h *Heap) BuiltinIndex(r Ref) int32   { return h.cell(r).Num }
func (h *Heap) SpriteIndex(r Ref) int32    { return h.cell(r).Num }

func (h *Heap) LambdaParams(r Ref) Ref { return h.cell(r).Car }
func (h *Heap) LambdaBody(r Ref) Ref   { return h.cell(r).Cdr }
func (h *Heap) LambdaEnv(r Ref) Ref    { return h.cell(r).Env }

func (h *Heap) Number(n int32) (Ref, error) {
	ref, err := h.Alloc(KindNumber)
	if err != nil {
		return Nil, err
	}
	h.cell(ref).Num = n
	return ref, nil
}

func (h *Heap) Symbol(id SymbolID) (Ref, error) {
	ref, err := h.Alloc(KindSymbol)
	if err != nil {
		return Nil, err
	}
	h.cell(ref).Sym = id
	return ref, nil
}

// Text allocates a string cell. The text itself is ordinary Go string data
// with process lifetime; the arena tracks only the cell.
func (h *Heap) Text(s string) (Ref, error) {
	ref, err := h.Alloc(KindString)
	if err != nil {
		return Nil, err
	}
	h.cell(ref).Str = s
	return ref, nil
}

func (h *Heap) Builtin(index int32) (Ref, error) {
	ref, err := h.Alloc(KindBuiltin)
	if err != nil {
		return Nil, err
	}
	h.cell(ref).Num = index
	return ref, nil
}

func (h *Heap) Sprite(index int32) (Ref, error) {
	ref, err := h.Alloc(KindSprite)
	if err != nil {
		return Nil, err
	}
	h.cell(ref).Num = index
	return ref, nil
}

// Cons protects car and cdr for the duration of the allocation, so a
// collection triggered by a full arena cannot reclaim them mid-link.
func (h *Heap) Cons(car, cdr Ref) (Ref, error) {
	mark := h.ProtectMark()
	h.Protect(car, cdr)
	ref, err := h.Alloc(KindCons)
	h.Unprotect(mark)
	if err != nil {
		return Nil, err
	}
	c := h.cell(ref)
	c.Car = car
	c.Cdr = cdr
	return ref, nil
}

func (h *Heap) Lambda(params, body, env Ref) (Ref, error) {
	mark := h.ProtectMark()
	h.Protect(params, body, env)
	ref, err := h.Alloc(KindLambda)
	h.Unprotect(mark)
	if err != nil {
		return Nil, err
	}
	c := h.cell(ref)
	c.Car = params
	c.Cdr = body
	c.Env = env
	return ref, nil
}
