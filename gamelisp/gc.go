package gamelisp

// Collect runs a stop-the-world mark and compacting sweep.
//
// Roots are the registered host references (global environment, callback
// table) plus the protect stack. Marking is cycle-safe: a slot is flagged
// live exactly once. The sweep shifts live cells down in allocation order
// and rewrites the handle table for every moved cell, so handles stay
// stable while arena slots do not.
//
// Collect never fails; if it frees nothing, the allocator reports
// ErrOutOfMemory to its caller.
func (h *Heap) Collect() {
	h.collections++

	if h.marks == nil {
		h.marks = make([]bool, len(h.cells))
	} else {
		clear(h.marks)
	}

	h.mark(Nil)
	for _, root := range h.roots {
		h.mark(*root)
	}
	for _, ref := range h.protected {
		h.mark(ref)
	}

	dst := 0
	for src := 0; src < h.used; src++ {
		if !h.marks[src] {
			ref := h.slotHandle[src]
			h.handles[ref] = -1
			h.free = append(h.free, ref)
			continue
		}
		if src != dst {
			ref := h.slotHandle[src]
			h.cells[dst] = h.cells[src]
			h.handles[ref] = int32(dst)
			h.slotHandle[dst] = ref
		}
		dst++
	}
	// drop string payloads of dead cells
	for i := dst; i < h.used; i++ {
		h.cells[i] = Cell{}
	}
	h.used = dst
}

func (h *Heap) mark(ref Ref) {
	stack := h.markStack[:0]
	stack = append(stack, ref)
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		slot := h.handles[r]
		if h.marks[slot] {
			continue
		}
		h.marks[slot] = true
		c := &h.cells[slot]
		switch c.Kind {
		case KindCons:
			stack = append(stack, c.Car, c.Cdr)
		case KindLambda:
			stack = append(stack, c.Car, c.Cdr, c.Env)
		}
	}
	h.markStack = stack[:0]
}
