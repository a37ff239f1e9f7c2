package gamelisp

import "fmt"

// Environments are ordinary heap values: cons lists of (symbol . value)
// binding pairs, chained to their parent by the list tail. There is no
// separate environment type, so environments are collected like any other
// value and must be reachable from a root to survive.
//
// Closures capture a snapshot of the chain at lambda creation time; names
// defined globally afterwards are still visible because lookup falls back
// to the current global chain after walking the local one.

// Lookup walks env innermost-first comparing symbol ids, then the global
// chain.
func (e *Engine) Lookup(env Ref, id SymbolID) (Ref, bool) {
	if v, ok := e.lookupChain(env, id); ok {
		return v, true
	}
	if env != e.global {
		return e.lookupChain(e.global, id)
	}
	return Nil, false
}

func (e *Engine) lookupChain(env Ref, id SymbolID) (Ref, bool) {
	for e.heap.Kind(env) == KindCons {
		pair := e.heap.Car(env)
		if e.heap.Kind(pair) == KindCons {
			sym := e.heap.Car(pair)
			if e.heap.Kind(sym) == KindSymbol && e.heap.SymbolValue(sym) == id {
				return e.heap.Cdr(pair), true
			}
		}
		env = e.heap.Cdr(env)
	}
	return Nil, false
}

// Define prepends a binding to the global environment. Definitions are
// always global in this language, even inside a lambda body.
func (e *Engine) Define(id SymbolID, value Ref) error {
	mark := e.heap.ProtectMark()
	defer e.heap.Unprotect(mark)
	e.heap.Protect(value)

	sym, err := e.heap.Symbol(id)
	if err != nil {
		return err
	}
	pair, err := e.heap.Cons(sym, value)
	if err != nil {
		return err
	}
	head, err := e.heap.Cons(pair, e.global)
	if err != nil {
		return err
	}
	e.global = head
	return nil
}

// Set mutates the first matching binding in place, walking env then the
// global chain. It never creates a binding; a miss is ErrUnboundVariable.
func (e *Engine) Set(env Ref, id SymbolID, value Ref) error {
	if e.setChain(env, id, value) {
		return nil
	}
	if env != e.global && e.setChain(e.global, id, value) {
		return nil
	}
	return fmt.Errorf("set! %s: %w", e.symbols.Name(id), ErrUnboundVariable)
}

func (e *Engine) setChain(env Ref, id SymbolID, value Ref) bool {
	for e.heap.Kind(env) == KindCons {
		pair := e.heap.Car(env)
		if e.heap.Kind(pair) == KindCons {
			sym := e.heap.Car(pair)
			if e.heap.Kind(sym) == KindSymbol && e.heap.SymbolValue(sym) == id {
				e.heap.SetCdr(pair, value)
				return true
			}
		}
		env = e.heap.Cdr(env)
	}
	return false
}
