package gamelisp

import "fmt"

// Eval evaluates x in the given environment chain.
//
// Rules, in priority order: numbers, strings, sprites, builtins and lambdas
// evaluate to themselves; symbols resolve through the environment, with an
// unresolved symbol evaluating to nil after a logged diagnostic; a list
// whose head is a special form is dispatched before argument evaluation;
// any other list is an application with arguments evaluated left to right.
func (e *Engine) Eval(env, x Ref) (Ref, error) {
	return e.eval(env, x, 0)
}

func (e *Engine) eval(env, x Ref, depth int) (Ref, error) {
	if depth > e.config.MaxEvalDepth {
		return Nil, fmt.Errorf("depth %d: %w", depth, ErrStackExhausted)
	}

	mark := e.heap.ProtectMark()
	defer e.heap.Unprotect(mark)
	e.heap.Protect(env, x)

	switch e.heap.Kind(x) {

	case KindNil, KindNumber, KindString, KindSprite, KindBuiltin, KindLambda:
		return x, nil

	case KindSymbol:
		id := e.heap.SymbolValue(x)
		if v, ok := e.Lookup(env, id); ok {
			return v, nil
		}
		// deliberate leniency: reading an undefined variable is nil, not
		// an error
		e.logger.Warn("unresolved symbol", "name", e.symbols.Name(id))
		return Nil, nil

	case KindCons:
		head := e.heap.Car(x)
		if e.heap.Kind(head) == KindSymbol {
			v, handled, err := e.evalSpecial(env, x, e.heap.SymbolValue(head), depth)
			if handled {
				return v, err
			}
		}

		fn, err := e.eval(env, head, depth+1)
		if err != nil {
			return Nil, err
		}
		e.heap.Protect(fn)

		var args []Ref
		for rest := e.heap.Cdr(x); e.heap.Kind(rest) == KindCons; rest = e.heap.Cdr(rest) {
			v, err := e.eval(env, e.heap.Car(rest), depth+1)
			if err != nil {
				return Nil, err
			}
			e.heap.Protect(v)
			args = append(args, v)
		}
		return e.apply(fn, args, depth)
	}

	return Nil, nil
}

func (e *Engine) evalSpecial(env, x Ref, id SymbolID, depth int) (Ref, bool, error) {
	switch id {

	case e.symDefine:
		sym := e.listNth(x, 1)
		if e.heap.Kind(sym) != KindSymbol {
			return Nil, true, fmt.Errorf("define needs a symbol name: %w", ErrTypeMismatch)
		}
		v, err := e.eval(env, e.listNth(x, 2), depth+1)
		if err != nil {
			return Nil, true, err
		}
		if err := e.Define(e.heap.SymbolValue(sym), v); err != nil {
			return Nil, true, err
		}
		return v, true, nil

	case e.symSet:
		sym := e.listNth(x, 1)
		if e.heap.Kind(sym) != KindSymbol {
			return Nil, true, fmt.Errorf("set! needs a symbol name: %w", ErrTypeMismatch)
		}
		v, err := e.eval(env, e.listNth(x, 2), depth+1)
		if err != nil {
			return Nil, true, err
		}
		if err := e.Set(env, e.heap.SymbolValue(sym), v); err != nil {
			return Nil, true, err
		}
		return v, true, nil

	case e.symIf:
		test, err := e.eval(env, e.listNth(x, 1), depth+1)
		if err != nil {
			return Nil, true, err
		}
		branch := e.listNth(x, 2)
		if !e.Truthy(test) {
			branch = e.listNth(x, 3)
		}
		v, err := e.eval(env, branch, depth+1)
		return v, true, err

	case e.symLambda:
		params := e.listNth(x, 1)
		body := e.heap.Cdr(e.heap.Cdr(x))
		v, err := e.heap.Lambda(params, body, env)
		return v, true, err
	}

	for i, sym := range e.callbackSyms {
		if id != sym {
			continue
		}
		v, err := e.eval(env, e.listNth(x, 1), depth+1)
		if err != nil {
			return Nil, true, err
		}
		e.callbacks[i] = v
		return v, true, nil
	}

	return Nil, false, nil
}

func (e *Engine) apply(fn Ref, args []Ref, depth int) (Ref, error) {
	switch e.heap.Kind(fn) {

	case KindBuiltin:
		idx := e.heap.BuiltinIndex(fn)
		if int(idx) >= len(e.builtins) {
			return Nil, fmt.Errorf("builtin %d is missing", idx)
		}
		b := e.builtins[idx]
		v, err := b.Func(e, args)
		if err != nil {
			return Nil, fmt.Errorf("%s: %w", b.Name, err)
		}
		return v, nil

	case KindLambda:
		mark := e.heap.ProtectMark()
		defer e.heap.Unprotect(mark)
		e.heap.Protect(fn)

		// Parameters bind pairwise on a fresh chain prepended over the
		// captured environment; the lambda's stored environment is never
		// mutated, so repeated calls do not accumulate bindings. Extra
		// arguments are ignored, missing ones bind to nil.
		callEnv := e.heap.LambdaEnv(fn)
		e.heap.Protect(callEnv)
		i := 0
		for params := e.heap.LambdaParams(fn); e.heap.Kind(params) == KindCons; params = e.heap.Cdr(params) {
			param := e.heap.Car(params)
			if e.heap.Kind(param) != KindSymbol {
				continue
			}
			arg := Nil
			if i < len(args) {
				arg = args[i]
			}
			i++
			pair, err := e.heap.Cons(param, arg)
			if err != nil {
				return Nil, err
			}
			var next Ref
			next, err = e.heap.Cons(pair, callEnv)
			if err != nil {
				return Nil, err
			}
			callEnv = next
			e.heap.Protect(callEnv)
		}

		result := Nil
		for body := e.heap.LambdaBody(fn); e.heap.Kind(body) == KindCons; body = e.heap.Cdr(body) {
			var err error
			result, err = e.eval(callEnv, e.heap.Car(body), depth+1)
			if err != nil {
				return Nil, err
			}
		}
		return result, nil
	}

	return Nil, fmt.Errorf("cannot apply %v value: %w", e.heap.Kind(fn), ErrTypeMismatch)
}

// Truthy reports the language's falsity convention: nil and the number
// zero are false, everything else is true.
func (e *Engine) Truthy(r Ref) bool {
	switch e.heap.Kind(r) {
	case KindNil:
		return false
	case KindNumber:
		return e.heap.NumberValue(r) != 0
	}
	return true
}

// listNth returns the nth element of a list, nil past its end.
func (e *Engine) listNth(x Ref, n int) Ref {
	for ; n > 0; n-- {
		x = e.heap.Cdr(x)
	}
	return e.heap.Car(x)
}
