package gamelisp

import (
	"strconv"
	"strings"
)

// Render writes a value back to reader syntax. Reading the result of Render
// yields a structurally equal value (same kind tree, numbers, and symbol
// names); builtins, lambdas and sprites render as opaque forms.
func (e *Engine) Render(r Ref) string {
	var sb strings.Builder
	e.render(&sb, r, 0)
	return sb.String()
}

func (e *Engine) render(sb *strings.Builder, r Ref, depth int) {
	if depth > maxRenderDepth {
		sb.WriteString("...")
		return
	}
	switch e.heap.Kind(r) {
	case KindNil:
		sb.WriteString("()")
	case KindNumber:
		sb.WriteString(strconv.FormatInt(int64(e.heap.NumberValue(r)), 10))
	case KindSymbol:
		sb.WriteString(e.symbols.Name(e.heap.SymbolValue(r)))
	case KindString:
		sb.WriteString(strconv.Quote(e.heap.TextValue(r)))
	case KindBuiltin:
		idx := e.heap.BuiltinIndex(r)
		sb.WriteString("#<builtin ")
		if int(idx) < len(e.builtins) {
			sb.WriteString(e.builtins[idx].Name)
		} else {
			sb.WriteString(strconv.Itoa(int(idx)))
		}
		sb.WriteString(">")
	case KindLambda:
		sb.WriteString("#<lambda ")
		e.render(sb, e.heap.LambdaParams(r), depth+1)
		sb.WriteString(">")
	case KindSprite:
		sb.WriteString("#<sprite ")
		sb.WriteString(strconv.Itoa(int(e.heap.SpriteIndex(r))))
		sb.WriteString(">")
	case KindCons:
		sb.WriteString("(")
		n := 0
		for {
			e.render(sb, e.heap.Car(r), depth+1)
			n++
			if depth+n > maxRenderDepth {
				sb.WriteString(" ...)")
				return
			}
			tail := e.heap.Cdr(r)
			switch e.heap.Kind(tail) {
			case KindNil:
				sb.WriteString(")")
				return
			case KindCons:
				sb.WriteString(" ")
				r = tail
			default:
				// dotted tail
				sb.WriteString(" . ")
				e.render(sb, tail, depth+1)
				sb.WriteString(")")
				return
			}
		}
	}
}

const maxRenderDepth = 64
