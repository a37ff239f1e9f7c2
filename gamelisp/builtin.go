package gamelisp

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

type BuiltinFunc func(e *Engine, args []Ref) (Ref, error)

type BuiltinEntry struct {
	Name string
	Func BuiltinFunc
}

// Register adds a native function and binds it to a global of the same
// name. Hosts use this to extend the builtin surface; the engine uses it
// for the stdlib. Registration order is stable, which snapshots rely on.
func (e *Engine) Register(name string, fn BuiltinFunc) error {
	index := int32(len(e.builtins))
	e.builtins = append(e.builtins, BuiltinEntry{Name: name, Func: fn})
	e.byName[name] = index

	id, err := e.symbols.Intern(name)
	if err != nil {
		return err
	}
	cell, err := e.heap.Builtin(index)
	if err != nil {
		return err
	}
	return e.Define(id, cell)
}

func (e *Engine) installStdlib() error {
	for _, b := range []BuiltinEntry{
		{"+", builtinAdd},
		{"-", builtinSub},
		{"*", builtinMul},
		{"/", builtinDiv},
		{"<", builtinLess},
		{">", builtinGreater},
		{"=", builtinEqual},
		{"clear", builtinClear},
		{"fill-rect", builtinFillRect},
		{"draw-text", builtinDrawText},
		{"draw-text-wrapped", builtinDrawTextWrapped},
		{"make-sprite", builtinMakeSprite},
		{"sprite-set-pixel", builtinSpriteSetPixel},
		{"draw-sprite", builtinDrawSprite},
		{"collide?", builtinCollide},
		{"start", builtinStart},
		{"stop", builtinStop},
		{"print", builtinPrint},
	} {
		if err := e.Register(b.Name, b.Func); err != nil {
			return err
		}
	}
	return nil
}

func wantArgs(args []Ref, n int) error {
	if len(args) != n {
		return fmt.Errorf("want %d arguments, got %d: %w", n, len(args), ErrTypeMismatch)
	}
	return nil
}

func (e *Engine) numArg(args []Ref, i int) (int32, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d: %w", i+1, ErrTypeMismatch)
	}
	if k := e.heap.Kind(args[i]); k != KindNumber {
		return 0, fmt.Errorf("argument %d is %v, want number: %w", i+1, k, ErrTypeMismatch)
	}
	return e.heap.NumberValue(args[i]), nil
}

func (e *Engine) textArg(args []Ref, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d: %w", i+1, ErrTypeMismatch)
	}
	if k := e.heap.Kind(args[i]); k != KindString {
		return "", fmt.Errorf("argument %d is %v, want string: %w", i+1, k, ErrTypeMismatch)
	}
	return e.heap.TextValue(args[i]), nil
}

func (e *Engine) spriteArg(args []Ref, i int) (*SpriteData, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("missing argument %d: %w", i+1, ErrTypeMismatch)
	}
	if k := e.heap.Kind(args[i]); k != KindSprite {
		return nil, fmt.Errorf("argument %d is %v, want sprite: %w", i+1, k, ErrTypeMismatch)
	}
	return e.sprites.Get(e.heap.SpriteIndex(args[i]))
}

func (e *Engine) boolValue(b bool) (Ref, error) {
	if !b {
		return Nil, nil
	}
	return e.heap.Number(1)
}

func numericPair(e *Engine, args []Ref) (int32, int32, error) {
	if err := wantArgs(args, 2); err != nil {
		return 0, 0, err
	}
	a, err := e.numArg(args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := e.numArg(args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func builtinAdd(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.heap.Number(a + b)
}

func builtinSub(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.heap.Number(a - b)
}

func builtinMul(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.heap.Number(a * b)
}

func builtinDiv(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	if b == 0 {
		return Nil, fmt.Errorf("division by zero")
	}
	return e.heap.Number(a / b)
}

func builtinLess(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.boolValue(a < b)
}

func builtinGreater(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.boolValue(a > b)
}

func builtinEqual(e *Engine, args []Ref) (Ref, error) {
	a, b, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	return e.boolValue(a == b)
}

func builtinClear(e *Engine, args []Ref) (Ref, error) {
	color, err := e.numArg(args, 0)
	if err != nil {
		return Nil, err
	}
	e.renderer.Clear(color)
	return Nil, nil
}

func builtinFillRect(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 5); err != nil {
		return Nil, err
	}
	var vals [5]int32
	for i := range vals {
		v, err := e.numArg(args, i)
		if err != nil {
			return Nil, err
		}
		vals[i] = v
	}
	e.renderer.FillRect(vals[0], vals[1], vals[2], vals[3], vals[4])
	return Nil, nil
}

func builtinDrawText(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 5); err != nil {
		return Nil, err
	}
	x, err := e.numArg(args, 0)
	if err != nil {
		return Nil, err
	}
	y, err := e.numArg(args, 1)
	if err != nil {
		return Nil, err
	}
	text, err := e.textArg(args, 2)
	if err != nil {
		return Nil, err
	}
	fg, err := e.numArg(args, 3)
	if err != nil {
		return Nil, err
	}
	bg, err := e.numArg(args, 4)
	if err != nil {
		return Nil, err
	}
	e.renderer.DrawText(x, y, text, fg, bg)
	return Nil, nil
}

// 8px rows, matching the reference bitmap font
const textLineHeight = 8

func builtinDrawTextWrapped(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 6); err != nil {
		return Nil, err
	}
	x, err := e.numArg(args, 0)
	if err != nil {
		return Nil, err
	}
	y, err := e.numArg(args, 1)
	if err != nil {
		return Nil, err
	}
	cols, err := e.numArg(args, 2)
	if err != nil {
		return Nil, err
	}
	text, err := e.textArg(args, 3)
	if err != nil {
		return Nil, err
	}
	fg, err := e.numArg(args, 4)
	if err != nil {
		return Nil, err
	}
	bg, err := e.numArg(args, 5)
	if err != nil {
		return Nil, err
	}
	if cols < 1 {
		cols = 1
	}
	wrapped := wordwrap.WrapString(text, uint(cols))
	for i, line := range strings.Split(wrapped, "\n") {
		e.renderer.DrawText(x, y+int32(i)*textLineHeight, line, fg, bg)
	}
	return Nil, nil
}

func builtinMakeSprite(e *Engine, args []Ref) (Ref, error) {
	w, h, err := numericPair(e, args)
	if err != nil {
		return Nil, err
	}
	index, err := e.sprites.Make(w, h)
	if err != nil {
		return Nil, err
	}
	return e.heap.Sprite(index)
}

func builtinSpriteSetPixel(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 4); err != nil {
		return Nil, err
	}
	if k := e.heap.Kind(args[0]); k != KindSprite {
		return Nil, fmt.Errorf("argument 1 is %v, want sprite: %w", k, ErrTypeMismatch)
	}
	x, err := e.numArg(args, 1)
	if err != nil {
		return Nil, err
	}
	y, err := e.numArg(args, 2)
	if err != nil {
		return Nil, err
	}
	color, err := e.numArg(args, 3)
	if err != nil {
		return Nil, err
	}
	if err := e.sprites.SetPixel(e.heap.SpriteIndex(args[0]), x, y, color); err != nil {
		return Nil, err
	}
	return args[0], nil
}

func builtinDrawSprite(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 3); err != nil {
		return Nil, err
	}
	sp, err := e.spriteArg(args, 0)
	if err != nil {
		return Nil, err
	}
	x, err := e.numArg(args, 1)
	if err != nil {
		return Nil, err
	}
	y, err := e.numArg(args, 2)
	if err != nil {
		return Nil, err
	}
	e.renderer.BlitSprite(x, y, sp.W, sp.H, sp.Pixels, Transparent)
	return Nil, nil
}

func builtinCollide(e *Engine, args []Ref) (Ref, error) {
	if err := wantArgs(args, 8); err != nil {
		return Nil, err
	}
	var vals [8]int32
	for i := range vals {
		v, err := e.numArg(args, i)
		if err != nil {
			return Nil, err
		}
		vals[i] = v
	}
	return e.boolValue(RectsOverlap(
		vals[0], vals[1], vals[2], vals[3],
		vals[4], vals[5], vals[6], vals[7],
	))
}

func builtinStart(e *Engine, args []Ref) (Ref, error) {
	e.running = true
	return Nil, nil
}

func builtinStop(e *Engine, args []Ref) (Ref, error) {
	e.running = false
	return Nil, nil
}

func builtinPrint(e *Engine, args []Ref) (Ref, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, e.Render(arg))
	}
	e.logger.Info("print", "values", strings.Join(parts, " "))
	if len(args) == 0 {
		return Nil, nil
	}
	return args[len(args)-1], nil
}
