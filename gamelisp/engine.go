package gamelisp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/taisprite/syncs"
)

type Config struct {
	HeapCapacity   int
	SymbolCapacity int
	SpriteCapacity int
	MaxSpriteDim   int
	MaxEvalDepth   int
}

var DefaultConfig = Config{
	HeapCapacity:   4096,
	SymbolCapacity: 512,
	SpriteCapacity: 32,
	MaxSpriteDim:   64,
	MaxEvalDepth:   256,
}

func (c Config) withDefaults() Config {
	if c.HeapCapacity <= 0 {
		c.HeapCapacity = DefaultConfig.HeapCapacity
	}
	if c.SymbolCapacity <= 0 {
		c.SymbolCapacity = DefaultConfig.SymbolCapacity
	}
	if c.SpriteCapacity <= 0 {
		c.SpriteCapacity = DefaultConfig.SpriteCapacity
	}
	if c.MaxSpriteDim <= 0 {
		c.MaxSpriteDim = DefaultConfig.MaxSpriteDim
	}
	if c.MaxEvalDepth <= 0 {
		c.MaxEvalDepth = DefaultConfig.MaxEvalDepth
	}
	return c
}

// callback table slots: per-frame update plus one per button
const numCallbacks = 1 + int(NumButtons)

// Engine is the host embedding surface: a heap, an interpreter, and the
// bridge to the rendering and input collaborators. All evaluation,
// allocation and collection happen synchronously inside EvalToplevel and
// RunFrame; the heap and callback table are a single-writer resource
// guarded by sem.
type Engine struct {
	logger   *slog.Logger
	config   Config
	heap     *Heap
	symbols  *Symbols
	sprites  *SpriteStore
	renderer Renderer
	input    Input
	sem      syncs.Semaphore

	builtins []BuiltinEntry
	byName   map[string]int32

	global    Ref
	callbacks [numCallbacks]Ref
	running   bool

	symDefine    SymbolID
	symSet       SymbolID
	symIf        SymbolID
	symLambda    SymbolID
	callbackSyms [numCallbacks]SymbolID
}

func New(config Config, logger *slog.Logger, renderer Renderer, input Input) (*Engine, error) {
	config = config.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if input == nil {
		input = nopInput{}
	}

	e := &Engine{
		logger:   logger,
		config:   config,
		heap:     NewHeap(config.HeapCapacity),
		symbols:  NewSymbols(config.SymbolCapacity),
		sprites:  NewSpriteStore(config.SpriteCapacity, int32(config.MaxSpriteDim)),
		renderer: renderer,
		input:    input,
		sem:      syncs.NewSemaphore(1),
		byName:   make(map[string]int32),
	}
	e.heap.AddRoot(&e.global)
	for i := range e.callbacks {
		e.heap.AddRoot(&e.callbacks[i])
	}

	if err := e.internSpecialForms(); err != nil {
		return nil, wrap(err)
	}
	if err := e.installStdlib(); err != nil {
		return nil, wrap(err)
	}
	return e, nil
}

func (e *Engine) internSpecialForms() (err error) {
	intern := func(name string) SymbolID {
		if err != nil {
			return 0
		}
		var id SymbolID
		id, err = e.symbols.Intern(name)
		return id
	}
	e.symDefine = intern("define")
	e.symSet = intern("set!")
	e.symIf = intern("if")
	e.symLambda = intern("lambda")
	names := [numCallbacks]string{
		"on-update",
		"on-button-a",
		"on-button-b",
		"on-button-x",
		"on-button-y",
	}
	for i, name := range names {
		e.callbackSyms[i] = intern(name)
	}
	return err
}

func (e *Engine) Heap() *Heap       { return e.heap }
func (e *Engine) Symbols() *Symbols { return e.symbols }
func (e *Engine) Sprites() *SpriteStore {
	return e.sprites
}
func (e *Engine) Global() Ref   { return e.global }
func (e *Engine) Running() bool { return e.running }

// Callback returns the registered closure for a callback slot; slot 0 is
// the per-frame update, slots 1..4 the buttons.
func (e *Engine) Callback(slot int) Ref {
	return e.callbacks[slot]
}

// EvalToplevel reads and evaluates every form in src, returning the value
// of the last one. The first error aborts the current form and leaves
// already-evaluated definitions in effect.
func (e *Engine) EvalToplevel(src string) (Ref, error) {
	e.sem.Acquire()
	defer e.sem.Release()

	mark := e.heap.ProtectMark()
	defer e.heap.Unprotect(mark)

	result := Nil
	for {
		form, rest, err := e.Read(src)
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return Nil, err
		}
		src = rest

		e.heap.Protect(form)
		result, err = e.Eval(e.global, form)
		if err != nil {
			return Nil, err
		}
		e.heap.Protect(result)
	}
}

// RunFrame executes one cooperative tick: poll input, fire just-pressed
// button callbacks, fire the update callback, present the frame. When the
// engine is stopped the frame is a no-op. Callback errors are logged and
// joined; they never stop the remaining steps of the frame.
func (e *Engine) RunFrame() error {
	e.sem.Acquire()
	defer e.sem.Release()

	if !e.running {
		return nil
	}

	e.input.Poll()

	var errs []error
	for b := ButtonA; b < NumButtons; b++ {
		if !e.input.JustPressed(b) {
			continue
		}
		if err := e.fireCallback(1 + int(b)); err != nil {
			e.logger.Error("button callback", "button", b.String(), "error", err)
			errs = append(errs, fmt.Errorf("button %s: %w", b, err))
		}
	}

	if err := e.fireCallback(0); err != nil {
		e.logger.Error("update callback", "error", err)
		errs = append(errs, fmt.Errorf("update: %w", err))
	}

	e.renderer.Present()
	return errors.Join(errs...)
}

func (e *Engine) fireCallback(slot int) error {
	cb := e.callbacks[slot]
	if cb == Nil {
		return nil
	}
	mark := e.heap.ProtectMark()
	defer e.heap.Unprotect(mark)
	_, err := e.apply(cb, nil, 0)
	return err
}

func (e *Engine) Start() { e.running = true }
func (e *Engine) Stop()  { e.running = false }
