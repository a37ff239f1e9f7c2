package gamelisp

import "errors"

var (
	// ErrOutOfMemory: the allocator cannot satisfy a request even after a
	// collection. Fatal to the current top-level form; the host may reset.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrSymbolTableFull: the intern table capacity is exceeded. This is a
	// configuration-level error, not a runtime condition to retry.
	ErrSymbolTableFull = errors.New("symbol table full")

	// ErrUnboundVariable: set! on a name that was never defined.
	ErrUnboundVariable = errors.New("unbound variable")

	// ErrStackExhausted: evaluation recursed past the configured depth.
	ErrStackExhausted = errors.New("evaluation stack exhausted")

	// ErrTypeMismatch: a builtin received an operand of the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")

	ErrSpriteCapacityExceeded = errors.New("sprite table full")
	ErrSpriteTooLarge         = errors.New("sprite too large")
)
