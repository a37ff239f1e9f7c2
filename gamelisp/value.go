package gamelisp

// Kind discriminates the variants of a heap cell.
type Kind uint8

const (
	KindNil Kind = iota
	KindNumber
	KindSymbol
	KindCons
	KindString
	KindBuiltin
	KindLambda
	KindSprite
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindCons:
		return "cons"
	case KindString:
		return "string"
	case KindBuiltin:
		return "builtin"
	case KindLambda:
		return "lambda"
	case KindSprite:
		return "sprite"
	}
	return "invalid"
}

// Ref is a stable handle to a heap cell. It indexes an indirection table
// owned by the heap, so compaction never invalidates a Ref held by the
// host. The zero Ref is the nil value.
type Ref int32

// Nil is the handle of the preallocated nil cell.
const Nil Ref = 0

// Cell is the single tagged-union unit of the heap. Which payload fields
// are meaningful depends on Kind:
//
//	KindNumber  Num
//	KindSymbol  Sym
//	KindCons    Car, Cdr
//	KindString  Str (process-lifetime text, not arena-owned)
//	KindBuiltin Num (index into the engine's builtin table)
//	KindLambda  Car (parameter list), Cdr (body forms), Env (captured chain)
//	KindSprite  Num (index into the sprite store)
//
// Fields are exported for gob snapshots.
type Cell struct {
	Kind Kind
	Num  int32
	Sym  SymbolID
	Car  Ref
	Cdr  Ref
	Env  Ref
	Str  string
}
