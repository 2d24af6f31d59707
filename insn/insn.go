// Package insn defines the parsed instruction intermediate form: the
// tagged union the parser produces, the evaluator's simplify pass
// mutates in place, and the layout engine consumes.
package insn

import (
	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
)

// Kind discriminates the variants of Insn.
type Kind int

const (
	// KindLabel defines a label at the current address. Carries no
	// encoding and is never emitted.
	KindLabel Kind = iota
	// KindData emits raw data of a fixed width.
	KindData
	// KindLoadStore is a memory load or store.
	KindLoadStore
	// KindAlu is an arithmetic/logic operation.
	KindAlu
	// KindMov is a register move or a conditional jump.
	KindMov
	// KindUndefined is a sentinel for parse recovery: it carries no
	// encoding and is dropped silently by layout.
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindData:
		return "data"
	case KindLoadStore:
		return "loadstore"
	case KindAlu:
		return "alu"
	case KindMov:
		return "mov"
	case KindUndefined:
		return "undefined"
	default:
		return "?"
	}
}

// DataWidth is the width of a raw data item.
type DataWidth int

const (
	Bytes DataWidth = iota
	Word
	Doubleword
	Quadword
)

// Length returns the byte length of a data item of this width.
func (w DataWidth) Length() int {
	switch w {
	case Bytes, Word:
		return 2
	case Doubleword:
		return 4
	case Quadword:
		return 8
	default:
		return 0
	}
}

// Condition is the parser-level mov/jump condition code, mapped to
// encode.MovCond by an identity table (ConditionToMovCond) before
// encoding.
type Condition int

const (
	CondAL Condition = iota
	CondLT
	CondSLT
	CondGE
	CondSGE
	CondEQ
	CondNE
	CondBS
)

// ConditionToMovCond maps the parser's condition enum onto the
// encoder's. The mapping is the identity table the spec calls for:
// every parser condition has exactly one encoder counterpart.
func ConditionToMovCond(c Condition) encode.MovCond {
	switch c {
	case CondLT:
		return encode.Lt
	case CondSLT:
		return encode.Slt
	case CondGE:
		return encode.Ge
	case CondSGE:
		return encode.Sge
	case CondEQ:
		return encode.Eq
	case CondNE:
		return encode.Neq
	case CondBS:
		return encode.Bs
	default:
		return encode.Al
	}
}

// Addr is the addressing-mode payload of a load/store instruction.
type Addr struct {
	RegBase  int
	RegIndex int
	Shift    int
	Constant *expr.Expr
}

// Insn is the tagged union over the four instruction-carrying variants
// plus the two sentinels (Label, Undefined). Only the fields relevant
// to Kind are populated; this mirrors how parsed nodes are represented
// across the rest of this codebase — one flat struct, not a separate
// type per variant, to keep the parser and layout engine working
// against a single concrete type.
type Insn struct {
	Kind Kind
	Pos  diag.Pos

	// KindLabel
	Label expr.LabelRef

	// KindData
	DataWidth DataWidth
	DataLow   *expr.Expr
	DataHigh  *expr.Expr

	// KindLoadStore
	LSKind  LoadStoreKind
	LSSize  LoadStoreSize
	LSDest  LoadStoreDest
	DestArg Arg
	Addr    Addr

	// KindAlu
	AluOp   encode.AluOp
	AluArgs [3]Arg

	// KindMov
	IsJmp        bool
	Condition    Condition
	SwapOperands bool
	MovArgs      []Arg
}

// LoadStoreKind mirrors encode.LoadStoreKind; kept as a distinct name
// in this package so callers read insn.Load / insn.Store instead of
// reaching into encode for a concept that belongs to the parsed form.
type LoadStoreKind = encode.LoadStoreKind

// LoadStoreSize mirrors encode.LoadStoreSize.
type LoadStoreSize = encode.LoadStoreSize

// LoadStoreDest mirrors encode.LoadStoreDest.
type LoadStoreDest = encode.LoadStoreDest

const (
	Load  = encode.Load
	Store = encode.Store
)

const (
	Byte     = encode.Byte
	Halfword = encode.Halfword
)

const (
	Zext  = encode.Zext
	Sext  = encode.Sext
	LowW  = encode.LowW
	HighW = encode.HighW
)
