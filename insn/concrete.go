package insn

import (
	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
)

// ConcreteKind discriminates the two shapes a Concrete instruction can
// take: a raw data item, or an encoded instruction word.
type ConcreteKind int

const (
	ConcreteData ConcreteKind = iota
	ConcreteInsn
)

// RawData is the concrete form of a KindData instruction: Low and
// (for Bytes) High carry the values to emit, already past simplify.
type RawData struct {
	Width DataWidth
	Low   *expr.Expr
	High  *expr.Expr
}

// Concrete is the layout engine's output for one instruction: either
// a raw data item or a fully form-selected instruction with every
// bit-encoder field resolved except the immediate, which stays
// symbolic until the encoder forces it (a label may not be bound at
// layout time in general, though in practice labels resolve during
// the same per-section pass that creates this node).
type Concrete struct {
	Kind    ConcreteKind
	Data    RawData
	Subtype encode.Subtype
	Opcode  uint32
	Rd      int
	Rs      int
	Ro      int
	FF      int
	Imm     *expr.Expr
	Pos     diag.Pos
}

// Length returns the byte length of the concrete instruction:
// SHORT/TINY are 2 bytes, every other INSN subtype is 4, and DATA
// follows its own width.
func (c *Concrete) Length() int {
	if c.Kind == ConcreteData {
		return c.Data.Width.Length()
	}
	return c.Subtype.Length()
}
