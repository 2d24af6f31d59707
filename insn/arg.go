package insn

import "github.com/Urethramancer/mcpuasm/expr"

// ArgKind defines the shape of an instruction argument.
type ArgKind int

const (
	// ArgRegister is a bare register operand.
	ArgRegister ArgKind = iota
	// ArgRegisterPlus is a register plus a constant offset, used by
	// the jump/mov SM encoding's register+constant slot.
	ArgRegisterPlus
	// ArgRegisterLShift is a register shifted left by a constant
	// distance, used only as an ALU operand.
	ArgRegisterLShift
	// ArgRegisterRShift is a register shifted right by a constant
	// distance, used only as an ALU operand.
	ArgRegisterRShift
	// ArgConstant is a bare expression operand.
	ArgConstant
	// ArgUndefined marks a parser-recovery placeholder.
	ArgUndefined
)

// Arg is one operand of an instruction. Still used to track which
// union member is live between the six kinds sharing one struct.
type Arg struct {
	Kind     ArgKind
	Reg      int
	Shift    int
	Constant *expr.Expr
}

// NewRegister builds a bare register argument.
func NewRegister(r int) Arg { return Arg{Kind: ArgRegister, Reg: r} }

// NewRegisterPlus builds a register-plus-constant argument.
func NewRegisterPlus(r int, c *expr.Expr) Arg {
	return Arg{Kind: ArgRegisterPlus, Reg: r, Constant: c}
}

// NewRegisterLShift builds a register-left-shifted-by-constant argument.
func NewRegisterLShift(r, shift int) Arg {
	return Arg{Kind: ArgRegisterLShift, Reg: r, Shift: shift}
}

// NewRegisterRShift builds a register-right-shifted-by-constant argument.
func NewRegisterRShift(r, shift int) Arg {
	return Arg{Kind: ArgRegisterRShift, Reg: r, Shift: shift}
}

// NewConstant builds a bare expression argument.
func NewConstant(c *expr.Expr) Arg { return Arg{Kind: ArgConstant, Constant: c} }

// IsConstantZero reports whether a is a Constant argument holding the
// literal value 0 — used by mov/jump preprocessing to rewrite
// constant-zero operands into the architectural zero register.
func (a Arg) IsConstantZero() bool {
	return a.Kind == ArgConstant && a.Constant != nil && a.Constant.IsConstant(0)
}
