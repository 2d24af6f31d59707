package layout

import (
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/insn"
)

// layoutMov implements §4.3.4: preprocessing shared by mov and jump,
// then the two independent sub-case ladders.
func layoutMov(in *insn.Insn) (insn.Concrete, error) {
	args := append([]insn.Arg(nil), in.MovArgs...)

	if in.SwapOperands && len(args) >= 2 {
		n := len(args)
		args[n-2], args[n-1] = args[n-1], args[n-2]
	}
	cond := insn.ConditionToMovCond(in.Condition)

	if len(args) > 2 {
		for i := len(args) - 2; i < len(args); i++ {
			if args[i].IsConstantZero() {
				args[i] = insn.NewRegister(0)
			}
		}
	}

	if in.IsJmp {
		return layoutJump(args, cond)
	}
	return layoutMovNonJump(args, cond)
}

func layoutJump(args []insn.Arg, cond encode.MovCond) (insn.Concrete, error) {
	a0 := args[0]

	// A. plain register target, unconditional: SHORT.
	if a0.Kind == insn.ArgRegister && cond == encode.Al {
		opcode := encode.BuildMovOpcode(encode.Mro, encode.Al)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SHORT,
			Opcode: opcode, Rd: 0b1111, Ro: a0.Reg,
		}, nil
	}

	// B. constant target, unconditional: BIG, downgraded to TINY.
	if a0.Kind == insn.ArgConstant && cond == encode.Al {
		opcode := encode.BuildMovOpcode(encode.Mimm, encode.Al)
		subtype := encode.BIG
		if a0.Constant.IsNum() && encode.Fits(a0.Constant.Num, 4) {
			subtype = encode.TINY
		}
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: subtype,
			Opcode: opcode, Rd: 0b1111, Imm: a0.Constant,
		}, nil
	}

	// C. general case: SM.
	var ff int
	immExpr := a0.Constant

	if a0.Kind == insn.ArgRegisterPlus {
		if len(args) == 3 {
			for _, a := range args[1:] {
				if a.Kind != insn.ArgRegister {
					return insn.Concrete{}, ErrInvalidJump
				}
			}
		}
		ff = 0b11
		immExpr = a0.Constant
	} else if len(args) == 3 {
		for i := 1; i < 3; i++ {
			if args[i].Kind == insn.ArgConstant {
				if ff != 0 {
					return insn.Concrete{}, ErrInvalidJump
				}
				ff = 1 << (i - 1)
				immExpr = args[i].Constant
			}
		}
	}

	opcode := encode.BuildMovOpcode(encode.Jump, cond)
	c := insn.Concrete{
		Kind: insn.ConcreteInsn, Subtype: encode.SM,
		Opcode: opcode, Rd: args[0].Reg, FF: ff, Imm: immExpr,
	}
	if len(args) > 1 {
		c.Rs = args[1].Reg
	}
	if len(args) > 2 {
		c.Ro = args[2].Reg
	}
	return c, nil
}

func layoutMovNonJump(args []insn.Arg, cond encode.MovCond) (insn.Concrete, error) {
	a0, a1 := args[0], args[1]
	rd := a0.Reg

	// A. a1 is a constant: BIG/TINY when unconditional, LONG otherwise.
	if a1.Kind == insn.ArgConstant {
		if cond == encode.Al {
			opcode := encode.BuildMovOpcode(encode.Mimm, encode.Al)
			subtype := encode.BIG
			if a1.Constant.IsNum() && encode.Fits(a1.Constant.Num, 4) {
				subtype = encode.TINY
			}
			return insn.Concrete{
				Kind: insn.ConcreteInsn, Subtype: subtype,
				Opcode: opcode, Rd: rd, Imm: a1.Constant,
			}, nil
		}
		if len(args) < 4 || args[2].Kind != insn.ArgRegister || args[3].Kind != insn.ArgRegister {
			return insn.Concrete{}, ErrInvalidMov
		}
		opcode := encode.BuildMovOpcode(encode.Mimm, cond)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.LONG,
			Opcode: opcode, Rd: rd, Imm: a1.Constant, Rs: args[2].Reg, Ro: args[3].Reg,
		}, nil
	}

	// B. a1 is a register, unconditional: SHORT.
	if a1.Kind == insn.ArgRegister && cond == encode.Al {
		opcode := encode.BuildMovOpcode(encode.Mro, encode.Al)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SHORT,
			Opcode: opcode, Ro: a1.Reg, Rd: rd, Rs: a0.Reg,
		}, nil
	}

	if len(args) < 4 {
		return insn.Concrete{}, ErrInvalidMov
	}
	a2, a3 := args[2], args[3]

	// C. exactly one of a2/a3 is a constant.
	nConst := 0
	if a2.Kind == insn.ArgConstant {
		nConst++
	}
	if a3.Kind == insn.ArgConstant {
		nConst++
	}
	if nConst == 2 {
		return insn.Concrete{}, ErrInvalidMov
	}
	if nConst == 1 {
		if a1.Kind != insn.ArgRegister {
			return insn.Concrete{}, ErrInvalidMov
		}
		spareAt2 := a2.Kind == insn.ArgConstant
		var op encode.MovOp
		var rs, ro int
		var immExpr = a2.Constant
		var ff int
		if spareAt2 {
			op = encode.Mrs
			rs = a1.Reg
			ro = a3.Reg
			immExpr = a2.Constant
			ff = 0b01
		} else {
			op = encode.Mro
			ro = a1.Reg
			rs = a2.Reg
			immExpr = a3.Constant
			ff = 0b10
		}
		opcode := encode.BuildMovOpcode(op, cond)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SM,
			Opcode: opcode, Rd: rd, Rs: rs, Ro: ro, FF: ff, Imm: immExpr,
		}, nil
	}

	// D. no constants, but a1's register is reused at a2 or a3.
	if a2.Reg == a1.Reg {
		opcode := encode.BuildMovOpcode(encode.Mrs, cond)
		c := insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SM,
			Opcode: opcode, Rd: rd, Rs: a1.Reg, Ro: a2.Reg,
		}
		if a1.Kind == insn.ArgRegisterPlus {
			c.FF = 0b11
			c.Imm = a1.Constant
		}
		return c, nil
	}
	if a3.Reg == a1.Reg {
		opcode := encode.BuildMovOpcode(encode.Mro, cond)
		c := insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SM,
			Opcode: opcode, Rd: rd, Rs: a1.Reg, Ro: a2.Reg,
		}
		if a1.Kind == insn.ArgRegisterPlus {
			c.FF = 0b11
			c.Imm = a1.Constant
		}
		return c, nil
	}

	// E. no reuse, no constants.
	return insn.Concrete{}, ErrInvalidMov
}
