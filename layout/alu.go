package layout

import (
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/insn"
)

// layoutAlu implements §4.3.3's priority-ordered form selection.
func layoutAlu(in *insn.Insn) (insn.Concrete, error) {
	a0, a1, a2 := in.AluArgs[0], in.AluArgs[1], in.AluArgs[2]
	rd := a0.Reg

	switch {
	case a2.Kind == insn.ArgRegisterLShift || a2.Kind == insn.ArgRegisterRShift:
		style := encode.RegSl
		if a2.Kind == insn.ArgRegisterRShift {
			style = encode.RegSr
		}
		opcode := encode.BuildAluOpcode(in.AluOp, style)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SM,
			Opcode: opcode, Rd: rd, Rs: a1.Reg, Ro: a2.Reg, FF: a2.Shift - 1,
		}, nil

	case a2.Kind == insn.ArgRegister && a0.Reg == a1.Reg:
		opcode := encode.BuildAluOpcode(in.AluOp, encode.Reg)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SHORT,
			Opcode: opcode, Rd: rd, Ro: a2.Reg,
		}, nil

	case a2.Kind == insn.ArgConstant && a2.Constant.IsNum() && a0.Reg == a1.Reg && encode.Fits(a2.Constant.Num, 4):
		opcode := encode.BuildAluOpcode(in.AluOp, encode.Imm)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.TINY,
			Opcode: opcode, Rd: rd, Imm: a2.Constant,
		}, nil

	case a2.Kind == insn.ArgRegister:
		opcode := encode.BuildAluOpcode(in.AluOp, encode.Reg)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.LONG,
			Opcode: opcode, Rd: rd, Rs: a1.Reg, Ro: a2.Reg,
		}, nil

	default:
		opcode := encode.BuildAluOpcode(in.AluOp, encode.Imm)
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.MED,
			Opcode: opcode, Rd: rd, Ro: a1.Reg, Imm: a2.Constant,
		}, nil
	}
}
