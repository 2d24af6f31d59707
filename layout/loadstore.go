package layout

import (
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

// layoutLoadStore implements §4.3.2: three address-mode cases driven
// by whether an index register is present and whether the offset is a
// literal zero.
func layoutLoadStore(in *insn.Insn) (insn.Concrete, error) {
	opcode, err := encode.BuildLoadStoreOpcode(in.LSKind, in.LSSize, in.LSDest, addressMode(in))
	if err != nil {
		return insn.Concrete{}, err
	}

	rd := in.DestArg.Reg
	a := in.Addr

	switch {
	case a.RegIndex == 0 && a.Constant != nil && a.Constant.IsConstant(0):
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SHORT,
			Opcode: opcode, Rd: rd, Ro: a.RegBase,
		}, nil

	case a.RegIndex == 0 && a.Constant != nil && a.Constant.IsNum():
		v := a.Constant.Num
		if v < 0 || v > 0xFFFFFFFF {
			return insn.Concrete{}, ErrAddressTooLarge
		}
		// Mask off the top two bits (they become FF) and replicate
		// bit 29 into bits 30-31, sign-extending the top of the
		// 30-bit immediate back through the packed form.
		imm := v &^ (0b11 << 30)
		if imm&(1<<29) != 0 {
			imm |= 0b11 << 30
		}
		ff := (v >> 30) & 0b11
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.MSM,
			Opcode: opcode, Rd: rd, Ro: a.RegBase, FF: int(ff),
			Imm: expr.NewNum(imm),
		}, nil

	default:
		return insn.Concrete{
			Kind: insn.ConcreteInsn, Subtype: encode.SM,
			Opcode: opcode, Rd: rd, Ro: a.RegBase, Rs: a.RegIndex, FF: a.Shift,
			Imm: a.Constant,
		}, nil
	}
}

func addressMode(in *insn.Insn) encode.AddressMode {
	a := in.Addr
	if a.RegIndex == 0 && a.Constant != nil && a.Constant.IsConstant(0) {
		return encode.Generic
	}
	if a.RegIndex == 0 && a.Constant != nil && a.Constant.IsNum() {
		return encode.Simple
	}
	return encode.Generic
}
