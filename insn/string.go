package insn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/mcpuasm/encode"
)

// String renders an argument the way the original debug dump does:
// "rN" for a register, "rN + <expr>" / "rN << k" / "rN >> k" for the
// shifted/offset forms, the bare expression for a constant.
func (a Arg) String() string {
	switch a.Kind {
	case ArgUndefined:
		return "aUNDEF"
	case ArgRegister:
		return "r" + strconv.Itoa(a.Reg)
	case ArgRegisterPlus:
		return fmt.Sprintf("r%d + %s", a.Reg, a.Constant)
	case ArgRegisterLShift:
		return fmt.Sprintf("r%d << %d", a.Reg, a.Shift)
	case ArgRegisterRShift:
		return fmt.Sprintf("r%d >> %d", a.Reg, a.Shift)
	case ArgConstant:
		return a.Constant.String()
	default:
		return "?"
	}
}

func joinArgs(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// String renders an Insn one line at a time, matching the density and
// field names of the original pctx dump (ls{...}, alu{OOOO=...},
// mov/jmp{c=...}).
func (in *Insn) String() string {
	switch in.Kind {
	case KindLabel:
		return in.Label.String() + ":"
	case KindData:
		s := fmt.Sprintf("db{width=%d}, %s", in.DataWidth, in.DataLow)
		if in.DataWidth == Bytes {
			s += fmt.Sprintf(", %s", in.DataHigh)
		}
		return s
	case KindLoadStore:
		return fmt.Sprintf("ls{K=%d,S=%d,TT=%02b}, %s, [%s + r%d + r%d << %d]",
			in.LSKind, in.LSSize, uint32(in.LSDest), in.DestArg,
			in.Addr.Constant, in.Addr.RegBase, in.Addr.RegIndex, in.Addr.Shift)
	case KindAlu:
		return fmt.Sprintf("alu{OOOO=%04b}, %s", uint32(in.AluOp), joinArgs(in.AluArgs[:]))
	case KindMov:
		kind := "mov"
		if in.IsJmp {
			kind = "jmp"
		}
		return fmt.Sprintf("%s{c=%s}, %s", kind, in.Condition, joinArgs(in.MovArgs))
	case KindUndefined:
		return "undef"
	default:
		return "?"
	}
}

func (c Condition) String() string {
	switch c {
	case CondAL:
		return "AL"
	case CondLT:
		return "LT"
	case CondSLT:
		return "SLT"
	case CondGE:
		return "GE"
	case CondSGE:
		return "SGE"
	case CondEQ:
		return "EQ"
	case CondNE:
		return "NE"
	case CondBS:
		return "BS"
	default:
		return "?"
	}
}

func (w DataWidth) String() string {
	switch w {
	case Bytes:
		return "BYTES"
	case Word:
		return "WORD"
	case Doubleword:
		return "DOUBLEWORD"
	case Quadword:
		return "QUADWORD"
	default:
		return "?"
	}
}

// String renders a laid-out section the way lctx's dump does: a
// header line, then each concrete instruction prefixed with its
// address.
func (s *LSection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== laid out section %d ===\n", s.Index)
	fmt.Fprintf(&b, "base address: %#x\n", s.BaseAddress)
	b.WriteString("contents:\n")
	addr := s.BaseAddress
	for i := range s.Contents {
		c := &s.Contents[i]
		fmt.Fprintf(&b, "%08x: %s\n", addr, c.String())
		addr += uint32(c.Length())
	}
	return b.String()
}

// String renders a concrete instruction: its opcode and rd for every
// INSN subtype, then the fields that subtype actually carries.
func (c *Concrete) String() string {
	if c.Kind == ConcreteData {
		s := fmt.Sprintf("db{width=%s}, %s", c.Data.Width, c.Data.Low)
		if c.Data.Width == Bytes {
			s += fmt.Sprintf(", %s", c.Data.High)
		}
		return s
	}

	s := fmt.Sprintf("opc=%07b, rd=%d", c.Opcode, c.Rd)
	switch c.Subtype {
	case encode.SHORT:
		s += fmt.Sprintf(", rs=%d, ro=%d", c.Rs, c.Ro)
	case encode.TINY:
		s += fmt.Sprintf(", imm=%s", c.Imm)
	default:
		s += fmt.Sprintf(", rs=%d, ro=%d, ff=%d, imm=%s", c.Rs, c.Ro, c.FF, c.Imm)
	}
	return s
}
