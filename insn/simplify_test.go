package insn_test

import (
	"testing"

	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

func TestSimplifyProgramFoldsAluArgConstants(t *testing.T) {
	prog := &insn.ParsedProgram{
		Sections: []insn.PSection{{
			Instructions: []insn.Insn{{
				Kind:  insn.KindAlu,
				AluOp: encode.Add,
				AluArgs: [3]insn.Arg{
					insn.NewRegister(2),
					insn.NewRegister(2),
					insn.NewConstant(expr.NewAdd(expr.NewNum(1), expr.NewNum(2))),
				},
			}},
		}},
	}
	insn.SimplifyProgram(expr.NewEvaluator(), prog)

	got := prog.Sections[0].Instructions[0].AluArgs[2].Constant
	if got.Kind != expr.Num || got.Num != 3 {
		t.Fatalf("got %+v, want a folded Num(3)", got)
	}
}

func TestSimplifyProgramFoldsLoadStoreAddrConstant(t *testing.T) {
	prog := &insn.ParsedProgram{
		Sections: []insn.PSection{{
			Instructions: []insn.Insn{{
				Kind: insn.KindLoadStore,
				Addr: insn.Addr{
					RegBase:  2,
					Constant: expr.NewAdd(expr.NewNum(1), expr.NewNum(2)),
				},
			}},
		}},
	}
	insn.SimplifyProgram(expr.NewEvaluator(), prog)

	got := prog.Sections[0].Instructions[0].Addr.Constant
	if got.Kind != expr.Num || got.Num != 3 {
		t.Fatalf("got %+v, want a folded Num(3)", got)
	}
}

func TestSimplifyProgramFoldsMovArgConstants(t *testing.T) {
	prog := &insn.ParsedProgram{
		Sections: []insn.PSection{{
			Instructions: []insn.Insn{{
				Kind: insn.KindMov,
				MovArgs: []insn.Arg{
					insn.NewRegister(1),
					insn.NewConstant(expr.NewAdd(expr.NewNum(10), expr.NewNum(5))),
				},
			}},
		}},
	}
	insn.SimplifyProgram(expr.NewEvaluator(), prog)

	got := prog.Sections[0].Instructions[0].MovArgs[1].Constant
	if got.Kind != expr.Num || got.Num != 15 {
		t.Fatalf("got %+v, want a folded Num(15)", got)
	}
}

func TestSimplifyProgramFoldsDataLowAndHigh(t *testing.T) {
	prog := &insn.ParsedProgram{
		Sections: []insn.PSection{{
			Instructions: []insn.Insn{{
				Kind:     insn.KindData,
				DataLow:  expr.NewAdd(expr.NewNum(1), expr.NewNum(1)),
				DataHigh: expr.NewAdd(expr.NewNum(2), expr.NewNum(2)),
			}},
		}},
	}
	insn.SimplifyProgram(expr.NewEvaluator(), prog)

	low := prog.Sections[0].Instructions[0].DataLow
	high := prog.Sections[0].Instructions[0].DataHigh
	if low.Kind != expr.Num || low.Num != 2 {
		t.Fatalf("got low %+v, want a folded Num(2)", low)
	}
	if high.Kind != expr.Num || high.Num != 4 {
		t.Fatalf("got high %+v, want a folded Num(4)", high)
	}
}

func TestSimplifyProgramLeavesRegisterArgsAlone(t *testing.T) {
	prog := &insn.ParsedProgram{
		Sections: []insn.PSection{{
			Instructions: []insn.Insn{{
				Kind:  insn.KindAlu,
				AluOp: encode.Add,
				AluArgs: [3]insn.Arg{
					insn.NewRegister(1),
					insn.NewRegister(2),
					insn.NewRegister(3),
				},
			}},
		}},
	}
	insn.SimplifyProgram(expr.NewEvaluator(), prog)

	if prog.Sections[0].Instructions[0].AluArgs[2].Kind != insn.ArgRegister {
		t.Fatalf("expected the register arg to be untouched")
	}
}
