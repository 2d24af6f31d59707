package insn

import "github.com/Urethramancer/mcpuasm/expr"

// SimplifyProgram runs the evaluator's simplify pass over every
// expression prog's instructions carry, in place, ahead of layout's
// form selection. This mirrors the original's per-instruction
// eval.simplify(...) loop over each addr/arg constant and each raw
// data low/high: form selection inspects an arg's Constant directly
// (IsNum, Fits) and needs it already folded, not a raw parse-time
// tree like Add(Num(1), Num(2)).
func SimplifyProgram(ev *expr.Evaluator, prog *ParsedProgram) {
	for i := range prog.Sections {
		instructions := prog.Sections[i].Instructions
		for j := range instructions {
			simplifyInsn(ev, &instructions[j])
		}
	}
}

func simplifyInsn(ev *expr.Evaluator, in *Insn) {
	switch in.Kind {
	case KindData:
		if in.DataLow != nil {
			ev.Simplify(in.DataLow)
		}
		if in.DataHigh != nil {
			ev.Simplify(in.DataHigh)
		}
	case KindLoadStore:
		simplifyArg(ev, &in.DestArg)
		if in.Addr.Constant != nil {
			ev.Simplify(in.Addr.Constant)
		}
	case KindAlu:
		for i := range in.AluArgs {
			simplifyArg(ev, &in.AluArgs[i])
		}
	case KindMov:
		for i := range in.MovArgs {
			simplifyArg(ev, &in.MovArgs[i])
		}
	}
}

func simplifyArg(ev *expr.Evaluator, a *Arg) {
	if a.Constant != nil {
		ev.Simplify(a.Constant)
	}
}
