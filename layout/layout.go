package layout

import (
	"sort"

	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

// Engine owns the evaluator's label map while it lays out sections,
// and reports every failure it can recover from to Sink without
// aborting the pass.
type Engine struct {
	Eval     *expr.Evaluator
	Sink     *diag.Sink
	Sections []insn.LSection
}

// NewEngine returns an Engine writing labels into ev and diagnostics
// into sink.
func NewEngine(ev *expr.Evaluator, sink *diag.Sink) *Engine {
	return &Engine{Eval: ev, Sink: sink}
}

// LayoutFrom consumes the parsed program, populates e.Sections and the
// evaluator's label map, and returns true iff no error was reported —
// by this pass or any earlier one sharing the same sink.
func (e *Engine) LayoutFrom(prog *insn.ParsedProgram) bool {
	for i := range prog.Sections {
		e.layoutSection(&prog.Sections[i])
	}
	e.checkOverlaps()
	return !e.Sink.ErrorReported()
}

func (e *Engine) layoutSection(p *insn.PSection) {
	base, err := expr.CompletelyEvaluateInt[uint32](e.Eval, p.StartingAddress)
	if err != nil {
		e.Sink.Report(p.Pos, err)
	}

	sec := insn.LSection{Index: p.Index, BaseAddress: base}
	addr := base

	for i := range p.Instructions {
		in := &p.Instructions[i]

		if in.Kind == insn.KindLabel {
			e.Eval.Labels[in.Label] = expr.NewNum(int64(addr))
			continue
		}
		if in.Kind == insn.KindUndefined {
			continue
		}

		c, err := e.selectForm(in)
		if err != nil {
			e.Sink.Report(in.Pos, err)
			continue
		}
		c.Pos = in.Pos
		sec.Contents = append(sec.Contents, c)
		addr += uint32(c.Length())
	}

	e.Sections = append(e.Sections, sec)
}

func (e *Engine) selectForm(in *insn.Insn) (insn.Concrete, error) {
	switch in.Kind {
	case insn.KindData:
		return insn.Concrete{
			Kind: insn.ConcreteData,
			Data: insn.RawData{Width: in.DataWidth, Low: in.DataLow, High: in.DataHigh},
		}, nil
	case insn.KindLoadStore:
		return layoutLoadStore(in)
	case insn.KindAlu:
		return layoutAlu(in)
	case insn.KindMov:
		return layoutMov(in)
	default:
		return insn.Concrete{}, errInvalidEncoding(in.Kind)
	}
}

// checkOverlaps sorts e.Sections by base address and reports
// OverlappingSections against the last instruction of the earlier
// section in each overlapping adjacent pair.
func (e *Engine) checkOverlaps() {
	sort.Slice(e.Sections, func(i, j int) bool {
		return e.Sections[i].BaseAddress < e.Sections[j].BaseAddress
	})
	for i := 0; i+1 < len(e.Sections); i++ {
		cur, next := &e.Sections[i], &e.Sections[i+1]
		end := cur.BaseAddress + uint32(cur.Length())
		if end > next.BaseAddress {
			pos := diag.Pos{}
			if n := len(cur.Contents); n > 0 {
				pos = cur.Contents[n-1].Pos
			}
			e.Sink.Report(pos, ErrOverlappingSections)
		}
	}
}
