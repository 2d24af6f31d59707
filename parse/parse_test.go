package parse_test

import (
	"bytes"
	"testing"

	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/insn"
	"github.com/Urethramancer/mcpuasm/parse"
)

func parseOK(t *testing.T, src string) *insn.ParsedProgram {
	t.Helper()
	sink := diag.NewSink(&bytes.Buffer{}, src)
	prog, ok := parse.Parse(src, "t.s", sink)
	if !ok || sink.ErrorReported() {
		t.Fatalf("expected clean parse of %q", src)
	}
	return prog
}

func TestParseAluInstruction(t *testing.T) {
	prog := parseOK(t, "section 0x1000:\nadd r3, r3, r5\n")
	sec := prog.Sections[0]
	if len(sec.Instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(sec.Instructions))
	}
	in := sec.Instructions[0]
	if in.Kind != insn.KindAlu || in.AluOp != encode.Add {
		t.Fatalf("got %+v", in)
	}
	if in.AluArgs[0].Reg != 3 || in.AluArgs[1].Reg != 3 || in.AluArgs[2].Reg != 5 {
		t.Fatalf("got args %+v", in.AluArgs)
	}
}

func TestParseLabelAndForwardReference(t *testing.T) {
	prog := parseOK(t, "section 0x1000:\nmov r1, loop\nloop:\nadd r0, r0, r0\n")
	sec := prog.Sections[0]
	if len(sec.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(sec.Instructions))
	}
	mov := sec.Instructions[0]
	if mov.Kind != insn.KindMov || !mov.MovArgs[1].Constant.IsLabel() {
		t.Fatalf("got %+v", mov)
	}
	lbl := sec.Instructions[1]
	if lbl.Kind != insn.KindLabel {
		t.Fatalf("got %+v, want a label", lbl)
	}
	if mov.MovArgs[1].Constant.Label != lbl.Label {
		t.Fatalf("forward reference %+v does not match definition %+v", mov.MovArgs[1].Constant.Label, lbl.Label)
	}
}

func TestParseLoadWithIndexedAddress(t *testing.T) {
	prog := parseOK(t, "section 0:\nld.b r1, [r2 + r3 << 2]\n")
	in := prog.Sections[0].Instructions[0]
	if in.Kind != insn.KindLoadStore || in.LSKind != insn.Load || in.LSSize != insn.Byte {
		t.Fatalf("got %+v", in)
	}
	if in.Addr.RegBase != 2 || in.Addr.RegIndex != 3 || in.Addr.Shift != 2 {
		t.Fatalf("got addr %+v", in.Addr)
	}
}

func TestParseStoreDefaultsToLowWDest(t *testing.T) {
	prog := parseOK(t, "section 0:\nst.h r4, [r5]\n")
	in := prog.Sections[0].Instructions[0]
	if in.LSDest != insn.LowW {
		t.Fatalf("got dest %v, want LowW", in.LSDest)
	}
}

func TestParseMovConditionSuffixSwapsForGE(t *testing.T) {
	prog := parseOK(t, "section 0:\nmov.ge r1, r2, r3, r4\n")
	in := prog.Sections[0].Instructions[0]
	if in.Condition != insn.CondGE || !in.SwapOperands {
		t.Fatalf("got %+v", in)
	}
}

func TestParseDataDirectives(t *testing.T) {
	prog := parseOK(t, "section 0:\n.byte 1, 2\n.qword 0xFF\n")
	sec := prog.Sections[0]
	if sec.Instructions[0].DataWidth != insn.Bytes || sec.Instructions[1].DataWidth != insn.Quadword {
		t.Fatalf("got %+v", sec.Instructions)
	}
}

func TestParseUnknownMnemonicReportsAndContinues(t *testing.T) {
	sink := diag.NewSink(&bytes.Buffer{}, "")
	src := "section 0:\nbogus r1, r2\nadd r0, r0, r0\n"
	prog, ok := parse.Parse(src, "t.s", sink)
	if ok || !sink.ErrorReported() {
		t.Fatalf("expected a reported error")
	}
	sec := prog.Sections[0]
	if len(sec.Instructions) != 2 {
		t.Fatalf("got %d instructions, want 2 (one undefined placeholder, one real)", len(sec.Instructions))
	}
	if sec.Instructions[0].Kind != insn.KindUndefined {
		t.Fatalf("got %+v, want KindUndefined placeholder", sec.Instructions[0])
	}
	if sec.Instructions[1].Kind != insn.KindAlu {
		t.Fatalf("parsing should continue past the bad line")
	}
}

func TestParseJumpGeneralCase(t *testing.T) {
	prog := parseOK(t, "section 0:\njmp r1, r2, r3\n")
	in := prog.Sections[0].Instructions[0]
	if in.Kind != insn.KindMov || !in.IsJmp || in.Condition != insn.CondAL {
		t.Fatalf("got %+v", in)
	}
	if len(in.MovArgs) != 3 {
		t.Fatalf("got %d mov args, want 3", len(in.MovArgs))
	}
}
