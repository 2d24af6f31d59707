package parse

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

// Parse turns source into a ParsedProgram, reporting line-positioned
// errors to sink as it goes. It keeps scanning past a bad line so a
// file with several mistakes reports all of them in one pass, the way
// the driver's phase loop expects every phase to behave (see
// diag.Sink). Parse returns ok=false if any line failed.
func Parse(source, filename string, sink *diag.Sink) (*insn.ParsedProgram, bool) {
	lines := strings.Split(source, "\n")
	labels := scanLabels(lines)

	prog := &insn.ParsedProgram{}
	ok := true
	var cur *insn.PSection

	for i, raw := range lines {
		lineNo := i + 1
		text := stripComment(raw)
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		col := len(raw) - len(strings.TrimLeft(raw, " \t")) + 1
		pos := diag.Pos{File: filename, Line: lineNo, ColStart: col, ColEnd: col + len(trimmed) - 1}

		switch {
		case strings.HasPrefix(trimmed, "section"):
			sec, err := parseSectionHeader(trimmed, labels, pos)
			if err != nil {
				sink.Report(pos, err)
				ok = false
				continue
			}
			if cur != nil {
				prog.Sections = append(prog.Sections, *cur)
			}
			sec.Index = len(prog.Sections)
			cur = &sec

		case isLabelDef(trimmed):
			if cur == nil {
				sink.Report(pos, fmt.Errorf("label outside of any section"))
				ok = false
				continue
			}
			name := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
			cur.Instructions = append(cur.Instructions, insn.Insn{
				Kind: insn.KindLabel, Pos: pos, Label: labels[name],
			})

		default:
			if cur == nil {
				sink.Report(pos, fmt.Errorf("instruction outside of any section"))
				ok = false
				continue
			}
			in, err := parseInstruction(trimmed, labels, pos)
			if err != nil {
				sink.Report(pos, err)
				ok = false
				cur.Instructions = append(cur.Instructions, insn.Insn{Kind: insn.KindUndefined, Pos: pos})
				continue
			}
			cur.Instructions = append(cur.Instructions, in)
		}
	}
	if cur != nil {
		prog.Sections = append(prog.Sections, *cur)
	}
	return prog, ok
}

// stripComment removes everything from the first ';' onward; quoting
// is not recognized.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// isLabelDef reports whether trimmed is a bare "name:" label
// definition rather than an instruction that happens to use a colon
// elsewhere (addressing never uses a bare colon, so a trailing colon
// with no other colon in the line is unambiguous).
func isLabelDef(trimmed string) bool {
	if !strings.HasSuffix(trimmed, ":") {
		return false
	}
	name := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
	if name == "" || strings.HasPrefix(name, "section") {
		return false
	}
	return !strings.ContainsAny(name, " \t,[]()")
}

// scanLabels runs a label-only pre-pass over every line, in section
// order, assigning each label name the next ordinal within its
// section the first time it's defined. This lets expressions that
// reference a label before its definition resolve during the main
// pass, since the symbol table is already complete.
func scanLabels(lines []string) map[string]expr.LabelRef {
	labels := map[string]expr.LabelRef{}
	section := -1
	next := 0
	for _, raw := range lines {
		trimmed := strings.TrimSpace(stripComment(raw))
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "section") {
			section++
			next = 0
			continue
		}
		if isLabelDef(trimmed) {
			name := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
			if _, exists := labels[name]; !exists {
				labels[name] = expr.LabelRef{Section: section, Index: next}
				next++
			}
		}
	}
	return labels
}

func parseSectionHeader(trimmed string, labels map[string]expr.LabelRef, pos diag.Pos) (insn.PSection, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "section"))
	if !strings.HasSuffix(rest, ":") {
		return insn.PSection{}, fmt.Errorf("expected ':' terminating section header")
	}
	rest = strings.TrimSpace(strings.TrimSuffix(rest, ":"))
	addr, err := parseExpr(rest, labels)
	if err != nil {
		return insn.PSection{}, fmt.Errorf("invalid section start address: %w", err)
	}
	return insn.PSection{Pos: pos, StartingAddress: addr}, nil
}

// splitMnemonic returns the first whitespace-delimited field of
// trimmed and the remainder, mirroring the teacher's mnemonic/operand
// split on the first run of whitespace.
func splitMnemonic(trimmed string) (string, string) {
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], strings.TrimSpace(trimmed[i+1:])
}

func parseInstruction(trimmed string, labels map[string]expr.LabelRef, pos diag.Pos) (insn.Insn, error) {
	mnem, rest := splitMnemonic(trimmed)
	lower := strings.ToLower(mnem)

	switch {
	case strings.HasPrefix(lower, ".byte"):
		return parseData(insn.Bytes, rest, labels, pos, true)
	case strings.HasPrefix(lower, ".word"):
		return parseData(insn.Word, rest, labels, pos, false)
	case strings.HasPrefix(lower, ".dword"):
		return parseData(insn.Doubleword, rest, labels, pos, false)
	case strings.HasPrefix(lower, ".qword"):
		return parseData(insn.Quadword, rest, labels, pos, false)
	case strings.HasPrefix(lower, "ld.") || strings.HasPrefix(lower, "st."):
		return parseLoadStore(lower, rest, labels, pos)
	case isAluMnemonic(lower):
		return parseAlu(lower, rest, labels, pos)
	case lower == "mov" || strings.HasPrefix(lower, "mov."):
		return parseMovOrJump(lower, rest, labels, pos, false)
	case lower == "jmp" || strings.HasPrefix(lower, "jmp."):
		return parseMovOrJump(lower, rest, labels, pos, true)
	default:
		return insn.Insn{}, fmt.Errorf("unrecognized mnemonic %q", mnem)
	}
}

func parseData(w insn.DataWidth, rest string, labels map[string]expr.LabelRef, pos diag.Pos, pair bool) (insn.Insn, error) {
	parts := splitTopLevel(rest)
	in := insn.Insn{Kind: insn.KindData, Pos: pos, DataWidth: w}
	if pair {
		if len(parts) != 2 {
			return insn.Insn{}, fmt.Errorf(".byte takes exactly two operands, got %d", len(parts))
		}
		low, err := parseExpr(parts[0], labels)
		if err != nil {
			return insn.Insn{}, err
		}
		high, err := parseExpr(parts[1], labels)
		if err != nil {
			return insn.Insn{}, err
		}
		in.DataLow, in.DataHigh = low, high
		return in, nil
	}
	if len(parts) != 1 {
		return insn.Insn{}, fmt.Errorf("expected exactly one operand, got %d", len(parts))
	}
	low, err := parseExpr(parts[0], labels)
	if err != nil {
		return insn.Insn{}, err
	}
	in.DataLow = low
	return in, nil
}

var aluMnemonics = map[string]encode.AluOp{
	"add": encode.Add, "sub": encode.Sub, "sl": encode.Sl, "sr": encode.Sr,
	"lsl": encode.Lsl, "lsr": encode.Lsr, "or": encode.Or, "eor": encode.Eor,
	"and": encode.And, "nor": encode.Nor, "enor": encode.Enor, "nand": encode.Nand,
}

func isAluMnemonic(lower string) bool {
	_, ok := aluMnemonics[lower]
	return ok
}

func parseAlu(lower string, rest string, labels map[string]expr.LabelRef, pos diag.Pos) (insn.Insn, error) {
	parts := splitTopLevel(rest)
	if len(parts) != 3 {
		return insn.Insn{}, fmt.Errorf("%s takes exactly three operands, got %d", lower, len(parts))
	}
	var args [3]insn.Arg
	for i, p := range parts {
		a, err := parseOperand(p, labels)
		if err != nil {
			return insn.Insn{}, err
		}
		args[i] = a
	}
	return insn.Insn{Kind: insn.KindAlu, Pos: pos, AluOp: aluMnemonics[lower], AluArgs: args}, nil
}

// parseLoadStore accepts "ld.b", "ld.h", "st.b", "st.h" with an
// optional third dotted suffix (.z, .s, .l, .h) selecting
// LoadStoreDest. Defaults: zero-extend for a load, the low word for a
// store (a store requires LOWW set; see encode.LoadStoreDest).
func parseLoadStore(lower, rest string, labels map[string]expr.LabelRef, pos diag.Pos) (insn.Insn, error) {
	fields := strings.Split(lower, ".")
	if len(fields) < 2 {
		return insn.Insn{}, fmt.Errorf("malformed load/store mnemonic %q", lower)
	}
	var kind insn.LoadStoreKind
	switch fields[0] {
	case "ld":
		kind = insn.Load
	case "st":
		kind = insn.Store
	}
	var size insn.LoadStoreSize
	switch fields[1] {
	case "b":
		size = insn.Byte
	case "h":
		size = insn.Halfword
	default:
		return insn.Insn{}, fmt.Errorf("unknown load/store size %q", fields[1])
	}
	dest := insn.Zext
	if kind == insn.Store {
		dest = insn.LowW
	}
	if len(fields) >= 3 {
		switch fields[2] {
		case "z":
			dest = insn.Zext
		case "s":
			dest = insn.Sext
		case "l":
			dest = insn.LowW
		case "h":
			dest = insn.HighW
		default:
			return insn.Insn{}, fmt.Errorf("unknown load/store dest suffix %q", fields[2])
		}
	}

	parts := splitTopLevel(rest)
	if len(parts) != 2 {
		return insn.Insn{}, fmt.Errorf("expected 'reg, [addr]', got %q", rest)
	}
	regArg, err := parseOperand(parts[0], labels)
	if err != nil {
		return insn.Insn{}, err
	}
	if regArg.Kind != insn.ArgRegister {
		return insn.Insn{}, fmt.Errorf("expected a register, got %q", parts[0])
	}
	bracket := strings.TrimSpace(parts[1])
	if !strings.HasPrefix(bracket, "[") || !strings.HasSuffix(bracket, "]") {
		return insn.Insn{}, fmt.Errorf("expected a bracketed address, got %q", parts[1])
	}
	addr, err := parseAddr(bracket[1:len(bracket)-1], labels)
	if err != nil {
		return insn.Insn{}, err
	}

	return insn.Insn{
		Kind: insn.KindLoadStore, Pos: pos,
		LSKind: kind, LSSize: size, LSDest: dest,
		DestArg: regArg, Addr: addr,
	}, nil
}

var condSuffixes = map[string]insn.Condition{
	"lt": insn.CondLT, "slt": insn.CondSLT, "ge": insn.CondGE, "sge": insn.CondSGE,
	"eq": insn.CondEQ, "ne": insn.CondNE, "bs": insn.CondBS, "al": insn.CondAL,
}

// swapsOperands is a parser-level policy decision: conditions that
// test a negated sense of a base comparison (GE/SGE against LT/SLT,
// NE against EQ) swap their last two operands so the same comparator
// hardware path serves both senses. See DESIGN.md for the reasoning
// behind this choice.
func swapsOperands(c insn.Condition) bool {
	switch c {
	case insn.CondGE, insn.CondSGE, insn.CondNE:
		return true
	default:
		return false
	}
}

func parseMovOrJump(lower, rest string, labels map[string]expr.LabelRef, pos diag.Pos, isJmp bool) (insn.Insn, error) {
	cond := insn.CondAL
	if i := strings.IndexByte(lower, '.'); i >= 0 {
		suffix := lower[i+1:]
		c, ok := condSuffixes[suffix]
		if !ok {
			return insn.Insn{}, fmt.Errorf("unknown condition suffix %q", suffix)
		}
		cond = c
	}

	parts := splitTopLevel(rest)
	if len(parts) < 1 {
		return insn.Insn{}, fmt.Errorf("expected at least one operand")
	}
	args := make([]insn.Arg, len(parts))
	for i, p := range parts {
		a, err := parseOperand(p, labels)
		if err != nil {
			return insn.Insn{}, err
		}
		args[i] = a
	}

	return insn.Insn{
		Kind: insn.KindMov, Pos: pos,
		IsJmp: isJmp, Condition: cond, SwapOperands: swapsOperands(cond),
		MovArgs: args,
	}, nil
}
