package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

// registerNumber reports the register number named by text ("r0" ..
// "r15"), or false if text does not name a register at all.
func registerNumber(text string) (int, bool) {
	if len(text) < 2 || text[0] != 'r' {
		return 0, false
	}
	n, err := strconv.Atoi(text[1:])
	if err != nil || n < 0 || n > 15 {
		return 0, false
	}
	return n, true
}

// parseOperand parses one mov/jmp/ALU operand: a bare register, a
// register plus an offset expression, a register shifted by a constant
// distance, or a bare expression.
func parseOperand(s string, labels map[string]expr.LabelRef) (insn.Arg, error) {
	s = strings.TrimSpace(s)
	toks, err := newLexer(s).tokenize()
	if err != nil {
		return insn.Arg{}, err
	}

	if toks[0].kind == tokIdent {
		if reg, ok := registerNumber(toks[0].text); ok {
			switch {
			case toks[1].kind == tokEOF:
				return insn.NewRegister(reg), nil
			case toks[1].kind == tokPlus:
				rest, err := parseExpr(s[indexOfCol(s, toks[2].col):], labels)
				if err != nil {
					return insn.Arg{}, err
				}
				return insn.NewRegisterPlus(reg, rest), nil
			case toks[1].kind == tokLShift, toks[1].kind == tokRShift:
				if toks[2].kind != tokNum || toks[3].kind != tokEOF {
					return insn.Arg{}, fmt.Errorf("expected a shift distance constant in %q", s)
				}
				if toks[1].kind == tokLShift {
					return insn.NewRegisterLShift(reg, int(toks[2].num)), nil
				}
				return insn.NewRegisterRShift(reg, int(toks[2].num)), nil
			}
		}
	}

	e, err := parseExpr(s, labels)
	if err != nil {
		return insn.Arg{}, err
	}
	return insn.NewConstant(e), nil
}

// indexOfCol converts a 1-based token column back into a byte offset
// into s, so the remainder of an operand past a register+op prefix can
// be re-parsed as its own expression.
func indexOfCol(s string, col int) int {
	if col-1 > len(s) {
		return len(s)
	}
	return col - 1
}

// parseAddr parses the bracketed address expression of a load/store
// instruction: "[rBase]", "[rBase + rIndex << N]", "[rBase + CONST]"
// or "[CONST]".
func parseAddr(inner string, labels map[string]expr.LabelRef) (insn.Addr, error) {
	inner = strings.TrimSpace(inner)
	parts := splitTopLevelPlus(inner)

	if len(parts) == 1 {
		toks, err := newLexer(parts[0]).tokenize()
		if err != nil {
			return insn.Addr{}, err
		}
		if toks[0].kind == tokIdent {
			if reg, ok := registerNumber(toks[0].text); ok && toks[1].kind == tokEOF {
				return insn.Addr{RegBase: reg, Constant: expr.NewNum(0)}, nil
			}
		}
		e, err := parseExpr(parts[0], labels)
		if err != nil {
			return insn.Addr{}, err
		}
		return insn.Addr{Constant: e}, nil
	}

	if len(parts) != 2 {
		return insn.Addr{}, fmt.Errorf("malformed address expression %q", inner)
	}

	baseToks, err := newLexer(parts[0]).tokenize()
	if err != nil {
		return insn.Addr{}, err
	}
	base, ok := registerNumber(baseToks[0].text)
	if !ok || baseToks[0].kind != tokIdent || baseToks[1].kind != tokEOF {
		return insn.Addr{}, fmt.Errorf("expected a base register before '+' in %q", inner)
	}

	idxToks, err := newLexer(parts[1]).tokenize()
	if err != nil {
		return insn.Addr{}, err
	}
	if idxToks[0].kind == tokIdent {
		if idxReg, ok := registerNumber(idxToks[0].text); ok {
			switch idxToks[1].kind {
			case tokEOF:
				return insn.Addr{RegBase: base, RegIndex: idxReg, Constant: expr.NewNum(0)}, nil
			case tokLShift:
				if idxToks[2].kind != tokNum || idxToks[3].kind != tokEOF {
					return insn.Addr{}, fmt.Errorf("expected a shift distance constant in %q", inner)
				}
				return insn.Addr{
					RegBase: base, RegIndex: idxReg, Shift: int(idxToks[2].num),
					Constant: expr.NewNum(0),
				}, nil
			}
		}
	}

	e, err := parseExpr(parts[1], labels)
	if err != nil {
		return insn.Addr{}, err
	}
	return insn.Addr{RegBase: base, Constant: e}, nil
}

// splitTopLevelPlus splits s on the first top-level '+', matching the
// two-term address grammar this package accepts. Parenthesized
// sub-expressions are not split into.
func splitTopLevelPlus(s string) []string {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+':
			if depth == 0 {
				return []string{strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])}
			}
		}
	}
	return []string{strings.TrimSpace(s)}
}
