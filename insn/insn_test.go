package insn_test

import (
	"testing"

	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

func TestDataWidthLength(t *testing.T) {
	tests := []struct {
		w    insn.DataWidth
		want int
	}{
		{insn.Bytes, 2},
		{insn.Word, 2},
		{insn.Doubleword, 4},
		{insn.Quadword, 8},
	}
	for _, tc := range tests {
		if got := tc.w.Length(); got != tc.want {
			t.Errorf("%v.Length() = %d, want %d", tc.w, got, tc.want)
		}
	}
}

func TestConcreteLength(t *testing.T) {
	tests := []struct {
		name string
		c    insn.Concrete
		want int
	}{
		{"short", insn.Concrete{Kind: insn.ConcreteInsn, Subtype: encode.SHORT}, 2},
		{"tiny", insn.Concrete{Kind: insn.ConcreteInsn, Subtype: encode.TINY}, 2},
		{"long", insn.Concrete{Kind: insn.ConcreteInsn, Subtype: encode.LONG}, 4},
		{"sm", insn.Concrete{Kind: insn.ConcreteInsn, Subtype: encode.SM}, 4},
		{"data-word", insn.Concrete{Kind: insn.ConcreteData, Data: insn.RawData{Width: insn.Word}}, 2},
		{"data-quad", insn.Concrete{Kind: insn.ConcreteData, Data: insn.RawData{Width: insn.Quadword}}, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Length(); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLSectionLength(t *testing.T) {
	s := insn.LSection{
		Contents: []insn.Concrete{
			{Kind: insn.ConcreteInsn, Subtype: encode.SHORT},
			{Kind: insn.ConcreteInsn, Subtype: encode.BIG},
			{Kind: insn.ConcreteData, Data: insn.RawData{Width: insn.Bytes}},
		},
	}
	if got := s.Length(); got != 2+4+2 {
		t.Errorf("got %d, want %d", got, 8)
	}
}

func TestConditionToMovCondIdentityTable(t *testing.T) {
	tests := []struct {
		c    insn.Condition
		want encode.MovCond
	}{
		{insn.CondAL, encode.Al},
		{insn.CondLT, encode.Lt},
		{insn.CondSLT, encode.Slt},
		{insn.CondGE, encode.Ge},
		{insn.CondSGE, encode.Sge},
		{insn.CondEQ, encode.Eq},
		{insn.CondNE, encode.Neq},
		{insn.CondBS, encode.Bs},
	}
	for _, tc := range tests {
		if got := insn.ConditionToMovCond(tc.c); got != tc.want {
			t.Errorf("ConditionToMovCond(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestArgStringForms(t *testing.T) {
	tests := []struct {
		a    insn.Arg
		want string
	}{
		{insn.NewRegister(3), "r3"},
		{insn.NewRegisterPlus(1, expr.NewNum(4)), "r1 + 4"},
		{insn.NewRegisterLShift(2, 3), "r2 << 3"},
		{insn.NewRegisterRShift(5, 1), "r5 >> 1"},
		{insn.NewConstant(expr.NewNum(7)), "7"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestIsConstantZero(t *testing.T) {
	if !insn.NewConstant(expr.NewNum(0)).IsConstantZero() {
		t.Fatalf("expected constant 0 to report IsConstantZero")
	}
	if insn.NewConstant(expr.NewNum(1)).IsConstantZero() {
		t.Fatalf("constant 1 should not report IsConstantZero")
	}
	if insn.NewRegister(0).IsConstantZero() {
		t.Fatalf("a register argument is never IsConstantZero")
	}
}
