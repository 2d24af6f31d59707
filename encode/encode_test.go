package encode_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/mcpuasm/encode"
)

func TestFits(t *testing.T) {
	tests := []struct {
		v    int64
		n    uint
		want bool
	}{
		{7, 4, true},
		{-8, 4, true},
		{8, 4, false},
		{-9, 4, false},
		{0, 4, true},
		{1<<19 - 1, 20, true},
		{-(1 << 19), 20, true},
		{1 << 19, 20, false},
	}
	for _, tc := range tests {
		if got := encode.Fits(tc.v, tc.n); got != tc.want {
			t.Errorf("Fits(%d, %d) = %v, want %v", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestBuildAluOpcode(t *testing.T) {
	got := encode.BuildAluOpcode(encode.Add, encode.Reg)
	want := uint32(1<<6 | 0<<2 | 0b00)
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestBuildMovOpcode(t *testing.T) {
	got := encode.BuildMovOpcode(encode.Mro, encode.Al)
	want := uint32(0b01<<5 | 0b111<<2 | 0b11)
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestBuildLoadStoreOpcodeRejectsBareStore(t *testing.T) {
	_, err := encode.BuildLoadStoreOpcode(encode.Store, encode.Byte, encode.Zext, encode.Generic)
	if !errors.Is(err, encode.ErrInvalidCombination) {
		t.Fatalf("got %v, want ErrInvalidCombination", err)
	}
}

func TestBuildLoadStoreOpcodeAllowsWidenedStore(t *testing.T) {
	got, err := encode.BuildLoadStoreOpcode(encode.Store, encode.Halfword, encode.LowW, encode.Simple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(1<<4 | 1<<3 | 0b10<<1 | 1)
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestBuildShortInsnScenario(t *testing.T) {
	// add r3, r3, r5 -> SHORT, rs_and_rd=3, ro=5,
	// opcode = (1<<6)|(ADD<<2)|REG.
	opcode := encode.BuildAluOpcode(encode.Add, encode.Reg)
	word, err := encode.BuildShortInsn(3, 5, int64(opcode))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if word != 0x3540 {
		t.Fatalf("got %#04x, want 0x3540", word)
	}
}

func TestBuildShortInsnRegisterOutOfRange(t *testing.T) {
	_, err := encode.BuildShortInsn(16, 0, 0)
	if !errors.Is(err, encode.ErrOperandOutOfRange) {
		t.Fatalf("got %v, want ErrOperandOutOfRange", err)
	}
}

func TestBuildTinyInsnRejectsOversizedImmediate(t *testing.T) {
	_, err := encode.BuildTinyInsn(2, -9, 0)
	if !errors.Is(err, encode.ErrOperandOutOfRange) {
		t.Fatalf("got %v, want ErrOperandOutOfRange", err)
	}
}

func TestBuildMsmInsnUsesFourteenBitShift(t *testing.T) {
	word, err := encode.BuildMsmInsn(0xA, 0x123, 0b10, 0x5, 0x7F)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0xA)<<28 | uint32(0x123)<<14 | uint32(0b10)<<12 | uint32(0x5)<<8 | 1<<7 | uint32(0x7F)
	if word != want {
		t.Fatalf("got %#08x, want %#08x", word, want)
	}
	// the rd nibble must be untouched by the imm field.
	if word>>28 != 0xA {
		t.Fatalf("rd nibble corrupted: got %#x", word>>28)
	}
}

func TestBuildSmInsnAllFields(t *testing.T) {
	word, err := encode.BuildSmInsn(1, 2, 3, 4, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(1)<<28 | uint32(2)<<18 | uint32(3)<<16 | uint32(4)<<12 | uint32(5)<<8 | 1<<7 | uint32(6)
	if word != want {
		t.Fatalf("got %#08x, want %#08x", word, want)
	}
}
