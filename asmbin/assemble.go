// Package asmbin packs a laid-out program into its final binary image,
// in either of two coexisting output shapes.
package asmbin

import (
	"bytes"

	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/encode"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
)

// OutputMode picks between the two binary image shapes the original
// source left coexisting with no stated preference (see DESIGN.md).
type OutputMode int

const (
	// Flat emits sections in address order with zero-padded gaps and
	// no header.
	Flat OutputMode = iota
	// Sectioned emits, per section, a little-endian
	// [base_address: u32][length: u32] header followed by the
	// payload, with no inter-section padding.
	Sectioned
)

// Assemble packs sections into a binary image according to mode,
// forcing every immediate through ev and reporting any that fail to
// reduce against that instruction's source position. Assembly
// continues past such a failure; the caller should check
// sink.ErrorReported() afterward.
func Assemble(ev *expr.Evaluator, sections []insn.LSection, sink *diag.Sink, mode OutputMode) []byte {
	switch mode {
	case Sectioned:
		return assembleSectioned(ev, sections, sink)
	default:
		return assembleFlat(ev, sections, sink)
	}
}

func assembleFlat(ev *expr.Evaluator, sections []insn.LSection, sink *diag.Sink) []byte {
	var out bytes.Buffer
	addr := uint32(0)
	for i := range sections {
		s := &sections[i]
		if s.BaseAddress > addr {
			out.Write(make([]byte, s.BaseAddress-addr))
			addr = s.BaseAddress
		}
		encodeContent(ev, s, sink, &out)
		addr += uint32(s.Length())
	}
	return out.Bytes()
}

func assembleSectioned(ev *expr.Evaluator, sections []insn.LSection, sink *diag.Sink) []byte {
	var out bytes.Buffer
	for i := range sections {
		s := &sections[i]
		putLE(&out, uint64(s.BaseAddress), 4)
		putLE(&out, uint64(s.Length()), 4)
		encodeContent(ev, s, sink, &out)
	}
	return out.Bytes()
}

func encodeContent(ev *expr.Evaluator, s *insn.LSection, sink *diag.Sink, out *bytes.Buffer) {
	for i := range s.Contents {
		c := &s.Contents[i]
		if c.Kind == insn.ConcreteData {
			encodeData(ev, c, sink, out)
			continue
		}
		encodeInsn(ev, c, sink, out)
	}
}

func encodeData(ev *expr.Evaluator, c *insn.Concrete, sink *diag.Sink, out *bytes.Buffer) {
	switch c.Data.Width {
	case insn.Bytes:
		low, err := expr.CompletelyEvaluateInt[uint8](ev, c.Data.Low)
		if err != nil {
			sink.Report(c.Pos, err)
			return
		}
		high, err := expr.CompletelyEvaluateInt[uint8](ev, c.Data.High)
		if err != nil {
			sink.Report(c.Pos, err)
			return
		}
		out.WriteByte(low)
		out.WriteByte(high)
	case insn.Word:
		v, err := expr.CompletelyEvaluateInt[uint16](ev, c.Data.Low)
		if err != nil {
			sink.Report(c.Pos, err)
			return
		}
		putLE(out, uint64(v), 2)
	case insn.Doubleword:
		v, err := expr.CompletelyEvaluateInt[uint32](ev, c.Data.Low)
		if err != nil {
			sink.Report(c.Pos, err)
			return
		}
		putLE(out, uint64(v), 4)
	case insn.Quadword:
		v, err := expr.CompletelyEvaluateInt[uint64](ev, c.Data.Low)
		if err != nil {
			sink.Report(c.Pos, err)
			return
		}
		putLE(out, v, 8)
	}
}

func encodeInsn(ev *expr.Evaluator, c *insn.Concrete, sink *diag.Sink, out *bytes.Buffer) {
	imm, immErr := immOf(ev, c.Imm)
	if immErr != nil {
		sink.Report(c.Pos, immErr)
		return
	}

	var word uint32
	var err error
	switch c.Subtype {
	case encode.SHORT:
		var w uint16
		w, err = encode.BuildShortInsn(int64(c.Rd), int64(c.Ro), int64(c.Opcode))
		word = uint32(w)
	case encode.TINY:
		var w uint16
		w, err = encode.BuildTinyInsn(int64(c.Rd), imm, int64(c.Opcode))
		word = uint32(w)
	case encode.LONG:
		word, err = encode.BuildLongInsn(int64(c.Rd), imm, int64(c.Rs), int64(c.Ro), int64(c.Opcode))
	case encode.BIG:
		word, err = encode.BuildBigInsn(int64(c.Rd), imm, int64(c.Opcode))
	case encode.MED:
		word, err = encode.BuildMedInsn(int64(c.Rd), imm, int64(c.Ro), int64(c.Opcode))
	case encode.MSM:
		word, err = encode.BuildMsmInsn(int64(c.Rd), imm, int64(c.FF), int64(c.Ro), int64(c.Opcode))
	case encode.SM:
		word, err = encode.BuildSmInsn(int64(c.Rd), imm, int64(c.FF), int64(c.Rs), int64(c.Ro), int64(c.Opcode))
	}
	if err != nil {
		sink.Report(c.Pos, err)
		return
	}

	if c.Subtype.Length() == 2 {
		putLE(out, uint64(word), 2)
	} else {
		putLE(out, uint64(word), 4)
	}
}

// immOf forces e through completely_evaluate<uint32_t>, matching the
// original's exclusive use of that width for every immediate
// regardless of the field it ultimately packs into, then sign-extends
// the truncated 32-bit pattern back to int64 so Fits and the mask
// arithmetic in the build_*_insn functions see the same two's
// complement value the original's 32-bit fits() would have. If e is
// nil (no immediate carried by this subtype), it reports zero with no
// error.
func immOf(ev *expr.Evaluator, e *expr.Expr) (int64, error) {
	if e == nil {
		return 0, nil
	}
	v, err := expr.CompletelyEvaluateInt[uint32](ev, e)
	if err != nil {
		return 0, err
	}
	return int64(int32(v)), nil
}

// putLE appends the low n bytes of v to out, least-significant byte
// first.
func putLE(out *bytes.Buffer, v uint64, n int) {
	for i := 0; i < n; i++ {
		out.WriteByte(byte(v >> (8 * uint(i))))
	}
}
