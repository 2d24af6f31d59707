package insn

import (
	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/expr"
)

// PSection is a parsed, not-yet-laid-out section: a starting address
// expression (often a plain Num, but expressions are accepted so a
// section can start at a label-relative address) and the sequence of
// instructions the parser produced for it. Pos is the position of the
// section header itself, used only to attribute a failure to evaluate
// StartingAddress.
type PSection struct {
	Index           int
	Pos             diag.Pos
	StartingAddress *expr.Expr
	Instructions    []Insn
}

// LSection is a laid-out section: a resolved base address and the
// concrete instructions/data the layout engine emitted for it.
type LSection struct {
	Index       int
	BaseAddress uint32
	Contents    []Concrete
}

// Length returns the total byte length of the section's contents.
func (s *LSection) Length() int {
	n := 0
	for i := range s.Contents {
		n += s.Contents[i].Length()
	}
	return n
}

// ParsedProgram is the parser's complete output: an ordered list of
// sections, consumed in order by the layout engine.
type ParsedProgram struct {
	Sections []PSection
}
