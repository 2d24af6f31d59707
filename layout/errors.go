// Package layout assigns concrete addresses to labels, selects the
// narrowest legal instruction encoding form per instruction, and
// checks that laid-out sections do not overlap.
package layout

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/mcpuasm/insn"
)

// ErrInvalidJump means a jump instruction's operand pattern matches
// none of the legal jump encoding rules.
var ErrInvalidJump = errors.New("invalid jump operand pattern")

// ErrInvalidMov means a mov instruction's operand pattern matches none
// of the legal mov encoding rules.
var ErrInvalidMov = errors.New("invalid mov operand pattern")

// ErrAddressTooLarge means a load/store constant address exceeds 32
// bits.
var ErrAddressTooLarge = errors.New("address constant exceeds 32 bits")

// ErrOverlappingSections means two sections' address ranges intersect.
var ErrOverlappingSections = errors.New("overlapping sections")

// errInvalidEncoding reports a Kind that reached form selection
// without being one of the four encodable kinds — an internal
// invariant violation in the caller, since Label and Undefined are
// filtered out before selectForm is ever called.
func errInvalidEncoding(k insn.Kind) error {
	return fmt.Errorf("invalid encoding: unexpected instruction kind %v reached form selection", k)
}
