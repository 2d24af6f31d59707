package encode

import (
	"errors"
	"fmt"
)

// ErrOperandOutOfRange means a register, FF, opcode, or immediate
// exceeded the bit width of the field it was packed into.
var ErrOperandOutOfRange = errors.New("operand out of range")

// ErrInvalidCombination means the opcode fields themselves form an
// illegal instruction, independent of any single field's range — e.g.
// a store with zero/sign extension, which the ISA has no encoding for.
var ErrInvalidCombination = errors.New("invalid combination of fields")

func outOfRange(field string, value, limit int64) error {
	return fmt.Errorf("%w: %s=%d exceeds limit %d", ErrOperandOutOfRange, field, value, limit)
}
