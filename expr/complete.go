package expr

import "errors"

// ErrNotReducible means an immediate did not reduce to a concrete
// value by the time it was forced.
var ErrNotReducible = errors.New("expression did not reduce to a single value")

// ErrInvalidType means completely_evaluate was asked for an integer
// but got a label, or asked for a label but got an integer.
var ErrInvalidType = errors.New("expression reduced to the wrong kind for the requested result")

// Integer is the set of Go integer types completely_evaluate<T> can
// target. The result reinterprets the low sizeof(T) bytes of the
// stored 64-bit value as T: a Go numeric conversion from int64
// already does exactly this truncation, regardless of host
// endianness, since it operates on the value, not a byte-level memory
// reinterpretation.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// CompletelyEvaluateInt forces e to reduce fully to a Num and returns
// its value narrowed to T. If e is Undef, it returns T's zero value
// without requiring reduction. Otherwise a failure to reduce is
// ErrNotReducible, and reducing to a Label instead of a Num is
// ErrInvalidType.
func CompletelyEvaluateInt[T Integer](ev *Evaluator, e *Expr) (T, error) {
	if e.Kind == Undef {
		var zero T
		return zero, nil
	}
	if !ev.Evaluate(e) {
		var zero T
		return zero, ErrNotReducible
	}
	if e.Kind != Num {
		var zero T
		return zero, ErrInvalidType
	}
	return T(e.Num), nil
}

// CompletelyEvaluateLabel forces e to reduce fully to a Label and
// returns its reference. If e is Undef, it returns the zero LabelRef
// without requiring reduction.
func CompletelyEvaluateLabel(ev *Evaluator, e *Expr) (LabelRef, error) {
	if e.Kind == Undef {
		return LabelRef{}, nil
	}
	if !ev.Evaluate(e) {
		return LabelRef{}, ErrNotReducible
	}
	if e.Kind != Label {
		return LabelRef{}, ErrInvalidType
	}
	return e.Label, nil
}
