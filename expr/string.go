package expr

import "strconv"

// String renders e the way dbg.cpp's operator<< for parser::expr
// does: parenthesized infix for commutative/binary operators,
// "-(x)" for negation, "lSiI" for labels, "UNDEF" for the
// placeholder.
func (e *Expr) String() string {
	switch e.Kind {
	case Num:
		return strconv.FormatInt(e.Num, 10)
	case Label:
		return e.Label.String()
	case Undef:
		return "UNDEF"
	case Neg:
		return "-(" + e.Children[0].String() + ")"
	case Add:
		return joinInfix(e.Children, " + ")
	case Mul:
		return joinInfix(e.Children, " * ")
	case Div:
		return joinInfix(e.Children, " / ")
	case Mod:
		return joinInfix(e.Children, " % ")
	case Sub:
		return joinInfix(e.Children, " - ")
	case LShift:
		return joinInfix(e.Children, " << ")
	case RShift:
		return joinInfix(e.Children, " >> ")
	default:
		return "?" + e.Kind.String()
	}
}

func joinInfix(children []*Expr, sep string) string {
	s := "("
	for i, c := range children {
		if i > 0 {
			s += sep
		}
		s += c.String()
	}
	return s + ")"
}
