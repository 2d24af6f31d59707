package expr

// Simplify repeatedly applies algebraic rewrites — evaluation, then
// flattening, then recursion into children — until a fixed point: no
// rewrite fires in an iteration.
func (ev *Evaluator) Simplify(e *Expr) {
	for ev.simplifyOnce(e) {
	}
}

func (ev *Evaluator) simplifyOnce(e *Expr) bool {
	ev.Evaluate(e)
	if ev.simplifyEliminate(e) {
		return true
	}
	if ev.simplifyFlatten(e) {
		return true
	}
	changed := false
	for _, c := range e.Children {
		if ev.simplifyOnce(c) {
			changed = true
		}
	}
	return changed
}

// simplifyEliminate is reserved for like-term elimination — it would
// let an offsetof-style macro collapse into a constant — and is
// currently a no-op.
func (ev *Evaluator) simplifyEliminate(e *Expr) bool {
	return false
}

// simplifyFlatten splices children of the same operator into e's
// child list for Add/Mul/Div/Mod, e.g. turning (a+b)+c into the
// 3-ary add{a, b, c}. If only one child remains, e is replaced by it.
func (ev *Evaluator) simplifyFlatten(e *Expr) bool {
	switch e.Kind {
	case Add, Mul, Div, Mod:
	default:
		return false
	}

	changed := false
	newChildren := make([]*Expr, 0, len(e.Children))
	for _, c := range e.Children {
		if c.Kind != e.Kind {
			newChildren = append(newChildren, c)
			continue
		}
		changed = true
		newChildren = append(newChildren, c.Children...)
	}
	e.Children = newChildren

	if len(e.Children) == 1 {
		*e = *e.Children[0]
	}
	return changed
}
