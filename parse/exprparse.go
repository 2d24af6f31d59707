package parse

import (
	"fmt"

	"github.com/Urethramancer/mcpuasm/expr"
)

// exprParser is a small recursive-descent parser over a token slice,
// built fresh per expression rather than reused, the way a one-shot
// helper is cheaper to reason about than a stateful shared instance.
type exprParser struct {
	toks   []token
	pos    int
	labels map[string]expr.LabelRef
}

func newExprParser(src string, labels map[string]expr.LabelRef) (*exprParser, error) {
	toks, err := newLexer(src).tokenize()
	if err != nil {
		return nil, err
	}
	return &exprParser{toks: toks, labels: labels}, nil
}

func (p *exprParser) cur() token { return p.toks[p.pos] }

func (p *exprParser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseExpr parses a complete expression and requires the token stream
// to be exhausted afterward, so a stray trailing token is caught as an
// error rather than silently ignored.
func parseExpr(src string, labels map[string]expr.LabelRef) (*expr.Expr, error) {
	p, err := newExprParser(src, labels)
	if err != nil {
		return nil, err
	}
	e, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, fmt.Errorf("unexpected trailing token %q at column %d", p.cur().text, p.cur().col)
	}
	return e, nil
}

// parseShift handles << and >>, the lowest-precedence binary operators
// in this grammar, each strictly binary per the data model.
func (p *exprParser) parseShift() (*expr.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tokLShift:
			p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expr.NewLShift(left, right)
		case tokRShift:
			p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expr.NewRShift(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseAdditive() (*expr.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tokPlus:
			p.advance()
			right, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			left = expr.NewAdd(left, right)
		case tokMinus:
			p.advance()
			right, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			left = expr.NewSub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseMultiplicative() (*expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tokStar:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewMul(left, right)
		case tokSlash:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewDiv(left, right)
		case tokPercent:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewMod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (*expr.Expr, error) {
	if p.cur().kind == tokMinus {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.NewNeg(child), nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (*expr.Expr, error) {
	t := p.cur()
	switch t.kind {
	case tokNum:
		p.advance()
		return expr.NewNum(t.num), nil
	case tokIdent:
		p.advance()
		if t.text == "UNDEF" {
			return expr.NewUndef(), nil
		}
		ref, ok := p.labels[t.text]
		if !ok {
			return nil, fmt.Errorf("undeclared label %q at column %d", t.text, t.col)
		}
		return expr.NewLabel(ref), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		if p.cur().kind != tokRParen {
			return nil, fmt.Errorf("expected ')' at column %d", p.cur().col)
		}
		p.advance()
		return inner, nil
	default:
		return nil, fmt.Errorf("expected a number, label or '(' at column %d", t.col)
	}
}
