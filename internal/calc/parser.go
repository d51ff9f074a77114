package calc

import (
	"fmt"

	"bigint/bignum"
)

// Expr is a parsed expression node.
type Expr interface{ expr() }

// Literal is an integer literal carrying its parsed value.
type Literal struct {
	Tok   Token
	Value bignum.BigInt
}

// Unary is a prefix minus applied to an operand.
type Unary struct {
	Op Token
	X  Expr
}

// Binary is an infix operation over two operands.
type Binary struct {
	Op   Token
	X, Y Expr
}

func (*Literal) expr() {}
func (*Unary) expr()   {}
func (*Binary) expr()  {}

type parser struct {
	toks []Token
	idx  int
}

// ParseExpr parses a full expression and requires it to consume all input.
//
// Grammar, loosest binding first:
//
//	expr    = additive [ cmpOp additive ]
//	additive = term { ('+' | '-') term }
//	term    = unary { '*' unary }
//	unary   = '-' unary | primary
//	primary = IntLit | '(' expr ')'
func ParseExpr(src string) (Expr, error) {
	toks, err := ScanAll(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, fmt.Errorf("offset %d: unexpected %s after expression", tok.Start, tok.Kind)
	}
	return e, nil
}

func (p *parser) peek() Token { return p.toks[p.idx] }

func (p *parser) advance() Token {
	tok := p.toks[p.idx]
	if tok.Kind != EOF {
		p.idx++
	}
	return tok
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.peek().Kind.IsComparison() {
		return left, nil
	}
	op := p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	// Comparison does not chain: a second one is a parse error.
	if tok := p.peek(); tok.Kind.IsComparison() {
		return nil, fmt.Errorf("offset %d: chained comparison, parenthesize one side", tok.Start)
	}
	return &Binary{Op: op, X: left, Y: right}, nil
}

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != Plus && tok.Kind != Minus {
			return left, nil
		}
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == Star {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek().Kind == Minus {
		op := p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Kind {
	case IntLit:
		v, err := bignum.Parse(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", tok.Start, err)
		}
		return &Literal{Tok: tok, Value: v}, nil
	case LParen:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Kind != RParen {
			return nil, fmt.Errorf("offset %d: expected ')', found %s", closing.Start, closing.Kind)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("offset %d: expected integer, '-' or '(', found %s", tok.Start, tok.Kind)
	}
}
