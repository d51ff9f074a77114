package calc

import (
	"fmt"

	"fortio.org/safecast"
)

// scanner walks the expression byte by byte and produces tokens.
type scanner struct {
	src string
	pos int
}

// ScanAll tokenizes the whole expression, appending a final EOF token.
func ScanAll(src string) ([]Token, error) {
	sc := scanner{src: src}
	var toks []Token
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (sc *scanner) next() (Token, error) {
	for sc.pos < len(sc.src) && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
	start := sc.pos
	if sc.pos >= len(sc.src) {
		return sc.token(EOF, start, start)
	}

	ch := sc.src[sc.pos]
	switch {
	case ch >= '0' && ch <= '9':
		for sc.pos < len(sc.src) && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
			sc.pos++
		}
		return sc.token(IntLit, start, sc.pos)
	case ch == '+':
		sc.pos++
		return sc.token(Plus, start, sc.pos)
	case ch == '-':
		sc.pos++
		return sc.token(Minus, start, sc.pos)
	case ch == '*':
		sc.pos++
		return sc.token(Star, start, sc.pos)
	case ch == '(':
		sc.pos++
		return sc.token(LParen, start, sc.pos)
	case ch == ')':
		sc.pos++
		return sc.token(RParen, start, sc.pos)
	case ch == '=':
		if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '=' {
			sc.pos += 2
			return sc.token(EqEq, start, sc.pos)
		}
		return Token{}, fmt.Errorf("offset %d: single '=' (did you mean '==')", start)
	case ch == '!':
		if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '=' {
			sc.pos += 2
			return sc.token(BangEq, start, sc.pos)
		}
		return Token{}, fmt.Errorf("offset %d: single '!' (did you mean '!=')", start)
	case ch == '<':
		if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '=' {
			sc.pos += 2
			return sc.token(LtEq, start, sc.pos)
		}
		sc.pos++
		return sc.token(Lt, start, sc.pos)
	case ch == '>':
		if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '=' {
			sc.pos += 2
			return sc.token(GtEq, start, sc.pos)
		}
		sc.pos++
		return sc.token(Gt, start, sc.pos)
	default:
		return Token{}, fmt.Errorf("offset %d: unexpected character %q", start, rune(ch))
	}
}

func (sc *scanner) token(kind Kind, start, end int) (Token, error) {
	s32, err := safecast.Conv[uint32](start)
	if err != nil {
		return Token{}, fmt.Errorf("expression too long: %w", err)
	}
	e32, err := safecast.Conv[uint32](end)
	if err != nil {
		return Token{}, fmt.Errorf("expression too long: %w", err)
	}
	return Token{Kind: kind, Start: s32, End: e32, Text: sc.src[start:end]}, nil
}
