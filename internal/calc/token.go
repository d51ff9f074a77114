// Package calc tokenizes, parses and evaluates calculator expressions over
// arbitrary-precision integers: decimal literals, + - * with the usual
// precedence, unary minus, parentheses, and a single comparison
// (== != < <= > >=) per expression.
package calc

// Kind identifies a token.
type Kind uint8

const (
	EOF Kind = iota
	IntLit
	Plus
	Minus
	Star
	LParen
	RParen
	EqEq
	BangEq
	Lt
	LtEq
	Gt
	GtEq
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case IntLit:
		return "integer literal"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case EqEq:
		return "'=='"
	case BangEq:
		return "'!='"
	case Lt:
		return "'<'"
	case LtEq:
		return "'<='"
	case Gt:
		return "'>'"
	case GtEq:
		return "'>='"
	default:
		return "unknown token"
	}
}

// IsComparison reports whether the kind is one of the six comparison
// operators.
func (k Kind) IsComparison() bool {
	switch k {
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// Token is a single lexeme with its byte span in the source expression.
type Token struct {
	Kind  Kind
	Start uint32
	End   uint32
	Text  string
}
