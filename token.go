package postfix

import (
	"strconv"
	"strings"
)

// Token is a single unit of an expression: an operand, an operator, or a
// parenthesis. Tokens are plain values and can be compared with ==, except
// that an Operand holding NaN never equals itself.
type Token struct {
	// Kind is the variant of the token.
	Kind Kind
	// Value is the number held by an Operand.
	Value float64
	// Op is the symbol of an Operator, one of Operators.
	Op byte
	// Priority is the binding strength of an Operator. Higher binds tighter.
	Priority int
	// Side is the side of a Paren.
	Side Side
}

// Kind is the variant of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindOperand is a parsed numeric literal.
	KindOperand
	// KindOperator is one of the four arithmetic operators.
	KindOperator
	// KindParen is a parenthesis. Parens never appear in postfix output.
	KindParen
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=Kind -trimprefix=Kind

// Side is the side of a parenthesis.
type Side int8

const (
	Left Side = iota
	Right
)

// Operators contains the bytes which are considered to be operators.
const Operators = "+-*/"

// priority returns the binding strength of an operator symbol and whether the
// symbol is an operator at all.
func priority(op byte) (int, bool) {
	switch op {
	case '+', '-':
		return 0, true
	case '*', '/':
		return 1, true
	default:
		return 0, false
	}
}

// Num creates an operand token.
func Num(v float64) Token {
	return Token{Kind: KindOperand, Value: v}
}

// Op creates an operator token with the priority of sym. Symbols which are
// not in Operators get priority 0; evaluating them fails.
func Op(sym byte) Token {
	p, _ := priority(sym)
	return Token{Kind: KindOperator, Op: sym, Priority: p}
}

var (
	// LeftParen is the token for (.
	LeftParen = Token{Kind: KindParen, Side: Left}
	// RightParen is the token for ).
	RightParen = Token{Kind: KindParen, Side: Right}
)

func (t Token) String() string {
	switch t.Kind {
	case KindOperand:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case KindOperator:
		return string(t.Op)
	case KindParen:
		if t.Side == Left {
			return "("
		}
		return ")"
	default:
		return "<" + t.Kind.String() + ">"
	}
}

// Sequence is a list of tokens, usually in postfix order.
type Sequence []Token

// String formats the tokens separated by spaces, e.g. "3 6 * 9 +".
func (s Sequence) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
