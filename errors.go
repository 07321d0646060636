package postfix

import "strconv"

// BracketError is an error indicating mismatched parentheses in the input.
// Exactly one of Left and Right is set.
type BracketError struct {
	// Left is the open bracket that was never closed.
	Left string
	// Right is the close bracket that had no open bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return "close bracket " + err.Right + " with no open bracket"
	}
	return "open bracket " + err.Left + " with no close bracket"
}

// OperandError is an error indicating an operator without enough operands,
// e.g. "3*6*".
type OperandError struct {
	// Operator is the operator that was evaluated.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return "operator " + err.Operator + " needs 2 operands, have " + strconv.Itoa(err.Have)
}

// OperatorError is an error indicating an operator symbol that the evaluator
// does not understand.
type OperatorError struct {
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Operator)
}

// TokenError is an error indicating a token that cannot appear in a postfix
// sequence, like a parenthesis.
type TokenError struct {
	Token Token
}

func (err *TokenError) Error() string {
	return "unexpected " + err.Token.Kind.String() + " token " + strconv.Quote(err.Token.String())
}

// EmptyExpressionError is an error indicating that there was nothing to
// evaluate.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

// ResidueError is an error indicating values left over after evaluating, as
// in "3 6" where an operator is missing.
type ResidueError struct {
	// Len is the number of values left on the stack.
	Len int
}

func (err *ResidueError) Error() string {
	return "expression leaves " + strconv.Itoa(err.Len) + " values"
}

var (
	_ error = (*BracketError)(nil)
	_ error = (*OperandError)(nil)
	_ error = (*OperatorError)(nil)
	_ error = (*TokenError)(nil)
	_ error = (*EmptyExpressionError)(nil)
	_ error = (*ResidueError)(nil)
)
