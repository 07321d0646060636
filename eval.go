package postfix

import "math"

// Evaluate reduces a postfix sequence to a single number. If the sequence is
// not a valid postfix expression, including when it is empty, the result is
// NaN. Division by zero is not special: 1/0 is +Inf and 0/0 is NaN.
func Evaluate(tokens []Token) float64 {
	r, _ := Eval(tokens)
	return r
}

// Eval is like Evaluate, but it also returns the reason a sequence failed to
// evaluate. When err is non-nil, the result is NaN.
func Eval(tokens []Token) (float64, error) {
	var s state = &inProgress{stack: make([]float64, 0, len(tokens)/2+1)}
	for _, t := range tokens {
		s = s.step(t)
	}
	return s.result()
}

// EvalString is a shortcut to transform and evaluate an infix expression.
func EvalString(src string) float64 {
	return Evaluate(Transform(src))
}

// Diagnose transforms and evaluates an infix expression and returns the
// reason it evaluates to NaN, or nil if it is valid.
func Diagnose(src string) error {
	seq, err := reorder(Tokenize(src))
	if err != nil {
		return err
	}
	_, err = Eval(seq)
	return err
}

// state is the state of an evaluation. Once an evaluation fails, it stays
// failed for the rest of the input.
type state interface {
	// step consumes the next token.
	step(t Token) state
	// result returns the final value of the evaluation.
	result() (float64, error)
}

// inProgress is an evaluation that has not failed.
type inProgress struct {
	stack []float64
}

// failed is an evaluation that has failed. It ignores all further tokens.
type failed struct {
	err error
}

func (s *inProgress) step(t Token) state {
	switch t.Kind {
	case KindOperand:
		s.push(t.Value)
		return s
	case KindOperator:
		if len(s.stack) < 2 {
			return failed{&OperandError{Operator: string(t.Op), Have: len(s.stack)}}
		}
		b := s.pop()
		a := s.pop()
		r, ok := apply(t.Op, a, b)
		if !ok {
			return failed{&OperatorError{Operator: string(t.Op)}}
		}
		s.push(r)
		return s
	default:
		return failed{&TokenError{Token: t}}
	}
}

func (s *inProgress) result() (float64, error) {
	switch len(s.stack) {
	case 0:
		return math.NaN(), &EmptyExpressionError{}
	case 1:
		return s.stack[0], nil
	default:
		return math.NaN(), &ResidueError{Len: len(s.stack)}
	}
}

func (s *inProgress) push(v float64) {
	s.stack = append(s.stack, v)
}

func (s *inProgress) pop() float64 {
	r := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return r
}

func (s failed) step(Token) state {
	return s
}

func (s failed) result() (float64, error) {
	return math.NaN(), s.err
}

// apply computes a op b. a is the left-hand operand in source order.
func apply(op byte, a, b float64) (float64, bool) {
	switch op {
	case '+':
		return a + b, true
	case '-':
		return a - b, true
	case '*':
		return a * b, true
	case '/':
		return a / b, true
	default:
		return math.NaN(), false
	}
}
