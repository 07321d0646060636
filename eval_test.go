package postfix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/postfix"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"parens", "3 * ( 5 + 3 + 5 ) * 6 ", 234},
		{"mul", "3 * 6 ", 18},
		{"mul-tight", "3*6 ", 18},
		{"chain", "3*6+9+1*2 ", 29},
		{"mul-wide", "3    *   6   ", 18},
		{"num", "42", 42},
		{"dec", "0.5 + .25", 0.75},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"div", "4/5/6", quo(quo(4, 5), 6)},
		{"div-order", "8/2", 4},
		{"sub-order", "2-8", -6},
		{"prec", "2+3*4", 14},
		{"grouped", "(2+3)*4", 20},
		{"nested", "((1+2)*(3-4))/5", -0.6},
		{"space-digits", "1 000 + 1", 1001},
		{"dropped", "3 apples * 6 pears", 18},
		{"div-zero", "1/0", math.Inf(1)},
		{"div-zero-neg", "(0-1)/0", math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r := postfix.EvalString(c.src); r != c.r {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalStringNaN(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"lead-op", "*3*6 "},
		{"trail-op", "3*6* "},
		{"word", "Hello"},
		{"unclosed", "(3+2"},
		{"stray", "3+2)"},
		{"op-only", "+"},
		{"empty-parens", "()"},
		{"no-op", "(3)(6)"},
		{"zero-by-zero", "0/0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r := postfix.EvalString(c.src); !math.IsNaN(r) {
				t.Errorf("evaluating %q: want NaN, got %g", c.src, r)
			}
		})
	}
}

func TestEvaluateTokens(t *testing.T) {
	cases := []struct {
		name   string
		tokens []postfix.Token
		r      float64
	}{
		{"single", []postfix.Token{postfix.Num(7)}, 7},
		{"add", []postfix.Token{postfix.Num(1), postfix.Num(2), postfix.Op('+')}, 3},
		{"sub", []postfix.Token{postfix.Num(10), postfix.Num(4), postfix.Op('-')}, 6},
		{"mul", []postfix.Token{postfix.Num(3), postfix.Num(4), postfix.Op('*')}, 12},
		{"div", []postfix.Token{postfix.Num(10), postfix.Num(4), postfix.Op('/')}, 2.5},
		{"deep", []postfix.Token{
			postfix.Num(1), postfix.Num(2), postfix.Num(3), postfix.Op('*'), postfix.Op('-'),
		}, -5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r := postfix.Evaluate(c.tokens); r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name   string
		tokens []postfix.Token
		target interface{}
	}{
		{"empty", nil, new(*postfix.EmptyExpressionError)},
		{"few", []postfix.Token{postfix.Num(1), postfix.Op('+')}, new(*postfix.OperandError)},
		{"none", []postfix.Token{postfix.Op('-')}, new(*postfix.OperandError)},
		{"unknown-op", []postfix.Token{postfix.Num(1), postfix.Num(2), postfix.Op('%')}, new(*postfix.OperatorError)},
		{"paren", []postfix.Token{postfix.Num(1), postfix.LeftParen}, new(*postfix.TokenError)},
		{"zero-token", []postfix.Token{{}}, new(*postfix.TokenError)},
		{"residue", []postfix.Token{postfix.Num(1), postfix.Num(2)}, new(*postfix.ResidueError)},
		// Failure is sticky: the tokens after the failure would otherwise
		// leave a single valid value.
		{"sticky", []postfix.Token{
			postfix.Op('+'), postfix.Num(1), postfix.Num(2), postfix.Op('+'),
		}, new(*postfix.OperandError)},
		{"sticky-unknown", []postfix.Token{
			postfix.Num(1), postfix.Num(2), postfix.Op('%'), postfix.Num(3),
		}, new(*postfix.OperatorError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := postfix.Eval(c.tokens)
			if !math.IsNaN(r) {
				t.Errorf("want NaN, got %g", r)
			}
			if err == nil {
				t.Fatal("no error")
			}
			if !errors.As(err, c.target) {
				t.Errorf("wrong error type %T: %v", err, err)
			}
			if r := postfix.Evaluate(c.tokens); !math.IsNaN(r) {
				t.Errorf("Evaluate gave %g, not NaN", r)
			}
		})
	}
}

func TestEvaluateRepeatable(t *testing.T) {
	seq := postfix.Transform("3 * ( 5 + 3 + 5 ) * 6")
	a := postfix.Evaluate(seq)
	b := postfix.Evaluate(seq)
	if a != b || a != 234 {
		t.Errorf("evaluations differ: %g, %g", a, b)
	}
	if got := seq.String(); got != "3 5 3 + 5 + * 6 *" {
		t.Errorf("evaluation modified the sequence: %q", got)
	}
}

// quo divides at run time, so that expected values round the same way the
// evaluator does rather than as exact constants.
func quo(a, b float64) float64 {
	return a / b
}
