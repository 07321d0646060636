package postfix

// Transform converts an infix expression into postfix order. It never fails;
// if the parentheses in src are mismatched, the result is empty. Other
// malformed input, like a trailing operator, produces a sequence that fails to
// evaluate.
func Transform(src string) Sequence {
	out, err := reorder(Tokenize(src))
	if err != nil {
		return nil
	}
	return out
}

// reorder moves infix tokens into postfix order using the shunting-yard
// algorithm. All four operators are left-associative. The only error is a
// *BracketError, in which case the output is nil.
func reorder(in []Token) (Sequence, error) {
	var out Sequence
	var stack []Token
	for _, t := range in {
		switch t.Kind {
		case KindOperand:
			out = append(out, t)
		case KindOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == KindParen || t.Priority > top.Priority {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		case KindParen:
			if t.Side == Left {
				stack = append(stack, t)
				continue
			}
			for {
				if len(stack) == 0 {
					// Nothing after the stray bracket matters.
					return nil, &BracketError{Right: ")"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindParen {
					break
				}
				out = append(out, top)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindParen {
			return nil, &BracketError{Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}
