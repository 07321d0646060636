// Package postfix implements a small calculator for the four arithmetic
// operators.
//
// Transform scans an infix expression like "3 * (5 + 3)" and reorders it into
// postfix tokens using the shunting-yard algorithm. Evaluate reduces a postfix
// sequence to a single float64 with a value stack. Neither reports errors:
// mismatched parentheses give an empty sequence, and anything that cannot be
// evaluated gives NaN. Diagnose explains why an expression is NaN.
//
// Scanning is lenient. Whitespace is ignored everywhere, even inside numbers,
// and characters that are not digits, '.', operators, or parentheses are
// silently dropped, so "3 apples * 6" is 18.
package postfix
