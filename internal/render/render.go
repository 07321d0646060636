// Package render formats evaluation results for display.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

// NaN is how an expression that cannot be evaluated is displayed.
const NaN = "NaN"

// StripMarkup returns the text content of src with tags and comments removed
// and character references decoded.
func StripMarkup(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// Reading from a string only ends at io.EOF.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Result formats v with a fmt verb like "%g". NaN is always written as NaN
// regardless of the verb.
func Result(v float64, verb string) string {
	if math.IsNaN(v) {
		return NaN
	}
	return fmt.Sprintf(verb, v)
}

// Line formats an expression together with its result, e.g. "3 * 6 = 18".
func Line(expr string, v float64, verb string) string {
	return strings.TrimSpace(expr) + " = " + Result(v, verb)
}

// HTML is like Line, but escaped for inclusion in HTML text.
func HTML(expr string, v float64, verb string) string {
	return html.EscapeString(Line(expr, v, verb))
}

// Row is an expression and its formatted result.
type Row struct {
	Expr   string
	Result string
}

// Align formats rows as "expr = result" lines with the = signs lined up.
// Widths are measured in terminal cells, so wide runes in expressions don't
// break the alignment.
func Align(rows []Row) []string {
	w := 0
	for _, r := range rows {
		w = max(w, runewidth.StringWidth(strings.TrimSpace(r.Expr)))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = runewidth.FillRight(strings.TrimSpace(r.Expr), w) + " = " + r.Result
	}
	return lines
}
