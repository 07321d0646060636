package postfix

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src. Any read error, including io.EOF, ends
// the input.
func (l *lexer) readRune() (rune, bool) {
	r, _, err := l.src.ReadRune()
	if err != nil {
		l.eof = true
		return 0, false
	}
	return r, true
}

// unreadRune unreads a rune from the src. Panics if unreading returns an
// error, which means the lexer read nothing since the last unread.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
}

// next scans the next token from the input. ok is false once the input is
// exhausted. Runes which are not part of a number, an operator, or a
// parenthesis are dropped without reporting anything.
func (l *lexer) next() (tok Token, ok bool) {
	for !l.eof {
		r, ok := l.readRune()
		if !ok {
			break
		}
		switch {
		case unicode.IsSpace(r):
			// Whitespace does not end a number: "1 000" is 1000.
			continue
		case '0' <= r && r <= '9', r == '.':
			l.buf.WriteRune(r)
			continue
		}
		if l.buf.Len() > 0 {
			// Any other rune ends the number. Read it again on the next
			// iteration, whether or not the number was valid.
			l.unreadRune()
			if tok, ok := l.flush(); ok {
				return tok, true
			}
			continue
		}
		if tok, ok := symbol(r); ok {
			return tok, true
		}
	}
	return l.flush()
}

// flush converts the pending digits into an operand. Runs which don't form a
// number, like "." or "1.2.3", are discarded.
func (l *lexer) flush() (Token, bool) {
	if l.buf.Len() == 0 {
		return Token{}, false
	}
	s := l.buf.String()
	l.buf.Reset()
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// v is already ±Inf or 0.
	default:
		return Token{}, false
	}
	return Num(v), true
}

// symbol returns the token for a single-rune operator or parenthesis.
func symbol(r rune) (Token, bool) {
	switch r {
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	}
	if r < utf8.RuneSelf && strings.IndexByte(Operators, byte(r)) >= 0 {
		return Op(byte(r)), true
	}
	return Token{}, false
}

// Tokenize scans src into infix tokens without reordering them. Whitespace and
// unrecognized characters are dropped.
func Tokenize(src string) Sequence {
	l := lex(strings.NewReader(src))
	var toks Sequence
	for tok, ok := l.next(); ok; tok, ok = l.next() {
		toks = append(toks, tok)
	}
	return toks
}
