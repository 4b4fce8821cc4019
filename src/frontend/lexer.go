// Package frontend is the external collaborator named in spec.md §1/§6: a
// lexer and a grammar-driven parser that turn Pascal-subset source text
// into the parse-tree shapes the AST builder consumes. Its exact grammar
// and diagnostics are not part of the compiler's observable core contract,
// only the parse-tree and error-list interfaces are.
package frontend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pascalc/src/token"
)

const eof = -1

// stateFunc is a lexer state, in the teacher's style: each state scans some
// input and returns the state to run next, or nil at end of input.
//
// Unlike the teacher's lexer, which runs each state on its own goroutine and
// emits tokens over a channel, this lexer runs synchronously and appends
// tokens to a slice directly — spec.md §5 forbids background work.
type stateFunc func(*lexer) stateFunc

// lexer scans Pascal-subset source text into a flat token slice.
type lexer struct {
	input       string
	start       int // start of the current token
	pos         int // current scan position
	width       int // width of the last rune read, for backup
	line        int
	startOnLine int // column of the current token's first rune
	tokens      []token.Token
	errs        []error
}

func newLexer(src string) *lexer {
	return &lexer{input: src, line: 1, startOnLine: 1}
}

// run drives the state machine to completion and returns the scanned tokens.
func (l *lexer) run() ([]token.Token, []error) {
	for state := lexGlobal; state != nil; {
		state = state(l)
	}
	return l.tokens, l.errs
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// ignore discards the pending token text and advances the token start and
// column tracking to the current scan position.
func (l *lexer) ignore() {
	l.startOnLine += l.pos - l.start
	l.start = l.pos
}

// emit appends a token of kind k spanning [start,pos) to the token slice.
func (l *lexer) emit(k token.Kind) {
	text := l.input[l.start:l.pos]
	l.tokens = append(l.tokens, token.Token{
		Kind: k,
		Text: text,
		Line: l.line,
		Col:  l.startOnLine,
	})
	l.startOnLine += l.pos - l.start
	l.start = l.pos
}

func (l *lexer) errorf(format string, args ...interface{}) stateFunc {
	l.errs = append(l.errs, fmt.Errorf(format, args...))
	return nil
}

func (l *lexer) newline() {
	l.line++
	l.startOnLine = 1
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f' || r == '\r'
}

// Lex tokenizes src in full and returns the token list together with any
// lexical errors (unexpected characters, unterminated quoted literals,
// unclosed comments). Scanning stops at the first such error.
func Lex(src string) ([]token.Token, []error) {
	l := newLexer(src)
	return l.run()
}

// DumpTokens writes the token stream in the format required by spec.md §6.
func DumpTokens(src string, out *strings.Builder) []error {
	toks, errs := Lex(src)
	for _, t := range toks {
		out.WriteString(t.String())
		out.WriteByte('\n')
	}
	return errs
}
