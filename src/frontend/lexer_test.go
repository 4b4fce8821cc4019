package frontend

import (
	"reflect"
	"testing"

	"pascalc/src/token"
)

// TestLex mirrors the teacher's lexer_test.go style: compare the full
// scanned token slice against a hand-built expectation, field by field.
func TestLex(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "comment is skipped",
			src:  "{a comment}var",
			want: []token.Token{
				{Kind: token.VAR, Text: "var", Line: 1, Col: 12},
			},
		},
		{
			name: "keywords are case-insensitive",
			src:  "Program VAR begin END",
			want: []token.Token{
				{Kind: token.PROGRAM, Text: "Program", Line: 1, Col: 1},
				{Kind: token.VAR, Text: "VAR", Line: 1, Col: 9},
				{Kind: token.BEGIN, Text: "begin", Line: 1, Col: 13},
				{Kind: token.END, Text: "END", Line: 1, Col: 19},
			},
		},
		{
			name: "identifier and integer",
			src:  "x1 42",
			want: []token.Token{
				{Kind: token.IDENTIFIER, Text: "x1", Line: 1, Col: 1},
				{Kind: token.INTEGER, Text: "42", Line: 1, Col: 4},
			},
		},
		{
			name: "char vs string literal",
			src:  "'x' 'hello'",
			want: []token.Token{
				{Kind: token.CHAR, Text: "'x'", Line: 1, Col: 1},
				{Kind: token.STRING, Text: "'hello'", Line: 1, Col: 5},
			},
		},
		{
			name: "compound operators",
			src:  ":= += -= *= <> <= >= ..",
			want: []token.Token{
				{Kind: token.ASSIGN, Text: ":=", Line: 1, Col: 1},
				{Kind: token.ADDASSIGN, Text: "+=", Line: 1, Col: 4},
				{Kind: token.SUBASSIGN, Text: "-=", Line: 1, Col: 7},
				{Kind: token.MULASSIGN, Text: "*=", Line: 1, Col: 10},
				{Kind: token.NEQ, Text: "<>", Line: 1, Col: 13},
				{Kind: token.LE, Text: "<=", Line: 1, Col: 16},
				{Kind: token.GE, Text: ">=", Line: 1, Col: 19},
				{Kind: token.DOTDOT, Text: "..", Line: 1, Col: 22},
			},
		},
		{
			name: "newline resets column and bumps line",
			src:  "var\nx",
			want: []token.Token{
				{Kind: token.VAR, Text: "var", Line: 1, Col: 1},
				{Kind: token.IDENTIFIER, Text: "x", Line: 2, Col: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := Lex(tt.src)
			if len(errs) != 0 {
				t.Fatalf("Lex(%q) returned errors: %v", tt.src, errs)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lex(%q) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, errs := Lex("'unterminated")
	if len(errs) == 0 {
		t.Fatal("expected an error for an unterminated quoted literal")
	}
}

func TestLexUnclosedComment(t *testing.T) {
	_, errs := Lex("{never closed")
	if len(errs) == 0 {
		t.Fatal("expected an error for an unclosed comment")
	}
}
