package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
)

type kindsCase struct {
	name   string
	input  string
	kinds  []token.Kind
	hasErr bool
}

func TestScanTokens_Kinds(t *testing.T) {
	tests := []kindsCase{
		{
			name:  "arithmetic",
			input: "1 + 2 * 3",
			kinds: []token.Kind{token.Number, token.Plus, token.Number, token.Star, token.Number, token.EOF},
		},
		{
			name:  "punctuation and operators",
			input: "(){};,.<=>=!=== ! =",
			kinds: []token.Kind{
				token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
				token.Semicolon, token.Comma, token.Dot,
				token.LessEqual, token.GreaterEqual, token.BangEqual, token.EqualEqual,
				token.Bang, token.Equal, token.EOF,
			},
		},
		{
			name:  "keywords vs identifiers",
			input: "var x = fun y and orion or nil",
			kinds: []token.Kind{
				token.Var, token.Identifier, token.Equal, token.Fun, token.Identifier,
				token.And, token.Identifier, token.Or, token.Nil, token.EOF,
			},
		},
		{
			name:  "line comment elided",
			input: "1 // a comment\n2",
			kinds: []token.Kind{token.Number, token.Number, token.EOF},
		},
		{
			name:  "dot requires trailing digit to join number",
			input: "123.",
			kinds: []token.Kind{token.Number, token.Dot, token.EOF},
		},
		{
			name:   "unexpected character reports and continues",
			input:  "1 @ 2",
			kinds:  []token.Kind{token.Number, token.Number, token.EOF},
			hasErr: true,
		},
		{
			name:   "unterminated string reports",
			input:  `"abc`,
			kinds:  []token.Kind{token.EOF},
			hasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := diagnostics.New(&buf)
			toks := New(tt.input, sink).ScanTokens()

			got := make([]token.Kind, len(toks))
			for i, tok := range toks {
				got[i] = tok.Kind
			}
			assert.Equal(t, tt.kinds, got)
			assert.Equal(t, tt.hasErr, sink.HadError())
		})
	}
}

func TestScanTokens_LexemeRoundTrip(t *testing.T) {
	src := "var greeting = \"hi\" + \" there\";\nprint greeting;"
	var buf bytes.Buffer
	toks := New(src, diagnostics.New(&buf)).ScanTokens()

	var rebuilt string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		rebuilt += tok.Lexeme
	}
	assert.Equal(t, "vargreeting=\"hi\"+\" there\";printgreeting;", rebuilt)
}

func TestScanTokens_NumberLiteralPayload(t *testing.T) {
	var buf bytes.Buffer
	toks := New("3.14", diagnostics.New(&buf)).ScanTokens()
	assert.Equal(t, 3.14, toks[0].Literal)
}

func TestScanTokens_StringLiteralPayloadUnquoted(t *testing.T) {
	var buf bytes.Buffer
	toks := New(`"hello"`, diagnostics.New(&buf)).ScanTokens()
	assert.Equal(t, "hello", toks[0].Literal)
}
