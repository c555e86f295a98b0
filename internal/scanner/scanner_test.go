package scanner

import (
	"testing"

	"github.com/shadowCow/lox-go/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"whitespace only", "  \t\n  ", []token.Kind{token.EOF}},
		{"punctuation", "(){},.-+;*", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
			token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
			token.EOF,
		}},
		{"two char operators", "! != = == < <= > >=", []token.Kind{
			token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
			token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
			token.EOF,
		}},
		{"line comment", "1 // ignored to end of line\n2", []token.Kind{
			token.Number, token.Number, token.EOF,
		}},
		{"divide vs comment", "1 / 2", []token.Kind{token.Number, token.Slash, token.Number, token.EOF}},
		{"keywords", "if else and or false true for while var nil fn class super this print return",
			[]token.Kind{
				token.If, token.Else, token.And, token.Or, token.False, token.True,
				token.For, token.While, token.Var, token.Nil, token.Fn, token.Class,
				token.Super, token.This, token.Print, token.Return, token.EOF,
			}},
		{"identifier not keyword", "ifx elsething", []token.Kind{token.Identifier, token.Identifier, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Scan(tt.input)
			require.Empty(t, errs)
			kinds := make([]token.Kind, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
			}
			assert.Equal(t, tt.expected, kinds)
		})
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens, errs := Scan(`"hello world"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal.StringValue)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestScanStringWithNewline(t *testing.T) {
	tokens, errs := Scan("\"line one\nline two\"")
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, "line one\nline two", tokens[0].Literal.StringValue)
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := Scan(`"unterminated`)
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Span.Lo)
	assert.Equal(t, len(`"unterminated`), errs[0].Span.Hi)
}

func TestScanNumberLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"0", 0},
	}
	for _, tt := range tests {
		tokens, errs := Scan(tt.input)
		require.Empty(t, errs)
		require.Len(t, tokens, 2)
		assert.Equal(t, tt.expected, tokens[0].Literal.NumberValue)
	}
}

// Trailing dot with no following digit must not be consumed as part of
// the number.
func TestScanNumberTrailingDotNotConsumed(t *testing.T) {
	tokens, errs := Scan("123.")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, float64(123), tokens[0].Literal.NumberValue)
	assert.Equal(t, "123", tokens[0].Lexeme)
	assert.Equal(t, token.Dot, tokens[1].Kind)
}

func TestScanUnexpectedChar(t *testing.T) {
	_, errs := Scan("1 @ 2")
	require.Len(t, errs, 1)
	assert.Equal(t, "Unexpected char: @", errs[0].Message)
}

// Scanning does not stop at the first error: every bad character is
// reported.
func TestScanAccumulatesMultipleErrors(t *testing.T) {
	_, errs := Scan("@ # $")
	assert.Len(t, errs, 3)
}

func TestScanSpansMatchSource(t *testing.T) {
	source := "var x = 12;"
	tokens, errs := Scan(source)
	require.Empty(t, errs)
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		assert.Equal(t, tok.Lexeme, source[tok.Span.Lo:tok.Span.Hi])
	}
}

func TestScanEmptyIsOnlyEOF(t *testing.T) {
	tokens, errs := Scan("")
	require.Empty(t, errs)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

// An identifier may start on a multibyte letter; the whole rune must be
// consumed, not just its lead byte.
func TestScanIdentifierStartingOnMultibyteLetter(t *testing.T) {
	tokens, errs := Scan("étoile + 1")
	require.Empty(t, errs)
	require.Len(t, tokens, 4)
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, "étoile", tokens[0].Lexeme)
}
