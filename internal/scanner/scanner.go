// Package scanner tokenizes Lox-family source text into a token stream,
// accumulating diagnostics across the entire input rather than stopping at
// the first error.
package scanner

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/shadowCow/lox-go/internal/token"
)

// Scanner walks source byte-by-byte, tracking a per-token start cursor and
// a current cursor.
type Scanner struct {
	source  string
	start   int
	current int

	tokens []token.Token
	errs   []diag.Diagnostic
}

// New creates a Scanner over source.
func New(source string) *Scanner {
	return &Scanner{source: source}
}

// Scan tokenizes the entire source. On success it returns a token list
// ending in an EOF token and a nil diagnostic list. On failure — any
// scanner error anywhere in the input — it returns a nil token list and
// the full list of diagnostics accumulated across the input; partial token
// output is discarded.
func Scan(source string) ([]token.Token, []diag.Diagnostic) {
	s := New(source)
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.start = s.current
	s.addToken(token.EOF, token.Literal{})

	if len(s.errs) > 0 {
		return nil, s.errs
	}
	return s.tokens, nil
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	b := s.source[s.current]
	s.current++
	return b
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// peekRune decodes the rune starting at the current cursor without
// consuming it, along with its byte width. Used for identifier scanning so
// multibyte code points are accepted in identifiers without disturbing the
// scanner's byte-indexed span semantics.
func (s *Scanner) peekRune() (rune, int) {
	if s.isAtEnd() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s.source[s.current:])
}

func (s *Scanner) addToken(kind token.Kind, lit token.Literal) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Span:    token.Span{Lo: s.start, Hi: s.current},
		Literal: lit,
	})
}

func (s *Scanner) errorf(lo, hi int, format string, args ...interface{}) {
	s.errs = append(s.errs, diag.New(diag.Scanner, token.Span{Lo: lo, Hi: hi}, fmt.Sprintf(format, args...)))
}

func (s *Scanner) scanToken() {
	// A multibyte rune can't be classified from its lead byte alone (the
	// lead byte of e.g. 'é' happens to look like a letter when read as a
	// Latin-1 code point, and the
	// lead byte of other code points doesn't look like anything in
	// particular) — decode the whole rune up front so an identifier
	// starting on a non-ASCII letter is recognized and scanned whole
	// rather than truncated to one invalid byte.
	if r, size := s.peekRune(); size > 1 && (unicode.IsLetter(r) || r == '_') {
		s.scanIdentifier()
		return
	}

	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen, token.Literal{})
	case ')':
		s.addToken(token.RightParen, token.Literal{})
	case '{':
		s.addToken(token.LeftBrace, token.Literal{})
	case '}':
		s.addToken(token.RightBrace, token.Literal{})
	case ',':
		s.addToken(token.Comma, token.Literal{})
	case '.':
		s.addToken(token.Dot, token.Literal{})
	case '-':
		s.addToken(token.Minus, token.Literal{})
	case '+':
		s.addToken(token.Plus, token.Literal{})
	case ';':
		s.addToken(token.Semicolon, token.Literal{})
	case '*':
		s.addToken(token.Star, token.Literal{})
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual, token.Literal{})
		} else {
			s.addToken(token.Bang, token.Literal{})
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual, token.Literal{})
		} else {
			s.addToken(token.Equal, token.Literal{})
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual, token.Literal{})
		} else {
			s.addToken(token.Less, token.Literal{})
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual, token.Literal{})
		} else {
			s.addToken(token.Greater, token.Literal{})
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash, token.Literal{})
		}
	case ' ', '\r', '\t', '\n':
		// whitespace produces no token
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			r, size := utf8.DecodeRuneInString(s.source[s.start:])
			hi := s.start + size
			if size == 0 {
				hi = s.start + 1
			}
			s.errorf(s.start, hi, "Unexpected char: %c", r)
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}

	if s.isAtEnd() {
		s.errorf(s.start, s.current, "Unterminated string.")
		return
	}

	s.advance() // the closing quote
	content := s.source[s.start+1 : s.current-1]
	s.addToken(token.String, token.Literal{StringValue: content})
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf(s.start, s.current, "Invalid number literal: %s", lexeme)
		return
	}
	s.addToken(token.Number, token.Literal{NumberValue: value})
}

func (s *Scanner) scanIdentifier() {
	for {
		r, size := s.peekRune()
		if size == 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			break
		}
		s.current += size
	}

	text := s.source[s.start:s.current]
	if kind, ok := token.IsKeyword(text); ok {
		s.addToken(kind, token.Literal{})
		return
	}
	s.addToken(token.Identifier, token.Literal{})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}
