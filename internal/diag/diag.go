// Package diag defines the diagnostic shape shared by the scanner, parser,
// and interpreter. Rendering diagnostics for a terminal (caret spans,
// color) is an external collaborator's job; this package only carries the
// data.
package diag

import "github.com/shadowCow/lox-go/internal/token"

// Kind distinguishes which phase produced a Diagnostic.
type Kind int

const (
	Scanner Kind = iota
	Parser
	Interpreter
)

func (k Kind) String() string {
	switch k {
	case Scanner:
		return "Scanner"
	case Parser:
		return "Parser"
	case Interpreter:
		return "Interpreter"
	default:
		return "Unknown"
	}
}

// Diagnostic is {kind, span, message}, the shape shared across the
// scanner, parser, and interpreter for reporting a problem at a location
// in the source. Span indexes bytes in the originating source.
type Diagnostic struct {
	Kind    Kind
	Span    token.Span
	Message string
}

func (d Diagnostic) Error() string {
	return d.Message
}

// New constructs a Diagnostic at the given span.
func New(kind Kind, span token.Span, message string) Diagnostic {
	return Diagnostic{Kind: kind, Span: span, Message: message}
}
