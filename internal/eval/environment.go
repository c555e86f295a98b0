package eval

import (
	"fmt"

	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/shadowCow/lox-go/internal/token"
)

// Environment is one frame of the lexical scope chain: a mapping from
// identifier to value plus an optional link to an enclosing frame. Frames
// are reference-shared, not deep-copied — a closure's captured frame stays
// observably mutable by any other holder of the same *Environment, which
// is what makes recursive and mutually-referencing functions work.
type Environment struct {
	store    map[string]Value
	enclosing *Environment
}

// NewEnvironment opens a new frame whose enclosing link is base. Pass nil
// for base to create the root (global) frame.
func NewEnvironment(base *Environment) *Environment {
	return &Environment{
		store:     make(map[string]Value),
		enclosing: base,
	}
}

// Define unconditionally binds name to value in this frame; any previous
// binding in this frame is replaced.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Assign searches from this frame outward and overwrites the first frame
// containing name. It fails with an Interpreter diagnostic at span if no
// frame in the chain defines name.
func (e *Environment) Assign(name string, value Value, span token.Span) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.store[name]; ok {
			env.store[name] = value
			return nil
		}
	}
	return diag.New(diag.Interpreter, span, fmt.Sprintf("Undefined variable: %s.", name))
}

// Get searches from this frame outward and returns the first binding
// found. It fails with an Interpreter diagnostic at span if no frame in
// the chain defines name.
func (e *Environment) Get(name string, span token.Span) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.store[name]; ok {
			return v, nil
		}
	}
	return nil, diag.New(diag.Interpreter, span, fmt.Sprintf("Undefined variable or function: %s.", name))
}
