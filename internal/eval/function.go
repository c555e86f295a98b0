package eval

import "github.com/shadowCow/lox-go/internal/ast"

// NativeBody is the host-side implementation of a Native function: it
// takes the already-evaluated argument list and returns a Value or an
// error.
type NativeBody func(args []Value) (Value, error)

// Function is a first-class callable value. It has two shapes:
//
//   - Native functions wrap a host Go function (e.g. clock).
//   - User functions close over the environment active at the point of
//     their declaration, captured in Closure. This is what lets a
//     function that outlives the call declaring it (for example by being
//     assigned to an outer variable) keep reading and writing the
//     bindings alive at its own definition site.
type Function struct {
	Name     string
	IsNative bool

	// Native fields.
	Arity int
	Body  NativeBody

	// User fields.
	Params  []string
	Stmts   []ast.Stmt
	Closure *Environment
}

// NewNative constructs a Native function value.
func NewNative(name string, arity int, body NativeBody) *Function {
	return &Function{Name: name, IsNative: true, Arity: arity, Body: body}
}

// NewUser constructs a User function value whose Closure is the
// environment active at the point of declaration.
func NewUser(name string, params []string, stmts []ast.Stmt, closure *Environment) *Function {
	return &Function{Name: name, Params: params, Stmts: stmts, Closure: closure}
}

// ParamCount returns the function's arity regardless of which shape it is.
func (f *Function) ParamCount() int {
	if f.IsNative {
		return f.Arity
	}
	return len(f.Params)
}
