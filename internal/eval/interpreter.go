// Package eval implements the tree-walking interpreter: environment
// frames, runtime values, first-class functions, and the statement/
// expression evaluator that walks the AST produced by package parser.
package eval

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shadowCow/lox-go/internal/ast"
	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/shadowCow/lox-go/internal/token"
)

// Interpreter walks statements and expressions against the currently
// active environment: one mutable "current environment" pointer, pushed
// on block/function entry and popped on every exit path including error.
type Interpreter struct {
	globals *Environment
	env     *Environment
	output  io.Writer
}

// New creates an Interpreter that writes `print` output to output and
// seeds the global scope with the clock native.
func New(output io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	it := &Interpreter{globals: globals, env: globals, output: output}
	globals.Define("clock", NewNative("clock", 0, func(args []Value) (Value, error) {
		return float64(time.Now().UnixMilli()), nil
	}))
	return it
}

// Interpret executes statements in order against the current environment.
// It returns the first runtime diagnostic encountered, or nil on success.
func (it *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InterpretTop behaves like Interpret but also reports the value produced
// by a trailing bare ExpressionStmt, if the final statement is one. This
// exists solely for host REPLs that want to echo an expression's value
// without evaluating it twice or otherwise changing Interpret's
// semantics; ok is false when the final statement isn't a plain
// expression statement.
func (it *Interpreter) InterpretTop(statements []ast.Stmt) (value Value, ok bool, err error) {
	for i, stmt := range statements {
		isLast := i == len(statements)-1
		if isLast {
			if es, isExpr := stmt.(*ast.ExpressionStmt); isExpr {
				v, evalErr := it.evalExpr(es.Expression)
				if evalErr != nil {
					return nil, false, evalErr
				}
				return v, true, nil
			}
		}
		if execErr := it.execStmt(stmt); execErr != nil {
			return nil, false, execErr
		}
	}
	return nil, false, nil
}

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Print:
		v, err := it.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.output, Display(v))
		return nil

	case *ast.ExpressionStmt:
		_, err := it.evalExpr(s.Expression)
		return err

	case *ast.VarDecl:
		v, err := it.evalExpr(s.Init)
		if err != nil {
			return err
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return it.execBlock(s.Statements, NewEnvironment(it.env))

	case *ast.If:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return it.execStmt(s.Then)
		} else if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionDecl:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		fn := NewUser(s.Name.Lexeme, params, s.Body, it.env)
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	default:
		return fmt.Errorf("eval: unknown statement type %T", stmt)
	}
}

// execBlock runs statements against scope, restoring the previous
// environment on every exit path, including when a statement errors.
func (it *Interpreter) execBlock(statements []ast.Stmt, scope *Environment) error {
	previous := it.env
	it.env = scope
	defer func() { it.env = previous }()

	for _, stmt := range statements {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return it.evalExpr(e.Inner)

	case *ast.Variable:
		return it.env.Get(e.Name.Lexeme, e.Name.Span)

	case *ast.Assign:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.env.Assign(e.Name.Lexeme, v, e.Name.Span); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Call:
		return it.evalCall(e)

	default:
		return nil, fmt.Errorf("eval: unknown expression type %T", expr)
	}
}

func literalValue(v interface{}) Value {
	if v == nil {
		return Nil{}
	}
	return v
}

func (it *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus:
		n, ok := asNumber(right)
		if !ok {
			return nil, diag.New(diag.Interpreter, e.Op.Span, "Not a number")
		}
		return -n, nil
	case token.Bang:
		return !IsTruthy(right), nil
	default:
		return nil, diag.New(diag.Interpreter, e.Op.Span, fmt.Sprintf("Unknown unary operator: %s", e.Op.Lexeme))
	}
}

// asNumber coerces v to a float64 for unary minus, attempting to parse a
// string operand as a number and failing with ok=false if it doesn't
// parse.
func asNumber(v Value) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case string:
		n, err := strconv.ParseFloat(vv, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (it *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return Equal(left, right), nil
	case token.BangEqual:
		return !Equal(left, right), nil
	}

	leftNum, leftIsNum := left.(float64)
	rightNum, rightIsNum := right.(float64)
	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)

	switch e.Op.Kind {
	case token.Plus:
		if leftIsNum && rightIsNum {
			return leftNum + rightNum, nil
		}
		if leftIsStr && rightIsStr {
			return leftStr + rightStr, nil
		}
		return nil, diag.New(diag.Interpreter, e.Op.Span, "No + for the given value")

	case token.Minus, token.Star, token.Slash:
		if !leftIsNum || !rightIsNum {
			return nil, diag.New(diag.Interpreter, e.Op.Span, fmt.Sprintf("No %s for the given value", e.Op.Lexeme))
		}
		switch e.Op.Kind {
		case token.Minus:
			return leftNum - rightNum, nil
		case token.Star:
			return leftNum * rightNum, nil
		default: // Slash
			return leftNum / rightNum, nil
		}

	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		if !leftIsNum || !rightIsNum {
			return nil, diag.New(diag.Interpreter, e.Op.Span, fmt.Sprintf("No %s for the given value", e.Op.Lexeme))
		}
		switch e.Op.Kind {
		case token.Less:
			return leftNum < rightNum, nil
		case token.LessEqual:
			return leftNum <= rightNum, nil
		case token.Greater:
			return leftNum > rightNum, nil
		default: // GreaterEqual
			return leftNum >= rightNum, nil
		}

	default:
		return nil, diag.New(diag.Interpreter, e.Op.Span, fmt.Sprintf("Unknown binary operator: %s", e.Op.Lexeme))
	}
}

// evalLogical implements `and`/`or`, preserving the original operand value
// rather than coercing it to Boolean.
func (it *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Kind == token.Or {
		if IsTruthy(left) {
			return left, nil
		}
	} else { // And
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return it.evalExpr(e.Right)
}

func (it *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, diag.New(diag.Interpreter, e.Paren.Span, "Not a callable object.")
	}

	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := it.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != fn.ParamCount() {
		return nil, diag.New(diag.Interpreter, e.Paren.Span,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.ParamCount(), len(args)))
	}

	if fn.IsNative {
		v, err := fn.Body(args)
		if err != nil {
			return nil, diag.New(diag.Interpreter, e.Paren.Span, err.Error())
		}
		return v, nil
	}

	callEnv := NewEnvironment(fn.Closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}

	if err := it.execBlock(fn.Stmts, callEnv); err != nil {
		return nil, err
	}
	return Nil{}, nil
}
