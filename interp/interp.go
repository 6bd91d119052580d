// Package interp implements the post-order tree-walking evaluator
// described in spec.md §4.3.
//
// Grounded on the teacher's object.RunOperation-style operator dispatch
// (object/nil.go), generalized into a direct switch over AST node kind
// and operator token kind instead of the teacher's bytecode
// op.BinaryOpType (the VM/compiler/bytecode layers are Non-goals at this
// scope — there is no bytecode here, only a tree walk). Runtime errors
// carry the offending operator token for line reporting, mirroring the
// teacher's practice of attaching a source position to runtime errors
// (errz.StructuredError.Location).
package interp

import (
	"fmt"

	"github.com/cloudcmds/candle/ast"
	"github.com/cloudcmds/candle/errz"
	"github.com/cloudcmds/candle/token"
	"github.com/cloudcmds/candle/value"
)

// RuntimeError is raised by Eval when an operator is applied to a value
// of the wrong type. It carries the operator token so the caller can
// report the offending line, per spec.md §4.3: "A runtime error is
// raised at its operator token and unwinds to the top of the evaluator."
type RuntimeError struct {
	Operator token.Token
	Message  string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// ToErrz converts the RuntimeError into the shared errz.Error shape used
// by the other two pipeline stages.
func (e *RuntimeError) ToErrz() *errz.Error {
	return errz.New(errz.Runtime, e.Operator.Line, "%s", e.Message)
}

func newRuntimeError(operator token.Token, message string) *RuntimeError {
	return &RuntimeError{Operator: operator, Message: message}
}

// Eval evaluates a single top-level expression to a runtime value.
// Evaluation is post-order and synchronous; there is no suspension or
// cancellation (spec.md §5). The host call stack provides recursion
// depth, so a deeply nested expression may overflow it — accepted at
// this scope, per spec.md §5.
func Eval(expr ast.Expr) (value.Value, *RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e), nil
	case *ast.Grouping:
		return Eval(e.Inner)
	case *ast.Unary:
		return evalUnary(e)
	case *ast.Binary:
		return evalBinary(e)
	default:
		// Unreachable: ast.Expr is a closed, four-shape variant and every
		// shape is handled above.
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func evalLiteral(l *ast.Literal) value.Value {
	switch v := l.Value.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.BoolOf(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		panic(fmt.Sprintf("interp: unhandled literal value %T", v))
	}
}

func evalUnary(u *ast.Unary) (value.Value, *RuntimeError) {
	right, err := Eval(u.Right)
	if err != nil {
		return nil, err
	}
	switch u.Operator.Kind {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(u.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return value.BoolOf(!right.IsTruthy()), nil
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", u.Operator.Kind))
	}
}

func evalBinary(b *ast.Binary) (value.Value, *RuntimeError) {
	// Left operand is evaluated before right, per spec.md §4.3.
	left, err := Eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := Eval(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Operator.Kind {
	case token.EQUAL_EQUAL:
		return value.BoolOf(left.Equals(right)), nil
	case token.BANG_EQUAL:
		return value.BoolOf(!left.Equals(right)), nil
	case token.PLUS:
		return evalPlus(b.Operator, left, right)
	case token.MINUS:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l - r, nil
	case token.STAR:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l * r, nil
	case token.SLASH:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l / r, nil
	case token.GREATER:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.BoolOf(l > r), nil
	case token.GREATER_EQUAL:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.BoolOf(l >= r), nil
	case token.LESS:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.BoolOf(l < r), nil
	case token.LESS_EQUAL:
		l, r, rerr := numberOperands(b.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.BoolOf(l <= r), nil
	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %s", b.Operator.Kind))
	}
}

// evalPlus implements "+"'s number-vs-string polymorphism from spec.md
// §4.3: numeric addition for two Numbers, concatenation for two Strings,
// and a type error for any other pairing.
func evalPlus(operator token.Token, left, right value.Value) (value.Value, *RuntimeError) {
	if l, ok := left.(value.Number); ok {
		if r, ok := right.(value.Number); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	}
	return nil, newRuntimeError(operator, "Operands must be two numbers or two strings.")
}

// numberOperands type-checks both operands as Number, raising the shared
// "Operands must be numbers." error otherwise.
func numberOperands(operator token.Token, left, right value.Value) (value.Number, value.Number, *RuntimeError) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}
