// Package ast defines the abstract syntax tree produced by the parser: a
// closed variant of exactly four expression shapes.
//
// Grounded on the teacher's ast.Expr marker-method pattern
// (ast/ast.go's exprNode()), trimmed to the four node shapes spec.md §3
// allows and with String() implemented directly on each node (per
// spec.md §9's design note: a sealed interface with exhaustive pattern
// matching, not a separate visitor hierarchy).
package ast

import "github.com/cloudcmds/candle/token"

// Expr is implemented by every AST node. The unexported exprNode method
// makes the set closed: no type outside this package can satisfy Expr.
type Expr interface {
	exprNode()
	String() string
}

// Literal holds a constant value parsed directly from a token: a number,
// a string, a boolean, or nil.
type Literal struct {
	Value any // nil, float64, string, or bool
}

func (*Literal) exprNode() {}

// Unary is a prefix operator ("!" or "-") applied to a single operand.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode() {}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode() {}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}
