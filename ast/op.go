package ast

import (
	"fmt"

	"github.com/t14raptor/jscode/token"
)

type (
	UnaryExpression struct {
		Operator token.Token
		Operand  Expr
		Postfix  bool
		// WithParens marks results that are parenthesized when used as
		// the operand of another operator.
		WithParens bool
	}

	BinaryExpression struct {
		Operator token.Token
		Left     Expr
		Right    Expr
		// UseBraces is cleared when the node is chained under a parent
		// with the same operator.
		UseBraces bool
	}

	ConditionalExpression struct {
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	ParenExpression struct {
		Expr Expr
	}
)

// Neg returns -e, folded when e is a numeric atom.
func Neg(e Expr) Expr {
	if n, ok := numberOf(e); ok {
		return n.neg()
	}
	return &UnaryExpression{Operator: token.Minus, Operand: e, WithParens: true}
}

// Not returns !e, folded when e is a boolean atom.
func Not(e Expr) Expr {
	if b, ok := e.(*BooleanLiteral); ok {
		return Bool(!b.Value)
	}
	return &UnaryExpression{Operator: token.Not, Operand: e, WithParens: true}
}

func Complement(e Expr) *UnaryExpression {
	return &UnaryExpression{Operator: token.BitwiseNot, Operand: e, WithParens: true}
}

func Typeof(e Expr) *UnaryExpression {
	return &UnaryExpression{Operator: token.Typeof, Operand: e}
}

func Void(e Expr) *UnaryExpression {
	return &UnaryExpression{Operator: token.Void, Operand: e}
}

// Incr returns t++.
func Incr(t Target) *UnaryExpression {
	return &UnaryExpression{Operator: token.Increment, Operand: t, Postfix: true}
}

// Decr returns t--.
func Decr(t Target) *UnaryExpression {
	return &UnaryExpression{Operator: token.Decrement, Operand: t, Postfix: true}
}

// PreIncr returns ++t.
func PreIncr(t Target) *UnaryExpression {
	return &UnaryExpression{Operator: token.Increment, Operand: t}
}

// PreDecr returns --t.
func PreDecr(t Target) *UnaryExpression {
	return &UnaryExpression{Operator: token.Decrement, Operand: t}
}

// BinaryOp builds l op r. The result is a single atom when both operands
// are atoms the operator can be folded over, and the surviving operand
// when a boolean atom decides a logical operator.
func BinaryOp(l Expr, op token.Token, r Expr) Expr {
	if op.Precedence() == 0 {
		panic(fmt.Sprintf("ast: %s is not a binary operator", op))
	}
	switch op {
	case token.LogicalAnd:
		if e, ok := foldAnd(l, r); ok {
			return e
		}
	case token.LogicalOr:
		if e, ok := foldOr(l, r); ok {
			return e
		}
	default:
		if e, ok := fold(op, l, r); ok {
			return e
		}
	}
	return newBinary(l, op, r)
}

func newBinary(l Expr, op token.Token, r Expr) *BinaryExpression {
	if b, ok := l.(*BinaryExpression); ok && b.Operator == op {
		b.UseBraces = false
	}
	if b, ok := r.(*BinaryExpression); ok && b.Operator == op {
		b.UseBraces = false
	}
	return &BinaryExpression{Operator: op, Left: l, Right: r, UseBraces: true}
}

func Plus(l, r Expr) Expr  { return BinaryOp(l, token.Plus, r) }
func Minus(l, r Expr) Expr { return BinaryOp(l, token.Minus, r) }
func Mul(l, r Expr) Expr   { return BinaryOp(l, token.Multiply, r) }
func Div(l, r Expr) Expr   { return BinaryOp(l, token.Slash, r) }
func Mod(l, r Expr) Expr   { return BinaryOp(l, token.Remainder, r) }
func Shl(l, r Expr) Expr   { return BinaryOp(l, token.ShiftLeft, r) }
func Shr(l, r Expr) Expr   { return BinaryOp(l, token.ShiftRight, r) }
func Shrz(l, r Expr) Expr  { return BinaryOp(l, token.UnsignedShiftRight, r) }
func Band(l, r Expr) Expr  { return BinaryOp(l, token.And, r) }
func Bor(l, r Expr) Expr   { return BinaryOp(l, token.Or, r) }
func Xor(l, r Expr) Expr   { return BinaryOp(l, token.ExclusiveOr, r) }
func And(l, r Expr) Expr   { return BinaryOp(l, token.LogicalAnd, r) }
func Or(l, r Expr) Expr    { return BinaryOp(l, token.LogicalOr, r) }
func Eq(l, r Expr) Expr    { return BinaryOp(l, token.Equal, r) }
func Ne(l, r Expr) Expr    { return BinaryOp(l, token.NotEqual, r) }
func Eeq(l, r Expr) Expr   { return BinaryOp(l, token.StrictEqual, r) }
func Ene(l, r Expr) Expr   { return BinaryOp(l, token.StrictNotEqual, r) }
func Lt(l, r Expr) Expr    { return BinaryOp(l, token.Less, r) }
func Lte(l, r Expr) Expr   { return BinaryOp(l, token.LessOrEqual, r) }
func Gt(l, r Expr) Expr    { return BinaryOp(l, token.Greater, r) }
func Gte(l, r Expr) Expr   { return BinaryOp(l, token.GreaterOrEqual, r) }
func In(l, r Expr) Expr    { return BinaryOp(l, token.In, r) }

func InstanceOf(e Expr, t Type) Expr { return BinaryOp(e, token.InstanceOf, t) }

// IsTypeof compares typeof e with the typeof name of t.
func IsTypeof(e Expr, t *PrimitiveType) Expr {
	return Eeq(Typeof(e), String(t.TypeofName()))
}

func IsUndefined(e Expr) Expr    { return IsTypeof(e, TypeUndefined) }
func IsNotUndefined(e Expr) Expr { return Ene(Typeof(e), String(TypeUndefined.TypeofName())) }

// Cond returns test?consequent:alternate.
func Cond(test, consequent, alternate Expr) *ConditionalExpression {
	return &ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

// Paren wraps e in explicit parentheses.
func Paren(e Expr) *ParenExpression {
	return &ParenExpression{Expr: e}
}

func (*UnaryExpression) _expr()       {}
func (*BinaryExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*ParenExpression) _expr()       {}

func (*UnaryExpression) _code() {}
func (*UnaryExpression) _stmt() {}
