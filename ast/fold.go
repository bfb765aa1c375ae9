package ast

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/t14raptor/jscode/token"
)

type numKind int

const (
	numInt numKind = iota
	numFloat
	numBig
)

// number is the value of a numeric atom.
type number struct {
	kind numKind
	i    int64
	f    float64
	d    decimal.Decimal
}

func numberOf(e Expr) (number, bool) {
	switch n := e.(type) {
	case *IntLiteral:
		return number{kind: numInt, i: n.Value}, true
	case *DecimalLiteral:
		return number{kind: numFloat, f: n.Value}, true
	case *BigDecimalLiteral:
		return number{kind: numBig, d: n.Value}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numBig:
		f, _ := n.d.Float64()
		return f
	}
	return n.f
}

func (n number) big() decimal.Decimal {
	switch n.kind {
	case numInt:
		return decimal.NewFromInt(n.i)
	case numFloat:
		return decimal.NewFromFloat(n.f)
	}
	return n.d
}

// sign returns -1, 0 or 1.
func (n number) sign() int {
	switch n.kind {
	case numInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		}
		return 0
	case numBig:
		return n.d.Sign()
	}
	switch {
	case n.f < 0:
		return -1
	case n.f > 0:
		return 1
	}
	return 0
}

func (n number) isOne() bool {
	switch n.kind {
	case numInt:
		return n.i == 1
	case numBig:
		return n.d.Equal(decimal.NewFromInt(1))
	}
	return n.f == 1
}

func (n number) neg() Expr {
	switch n.kind {
	case numInt:
		if n.i == math.MinInt64 {
			return Decimal(-float64(n.i))
		}
		return Int(-n.i)
	case numBig:
		return BigDecimal(n.d.Neg())
	}
	return Decimal(-n.f)
}

func arith[T constraints.Integer | constraints.Float](op token.Token, a, b T) T {
	switch op {
	case token.Plus:
		return a + b
	case token.Minus:
		return a - b
	case token.Multiply:
		return a * b
	}
	return a / b
}

// fold computes l op r when both sides are atoms.
func fold(op token.Token, l, r Expr) (Expr, bool) {
	if op == token.Plus {
		if ls, ok := l.(*StringLiteral); ok {
			if rs, ok := r.(*StringLiteral); ok {
				return String(ls.Value + rs.Value), true
			}
		}
	}
	switch op {
	case token.Plus, token.Minus, token.Multiply, token.Slash, token.Remainder:
	default:
		return nil, false
	}
	ln, ok := numberOf(l)
	if !ok {
		return nil, false
	}
	rn, ok := numberOf(r)
	if !ok {
		return nil, false
	}
	switch {
	case ln.kind == numBig || rn.kind == numBig:
		return foldBig(op, ln.big(), rn.big())
	case ln.kind == numInt && rn.kind == numInt && op != token.Slash:
		return foldInt(op, ln.i, rn.i)
	}
	return foldFloat(op, ln.float(), rn.float())
}

func foldInt(op token.Token, a, b int64) (Expr, bool) {
	if op == token.Remainder {
		if b == 0 {
			return nil, false
		}
		return Int(a % b), true
	}
	r := arith(op, a, b)
	var overflow bool
	switch op {
	case token.Plus:
		overflow = a > 0 && b > 0 && r < 0 || a < 0 && b < 0 && r >= 0
	case token.Minus:
		overflow = a >= 0 && b < 0 && r < 0 || a < 0 && b > 0 && r >= 0
	case token.Multiply:
		overflow = a != 0 && (r/a != b || a == -1 && b == math.MinInt64)
	}
	if overflow {
		return foldFloat(op, float64(a), float64(b))
	}
	return Int(r), true
}

func foldFloat(op token.Token, a, b float64) (Expr, bool) {
	var r float64
	switch op {
	case token.Slash:
		if b == 0 {
			return nil, false
		}
		r = arith(op, a, b)
	case token.Remainder:
		if b == 0 {
			return nil, false
		}
		r = math.Mod(a, b)
	default:
		r = arith(op, a, b)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, false
	}
	return &DecimalLiteral{Value: r}, true
}

func foldBig(op token.Token, a, b decimal.Decimal) (Expr, bool) {
	switch op {
	case token.Plus:
		return BigDecimal(a.Add(b)), true
	case token.Minus:
		return BigDecimal(a.Sub(b)), true
	case token.Multiply:
		return BigDecimal(a.Mul(b)), true
	}
	if b.IsZero() {
		return nil, false
	}
	if op == token.Slash {
		return BigDecimal(a.Div(b)), true
	}
	return BigDecimal(a.Mod(b)), true
}

func isBool(e Expr, v bool) bool {
	b, ok := e.(*BooleanLiteral)
	return ok && b.Value == v
}

func foldAnd(l, r Expr) (Expr, bool) {
	switch {
	case isBool(l, false) || isBool(r, false):
		return False, true
	case isBool(l, true):
		return r, true
	case isBool(r, true):
		return l, true
	}
	return nil, false
}

func foldOr(l, r Expr) (Expr, bool) {
	switch {
	case isBool(l, true) || isBool(r, true):
		return True, true
	case isBool(l, false):
		return r, true
	case isBool(r, false):
		return l, true
	}
	return nil, false
}
