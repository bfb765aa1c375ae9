package ast

import (
	"math"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"

	"github.com/t14raptor/jscode/token"
)

type (
	BooleanLiteral struct {
		Value bool
	}

	IntLiteral struct {
		Value int64
	}

	// DecimalLiteral is a finite double. It always prints with a fraction.
	DecimalLiteral struct {
		Value float64
	}

	BigDecimalLiteral struct {
		Value decimal.Decimal
	}

	StringLiteral struct {
		Value string
	}

	RegExpLiteral struct {
		Pattern    string
		Global     bool
		IgnoreCase bool
		Multiline  bool
	}

	NullLiteral struct{}

	ThisExpression struct{}

	// RawExpression is source text used as an expression without any
	// checking.
	RawExpression struct {
		Source string
	}
)

var (
	True  = &BooleanLiteral{Value: true}
	False = &BooleanLiteral{Value: false}
	Null  = &NullLiteral{}
	This  = &ThisExpression{}

	Undefined = Ident("undefined")
	NaN       = Ident("NaN")
	Infinity  = Ident("Infinity")
)

const smallIntCount = 256

var smallInts = sync.OnceValue(func() *[smallIntCount]*IntLiteral {
	var t [smallIntCount]*IntLiteral
	for i := range t {
		t[i] = &IntLiteral{Value: int64(i)}
	}
	return &t
})

// Bool returns True or False.
func Bool(b bool) *BooleanLiteral {
	if b {
		return True
	}
	return False
}

// Int returns an integer atom. Values in [0, 256) are shared.
func Int(n int64) *IntLiteral {
	if n >= 0 && n < smallIntCount {
		return smallInts()[n]
	}
	return &IntLiteral{Value: n}
}

// Decimal returns a decimal atom, or a reference to NaN or Infinity for
// values a literal cannot spell.
func Decimal(f float64) Expr {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return Infinity
	case math.IsInf(f, -1):
		return &UnaryExpression{Operator: token.Minus, Operand: Infinity, WithParens: true}
	}
	return &DecimalLiteral{Value: f}
}

func BigDecimal(d decimal.Decimal) *BigDecimalLiteral {
	return &BigDecimalLiteral{Value: d}
}

func String(s string) *StringLiteral {
	return &StringLiteral{Value: s}
}

// Raw wraps source text as an expression.
func Raw(source string) *RawExpression {
	return &RawExpression{Source: source}
}

// NewRegExp returns a regex literal after checking pattern against the
// ECMAScript grammar.
func NewRegExp(pattern string) (*RegExpLiteral, error) {
	if _, err := regexp2.Compile(pattern, regexp2.ECMAScript); err != nil {
		return nil, &InvalidRegexError{Pattern: pattern, Err: err}
	}
	return &RegExpLiteral{Pattern: pattern}, nil
}

// RegExpQuote escapes every metacharacter in s.
func RegExpQuote(s string) string {
	return regexp2.Escape(s)
}

// Flags returns the flag suffix in canonical order.
func (r *RegExpLiteral) Flags() string {
	var b strings.Builder
	if r.Global {
		b.WriteByte('g')
	}
	if r.IgnoreCase {
		b.WriteByte('i')
	}
	if r.Multiline {
		b.WriteByte('m')
	}
	return b.String()
}

// Lit converts a Go value into an expression. Slices of any become array
// literals and map[string]any become object literals with sorted keys.
func Lit(v any) (Expr, error) {
	switch v := v.(type) {
	case nil:
		return Null, nil
	case Expr:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return litUint(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return litUint(v), nil
	case float32:
		return Decimal(float64(v)), nil
	case float64:
		return Decimal(v), nil
	case string:
		return String(v), nil
	case decimal.Decimal:
		return BigDecimal(v), nil
	case *big.Int:
		if v.IsInt64() {
			return Int(v.Int64()), nil
		}
		return BigDecimal(decimal.NewFromBigInt(v, 0)), nil
	case []any:
		arr := Array()
		for _, e := range v {
			x, err := Lit(e)
			if err != nil {
				return nil, err
			}
			arr.Add(x)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := Object()
		for _, k := range keys {
			x, err := Lit(v[k])
			if err != nil {
				return nil, err
			}
			obj.Add(k, x)
		}
		return obj, nil
	}
	return nil, &UnsupportedValueError{Value: v}
}

func litUint(v uint64) Expr {
	if v <= math.MaxInt64 {
		return Int(int64(v))
	}
	return BigDecimal(decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0))
}

func (*BooleanLiteral) _expr()    {}
func (*IntLiteral) _expr()        {}
func (*DecimalLiteral) _expr()    {}
func (*BigDecimalLiteral) _expr() {}
func (*StringLiteral) _expr()     {}
func (*RegExpLiteral) _expr()     {}
func (*NullLiteral) _expr()       {}
func (*ThisExpression) _expr()    {}
func (*RawExpression) _expr()     {}
