package ast

import (
	"slices"

	"github.com/t14raptor/jscode/token"
)

type (
	// Identifier references a name. When bound to a Variable the name is
	// read at render time.
	Identifier struct {
		name string
		v    *Variable
	}

	// MemberExpression is obj.property; a property that is not an
	// identifier name renders as obj['property'].
	MemberExpression struct {
		Object   Expr
		Property string
	}

	IndexExpression struct {
		Object Expr
		Index  Expr
	}

	// CastExpression renders as the conversion call Type(expr).
	CastExpression struct {
		Type Type
		Expr Expr
	}

	ArrayLiteral struct {
		Value []Expr
	}

	// ObjectLiteral keeps its keys in insertion order. Keys that are
	// valid identifiers print bare unless ForceQuoting is set.
	ObjectLiteral struct {
		ForceQuoting bool

		keys   []string
		values map[string]Expr
	}

	AssignExpression struct {
		Operator token.Token
		Left     Target
		Right    Expr
	}
)

// Ident references name verbatim.
func Ident(name string) *Identifier {
	return &Identifier{name: name}
}

// IdentOf references v; renaming v renames the reference.
func IdentOf(v *Variable) *Identifier {
	return &Identifier{v: v}
}

func (i *Identifier) Name() string {
	if i.v != nil {
		return i.v.Name()
	}
	return i.name
}

// Variable returns the bound variable, if any.
func (i *Identifier) Variable() *Variable { return i.v }

func Member(obj Expr, property string) *MemberExpression {
	return &MemberExpression{Object: obj, Property: property}
}

// Members chains property accesses: Members(a, "b", "c") is a.b.c.
func Members(obj Expr, properties ...string) Expr {
	for _, p := range properties {
		obj = Member(obj, p)
	}
	return obj
}

// Invoke turns obj.property into a call of the method property on obj.
func (m *MemberExpression) Invoke(method string) (*CallExpression, error) {
	if m.Object == nil {
		return nil, &UnresolvedCalleeError{}
	}
	if _, err := CheckIdentifier(method); err != nil {
		return nil, err
	}
	return CallOn(m, method), nil
}

func Index(obj, index Expr) *IndexExpression {
	return &IndexExpression{Object: obj, Index: index}
}

func Cast(t Type, e Expr) *CastExpression {
	return &CastExpression{Type: t, Expr: e}
}

func Array(values ...Expr) *ArrayLiteral {
	return &ArrayLiteral{Value: values}
}

// Add appends e, or null when e is nil.
func (a *ArrayLiteral) Add(e Expr) *ArrayLiteral {
	if e == nil {
		e = Null
	}
	a.Value = append(a.Value, e)
	return a
}

func Object() *ObjectLiteral {
	return &ObjectLiteral{values: map[string]Expr{}}
}

// Add sets key to v, keeping the position of an existing key. A nil v
// is stored as null.
func (o *ObjectLiteral) Add(key string, v Expr) *ObjectLiteral {
	if v == nil {
		v = Null
	}
	if o.values == nil {
		o.values = map[string]Expr{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

func (o *ObjectLiteral) Get(key string) (Expr, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *ObjectLiteral) Remove(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

func (o *ObjectLiteral) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *ObjectLiteral) Keys() []string { return slices.Clone(o.keys) }

func Assign(t Target, v Expr) *AssignExpression { return AssignOp(t, token.Assign, v) }

func AssignPlus(t Target, v Expr) *AssignExpression  { return AssignOp(t, token.AddAssign, v) }
func AssignMinus(t Target, v Expr) *AssignExpression { return AssignOp(t, token.SubtractAssign, v) }
func AssignMul(t Target, v Expr) *AssignExpression   { return AssignOp(t, token.MultiplyAssign, v) }
func AssignDiv(t Target, v Expr) *AssignExpression   { return AssignOp(t, token.QuotientAssign, v) }
func AssignMod(t Target, v Expr) *AssignExpression   { return AssignOp(t, token.RemainderAssign, v) }

// AssignOp builds t op v for "=" or a compound assignment operator.
func AssignOp(t Target, op token.Token, v Expr) *AssignExpression {
	if !op.IsAssign() {
		panic("ast: " + op.String() + " is not an assignment operator")
	}
	if v == nil {
		v = Null
	}
	return &AssignExpression{Operator: op, Left: t, Right: v}
}

func (*Identifier) _expr()       {}
func (*MemberExpression) _expr() {}
func (*IndexExpression) _expr()  {}
func (*CastExpression) _expr()   {}
func (*ArrayLiteral) _expr()     {}
func (*ObjectLiteral) _expr()    {}
func (*AssignExpression) _expr() {}

func (*Identifier) _target()       {}
func (*MemberExpression) _target() {}
func (*IndexExpression) _target()  {}

func (*AssignExpression) _code() {}
func (*AssignExpression) _stmt() {}
