package ast

import "slices"

// Callable is a declaration whose name an invocation reads at render time.
type Callable interface {
	Decl
	_callable()
}

// CallExpression is a function call, a method call or a constructor call.
// Exactly one of Name, Callee, Anonymous and Constructor selects the
// callee; Object is the receiver of a method call.
type CallExpression struct {
	Object      Expr
	Name        string
	Callee      Callable
	Anonymous   *FunctionLiteral
	Constructor Type

	args []Expr
}

// Call calls the function called name.
func Call(name string) *CallExpression {
	return &CallExpression{Name: name}
}

// CallOn calls method name on obj.
func CallOn(obj Expr, name string) *CallExpression {
	return &CallExpression{Object: obj, Name: name}
}

// CallFunc calls fn; a later rename of fn is reflected in the output.
func CallFunc(fn *Function) *CallExpression {
	return &CallExpression{Callee: fn}
}

// CallMethod calls m on obj.
func CallMethod(obj Expr, m *Method) *CallExpression {
	return &CallExpression{Object: obj, Callee: m}
}

// CallAnonymous calls fn in place: (function(...){...})(...).
func CallAnonymous(fn *FunctionLiteral) *CallExpression {
	return &CallExpression{Anonymous: fn}
}

// New constructs t: new t(...).
func New(t Type) *CallExpression {
	return &CallExpression{Constructor: t}
}

// ResolveName returns the name the call renders with. ok is false when
// neither a name nor a callee is set.
func (c *CallExpression) ResolveName() (string, bool) {
	if c.Name != "" {
		return c.Name, true
	}
	if c.Callee != nil {
		return c.Callee.Name(), true
	}
	return "", false
}

// Arg appends e, or null when e is nil.
func (c *CallExpression) Arg(e Expr) *CallExpression {
	if e == nil {
		e = Null
	}
	c.args = append(c.args, e)
	return c
}

// Args appends every expression in order.
func (c *CallExpression) Args(es ...Expr) *CallExpression {
	for _, e := range es {
		c.Arg(e)
	}
	return c
}

// ArgValue appends a Go value converted with Lit.
func (c *CallExpression) ArgValue(v any) error {
	e, err := Lit(v)
	if err != nil {
		return err
	}
	c.args = append(c.args, e)
	return nil
}

// InsertArg inserts e at index i.
func (c *CallExpression) InsertArg(i int, e Expr) error {
	if i < 0 || i > len(c.args) {
		return &PositionError{Pos: i, Len: len(c.args)}
	}
	if e == nil {
		e = Null
	}
	c.args = slices.Insert(c.args, i, e)
	return nil
}

// Arguments returns the argument list.
func (c *CallExpression) Arguments() []Expr { return c.args }

func (*CallExpression) _expr() {}
func (*CallExpression) _code() {}
func (*CallExpression) _stmt() {}
