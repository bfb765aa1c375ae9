package ast

import (
	"log/slog"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Class is emitted as a constructor function followed by a single
// assignment of an object literal to its prototype.
type Class struct {
	// Super is the optional superclass.
	Super Type

	name    string
	owner   namespace
	ctor    *Function
	fields  []*Variable
	methods []*Method
	members map[string]Decl
	documented
}

// Method is a function stored on a class prototype.
type Method struct {
	Signature
	documented

	name  string
	class *Class
}

// NewClass validates name and returns an empty class.
func NewClass(name string) (*Class, error) {
	n, err := CheckIdentifier(name)
	if err != nil {
		return nil, err
	}
	if r, _ := utf8.DecodeRuneInString(n); !unicode.IsUpper(r) {
		slog.Warn("class name should start with an upper-case letter", "class", n)
	}
	return &Class{name: n, members: map[string]Decl{}}, nil
}

func (c *Class) Name() string     { return c.name }
func (c *Class) TypeName() string { return c.name }

func (c *Class) Rename(name string) error {
	n, err := CheckIdentifier(name)
	if err != nil {
		return err
	}
	if c.owner != nil {
		return c.owner.rename(c, n)
	}
	c.setName(n)
	return nil
}

func (c *Class) setName(name string) {
	c.name = name
	if c.ctor != nil {
		c.ctor.name = name
	}
}

func (c *Class) setOwner(ns namespace) { c.owner = ns }

// Extends sets the superclass.
func (c *Class) Extends(super Type) *Class {
	c.Super = super
	return c
}

// Field adds a field. A nil init is emitted as null.
func (c *Class) Field(name string, init Expr) (*Variable, error) {
	v, err := NewVariable(KindField, name, init)
	if err != nil {
		return nil, err
	}
	if err := c.claim(v); err != nil {
		return nil, err
	}
	c.fields = append(c.fields, v)
	return v, nil
}

// Method adds a method.
func (c *Class) Method(name string) (*Method, error) {
	n, err := CheckIdentifier(name)
	if err != nil {
		return nil, err
	}
	m := &Method{name: n, class: c}
	if err := c.claim(m); err != nil {
		return nil, err
	}
	c.methods = append(c.methods, m)
	return m, nil
}

func (c *Class) claim(d named) error {
	if c.members == nil {
		c.members = map[string]Decl{}
	}
	if old, ok := c.members[d.Name()]; ok {
		return &DuplicateNameError{Name: d.Name(), Existing: old}
	}
	c.members[d.Name()] = d
	d.setOwner(c)
	return nil
}

// Member returns the field or method called name.
func (c *Class) Member(name string) (Decl, bool) {
	d, ok := c.members[name]
	return d, ok
}

// RemoveField removes v from the class.
func (c *Class) RemoveField(v *Variable) bool {
	i := slices.Index(c.fields, v)
	if i < 0 {
		return false
	}
	c.fields = slices.Delete(c.fields, i, i+1)
	delete(c.members, v.name)
	v.owner = nil
	return true
}

// RemoveMethod removes m from the class.
func (c *Class) RemoveMethod(m *Method) bool {
	i := slices.Index(c.methods, m)
	if i < 0 {
		return false
	}
	c.methods = slices.Delete(c.methods, i, i+1)
	delete(c.members, m.name)
	m.class = nil
	return true
}

func (c *Class) rename(d Decl, name string) error {
	if old, ok := c.members[name]; ok {
		if old == d {
			return nil
		}
		return &DuplicateNameError{Name: name, Existing: old}
	}
	delete(c.members, d.Name())
	d.(named).setName(name)
	c.members[name] = d
	return nil
}

// Constructor returns the constructor function, creating it on first use.
func (c *Class) Constructor() *Function {
	if c.ctor == nil {
		c.ctor = &Function{name: c.name}
	}
	return c.ctor
}

// Ctor returns the constructor, or nil if none was created.
func (c *Class) Ctor() *Function { return c.ctor }

func (c *Class) Fields() []*Variable { return c.fields }
func (c *Class) Methods() []*Method  { return c.methods }

// Prototype returns Name.prototype.
func (c *Class) Prototype() *MemberExpression {
	return Member(c, "prototype")
}

// PrototypeObject builds the object literal assigned to the prototype:
// fields first, then methods, each in insertion order.
func (c *Class) PrototypeObject() *ObjectLiteral {
	obj := Object()
	for _, f := range c.fields {
		obj.Add(f.name, f.Init)
	}
	for _, m := range c.methods {
		obj.Add(m.name, m.Literal())
	}
	return obj
}

// PrototypeAssignment builds Name.prototype={...}, or with a superclass
// Name.prototype=Object.assign(Object.create(Super.prototype),{...}).
func (c *Class) PrototypeAssignment() *AssignExpression {
	var value Expr = c.PrototypeObject()
	if c.Super != nil {
		base := CallOn(TypeObject, "create").Arg(Member(c.Super, "prototype"))
		value = CallOn(TypeObject, "assign").Args(base, value)
	}
	return Assign(c.Prototype(), value)
}

func (m *Method) Name() string { return m.name }

// Class returns the owning class, or nil once removed.
func (m *Method) Class() *Class { return m.class }

func (m *Method) Rename(name string) error {
	n, err := CheckIdentifier(name)
	if err != nil {
		return err
	}
	if m.class != nil {
		return m.class.rename(m, n)
	}
	m.name = n
	return nil
}

func (m *Method) setName(name string) { m.name = name }

func (m *Method) setOwner(ns namespace) {
	if c, ok := ns.(*Class); ok {
		m.class = c
	}
}

// Literal returns the method as an anonymous function sharing its
// parameters and body.
func (m *Method) Literal() *FunctionLiteral {
	return &FunctionLiteral{Signature: m.Signature}
}

func (*Class) _expr() {}
func (*Class) _code() {}
func (*Class) _decl() {}

func (*Method) _code()     {}
func (*Method) _decl()     {}
func (*Method) _callable() {}
