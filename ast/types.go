package ast

type (
	// Type is an expression naming a constructor: a primitive wrapper, a
	// declared class or any other named constructor.
	Type interface {
		Expr
		TypeName() string
	}

	PrimitiveType struct {
		name   string
		typeof string
	}

	// NamedType refers to a constructor by name only.
	NamedType struct {
		Name string
	}
)

var (
	TypeArray     = &PrimitiveType{name: "Array", typeof: "object"}
	TypeBoolean   = &PrimitiveType{name: "Boolean", typeof: "boolean"}
	TypeDate      = &PrimitiveType{name: "Date", typeof: "object"}
	TypeError     = &PrimitiveType{name: "Error", typeof: "object"}
	TypeFunction  = &PrimitiveType{name: "Function", typeof: "function"}
	TypeNumber    = &PrimitiveType{name: "Number", typeof: "number"}
	TypeObject    = &PrimitiveType{name: "Object", typeof: "object"}
	TypeRegExp    = &PrimitiveType{name: "RegExp", typeof: "object"}
	TypeString    = &PrimitiveType{name: "String", typeof: "string"}
	TypeUndefined = &PrimitiveType{name: "undefined", typeof: "undefined"}
)

func (t *PrimitiveType) TypeName() string { return t.name }

// TypeofName is the string typeof yields for values of t.
func (t *PrimitiveType) TypeofName() string { return t.typeof }

// TypeRef returns a reference to the constructor called name.
func TypeRef(name string) *NamedType {
	return &NamedType{Name: name}
}

func (t *NamedType) TypeName() string { return t.Name }

func (*PrimitiveType) _expr() {}
func (*NamedType) _expr()     {}
