package ast

type (
	// Code is anything a Block can hold: statements, declarations and
	// pre-rendered fragments.
	Code interface {
		_code()
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		_expr()
	}

	// Target is an expression that may appear on the left side of an
	// assignment or an increment.
	Target interface {
		Expr
		_target()
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Code
		_stmt()
	}

	// Decl is a named declaration. Names are unique within the Block,
	// Class or parameter list that owns the declaration.
	Decl interface {
		Code
		Name() string
		_decl()
	}

	// Fragment is pre-rendered JavaScript emitted verbatim. Source must carry
	// its own terminator: minified output adds no separator after it.
	Fragment struct {
		Source string
	}
)

// namespace owns a set of uniquely named declarations.
type namespace interface {
	rename(d Decl, name string) error
}

type named interface {
	Decl
	setName(name string)
	setOwner(ns namespace)
}

// documented carries the lazily created JSDoc of a declaration.
type documented struct {
	doc *JSDoc
}

// JSDoc returns the documentation comment, creating it on first use.
func (d *documented) JSDoc() *JSDoc {
	if d.doc == nil {
		d.doc = &JSDoc{}
	}
	return d.doc
}

// Doc returns the documentation comment or nil if none was created.
func (d *documented) Doc() *JSDoc { return d.doc }

func (*Fragment) _code() {}
