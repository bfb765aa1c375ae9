package ast

import "github.com/t14raptor/jscode/token"

// VarKind selects the keyword a variable is declared with.
type VarKind int

const (
	KindVar VarKind = iota
	KindLet
	KindConst
	KindParam
	// KindField marks class fields; they are read as this.name.
	KindField
)

// Keyword returns the declaring keyword, or 0 for params and fields.
func (k VarKind) Keyword() token.Token {
	switch k {
	case KindVar:
		return token.Var
	case KindLet:
		return token.Let
	case KindConst:
		return token.Const
	}
	return 0
}

// Variable is a var, let or const declaration, a parameter or a class
// field. It is also an assignment target referring to itself.
type Variable struct {
	Kind VarKind
	Init Expr

	name  string
	owner namespace
	documented
}

// NewVariable validates name and returns an unattached variable.
func NewVariable(kind VarKind, name string, init Expr) (*Variable, error) {
	n, err := CheckIdentifier(name)
	if err != nil {
		return nil, err
	}
	return &Variable{Kind: kind, Init: init, name: n}, nil
}

func (v *Variable) Name() string { return v.name }

// SetInit replaces the initializer.
func (v *Variable) SetInit(e Expr) *Variable {
	v.Init = e
	return v
}

// Rename validates name and renames v in its owner's index. On error
// nothing changes.
func (v *Variable) Rename(name string) error {
	n, err := CheckIdentifier(name)
	if err != nil {
		return err
	}
	if v.owner != nil {
		return v.owner.rename(v, n)
	}
	v.name = n
	return nil
}

func (v *Variable) setName(name string)   { v.name = name }
func (v *Variable) setOwner(ns namespace) { v.owner = ns }

func (*Variable) _expr()   {}
func (*Variable) _target() {}
func (*Variable) _code()   {}
func (*Variable) _decl()   {}
