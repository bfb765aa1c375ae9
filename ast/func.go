package ast

import "slices"

// Signature is the parameter list and body shared by functions, methods
// and function literals.
type Signature struct {
	params []*Variable
	body   *Block
}

// Param appends a parameter. Parameter names are unique.
func (s *Signature) Param(name string) (*Variable, error) {
	v, err := NewVariable(KindParam, name, nil)
	if err != nil {
		return nil, err
	}
	if old := s.lookup(v.name); old != nil {
		return nil, &DuplicateNameError{Name: v.name, Existing: old}
	}
	v.owner = s
	s.params = append(s.params, v)
	return v, nil
}

// Params returns the parameters in order.
func (s *Signature) Params() []*Variable { return s.params }

// Body returns the body block, creating it on first use.
func (s *Signature) Body() *Block {
	if s.body == nil {
		s.body = NewBlock()
	}
	return s.body
}

// HasBody reports whether a body was created.
func (s *Signature) HasBody() bool { return s.body != nil }

func (s *Signature) lookup(name string) *Variable {
	i := slices.IndexFunc(s.params, func(p *Variable) bool { return p.name == name })
	if i < 0 {
		return nil
	}
	return s.params[i]
}

func (s *Signature) rename(d Decl, name string) error {
	if old := s.lookup(name); old != nil && Decl(old) != d {
		return &DuplicateNameError{Name: name, Existing: old}
	}
	d.(named).setName(name)
	return nil
}

// Function is a named function declaration.
type Function struct {
	Signature
	documented

	name  string
	owner namespace
}

func NewFunction(name string) (*Function, error) {
	n, err := CheckIdentifier(name)
	if err != nil {
		return nil, err
	}
	return &Function{name: n}, nil
}

func (f *Function) Name() string { return f.name }

func (f *Function) Rename(name string) error {
	n, err := CheckIdentifier(name)
	if err != nil {
		return err
	}
	if f.owner != nil {
		return f.owner.rename(f, n)
	}
	f.name = n
	return nil
}

func (f *Function) setName(name string)   { f.name = name }
func (f *Function) setOwner(ns namespace) { f.owner = ns }

// FunctionLiteral is an anonymous function expression.
type FunctionLiteral struct {
	Signature
}

// Func returns an empty anonymous function.
func Func() *FunctionLiteral {
	return &FunctionLiteral{}
}

func (*Function) _expr()     {}
func (*Function) _code()     {}
func (*Function) _decl()     {}
func (*Function) _callable() {}

func (*FunctionLiteral) _expr() {}
