package ast

import (
	"slices"

	"github.com/t14raptor/jscode/token"
)

// container is an ordered list of code with an insertion cursor and an
// index of the declarations it holds.
type container struct {
	items []Code
	decls map[string]Decl
	pos   int
}

// Block is a statement list. Braces and Indent control how it prints;
// NewBlock enables both.
type Block struct {
	container

	Braces bool
	Indent bool
}

// Package is a top-level statement list printed without braces. Adding a
// Package to a Block or another Package adds its items one by one.
type Package struct {
	container
}

func NewBlock() *Block {
	return &Block{Braces: true, Indent: true}
}

func NewPackage() *Package {
	return &Package{}
}

// Items returns the contents in order.
func (c *container) Items() []Code { return c.items }

func (c *container) Len() int      { return len(c.items) }
func (c *container) IsEmpty() bool { return len(c.items) == 0 }

// Pos returns the insertion cursor.
func (c *container) Pos() int { return c.pos }

// SetPos moves the insertion cursor to n, which must be within [0, Len()].
func (c *container) SetPos(n int) error {
	if n < 0 || n > len(c.items) {
		return &PositionError{Pos: n, Len: len(c.items)}
	}
	c.pos = n
	return nil
}

// PosEnd moves the insertion cursor to the end.
func (c *container) PosEnd() { c.pos = len(c.items) }

// Clear removes everything and resets the cursor.
func (c *container) Clear() {
	for _, d := range c.decls {
		if n, ok := d.(named); ok {
			n.setOwner(nil)
		}
	}
	c.items = nil
	c.decls = nil
	c.pos = 0
}

func (c *container) insert(code Code) {
	// Removals do not move the cursor, so it may point past the end.
	i := min(c.pos, len(c.items))
	c.items = slices.Insert(c.items, i, code)
	c.pos = i + 1
}

// Add inserts code at the cursor. Declarations are indexed by name and
// packages are flattened.
func (c *container) Add(code Code) error {
	switch n := code.(type) {
	case *Package:
		return c.addAll(n.items)
	case *Block:
		if !n.Braces {
			return c.addAll(n.items)
		}
	case Decl:
		return c.AddDecl(n)
	}
	c.insert(code)
	return nil
}

func (c *container) addAll(items []Code) error {
	seen := map[string]Decl{}
	for _, code := range items {
		if d, ok := code.(Decl); ok {
			if old := c.decls[d.Name()]; old != nil {
				return &DuplicateNameError{Name: d.Name(), Existing: old}
			}
			if old := seen[d.Name()]; old != nil {
				return &DuplicateNameError{Name: d.Name(), Existing: old}
			}
			seen[d.Name()] = d
		}
	}
	for _, code := range items {
		if err := c.Add(code); err != nil {
			return err
		}
	}
	return nil
}

// AddStatement inserts s at the cursor.
func (c *container) AddStatement(s Stmt) {
	c.insert(s)
}

// AddDecl inserts d at the cursor. It fails if the name is taken.
func (c *container) AddDecl(d Decl) error {
	if old := c.decls[d.Name()]; old != nil {
		return &DuplicateNameError{Name: d.Name(), Existing: old}
	}
	if c.decls == nil {
		c.decls = map[string]Decl{}
	}
	c.decls[d.Name()] = d
	if n, ok := d.(named); ok {
		n.setOwner(c)
	}
	c.insert(d)
	return nil
}

// Decl returns the declaration called name.
func (c *container) Decl(name string) (Decl, bool) {
	d, ok := c.decls[name]
	return d, ok
}

func (c *container) IsDeclared(name string) bool {
	_, ok := c.decls[name]
	return ok
}

// Remove removes code. The cursor does not move.
func (c *container) Remove(code Code) bool {
	i := slices.Index(c.items, code)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	if d, ok := code.(Decl); ok && c.decls[d.Name()] == d {
		delete(c.decls, d.Name())
		if n, ok := d.(named); ok {
			n.setOwner(nil)
		}
	}
	return true
}

// RemoveByName removes the declaration called name. The cursor does not
// move.
func (c *container) RemoveByName(name string) (Decl, bool) {
	d, ok := c.decls[name]
	if !ok {
		return nil, false
	}
	c.Remove(d)
	return d, true
}

func (c *container) rename(d Decl, name string) error {
	if old, ok := c.decls[name]; ok {
		if old == d {
			return nil
		}
		return &DuplicateNameError{Name: name, Existing: old}
	}
	delete(c.decls, d.Name())
	d.(named).setName(name)
	c.decls[name] = d
	return nil
}

func (c *container) declare(kind VarKind, name string, init Expr) (*Variable, error) {
	v, err := NewVariable(kind, name, init)
	if err != nil {
		return nil, err
	}
	if err := c.AddDecl(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Var declares "var name=init"; init may be nil.
func (c *container) Var(name string, init Expr) (*Variable, error) {
	return c.declare(KindVar, name, init)
}

func (c *container) Let(name string, init Expr) (*Variable, error) {
	return c.declare(KindLet, name, init)
}

func (c *container) Const(name string, init Expr) (*Variable, error) {
	return c.declare(KindConst, name, init)
}

// Function declares a named function.
func (c *container) Function(name string) (*Function, error) {
	f, err := NewFunction(name)
	if err != nil {
		return nil, err
	}
	if err := c.AddDecl(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Class declares a class.
func (c *container) Class(name string) (*Class, error) {
	cls, err := NewClass(name)
	if err != nil {
		return nil, err
	}
	if err := c.AddDecl(cls); err != nil {
		return nil, err
	}
	return cls, nil
}

// Expr adds e as an expression statement.
func (c *container) Expr(e Expr) *ExpressionStatement {
	s := &ExpressionStatement{Expression: e}
	c.insert(s)
	return s
}

// Call adds a call of the function called name.
func (c *container) Call(name string) *CallExpression {
	call := Call(name)
	c.insert(call)
	return call
}

// CallOn adds a call of method name on obj.
func (c *container) CallOn(obj Expr, name string) *CallExpression {
	call := CallOn(obj, name)
	c.insert(call)
	return call
}

// CallFunc adds a call of fn.
func (c *container) CallFunc(fn *Function) *CallExpression {
	call := CallFunc(fn)
	c.insert(call)
	return call
}

func (c *container) Assign(t Target, v Expr) *AssignExpression {
	return c.assign(Assign(t, v))
}

// AssignPlus adds t+=v. Adding zero is dropped and adding a negative
// number becomes a subtraction.
func (c *container) AssignPlus(t Target, v Expr) *AssignExpression {
	if n, ok := numberOf(v); ok {
		switch n.sign() {
		case 0:
			return nil
		case -1:
			return c.assign(AssignOp(t, token.SubtractAssign, n.neg()))
		}
	}
	return c.assign(AssignPlus(t, v))
}

// AssignMinus adds t-=v. Subtracting zero is dropped and subtracting a
// negative number becomes an addition.
func (c *container) AssignMinus(t Target, v Expr) *AssignExpression {
	if n, ok := numberOf(v); ok {
		switch n.sign() {
		case 0:
			return nil
		case -1:
			return c.assign(AssignOp(t, token.AddAssign, n.neg()))
		}
	}
	return c.assign(AssignMinus(t, v))
}

// AssignMul adds t*=v. Multiplying by one is dropped.
func (c *container) AssignMul(t Target, v Expr) *AssignExpression {
	if n, ok := numberOf(v); ok && n.isOne() {
		return nil
	}
	return c.assign(AssignMul(t, v))
}

// AssignDiv adds t/=v. Dividing by one is dropped.
func (c *container) AssignDiv(t Target, v Expr) *AssignExpression {
	if n, ok := numberOf(v); ok && n.isOne() {
		return nil
	}
	return c.assign(AssignDiv(t, v))
}

func (c *container) AssignMod(t Target, v Expr) *AssignExpression {
	return c.assign(AssignMod(t, v))
}

func (c *container) assign(a *AssignExpression) *AssignExpression {
	c.insert(a)
	return a
}

// Incr adds t++.
func (c *container) Incr(t Target) *UnaryExpression {
	u := Incr(t)
	c.insert(u)
	return u
}

// Decr adds t--.
func (c *container) Decr(t Target) *UnaryExpression {
	u := Decr(t)
	c.insert(u)
	return u
}

func (c *container) If(test Expr) *IfStatement {
	s := If(test)
	c.insert(s)
	return s
}

func (c *container) For() *ForStatement {
	s := For()
	c.insert(s)
	return s
}

func (c *container) ForIn(name string, obj Expr) (*ForInStatement, error) {
	s, err := ForIn(name, obj)
	if err != nil {
		return nil, err
	}
	c.insert(s)
	return s, nil
}

// SimpleLoop adds a counting loop over name from from to to, exclusive.
// It counts down when from is greater than to.
func (c *container) SimpleLoop(name string, from, to Expr) (*ForStatement, error) {
	s := For()
	v, err := s.Init(name, from)
	if err != nil {
		return nil, err
	}
	down := false
	if f, ok := numberOf(from); ok {
		if t, ok := numberOf(to); ok {
			down = f.float() > t.float()
		}
	}
	if down {
		s.Test = Gt(v, to)
		s.Update = Decr(v)
	} else {
		s.Test = Lt(v, to)
		s.Update = Incr(v)
	}
	c.insert(s)
	return s, nil
}

func (c *container) While(test Expr) *WhileStatement {
	s := While(test)
	c.insert(s)
	return s
}

func (c *container) DoWhile(test Expr) *DoWhileStatement {
	s := DoWhile(test)
	c.insert(s)
	return s
}

func (c *container) Switch(discriminant Expr) *SwitchStatement {
	s := Switch(discriminant)
	c.insert(s)
	return s
}

func (c *container) Try() *TryStatement {
	s := Try()
	c.insert(s)
	return s
}

func (c *container) Delete(e Expr) *DeleteStatement {
	s := Delete(e)
	c.insert(s)
	return s
}

func (c *container) Throw(e Expr) *ThrowStatement {
	s := Throw(e)
	c.insert(s)
	return s
}

func (c *container) Debugger() *DebuggerStatement {
	s := &DebuggerStatement{}
	c.insert(s)
	return s
}

func (c *container) Label(name string) (*LabelledStatement, error) {
	s, err := Label(name)
	if err != nil {
		return nil, err
	}
	c.insert(s)
	return s, nil
}

// Break adds a break, labelled when label is not nil.
func (c *container) Break(label *LabelledStatement) *BreakStatement {
	s := Break(label)
	c.insert(s)
	return s
}

// Continue adds a continue, labelled when label is not nil.
func (c *container) Continue(label *LabelledStatement) *ContinueStatement {
	s := Continue(label)
	c.insert(s)
	return s
}

// Return adds a return; e may be nil.
func (c *container) Return(e Expr) *ReturnStatement {
	s := Return(e)
	c.insert(s)
	return s
}

// Block adds a nested braced block.
func (c *container) Block() *Block {
	b := NewBlock()
	c.insert(b)
	return b
}

func (c *container) Comment(text string) *LineComment {
	s := &LineComment{Text: text}
	c.insert(s)
	return s
}

// Raw adds pre-rendered code.
func (c *container) Raw(source string) *Fragment {
	f := &Fragment{Source: source}
	c.insert(f)
	return f
}

func (*Block) _code()   {}
func (*Block) _stmt()   {}
func (*Package) _code() {}
