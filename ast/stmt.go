package ast

type (
	ExpressionStatement struct {
		Expression Expr
	}

	// IfStatement holds an else-if chain in Alternate: nil, a *Block or
	// another *IfStatement.
	IfStatement struct {
		Test      Expr
		Alternate Stmt

		consequent *Block
	}

	// ForStatement initializers are variables, printed as one declaration
	// list, or plain expressions.
	ForStatement struct {
		Initializer []Expr
		Test        Expr
		Update      Expr

		body *Block
	}

	// ForInStatement iterates Object's keys into Into, which is a declared
	// variable or an assignment target.
	ForInStatement struct {
		Into   Target
		Object Expr

		body *Block
	}

	WhileStatement struct {
		Test Expr

		body *Block
	}

	DoWhileStatement struct {
		Test Expr

		body *Block
	}

	SwitchStatement struct {
		Discriminant Expr

		cases []*CaseStatement
		def   *CaseStatement
	}

	// CaseStatement is a switch case. Test is nil only for the default case.
	CaseStatement struct {
		Test Expr

		body *Block
	}

	TryStatement struct {
		body    *Block
		catch   *CatchStatement
		finally *Block
	}

	CatchStatement struct {
		param *Variable
		body  *Block
	}

	LabelledStatement struct {
		name string
	}

	BreakStatement struct {
		Label *LabelledStatement
	}

	ContinueStatement struct {
		Label *LabelledStatement
	}

	ReturnStatement struct {
		Argument Expr
	}

	ThrowStatement struct {
		Argument Expr
	}

	DeleteStatement struct {
		Argument Expr
	}

	DebuggerStatement struct{}

	// LineComment is a free-standing comment. Multi-line text is split on
	// newlines.
	LineComment struct {
		Text string
	}
)

func body(b **Block) *Block {
	if *b == nil {
		*b = NewBlock()
	}
	return *b
}

func If(test Expr) *IfStatement {
	return &IfStatement{Test: test}
}

// Consequent returns the then-block.
func (n *IfStatement) Consequent() *Block { return body(&n.consequent) }

// Else returns the final else-block of the chain, creating it on first use.
func (n *IfStatement) Else() *Block {
	switch alt := n.Alternate.(type) {
	case *Block:
		return alt
	case *IfStatement:
		return alt.Else()
	}
	b := NewBlock()
	n.Alternate = b
	return b
}

// ElseIf appends an else-if to the end of the chain. If the chain already
// ends in an else-block, the new if is added to that block.
func (n *IfStatement) ElseIf(test Expr) *IfStatement {
	switch alt := n.Alternate.(type) {
	case *IfStatement:
		return alt.ElseIf(test)
	case *Block:
		return alt.If(test)
	}
	next := If(test)
	n.Alternate = next
	return next
}

func For() *ForStatement {
	return &ForStatement{}
}

// Init adds a "var name=value" initializer.
func (n *ForStatement) Init(name string, value Expr) (*Variable, error) {
	v, err := NewVariable(KindVar, name, value)
	if err != nil {
		return nil, err
	}
	n.Initializer = append(n.Initializer, v)
	return v, nil
}

// InitExpr adds an expression initializer such as an assignment.
func (n *ForStatement) InitExpr(e Expr) *ForStatement {
	n.Initializer = append(n.Initializer, e)
	return n
}

func (n *ForStatement) Body() *Block { return body(&n.body) }

// HasBody reports whether the body holds anything.
func (n *ForStatement) HasBody() bool { return n.body != nil && !n.body.IsEmpty() }

// ForIn declares a loop variable called name over obj's keys.
func ForIn(name string, obj Expr) (*ForInStatement, error) {
	v, err := NewVariable(KindVar, name, nil)
	if err != nil {
		return nil, err
	}
	return &ForInStatement{Into: v, Object: obj}, nil
}

// Var returns the loop variable, or nil when iterating into a target.
func (n *ForInStatement) Var() *Variable {
	v, _ := n.Into.(*Variable)
	return v
}

func (n *ForInStatement) Body() *Block  { return body(&n.body) }
func (n *ForInStatement) HasBody() bool { return n.body != nil && !n.body.IsEmpty() }

func While(test Expr) *WhileStatement {
	return &WhileStatement{Test: test}
}

func (n *WhileStatement) Body() *Block  { return body(&n.body) }
func (n *WhileStatement) HasBody() bool { return n.body != nil && !n.body.IsEmpty() }

func DoWhile(test Expr) *DoWhileStatement {
	return &DoWhileStatement{Test: test}
}

func (n *DoWhileStatement) Body() *Block { return body(&n.body) }

func Switch(discriminant Expr) *SwitchStatement {
	return &SwitchStatement{Discriminant: discriminant}
}

// Case adds a labelled case.
func (n *SwitchStatement) Case(test Expr) (*CaseStatement, error) {
	if test == nil {
		return nil, &MalformedCaseError{}
	}
	c := &CaseStatement{Test: test}
	n.cases = append(n.cases, c)
	return c, nil
}

// Default returns the default case. Every call returns the same case.
func (n *SwitchStatement) Default() *CaseStatement {
	if n.def == nil {
		n.def = &CaseStatement{}
	}
	return n.def
}

// Cases returns the labelled cases followed by the default case, if any.
func (n *SwitchStatement) Cases() []*CaseStatement {
	if n.def == nil {
		return n.cases
	}
	return append(n.cases[:len(n.cases):len(n.cases)], n.def)
}

func (n *CaseStatement) Body() *Block {
	if n.body == nil {
		n.body = &Block{}
	}
	return n.body
}

// IsDefault reports whether n is the default case.
func (n *CaseStatement) IsDefault() bool { return n.Test == nil }

func Try() *TryStatement {
	return &TryStatement{}
}

func (n *TryStatement) Body() *Block { return body(&n.body) }

// Catch adds the catch clause binding name. It fails once a catch
// parameter is bound.
func (n *TryStatement) Catch(name string) (*CatchStatement, error) {
	if n.catch == nil {
		n.catch = &CatchStatement{}
	}
	if err := n.catch.SetParam(name); err != nil {
		return nil, err
	}
	return n.catch, nil
}

// CatchClause returns the catch clause, or nil.
func (n *TryStatement) CatchClause() *CatchStatement { return n.catch }

// Finally returns the finally block, creating it on first use.
func (n *TryStatement) Finally() *Block { return body(&n.finally) }

// HasFinally reports whether a finally block was created.
func (n *TryStatement) HasFinally() bool { return n.finally != nil }

// SetParam binds the catch parameter. It can be bound once.
func (n *CatchStatement) SetParam(name string) error {
	if n.param != nil {
		return &RebindError{What: "catch parameter", Bound: n.param.name}
	}
	v, err := NewVariable(KindParam, name, nil)
	if err != nil {
		return err
	}
	n.param = v
	return nil
}

// Param returns the bound parameter, or nil.
func (n *CatchStatement) Param() *Variable { return n.param }

func (n *CatchStatement) Body() *Block { return body(&n.body) }

// Label returns a label for the statement that follows it.
func Label(name string) (*LabelledStatement, error) {
	n, err := CheckIdentifier(name)
	if err != nil {
		return nil, err
	}
	return &LabelledStatement{name: n}, nil
}

func (n *LabelledStatement) Name() string { return n.name }

func Break(label *LabelledStatement) *BreakStatement {
	return &BreakStatement{Label: label}
}

func Continue(label *LabelledStatement) *ContinueStatement {
	return &ContinueStatement{Label: label}
}

func Return(e Expr) *ReturnStatement {
	return &ReturnStatement{Argument: e}
}

func Throw(e Expr) *ThrowStatement {
	return &ThrowStatement{Argument: e}
}

func Delete(e Expr) *DeleteStatement {
	return &DeleteStatement{Argument: e}
}

func (*ExpressionStatement) _code() {}
func (*IfStatement) _code()         {}
func (*ForStatement) _code()        {}
func (*ForInStatement) _code()      {}
func (*WhileStatement) _code()      {}
func (*DoWhileStatement) _code()    {}
func (*SwitchStatement) _code()     {}
func (*TryStatement) _code()        {}
func (*LabelledStatement) _code()   {}
func (*BreakStatement) _code()      {}
func (*ContinueStatement) _code()   {}
func (*ReturnStatement) _code()     {}
func (*ThrowStatement) _code()      {}
func (*DeleteStatement) _code()     {}
func (*DebuggerStatement) _code()   {}
func (*LineComment) _code()         {}

func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*SwitchStatement) _stmt()     {}
func (*TryStatement) _stmt()        {}
func (*LabelledStatement) _stmt()   {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*DeleteStatement) _stmt()     {}
func (*DebuggerStatement) _stmt()   {}
func (*LineComment) _stmt()         {}
