package ast

// Visitor is called for each node reached by Walk. Returning false skips
// the node's children.
type Visitor interface {
	Visit(node any) bool
}

// VisitorFunc adapts a function to a Visitor.
type VisitorFunc func(node any) bool

func (f VisitorFunc) Visit(node any) bool { return f(node) }

// Walk visits node and then its children in print order. Blocks that were
// never created are not visited. Identifiers bound to a declaration visit
// the declaration's name only, never its initializer.
func Walk(v Visitor, node any) {
	if node == nil || !v.Visit(node) {
		return
	}
	walkChildren(v, node)
}

// Inspect walks node calling f for every node.
func Inspect(node any, f func(node any) bool) {
	Walk(VisitorFunc(f), node)
}

// Uses reports whether anything under node declares or refers to d.
func Uses(node any, d Decl) bool {
	found := false
	Inspect(node, func(n any) bool {
		if found {
			return false
		}
		switch n := n.(type) {
		case *Identifier:
			found = n.v != nil && Decl(n.v) == d
		case *Variable:
			found = Decl(n) == d
		case *Function:
			found = Decl(n) == d
		case *Class:
			found = Decl(n) == d
		case *CallExpression:
			if n.Callee != nil {
				if cd, ok := n.Callee.(Decl); ok && cd == d {
					found = true
				}
			}
		}
		return !found
	})
	return found
}

func walkExprs(v Visitor, exprs []Expr) {
	for _, e := range exprs {
		if e != nil {
			Walk(v, e)
		}
	}
}

func walkBlock(v Visitor, b *Block) {
	if b != nil {
		Walk(v, b)
	}
}

func walkChildren(v Visitor, node any) {
	switch n := node.(type) {
	case *Package:
		for _, c := range n.items {
			Walk(v, c)
		}
	case *Block:
		for _, c := range n.items {
			Walk(v, c)
		}
	case *Variable:
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *Function:
		walkSignature(v, &n.Signature)
	case *FunctionLiteral:
		walkSignature(v, &n.Signature)
	case *Method:
		walkSignature(v, &n.Signature)
	case *Class:
		if n.ctor != nil {
			walkSignature(v, &n.ctor.Signature)
		}
		for _, f := range n.fields {
			Walk(v, f)
		}
		for _, m := range n.methods {
			Walk(v, m)
		}
	case *MemberExpression:
		Walk(v, n.Object)
	case *IndexExpression:
		walkExprs(v, []Expr{n.Object, n.Index})
	case *CastExpression:
		walkExprs(v, []Expr{n.Type, n.Expr})
	case *ArrayLiteral:
		walkExprs(v, n.Value)
	case *ObjectLiteral:
		for _, k := range n.keys {
			Walk(v, n.values[k])
		}
	case *AssignExpression:
		walkExprs(v, []Expr{n.Left, n.Right})
	case *CallExpression:
		if n.Anonymous != nil {
			Walk(v, n.Anonymous)
		}
		walkExprs(v, []Expr{n.Object, n.Constructor})
		walkExprs(v, n.args)
	case *UnaryExpression:
		Walk(v, n.Operand)
	case *BinaryExpression:
		walkExprs(v, []Expr{n.Left, n.Right})
	case *ConditionalExpression:
		walkExprs(v, []Expr{n.Test, n.Consequent, n.Alternate})
	case *ParenExpression:
		Walk(v, n.Expr)
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *IfStatement:
		Walk(v, n.Test)
		walkBlock(v, n.consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *ForStatement:
		walkExprs(v, n.Initializer)
		walkExprs(v, []Expr{n.Test, n.Update})
		walkBlock(v, n.body)
	case *ForInStatement:
		walkExprs(v, []Expr{n.Into, n.Object})
		walkBlock(v, n.body)
	case *WhileStatement:
		Walk(v, n.Test)
		walkBlock(v, n.body)
	case *DoWhileStatement:
		walkBlock(v, n.body)
		Walk(v, n.Test)
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases() {
			Walk(v, c)
		}
	case *CaseStatement:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		walkBlock(v, n.body)
	case *TryStatement:
		walkBlock(v, n.body)
		if n.catch != nil {
			Walk(v, n.catch)
		}
		walkBlock(v, n.finally)
	case *CatchStatement:
		if n.param != nil {
			Walk(v, n.param)
		}
		walkBlock(v, n.body)
	case *ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *DeleteStatement:
		Walk(v, n.Argument)
	}
}

func walkSignature(v Visitor, s *Signature) {
	for _, p := range s.params {
		Walk(v, p)
	}
	walkBlock(v, s.body)
}
