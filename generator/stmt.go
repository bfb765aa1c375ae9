package generator

import (
	"fmt"

	"github.com/t14raptor/jscode/ast"
	"github.com/t14raptor/jscode/token"
)

func stmt(s *state) {
	switch n := s.node.(type) {
	case *ast.ExpressionStatement:
		s.wrap(n.Expression).statementExpr()
		s.terminate()
	case *ast.CallExpression, *ast.AssignExpression, *ast.UnaryExpression:
		s.statementExpr()
		s.terminate()
	case *ast.Block:
		s.block(n)
		if n.Braces {
			s.nl()
		}
	case *ast.IfStatement:
		s.ifStmt(n)
		s.nl()
	case *ast.ForStatement:
		s.plain("for(")
		s.forInit(n.Initializer)
		s.plain(";")
		if n.Test != nil {
			gen(s.wrap(n.Test))
		}
		s.plain(";")
		if n.Update != nil {
			gen(s.wrap(n.Update))
		}
		s.plain(")")
		s.loopBody(n.HasBody(), n.Body)
	case *ast.ForInStatement:
		s.plain("for(")
		if v := n.Var(); v != nil {
			s.plain(keyword(v.Kind).String() + " " + v.Name())
		} else {
			gen(s.wrap(n.Into))
		}
		s.plain(" in ")
		gen(s.wrap(n.Object))
		s.plain(")")
		s.loopBody(n.HasBody(), n.Body)
	case *ast.WhileStatement:
		s.plain("while(")
		gen(s.wrap(n.Test))
		s.plain(")")
		s.loopBody(n.HasBody(), n.Body)
	case *ast.DoWhileStatement:
		s.plain("do")
		s.block(n.Body())
		s.plain("while(")
		gen(s.wrap(n.Test))
		s.plain(")")
		s.terminate()
	case *ast.SwitchStatement:
		s.plain("switch(")
		gen(s.wrap(n.Discriminant))
		s.plain("){")
		s.nl()
		s.indentIn()
		for _, c := range n.Cases() {
			if c.IsDefault() {
				s.plain("default:")
			} else {
				s.plain("case ")
				gen(s.wrap(c.Test))
				s.plain(":")
			}
			s.nl()
			s.indentIn()
			s.items(c.Body().Items())
			s.outdent()
		}
		s.outdent()
		s.plain("}")
		s.nl()
	case *ast.TryStatement:
		s.plain("try")
		s.block(n.Body())
		c := n.CatchClause()
		if c != nil {
			s.plain("catch")
			if p := c.Param(); p != nil {
				s.plain("(" + p.Name() + ")")
			}
			s.block(c.Body())
		}
		if n.HasFinally() || c == nil {
			s.plain("finally")
			s.block(n.Finally())
		}
		s.nl()
	case *ast.LabelledStatement:
		s.plain(n.Name() + ":")
	case *ast.BreakStatement:
		s.jump(token.Break, n.Label)
	case *ast.ContinueStatement:
		s.jump(token.Continue, n.Label)
	case *ast.ReturnStatement:
		s.plain("return")
		if n.Argument != nil {
			s.plain(" ")
			gen(s.wrap(n.Argument))
		}
		s.terminate()
	case *ast.ThrowStatement:
		s.plain("throw ")
		gen(s.wrap(n.Argument))
		s.terminate()
	case *ast.DeleteStatement:
		s.plain("delete ")
		gen(s.wrap(n.Argument))
		s.terminate()
	case *ast.DebuggerStatement:
		s.plain("debugger")
		s.terminate()
	case *ast.LineComment:
		s.lineComment(n.Text)
	default:
		s.fail(fmt.Errorf("gen: unexpected node type %T", n))
	}
}

func (s *state) terminate() {
	s.plain(";")
	s.nl()
}

// statementExpr prints an expression in statement position. An object or
// function literal must not be the first token there.
func (s *state) statementExpr() {
	if !startsWithLiteral(s.node) {
		gen(s)
		return
	}
	s.plain("(")
	gen(s)
	s.plain(")")
}

// startsWithLiteral reports whether the leftmost operand of e is an object
// or function literal printed without parens of its own.
func startsWithLiteral(e any) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			return true
		case *ast.BinaryExpression:
			switch l := n.Left.(type) {
			case *ast.AssignExpression:
				return false
			case *ast.BinaryExpression:
				if l.Operator.Precedence() < n.Operator.Precedence() {
					return false
				}
			}
			e = n.Left
		case *ast.AssignExpression:
			e = n.Left
		case *ast.MemberExpression:
			if !isChain(n.Object) {
				return false
			}
			e = n.Object
		case *ast.IndexExpression:
			if !isChain(n.Object) {
				return false
			}
			e = n.Object
		case *ast.CallExpression:
			if n.Anonymous != nil || n.Constructor != nil || !isChain(n.Object) {
				return false
			}
			e = n.Object
		case *ast.UnaryExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand
		default:
			return false
		}
	}
}

// isChain reports whether a receiver prints without parens and can still
// hide a literal further left. Other receivers are parenthesized by gen.
func isChain(e ast.Expr) bool {
	switch e.(type) {
	case *ast.MemberExpression, *ast.IndexExpression, *ast.CallExpression:
		return true
	}
	return false
}

func (s *state) ifStmt(n *ast.IfStatement) {
	s.plain("if(")
	gen(s.wrap(n.Test))
	s.plain(")")
	s.block(n.Consequent())
	switch alt := n.Alternate.(type) {
	case *ast.IfStatement:
		s.plain("else ")
		s.ifStmt(alt)
	case *ast.Block:
		s.plain("else")
		s.block(alt)
	}
}

func (s *state) forInit(inits []ast.Expr) {
	declared := false
	for i, e := range inits {
		if i > 0 {
			s.plain(",")
		}
		v, ok := e.(*ast.Variable)
		if !ok {
			s.initExpr(e)
			continue
		}
		if !declared {
			s.plain(keyword(v.Kind).String() + " ")
			declared = true
		}
		s.plain(v.Name())
		if v.Init != nil {
			s.plain("=")
			s.initExpr(v.Init)
		}
	}
}

// initExpr prints a for initializer. A bare in operator there would read as
// a for-in head.
func (s *state) initExpr(e ast.Expr) {
	if !containsIn(e) {
		gen(s.wrap(e))
		return
	}
	s.plain("(")
	gen(s.wrap(e))
	s.plain(")")
}

func containsIn(e ast.Expr) bool {
	found := false
	ast.Inspect(e, func(n any) bool {
		switch n := n.(type) {
		case *ast.BinaryExpression:
			if n.Operator == token.In {
				found = true
			}
		case *ast.FunctionLiteral:
			return false
		}
		return !found
	})
	return found
}

// loopBody prints the body block, or an empty statement for a loop
// without one.
func (s *state) loopBody(has bool, body func() *ast.Block) {
	if !has {
		s.terminate()
		return
	}
	s.block(body())
	s.nl()
}

func (s *state) jump(tok token.Token, label *ast.LabelledStatement) {
	s.plain(tok.String())
	if label != nil {
		s.plain(" " + label.Name())
	}
	s.terminate()
}

// keyword returns the declaring keyword for k; params and fields declare
// with var.
func keyword(k ast.VarKind) token.Token {
	if kw := k.Keyword(); kw != 0 {
		return kw
	}
	return token.Var
}
