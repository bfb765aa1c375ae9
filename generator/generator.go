package generator

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/jscode/ast"
	"github.com/t14raptor/jscode/token"
)

// Generate renders an expression.
func Generate(e ast.Expr, settings *Settings) (string, error) {
	return renderString(e, settings, gen)
}

// GenerateTo renders an expression to w.
func GenerateTo(w io.Writer, e ast.Expr, settings *Settings) error {
	return render(w, e, settings, gen)
}

// Declare renders a declaration with its JSDoc and terminator.
func Declare(d ast.Decl, settings *Settings) (string, error) {
	return renderString(d, settings, declare)
}

// DeclareTo renders a declaration to w.
func DeclareTo(w io.Writer, d ast.Decl, settings *Settings) error {
	return render(w, d, settings, declare)
}

// State renders a statement with its terminator.
func State(st ast.Stmt, settings *Settings) (string, error) {
	return renderString(st, settings, stmt)
}

// StateTo renders a statement to w.
func StateTo(w io.Writer, st ast.Stmt, settings *Settings) error {
	return render(w, st, settings, stmt)
}

// Render renders any block content: a package, a block, a statement, a
// declaration or a fragment.
func Render(c ast.Code, settings *Settings) (string, error) {
	return renderString(c, settings, code)
}

// RenderTo renders block content to w. Output written before a failure
// stays in w.
func RenderTo(w io.Writer, c ast.Code, settings *Settings) error {
	return render(w, c, settings, code)
}

func renderString(node any, settings *Settings, fn func(*state)) (string, error) {
	var sb strings.Builder
	if err := render(&sb, node, settings, fn); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(w io.Writer, node any, settings *Settings, fn func(*state)) (err error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	out := bufio.NewWriter(w)
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(renderError)
			if !ok {
				panic(r)
			}
			err = re.err
		}
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()

	fn(&state{
		printer: &printer{out: out, settings: settings, bol: true},
		node:    node,
	})
	return nil
}

// code dispatches an item of a block by its kind.
func code(s *state) {
	switch n := s.node.(type) {
	case ast.Decl:
		declare(s)
	case ast.Stmt:
		stmt(s)
	case *ast.Fragment:
		s.plain(n.Source)
		s.nl()
	case *ast.Package:
		s.items(n.Items())
	default:
		s.fail(fmt.Errorf("gen: unexpected node type %T", n))
	}
}

func (s *state) items(items []ast.Code) {
	for _, c := range items {
		code(s.wrap(c))
	}
}

func (s *state) block(b *ast.Block) {
	if b.Braces {
		s.plain("{")
		s.nl()
	}
	if b.Indent {
		s.indentIn()
	}
	s.items(b.Items())
	if b.Indent {
		s.outdent()
	}
	if b.Braces {
		s.plain("}")
	}
}

// gen renders an expression, parenthesized when its parent requires it.
func gen(s *state) {
	paren := s.needsParens()
	if paren {
		s.plain("(")
	}
	genExpr(s)
	if paren {
		s.plain(")")
	}
}

func genExpr(s *state) {
	switch n := s.node.(type) {
	case *ast.BooleanLiteral:
		s.plain(strconv.FormatBool(n.Value))
	case *ast.IntLiteral:
		s.plain(strconv.FormatInt(n.Value, 10))
	case *ast.DecimalLiteral:
		s.plain(formatDecimal(n.Value))
	case *ast.BigDecimalLiteral:
		s.plain(n.Value.String())
	case *ast.StringLiteral:
		s.plain(quote(n.Value))
	case *ast.RegExpLiteral:
		pattern := escapeRegExp(n.Pattern)
		if pattern == "" {
			// "//" would open a line comment.
			pattern = "(?:)"
		}
		s.plain("/" + pattern + "/" + n.Flags())
	case *ast.NullLiteral:
		s.plain("null")
	case *ast.ThisExpression:
		s.plain("this")
	case *ast.RawExpression:
		s.plain(n.Source)
	case *ast.Identifier:
		if v := n.Variable(); v != nil {
			s.variable(v)
		} else {
			s.plain(n.Name())
		}
	case *ast.Variable:
		s.variable(n)
	case *ast.Function:
		s.plain(n.Name())
	case *ast.Class:
		s.plain(n.Name())
	case *ast.PrimitiveType:
		s.plain(n.TypeName())
	case *ast.NamedType:
		s.plain(n.Name)
	case *ast.MemberExpression:
		gen(s.wrap(n.Object))
		if ast.IsIdentifierName(n.Property) {
			s.plain("." + n.Property)
		} else {
			s.plain("[" + quote(n.Property) + "]")
		}
	case *ast.IndexExpression:
		gen(s.wrap(n.Object))
		s.plain("[")
		gen(s.wrap(n.Index))
		s.plain("]")
	case *ast.CallExpression:
		s.call(n)
	case *ast.CastExpression:
		gen(s.wrap(n.Type))
		s.plain("(")
		gen(s.wrap(n.Expr))
		s.plain(")")
	case *ast.ArrayLiteral:
		s.plain("[")
		s.list(n.Value)
		s.plain("]")
	case *ast.ObjectLiteral:
		s.object(n)
	case *ast.FunctionLiteral:
		s.plain("function")
		s.signature(&n.Signature)
	case *ast.ParenExpression:
		s.plain("(")
		gen(s.wrap(n.Expr))
		s.plain(")")
	case *ast.UnaryExpression:
		if n.Postfix {
			gen(s.wrap(n.Operand))
			s.plain(n.Operator.String())
			break
		}
		s.plain(n.Operator.String())
		if n.Operator.IsWord() {
			s.plain(" ")
		}
		gen(s.wrap(n.Operand))
	case *ast.BinaryExpression:
		gen(s.wrap(n.Left))
		if n.Operator.IsWord() {
			s.plain(" " + n.Operator.String() + " ")
		} else {
			s.plain(n.Operator.String())
		}
		gen(s.wrap(n.Right))
	case *ast.ConditionalExpression:
		s.plain("(")
		gen(s.wrap(n.Test))
		s.plain("?")
		gen(s.wrap(n.Consequent))
		s.plain(":")
		gen(s.wrap(n.Alternate))
		s.plain(")")
	case *ast.AssignExpression:
		gen(s.wrap(n.Left))
		s.plain(n.Operator.String())
		gen(s.wrap(n.Right))
	default:
		s.fail(fmt.Errorf("gen: unexpected node type %T", n))
	}
}

func (s *state) variable(v *ast.Variable) {
	if v.Kind == ast.KindField {
		s.plain("this.")
	}
	s.plain(v.Name())
}

func (s *state) list(exprs []ast.Expr) {
	for i, e := range exprs {
		if i > 0 {
			s.plain(",")
		}
		gen(s.wrap(e))
	}
}

func (s *state) call(n *ast.CallExpression) {
	switch {
	case n.Anonymous != nil:
		s.plain("(")
		gen(s.wrap(n.Anonymous))
		s.plain(")")
	case n.Constructor != nil:
		s.plain("new ")
		gen(s.wrap(n.Constructor))
	default:
		name, ok := n.ResolveName()
		if !ok {
			s.fail(&ast.UnresolvedCalleeError{Receiver: n.Object})
		}
		if n.Object != nil {
			gen(s.wrap(n.Object))
			s.plain(".")
		}
		s.plain(name)
	}
	s.plain("(")
	s.list(n.Arguments())
	s.plain(")")
}

func (s *state) object(n *ast.ObjectLiteral) {
	keys := n.Keys()
	if len(keys) == 0 {
		s.plain("{}")
		return
	}
	s.plain("{")
	s.nl()
	s.indentIn()
	for i, k := range keys {
		if i > 0 {
			s.plain(",")
			s.nl()
		}
		if !n.ForceQuoting && ast.IsIdentifier(k) {
			s.plain(k)
		} else {
			s.plain(quote(k))
		}
		s.plain(":")
		v, _ := n.Get(k)
		gen(s.wrap(v))
	}
	s.nl()
	s.outdent()
	s.plain("}")
}

func (s *state) signature(sig *ast.Signature) {
	s.plain("(")
	for i, p := range sig.Params() {
		if i > 0 {
			s.plain(",")
		}
		s.plain(p.Name())
	}
	s.plain(")")
	if sig.HasBody() {
		s.block(sig.Body())
	} else {
		s.block(ast.NewBlock())
	}
}

// needsParens reports whether the expression in s must be parenthesized
// to keep its meaning under its parent.
func (s *state) needsParens() bool {
	if s.parent == nil {
		return false
	}
	switch n := s.node.(type) {
	case *ast.BinaryExpression:
		switch p := s.parent.node.(type) {
		case *ast.BinaryExpression:
			prec, parentPrec := n.Operator.Precedence(), p.Operator.Precedence()
			if prec != parentPrec {
				return prec < parentPrec
			}
			if p.Right != s.node {
				return false
			}
			return n.UseBraces || n.Operator != p.Operator || !n.Operator.Associative()
		case *ast.UnaryExpression:
			return true
		}
		return s.isReceiver()
	case *ast.AssignExpression:
		return s.inOperator() || s.isReceiver()
	case *ast.UnaryExpression:
		switch p := s.parent.node.(type) {
		case *ast.UnaryExpression:
			return true
		case *ast.BinaryExpression:
			if n.WithParens {
				return true
			}
			// a+ ++b would otherwise print as a+++b.
			return !n.Postfix && p.Right == s.node &&
				(n.Operator == token.Increment || n.Operator == token.Decrement)
		}
		return s.isReceiver()
	case *ast.IntLiteral:
		return s.isReceiver() || n.Value < 0 && s.inOperator()
	case *ast.DecimalLiteral:
		return math.Signbit(n.Value) && (s.inOperator() || s.isReceiver())
	case *ast.BigDecimalLiteral:
		// String drops trailing zeros, so 3.0 prints as 3.
		return s.isReceiver() || n.Value.Sign() < 0 && s.inOperator()
	case *ast.ObjectLiteral, *ast.FunctionLiteral:
		return s.isReceiver()
	}
	return false
}

func (s *state) inOperator() bool {
	switch s.parent.node.(type) {
	case *ast.BinaryExpression, *ast.UnaryExpression:
		return true
	}
	return false
}

func (s *state) isReceiver() bool {
	switch p := s.parent.node.(type) {
	case *ast.MemberExpression:
		return p.Object == s.node
	case *ast.IndexExpression:
		return p.Object == s.node
	case *ast.CallExpression:
		return p.Object == s.node
	}
	return false
}
