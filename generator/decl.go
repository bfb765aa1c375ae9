package generator

import (
	"fmt"

	"github.com/t14raptor/jscode/ast"
)

func declare(s *state) {
	switch n := s.node.(type) {
	case *ast.Variable:
		s.jsDoc(n.Doc())
		s.plain(keyword(n.Kind).String() + " " + n.Name())
		if n.Init != nil {
			s.plain("=")
			gen(s.wrap(n.Init))
		}
		s.terminate()
	case *ast.Function:
		s.jsDoc(n.Doc())
		s.plain("function " + n.Name())
		s.signature(&n.Signature)
		s.nl()
	case *ast.Class:
		s.jsDoc(n.Doc())
		sig := &ast.Signature{}
		if ctor := n.Ctor(); ctor != nil {
			sig = &ctor.Signature
		}
		s.plain("function " + n.Name())
		s.signature(sig)
		s.nl()
		stmt(s.wrap(n.PrototypeAssignment()))
	default:
		s.fail(fmt.Errorf("gen: unexpected node type %T", n))
	}
}
