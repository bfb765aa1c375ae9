package generator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/t14raptor/jscode/ast"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustRender(t *testing.T, c ast.Code, settings *Settings) string {
	t.Helper()
	out, err := Render(c, settings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

// stripIndent removes leading whitespace from every line.
func stripIndent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, " \t")
	}
	return strings.Join(lines, "\n")
}

func addFunction() *ast.Package {
	p := ast.NewPackage()
	f := must(p.Function("add"))
	a := must(f.Param("a"))
	b := must(f.Param("b"))
	f.Body().Return(ast.Plus(a, b))
	return p
}

func TestAddFunction(t *testing.T) {
	got := mustRender(t, addFunction(), nil)
	want := "function add(a,b){\n  return a+b;\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if stripIndent(got) != "function add(a,b){\nreturn a+b;\n}\n" {
		t.Errorf("stripped: %q", stripIndent(got))
	}
	if minified := mustRender(t, addFunction(), MinifiedSettings()); minified != "function add(a,b){return a+b;}" {
		t.Errorf("minified: %q", minified)
	}
}

func TestExpressions(t *testing.T) {
	a, b, c := ast.Ident("a"), ast.Ident("b"), ast.Ident("c")
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"right nested minus", ast.Minus(a, ast.Minus(b, c)), "a-(b-c)"},
		{"right nested plus", ast.Plus(a, ast.Plus(b, c)), "a+(b+c)"},
		{"left nested minus", ast.Minus(ast.Minus(a, b), c), "a-b-c"},
		{"and chain", ast.And(a, ast.And(b, c)), "a&&b&&c"},
		{"lower precedence operand", ast.Mul(a, ast.Plus(b, c)), "a*(b+c)"},
		{"higher precedence operand", ast.Plus(a, ast.Mul(b, c)), "a+b*c"},
		{"mixed logical", ast.Or(ast.And(a, b), c), "a&&b||c"},
		{"negated sum", ast.Neg(ast.Plus(a, b)), "-(a+b)"},
		{"not in binary", ast.And(ast.Not(a), b), "(!a)&&b"},
		{"negative operand", ast.Minus(a, ast.Int(-1)), "a-(-1)"},
		{"pre increment on the right", ast.Plus(a, ast.PreIncr(b)), "a+(++b)"},
		{"typeof", ast.IsUndefined(a), "typeof a==='undefined'"},
		{"instanceof", ast.InstanceOf(a, ast.TypeDate), "a instanceof Date"},
		{"in", ast.In(ast.String("k"), a), "'k' in a"},
		{"conditional", ast.Cond(a, b, c), "(a?b:c)"},
		{"explicit parens", ast.Paren(a), "(a)"},
		{"folded", ast.Plus(ast.Int(2), ast.Int(3)), "5"},
		{"folded division", ast.Div(ast.Int(10), ast.Int(2)), "5.0"},
		{"decimal", ast.Decimal(0.5), "0.5"},
		{"small decimal", ast.Decimal(1e-7), "1e-7"},
		{"large decimal", ast.Decimal(1e21), "1e+21"},
		{"member", ast.Members(ast.Window, "location", "href"), "window.location.href"},
		{"quoted member", ast.Member(a, "foo-bar"), "a['foo-bar']"},
		{"index", ast.Index(a, ast.Int(0)), "a[0]"},
		{"int receiver", ast.CallOn(ast.Int(5), "toString"), "(5).toString()"},
		{"big decimal receiver", ast.CallOn(ast.BigDecimal(decimal.NewFromInt(5)), "toString"), "(5).toString()"},
		{"folded big decimal receiver", ast.CallOn(ast.Plus(ast.BigDecimal(decimal.RequireFromString("1.5")), ast.BigDecimal(decimal.RequireFromString("1.5"))), "toFixed"), "(3).toFixed()"},
		{"empty regexp", must(ast.NewRegExp("")), "/(?:)/"},
		{"sum receiver", ast.Member(ast.Plus(a, b), "length"), "(a+b).length"},
		{"cast", ast.Cast(ast.TypeNumber, a), "Number(a)"},
		{"new", ast.New(ast.TypeRef("Foo")).Arg(a), "new Foo(a)"},
		{"array", ast.Array(ast.Int(1), ast.Null, ast.True), "[1,null,true]"},
		{"empty object", ast.Object(), "{}"},
		{"string escapes", ast.String("it's \"x\"\n\\"), `'it\'s \"x\"\n\\'`},
		{"assign in operator", ast.And(ast.Assign(a, b), c), "(a=b)&&c"},
		{"global call", ast.ParseInt(a), "parseInt(a)"},
		{"element by id", ast.GetElementByID("main"), "document.getElementById('main')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.expr, MinifiedSettings())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name     string
		build    func(p *ast.Package)
		expected string
	}{
		{
			name: "declarations and assignment",
			build: func(p *ast.Package) {
				blk := p.Block()
				a := must(blk.Var("a", nil))
				b := must(blk.Var("b", ast.Int(5)))
				blk.Assign(a, b)
			},
			expected: "{var a;var b=5;a=b;}",
		},
		{
			name: "if",
			build: func(p *ast.Package) {
				p.If(ast.Eeq(ast.Int(1), ast.Int(1))).Consequent().Return(ast.False)
			},
			expected: "if(1===1){return false;}",
		},
		{
			name: "else if chain",
			build: func(p *ast.Package) {
				x := ast.Ident("x")
				s := p.If(ast.Lt(x, ast.Int(0)))
				s.Consequent().Return(ast.Int(-1))
				s.ElseIf(ast.Gt(x, ast.Int(0))).Consequent().Return(ast.Int(1))
				s.Else().Return(ast.Int(0))
			},
			expected: "if(x<0){return -1;}else if(x>0){return 1;}else{return 0;}",
		},
		{
			name: "for",
			build: func(p *ast.Package) {
				loop := must(p.SimpleLoop("i", ast.Int(0), ast.Int(5)))
				loop.Body().Continue(nil)
			},
			expected: "for(var i=0;i<5;i++){continue;}",
		},
		{
			name: "in inside for initializer",
			build: func(p *ast.Package) {
				must(p.For().Init("i", ast.In(ast.String("k"), ast.Ident("o"))))
			},
			expected: "for(var i=('k' in o);;);",
		},
		{
			name: "empty regexp before a statement",
			build: func(p *ast.Package) {
				must(p.Var("r", must(ast.NewRegExp(""))))
				p.Call("f")
			},
			expected: "var r=/(?:)/;f();",
		},
		{
			name: "leading function literal",
			build: func(p *ast.Package) {
				p.Expr(ast.Plus(ast.Func(), ast.Ident("x")))
			},
			expected: "(function(){}+x);",
		},
		{
			name: "leading object literal",
			build: func(p *ast.Package) {
				x := ast.Ident("x")
				p.Expr(ast.Plus(ast.Object(), x))
				p.Expr(ast.Assign(ast.Member(ast.Object(), "a"), x))
				p.CallOn(ast.Object(), "valueOf")
			},
			expected: "({}+x);({}).a=x;({}).valueOf();",
		},
		{
			name: "raw fragment keeps its own terminator",
			build: func(p *ast.Package) {
				p.Raw("var a=1;")
				p.Call("f")
			},
			expected: "var a=1;f();",
		},
		{
			name: "for without body",
			build: func(p *ast.Package) {
				f := p.For()
				must(f.Init("i", ast.Int(0)))
				must(f.Init("j", nil))
			},
			expected: "for(var i=0,j;;);",
		},
		{
			name: "do while",
			build: func(p *ast.Package) {
				i := must(ast.NewVariable(ast.KindVar, "i", nil))
				p.DoWhile(ast.Lt(i, ast.Int(1000))).Body().Incr(i)
			},
			expected: "do{i++;}while(i<1000);",
		},
		{
			name: "while",
			build: func(p *ast.Package) {
				p.While(ast.True).Body().Debugger()
			},
			expected: "while(true){debugger;}",
		},
		{
			name: "regex",
			build: func(p *ast.Package) {
				re := must(ast.NewRegExp("water(mark)?"))
				re.Global, re.IgnoreCase, re.Multiline = true, true, true
				p.CallOn(re, "test").Arg(ast.String("waterMark"))
			},
			expected: "/water(mark)?/gim.test('waterMark');",
		},
		{
			name: "anonymous function",
			build: func(p *ast.Package) {
				fn := ast.Func()
				a := must(fn.Param("a"))
				fn.Body().Return(ast.Plus(a, ast.Decimal(0.5)))
				p.AddStatement(ast.CallAnonymous(fn).Arg(ast.Decimal(7.5)))
			},
			expected: "(function(a){return a+0.5;})(7.5);",
		},
		{
			name: "nested object",
			build: func(p *ast.Package) {
				array1 := must(p.Var("array1", ast.Array()))
				inner := ast.Object().Add("key", ast.String("value")).Add("key2", ast.String("anything else"))
				obj := ast.Object().Add("num", ast.Int(1)).Add("array", array1).Add("assocarray", inner)
				must(p.Var("array2", obj))
			},
			expected: "var array1=[];var array2={num:1,array:array1,assocarray:{key:'value',key2:'anything else'}};",
		},
		{
			name: "forced quoting",
			build: func(p *ast.Package) {
				obj := ast.Object().Add("a", ast.Int(1)).Add("b c", ast.Int(2))
				obj.ForceQuoting = true
				p.Expr(obj)
			},
			expected: "({'a':1,'b c':2});",
		},
		{
			name: "escaped slash",
			build: func(p *ast.Package) {
				p.Call("sajax_extract_htmlcomments").Arg(ast.String("<div>Test</div>"))
			},
			expected: `sajax_extract_htmlcomments('<div>Test<\/div>');`,
		},
		{
			name: "labelled for in",
			build: func(p *ast.Package) {
				loop := must(p.Label("loop"))
				fi := must(p.ForIn("i", ast.Array(ast.Int(1), ast.Int(2), ast.Int(4))))
				s := fi.Body().If(ast.Eq(fi.Var(), ast.Int(2)))
				s.Consequent().Break(nil)
				s.Else().Continue(loop)
			},
			expected: "loop:for(var i in [1,2,4]){if(i==2){break;}else{continue loop;}}",
		},
		{
			name: "try catch finally",
			build: func(p *ast.Package) {
				try := p.Try()
				try.Body().Call("a")
				c := must(try.Catch("ex"))
				c.Body().Throw(c.Param())
				try.Finally().Call("c")
			},
			expected: "try{a();}catch(ex){throw ex;}finally{c();}",
		},
		{
			name: "bare try",
			build: func(p *ast.Package) {
				p.Try().Body().Call("a")
			},
			expected: "try{a();}finally{}",
		},
		{
			name: "switch",
			build: func(p *ast.Package) {
				s := p.Switch(ast.Ident("x"))
				c := must(s.Case(ast.Int(1)))
				c.Body().Call("one")
				c.Body().Break(nil)
				s.Default().Body().Return(nil)
			},
			expected: "switch(x){case 1:one();break;default:return;}",
		},
		{
			name: "compound assignments",
			build: func(p *ast.Package) {
				x := ast.Ident("x")
				p.AssignPlus(x, ast.Int(0))
				p.AssignPlus(x, ast.Int(-3))
				p.AssignMul(x, ast.Int(2))
				p.Decr(x)
				p.AddStatement(ast.PreIncr(x))
			},
			expected: "x-=3;x*=2;x--;++x;",
		},
		{
			name: "delete and raw",
			build: func(p *ast.Package) {
				p.Delete(ast.Member(ast.Ident("o"), "k"))
				p.Raw("foo();")
				p.Expr(ast.Raw("1+1"))
			},
			expected: "delete o.k;foo();1+1;",
		},
		{
			name: "let and const",
			build: func(p *ast.Package) {
				must(p.Let("a", ast.Int(1)))
				must(p.Const("b", nil))
			},
			expected: "let a=1;const b;",
		},
		{
			name: "comments are dropped",
			build: func(p *ast.Package) {
				p.Comment("hidden")
				f := must(p.Function("f"))
				f.JSDoc().Append("hidden")
			},
			expected: "function f(){}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ast.NewPackage()
			tt.build(p)
			if got := mustRender(t, p, MinifiedSettings()); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func point(p *ast.Package) *ast.Class {
	cls := must(p.Class("Point"))
	x := must(cls.Field("x", ast.Int(0)))
	ctor := cls.Constructor()
	px := must(ctor.Param("px"))
	ctor.Body().Assign(x, px)
	m := must(cls.Method("getX"))
	m.Body().Return(x)
	return cls
}

func TestClass(t *testing.T) {
	p := ast.NewPackage()
	point(p)
	want := "function Point(px){\n" +
		"  this.x=px;\n" +
		"}\n" +
		"Point.prototype={\n" +
		"  x:0,\n" +
		"  getX:function(){\n" +
		"    return this.x;\n" +
		"  }\n" +
		"};\n"
	if diff := cmp.Diff(want, mustRender(t, p, nil)); diff != "" {
		t.Errorf("class mismatch (-want +got):\n%s", diff)
	}
}

func TestCounterClass(t *testing.T) {
	p := ast.NewPackage()
	cls := must(p.Class("Counter"))
	count := must(cls.Field("count", ast.Int(0)))
	inc := must(cls.Method("inc"))
	inc.Body().Incr(count)
	inc.Body().Return(count)

	want := "function Counter(){\n" +
		"}\n" +
		"Counter.prototype={\n" +
		"  count:0,\n" +
		"  inc:function(){\n" +
		"    this.count++;\n" +
		"    return this.count;\n" +
		"  }\n" +
		"};\n"
	if diff := cmp.Diff(want, mustRender(t, p, nil)); diff != "" {
		t.Errorf("class mismatch (-want +got):\n%s", diff)
	}
}

func TestSubclass(t *testing.T) {
	p := ast.NewPackage()
	cls := point(p)
	cls.Extends(ast.TypeRef("Shape"))
	want := "function Point(px){this.x=px;}" +
		"Point.prototype=Object.assign(Object.create(Shape.prototype),{x:0,getX:function(){return this.x;}});"
	if diff := cmp.Diff(want, mustRender(t, p, MinifiedSettings())); diff != "" {
		t.Errorf("subclass mismatch (-want +got):\n%s", diff)
	}
}

func TestClassWithoutConstructor(t *testing.T) {
	p := ast.NewPackage()
	must(p.Class("Empty"))
	if got := mustRender(t, p, MinifiedSettings()); got != "function Empty(){}Empty.prototype={};" {
		t.Errorf("got %q", got)
	}
}

func TestRenameIsReflected(t *testing.T) {
	p := ast.NewPackage()
	f := must(p.Function("f"))
	v := must(p.Var("v", nil))
	p.CallFunc(f).Arg(v)
	if err := f.Rename("g"); err != nil {
		t.Fatal(err)
	}
	if err := v.Rename("w"); err != nil {
		t.Fatal(err)
	}
	if got := mustRender(t, p, MinifiedSettings()); got != "function g(){}var w;g(w);" {
		t.Errorf("got %q", got)
	}
}

func TestDeterministic(t *testing.T) {
	p := ast.NewPackage()
	point(p)
	first := mustRender(t, p, nil)
	for i := 0; i < 3; i++ {
		if again := mustRender(t, p, nil); again != first {
			t.Fatalf("render %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestUnresolvedCallee(t *testing.T) {
	p := ast.NewPackage()
	p.Raw("before();")
	p.AddStatement(&ast.CallExpression{Object: ast.This})

	var buf bytes.Buffer
	err := RenderTo(&buf, p, MinifiedSettings())
	var ue *ast.UnresolvedCalleeError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want UnresolvedCalleeError", err)
	}
	if ue.Receiver != ast.Expr(ast.This) {
		t.Errorf("receiver = %#v", ue.Receiver)
	}
	if !strings.HasPrefix(buf.String(), "before();") {
		t.Errorf("output before the failure was lost: %q", buf.String())
	}
	if _, err := Render(p, nil); ast.KindOf(err) != ast.KindUnresolvedCallee {
		t.Errorf("Render = %v", err)
	}
}

func TestUnexpectedDecl(t *testing.T) {
	cls := must(ast.NewClass("A"))
	m := must(cls.Method("m"))
	if _, err := Declare(m, nil); err == nil {
		t.Error("a method is not a standalone declaration")
	}
}

func TestComments(t *testing.T) {
	p := ast.NewPackage()
	p.Comment("one\n\ntwo")
	if got := mustRender(t, p, nil); got != "// one\n//\n// two\n" {
		t.Errorf("line comment: %q", got)
	}

	settings := MinifiedSettings()
	settings.GenerateComments = true
	p = ast.NewPackage()
	p.Comment("a */ b")
	if got := mustRender(t, p, settings); got != "/* a *<!-- -->/ b */" {
		t.Errorf("minified comment: %q", got)
	}
}

func TestJSDoc(t *testing.T) {
	p := ast.NewPackage()
	f := must(p.Function("add"))
	a := must(f.Param("a"))
	doc := f.JSDoc()
	doc.Append("Adds numbers.\nReturns */ nothing odd.")
	doc.ParamOf(a).Append("first\nline two")
	doc.Return().Link(ast.TypeNumber)
	doc.Deprecated()
	doc.Tag("since").Set("version", "2")

	want := "/**\n" +
		" * Adds numbers.\n" +
		" * Returns *<!-- -->/ nothing odd.\n" +
		" *\n" +
		" * @param a first\n" +
		" *     line two\n" +
		" * @return {@link Number}\n" +
		" * @deprecated\n" +
		" * @since version=\"2\"\n" +
		" */\n" +
		"function add(a){\n" +
		"}\n"
	if diff := cmp.Diff(want, mustRender(t, p, nil)); diff != "" {
		t.Errorf("jsdoc mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareAndState(t *testing.T) {
	v := must(ast.NewVariable(ast.KindVar, "n", ast.Int(1)))
	v.JSDoc().Append("Counter.")
	got, err := Declare(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/**\n * Counter.\n */\nvar n=1;\n" {
		t.Errorf("Declare: %q", got)
	}

	got, err = State(ast.Return(ast.Null), MinifiedSettings())
	if err != nil {
		t.Fatal(err)
	}
	if got != "return null;" {
		t.Errorf("State: %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderToSink(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, addFunction(), nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != mustRender(t, addFunction(), nil) {
		t.Errorf("sink output differs from Render: %q", buf.String())
	}

	if err := GenerateTo(failingWriter{}, ast.Int(1), nil); err == nil {
		t.Error("a failing sink should surface its error")
	}
}
