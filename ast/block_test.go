package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/t14raptor/jscode/token"
)

func sources(c *container) []string {
	var out []string
	for _, code := range c.Items() {
		switch n := code.(type) {
		case *Fragment:
			out = append(out, n.Source)
		case Decl:
			out = append(out, n.Name())
		default:
			out = append(out, "?")
		}
	}
	return out
}

func TestDuplicateVariable(t *testing.T) {
	b := NewBlock()
	first, err := b.Var("x", nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = b.Var("x", Int(1))
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want DuplicateNameError", err)
	}
	if dup.Existing != Decl(first) {
		t.Errorf("error references %v, want the first declaration", dup.Existing)
	}
	if b.Len() != 1 {
		t.Errorf("failed declaration was added, len = %d", b.Len())
	}

	if _, err := b.Function("x"); KindOf(err) != KindDuplicateName {
		t.Errorf("function with a taken name: %v", err)
	}
}

func TestRename(t *testing.T) {
	b := NewBlock()
	x, _ := b.Var("x", nil)
	y, _ := b.Var("y", nil)
	ref := IdentOf(x)

	if err := y.Rename("x"); KindOf(err) != KindDuplicateName {
		t.Fatalf("rename onto a taken name: %v", err)
	}
	if y.Name() != "y" {
		t.Errorf("failed rename changed the name to %q", y.Name())
	}

	if err := x.Rename("z"); err != nil {
		t.Fatal(err)
	}
	if d, ok := b.Decl("z"); !ok || d != Decl(x) {
		t.Error("renamed variable not found under its new name")
	}
	if b.IsDeclared("x") {
		t.Error("old name still declared")
	}
	if ref.Name() != "z" {
		t.Errorf("bound reference reads %q, want z", ref.Name())
	}

	if err := x.Rename("1z"); KindOf(err) != KindInvalidIdentifier {
		t.Errorf("invalid rename: %v", err)
	}
}

func TestCursor(t *testing.T) {
	p := NewPackage()
	p.Raw("a")
	p.Raw("b")
	if err := p.SetPos(1); err != nil {
		t.Fatal(err)
	}
	p.Raw("x")
	if p.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", p.Pos())
	}
	if diff := cmp.Diff([]string{"a", "x", "b"}, sources(&p.container)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	err := p.SetPos(4)
	var pe *PositionError
	if !errors.As(err, &pe) || pe.Pos != 4 || pe.Len != 3 {
		t.Fatalf("SetPos(4) = %v", err)
	}
	if err := p.SetPos(-1); KindOf(err) != KindPosition {
		t.Errorf("SetPos(-1) = %v", err)
	}

	p.PosEnd()
	p.Raw("c")
	if diff := cmp.Diff([]string{"a", "x", "b", "c"}, sources(&p.container)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorAfterRemoval(t *testing.T) {
	p := NewPackage()
	a := p.Raw("a")
	b := p.Raw("b")
	p.Remove(a)
	p.Remove(b)
	// The cursor still points past the end.
	p.Raw("c")
	if diff := cmp.Diff([]string{"c"}, sources(&p.container)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if p.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", p.Pos())
	}
}

func TestRemoveDecl(t *testing.T) {
	b := NewBlock()
	x, _ := b.Var("x", nil)
	if d, ok := b.RemoveByName("x"); !ok || d != Decl(x) {
		t.Fatal("RemoveByName did not return the declaration")
	}
	if b.IsDeclared("x") || !b.IsEmpty() {
		t.Error("declaration still present")
	}
	// Detached variables rename freely.
	if err := x.Rename("y"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Var("x", nil); err != nil {
		t.Errorf("name should be free again: %v", err)
	}
	if b.Remove(x) {
		t.Error("removing a detached variable should report false")
	}
}

func TestAddPackage(t *testing.T) {
	b := NewBlock()
	p := NewPackage()
	p.Raw("a")
	p.Var("v", nil)
	if err := b.Add(p); err != nil {
		t.Fatal(err)
	}
	if !b.IsDeclared("v") {
		t.Error("declaration from package not indexed")
	}
	if diff := cmp.Diff([]string{"a", "v"}, sources(&b.container)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	clash := NewPackage()
	clash.Raw("b")
	clash.Var("v", nil)
	if err := b.Add(clash); KindOf(err) != KindDuplicateName {
		t.Fatalf("Add = %v, want duplicate", err)
	}
	if b.Len() != 2 {
		t.Errorf("a failed Add left %d items", b.Len())
	}
}

func TestCompoundAssignSimplification(t *testing.T) {
	x := Ident("x")
	tests := []struct {
		name string
		add  func(b *Block) *AssignExpression
		op   token.Token
		nop  bool
	}{
		{"plus zero", func(b *Block) *AssignExpression { return b.AssignPlus(x, Int(0)) }, 0, true},
		{"minus zero", func(b *Block) *AssignExpression { return b.AssignMinus(x, Decimal(0)) }, 0, true},
		{"times one", func(b *Block) *AssignExpression { return b.AssignMul(x, Int(1)) }, 0, true},
		{"divide by one", func(b *Block) *AssignExpression { return b.AssignDiv(x, Decimal(1)) }, 0, true},
		{"plus negative", func(b *Block) *AssignExpression { return b.AssignPlus(x, Int(-2)) }, token.SubtractAssign, false},
		{"minus negative", func(b *Block) *AssignExpression { return b.AssignMinus(x, Int(-2)) }, token.AddAssign, false},
		{"plus", func(b *Block) *AssignExpression { return b.AssignPlus(x, Int(2)) }, token.AddAssign, false},
		{"plus variable", func(b *Block) *AssignExpression { return b.AssignPlus(x, Ident("y")) }, token.AddAssign, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlock()
			a := tt.add(b)
			if tt.nop {
				if a != nil || !b.IsEmpty() {
					t.Errorf("expected no statement, got %#v", a)
				}
				return
			}
			if a == nil || b.Len() != 1 {
				t.Fatal("expected one statement")
			}
			if a.Operator != tt.op {
				t.Errorf("operator = %s, want %s", a.Operator, tt.op)
			}
			if n, ok := a.Right.(*IntLiteral); ok && n.Value < 0 {
				t.Errorf("right side kept its sign: %d", n.Value)
			}
		})
	}
}

func TestSimpleLoop(t *testing.T) {
	b := NewBlock()
	up, err := b.SimpleLoop("i", Int(0), Int(5))
	if err != nil {
		t.Fatal(err)
	}
	if up.Test.(*BinaryExpression).Operator != token.Less {
		t.Error("counting up should test with <")
	}
	down, _ := b.SimpleLoop("j", Int(5), Int(0))
	if down.Test.(*BinaryExpression).Operator != token.Greater {
		t.Error("counting down should test with >")
	}
	if down.Update.(*UnaryExpression).Operator != token.Decrement {
		t.Error("counting down should decrement")
	}
	if _, err := b.SimpleLoop("for", Int(0), Int(1)); KindOf(err) != KindInvalidIdentifier {
		t.Errorf("reserved loop variable: %v", err)
	}
}
