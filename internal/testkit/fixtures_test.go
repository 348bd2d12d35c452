package testkit

import (
	"testing"

	"serpent/internal/ast"
	"serpent/internal/token"
)

func TestFixtures_AreValid(t *testing.T) {
	for _, f := range Fixtures() {
		t.Run(f.Name, func(t *testing.T) {
			if err := CheckSpanInvariants(f.Tree, len(f.Source)); err != nil {
				t.Errorf("span invariants: %v", err)
			}
			if err := CheckTree(f.Tree, len(f.Source)); err != nil {
				t.Errorf("tree: %v", err)
			}
			if err := CheckStream(f.Stream, []byte(f.Source)); err != nil {
				t.Errorf("stream: %v", err)
			}
		})
	}
}

func TestFixtures_Fresh(t *testing.T) {
	a, _ := Lookup("assign")
	a.Tree.Payload.(*ast.Module).Body = nil

	b, _ := Lookup("assign")
	if len(b.Tree.Payload.(*ast.Module).Body) != 1 {
		t.Fatalf("mutating one fixture leaked into the next call")
	}
}

func TestFixture_Assign(t *testing.T) {
	f, _ := Lookup("assign")
	body := f.Tree.Payload.(*ast.Module).Body
	if len(body) != 1 {
		t.Fatalf("body = %d statements", len(body))
	}
	if body[0].Loc != f.Tree.Loc {
		t.Errorf("statement %v does not span the line %v", body[0].Loc, f.Tree.Loc)
	}
	as, ok := body[0].Payload.(*ast.Assign)
	if !ok || len(as.Targets) != 1 {
		t.Fatalf("want one-target Assign, got %#v", body[0].Payload)
	}
	name, ok := as.Targets[0].Payload.(*ast.Name)
	if !ok || name.ID != "x" || name.Ctx != ast.Store {
		t.Errorf("target = %#v", as.Targets[0].Payload)
	}
	c, ok := as.Value.Payload.(*ast.Constant)
	if !ok || c.Value.Kind != ast.ConstInt || c.Value.Int != 1 {
		t.Errorf("value = %#v", as.Value.Payload)
	}
}

func TestFixture_Attribute(t *testing.T) {
	f, _ := Lookup("attribute")
	stmt := f.Tree.Payload.(*ast.Module).Body[0].Payload.(*ast.ExprStmt)
	attr, ok := stmt.Value.Payload.(*ast.Attribute)
	if !ok {
		t.Fatalf("value = %T", stmt.Value.Payload)
	}
	if attr.Attr != "b" || attr.Ctx != ast.Load {
		t.Errorf("attribute = %+v", attr)
	}
	if n, ok := attr.Value.Payload.(*ast.Name); !ok || n.ID != "a" || n.Ctx != ast.Load {
		t.Errorf("attribute value = %#v", attr.Value.Payload)
	}
}

func TestFixture_FunctionDefDefaultAlignment(t *testing.T) {
	f, _ := Lookup("function_def")
	def := f.Tree.Payload.(*ast.Module).Body[0].Payload.(*ast.FunctionDef)
	if len(def.Args.Args) != 2 || len(def.Args.Defaults) != 1 {
		t.Fatalf("args = %d, defaults = %d", len(def.Args.Args), len(def.Args.Defaults))
	}
	if def.Args.Default(0) != nil {
		t.Errorf("x has a default")
	}
	d := def.Args.Default(1)
	if d == nil || d.Loc != def.Args.Defaults[0].Loc {
		t.Errorf("y default = %v", d)
	}
	if def.Returns != nil {
		t.Errorf("Returns = %v, want none", def.Returns)
	}
}

func TestFixture_Comment(t *testing.T) {
	f, _ := Lookup("comment")
	tv := f.Stream.Trivia
	if len(tv) != 2 || tv[0].Kind != token.TriviaComment || tv[1].Kind != token.TriviaNewline {
		t.Fatalf("trivia = %v", tv)
	}
	text, err := tv[0].Text([]byte(f.Source))
	if err != nil || string(text) != "# comment" {
		t.Errorf("comment text = %q, %v", text, err)
	}
	if len(f.Tree.Payload.(*ast.Module).Body) != 0 {
		t.Errorf("comment-only module has statements")
	}
}

func TestFixture_TryFinally(t *testing.T) {
	f, _ := Lookup("try_finally")
	try := f.Tree.Payload.(*ast.Module).Body[0].Payload.(*ast.Try)
	if len(try.Handlers) != 0 || len(try.OrElse) != 0 {
		t.Errorf("handlers = %d, orelse = %d", len(try.Handlers), len(try.OrElse))
	}
	if len(try.FinalBody) != 1 {
		t.Fatalf("finalbody = %d statements", len(try.FinalBody))
	}
	if _, ok := try.FinalBody[0].Payload.(*ast.Pass); !ok {
		t.Errorf("finalbody[0] = %T", try.FinalBody[0].Payload)
	}
}
