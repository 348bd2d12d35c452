package testkit

import (
	"strings"
	"testing"

	"serpent/internal/ast"
	"serpent/internal/source"
)

func TestCheckSpanInvariants_Violations(t *testing.T) {
	f, _ := Lookup("assign")
	if err := CheckSpanInvariants(f.Tree, 3); err == nil {
		t.Errorf("root past source accepted")
	}

	f, _ = Lookup("assign")
	as := f.Tree.Payload.(*ast.Module).Body[0].Payload.(*ast.Assign)
	as.Value.Loc = source.MustLocation(4, 9)
	err := CheckSpanInvariants(f.Tree, 20)
	if err == nil || !strings.Contains(err.Error(), "Constant") {
		t.Errorf("escaping child: got %v", err)
	}

	if err := CheckSpanInvariants(nil, 0); err == nil {
		t.Errorf("nil module accepted")
	}
}

func TestCheckTree_ReportsFirstError(t *testing.T) {
	f, _ := Lookup("assign")
	as := f.Tree.Payload.(*ast.Module).Body[0].Payload.(*ast.Assign)
	as.Targets[0].Payload.(*ast.Name).Ctx = ast.Load

	err := CheckTree(f.Tree, len(f.Source))
	if err == nil || !strings.HasPrefix(err.Error(), "AST1101") {
		t.Errorf("got %v, want context mismatch", err)
	}
}

func TestCheckStream_Gap(t *testing.T) {
	f, _ := Lookup("assign")
	f.Stream.Trivia = f.Stream.Trivia[:1]
	if err := CheckStream(f.Stream, []byte(f.Source)); err == nil {
		t.Errorf("stream with a hole accepted")
	}
}
