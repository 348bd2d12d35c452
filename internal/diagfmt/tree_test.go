package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"serpent/internal/source"
	"serpent/internal/testkit"
)

func TestTree_Assign(t *testing.T) {
	f, _ := testkit.Lookup("assign")
	file, err := source.NewVirtualFile("x.py", []byte(f.Source))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Tree(&buf, f.Tree, file); err != nil {
		t.Fatalf("Tree: %v", err)
	}
	want := strings.Join([]string{
		"x.py",
		"Module (span: 1:1-1:6)",
		"└─ Assign (span: 1:1-1:6)",
		"   ├─ Name id=x ctx=Store (span: 1:1-1:2)",
		"   └─ Constant 1 (span: 1:5-1:6)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Tree output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTree_NoFile(t *testing.T) {
	f, _ := testkit.Lookup("function_def")
	var buf bytes.Buffer
	if err := Tree(&buf, f.Tree, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"FunctionDef name=f (span: span(0-19))",
		"├─ Arg x (span: span(6-7))",
		"└─ Pass (span: span(15-19))",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
	if err := Tree(&buf, nil, nil); err == nil {
		t.Errorf("nil module accepted")
	}
}

func TestTreeArt(t *testing.T) {
	f, _ := testkit.Lookup("attribute")
	var buf bytes.Buffer
	if err := TreeArt(&buf, f.Tree, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Module, ExprStmt, Attribute, Name: one label line and one connector each
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[len(lines)-1], "Name id=a ctx=Load") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestTreeJSON(t *testing.T) {
	f, _ := testkit.Lookup("try_finally")
	var buf bytes.Buffer
	if err := TreeJSON(&buf, f.Tree); err != nil {
		t.Fatal(err)
	}
	var out ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Type != "Module" || len(out.Children) != 1 {
		t.Fatalf("root = %+v", out)
	}
	try := out.Children[0]
	if try.Type != "Try" || try.End != 27 || len(try.Children) != 2 {
		t.Errorf("try = %+v", try)
	}
	if try.Detail != "handlers=0 orelse=0 finalbody=1" {
		t.Errorf("detail = %q", try.Detail)
	}
}

func TestTrivia(t *testing.T) {
	f, _ := testkit.Lookup("assign")
	file, _ := source.NewVirtualFile("x.py", []byte(f.Source))
	var buf bytes.Buffer
	if err := Trivia(&buf, f.Stream, file); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{`"x"`, "' '", `"="`, "' '", `"1"`} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %s", i, lines[i], want)
		}
	}

	c, _ := testkit.Lookup("comment")
	buf.Reset()
	if err := Trivia(&buf, c.Stream, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<COMMENT>") || !strings.Contains(out, "<NEWLINE>") {
		t.Errorf("placeholders missing:\n%s", out)
	}
}

func TestRenderTree_Layout(t *testing.T) {
	tests := []struct {
		name string
		node *treeNode
		want []string
	}{
		{
			name: "label centered over children",
			node: &treeNode{label: "ab", children: []*treeNode{{label: "x"}, {label: "y"}}},
			want: []string{" ab  ", "/ | \\", "x   y"},
		},
		{
			name: "wide label shifts children",
			node: &treeNode{label: "wide", children: []*treeNode{{label: "x"}}},
			want: []string{"wide", "  | ", "  x "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTree(tt.node).lines
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("got\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}
