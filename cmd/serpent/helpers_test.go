package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"serpent/internal/ast"
	"serpent/internal/astcache"
	"serpent/internal/source"
	"serpent/internal/testkit"
	"serpent/internal/token"
)

func testRoot(t *testing.T, colorMode string) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "serpent"}
	root.PersistentFlags().String("color", colorMode, "")
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().Int("max-diagnostics", -1, "")
	return root
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"off", false, false},
		{"sometimes", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := useColor(testRoot(t, tt.mode), os.Stdout)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("useColor(%q) = (%v, %v)", tt.mode, got, err)
			}
		})
	}
}

func writeFixtureUnit(t *testing.T, dir, name string) (string, *astcache.Unit) {
	t.Helper()
	f, ok := testkit.Lookup(name)
	if !ok {
		t.Fatalf("no fixture %q", name)
	}
	st := f.Stream
	u := astcache.NewUnit(name+".py", []byte(f.Source), f.Tree, &st)
	path := filepath.Join(dir, name+".mp")
	if err := astcache.WriteFile(path, u); err != nil {
		t.Fatal(err)
	}
	return path, u
}

func TestLoadUnit(t *testing.T) {
	dir := t.TempDir()
	unitPath, u := writeFixtureUnit(t, dir, "assign")

	got, err := loadUnit(unitPath, nil)
	if err != nil {
		t.Fatalf("loadUnit(.mp): %v", err)
	}
	if string(got.Source) != "x = 1" {
		t.Errorf("source = %q", got.Source)
	}

	srcPath := filepath.Join(dir, "x.py")
	if err := os.WriteFile(srcPath, u.Source, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadUnit(srcPath, nil); err == nil {
		t.Errorf("source lookup without a cache succeeded")
	}

	cache, err := astcache.Open(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loadUnit(srcPath, cache); err == nil || !strings.Contains(err.Error(), "no cached tree") {
		t.Errorf("cold cache: got %v", err)
	}
	if err := cache.Put(u); err != nil {
		t.Fatal(err)
	}
	got, err = loadUnit(srcPath, cache)
	if err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if !strings.HasSuffix(got.Path, "x.py") {
		t.Errorf("path = %q, want the source path", got.Path)
	}
}

func TestLoadUnit_CRLFSourceMatchesRawBytes(t *testing.T) {
	dir := t.TempDir()
	raw := []byte("x = 1\r\n")
	loc := source.MustLocation
	mod := ast.New[ast.ModKind](loc(0, 7), &ast.Module{Body: []ast.Stmt{
		ast.New[ast.StmtKind](loc(0, 5), &ast.Assign{
			Targets: []ast.Expr{ast.New[ast.ExprKind](loc(0, 1), &ast.Name{ID: "x", Ctx: ast.Store})},
			Value:   ast.New[ast.ExprKind](loc(4, 5), &ast.Constant{Value: ast.IntConst(1)}),
		}),
	}})
	st := token.Stream{
		Tokens: []source.Location{loc(0, 1), loc(2, 3), loc(4, 5)},
		Trivia: []token.Trivia{
			token.NewTrivia(token.TriviaWhiteSpace, loc(1, 2)),
			token.NewTrivia(token.TriviaWhiteSpace, loc(3, 4)),
			token.NewTrivia(token.TriviaNewline, loc(5, 7)),
		},
	}
	if err := st.Check(len(raw)); err != nil {
		t.Fatalf("stream: %v", err)
	}

	cache, err := astcache.Open(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put(astcache.NewUnit("a.py", raw, &mod, &st)); err != nil {
		t.Fatal(err)
	}
	srcPath := filepath.Join(dir, "a.py")
	if err := os.WriteFile(srcPath, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := loadUnit(srcPath, cache)
	if err != nil {
		t.Fatalf("loadUnit: %v", err)
	}
	if !bytes.Equal(got.Source, raw) {
		t.Errorf("source = %q, want %q", got.Source, raw)
	}
	file, err := sourceFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if line := file.GetLine(1); line != "x = 1" {
		t.Errorf("GetLine(1) = %q", line)
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)

	good, _ := writeFixtureUnit(t, dir, "function_def")

	root := testRoot(t, "off")
	cmd := &cobra.Command{Use: "check", RunE: runCheck}
	cmd.Flags().Int("jobs", 2, "")
	cmd.Flags().Bool("fixtures", true, "")
	cmd.Flags().Bool("with-notes", false, "")
	cmd.Flags().Bool("progress", false, "")
	root.AddCommand(cmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"check", good})
	if err := root.Execute(); err != nil {
		t.Fatalf("check: %v\n%s", err, out.String())
	}
	if !strings.Contains(errOut.String(), "checked 6 unit(s): 0 diagnostic(s)") {
		t.Errorf("summary = %q", errOut.String())
	}
}

func TestVersionOutput(t *testing.T) {
	var buf bytes.Buffer
	info := collectBuildInfo(true)
	info.Version = "1.2.3"
	writeVersionPretty(&buf, info, true, false)
	out := buf.String()
	if !strings.HasPrefix(out, "serpent 1.2.3 (cache schema") {
		t.Errorf("pretty = %q", out)
	}
	if !strings.Contains(out, "commit:  unknown") {
		t.Errorf("missing commit line: %q", out)
	}

	buf.Reset()
	if err := writeVersionJSON(&buf, collectBuildInfo(false)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tool": "serpent"`) || strings.Contains(buf.String(), "git_commit") {
		t.Errorf("json = %s", buf.String())
	}
}
