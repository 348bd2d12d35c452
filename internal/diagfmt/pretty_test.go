package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"serpent/internal/diag"
	"serpent/internal/source"
)

func TestPretty_Plain(t *testing.T) {
	file, err := source.NewVirtualFile("src/test.py", []byte("x = 1\nfoo.bar = y\n"))
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.CtxMismatch, source.MustLocation(6, 13), "Attribute has context Load, expected Store").
		WithNote(source.MustLocation(0, 1), "first binding"))
	bag.Add(diag.New(diag.SevWarning, diag.IdentNotNormalized, source.MustLocation(16, 17), "not normalized"))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{ShowNotes: true})
	out := buf.String()

	for _, want := range []string{
		"src/test.py:2:1: ERROR AST1101: Attribute has context Load, expected Store\n",
		"2 | foo.bar = y\n",
		"  | ^~~~~~~\n",
		"  note: src/test.py:1:1: first binding\n",
		"src/test.py:2:11: WARNING AST1402: not normalized\n",
		"  |           ^\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes with Color=false:\n%s", out)
	}
}

func TestPretty_Color(t *testing.T) {
	file, _ := source.NewVirtualFile("a.py", []byte("x\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.ShapeEmptyBody, source.MustLocation(0, 1), "boom"))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no escape codes with Color=true:\n%s", buf.String())
	}
}

func TestPretty_WideRunes(t *testing.T) {
	// "名前" is two double-width runes, six bytes
	file, _ := source.NewVirtualFile("w.py", []byte("名前 = x\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.CtxMismatch, source.MustLocation(9, 10), "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})
	if want := "  |        ^\n"; !strings.Contains(buf.String(), want) {
		t.Errorf("caret misaligned, want %q in:\n%s", want, buf.String())
	}
}

func TestPretty_Context(t *testing.T) {
	file, _ := source.NewVirtualFile("c.py", []byte("a\nb\nc\nd\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevInfo, diag.UnknownCode, source.MustLocation(4, 5), "here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{Context: 1})
	out := buf.String()
	for _, want := range []string{"2 | b\n", "3 | c\n", "4 | d\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing context line %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1 | a") {
		t.Errorf("context too wide:\n%s", out)
	}
}

func TestPretty_NoFile(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.TriviaCoverage, source.MustLocation(3, 3), "gap at offset 3"))
	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{})
	if want := "<input>:span(3-3): ERROR AST1501: gap at offset 3\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPathModes(t *testing.T) {
	file, _ := source.NewVirtualFile("/home/user/project/src/test.py", nil)
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/test.py"},
		{PathModeRelative, "src/test.py"},
		{PathModeBasename, "test.py"},
		{PathModeAuto, "/home/user/project/src/test.py"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := formatPath(file, tt.mode, "/home/user/project"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
