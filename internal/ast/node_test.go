package ast_test

import (
	"testing"

	"serpent/internal/ast"
	"serpent/internal/source"
)

func loc(s, e int) source.Location { return source.MustLocation(s, e) }

func TestNew_RoundTrip(t *testing.T) {
	payload := &ast.Name{ID: "x", Ctx: ast.Store}
	n := ast.New[ast.ExprKind](loc(0, 1), payload)
	if n.Loc != loc(0, 1) {
		t.Errorf("Loc = %v", n.Loc)
	}
	if n.Payload != ast.ExprKind(payload) {
		t.Errorf("payload was copied")
	}
	if n.Location() != n.Loc || n.Value() != any(payload) {
		t.Errorf("Ref view disagrees with fields")
	}

	// records hand out a pointer into the node
	arg := ast.New(loc(3, 4), ast.ArgData{Arg: "y"})
	p, ok := arg.Value().(*ast.ArgData)
	if !ok || p != &arg.Payload {
		t.Fatalf("Value() = %T, want pointer to the payload field", arg.Value())
	}
}

func TestArguments_DefaultAlignment(t *testing.T) {
	arg := func(s int, n string) ast.Arg { return ast.New(loc(s, s+1), ast.ArgData{Arg: n}) }
	one := ast.New[ast.ExprKind](loc(11, 12), &ast.Constant{Value: ast.IntConst(1)})
	two := ast.New[ast.ExprKind](loc(20, 21), &ast.Constant{Value: ast.IntConst(2)})

	tests := []struct {
		name string
		args ast.Arguments
		want []*source.Location // per positional parameter; nil = no default
	}{
		{
			name: "def f(x, y=1)",
			args: ast.Arguments{
				Args:     []ast.Arg{arg(6, "x"), arg(9, "y")},
				Defaults: []ast.Expr{one},
			},
			want: []*source.Location{nil, &one.Loc},
		},
		{
			name: "def f(a, /, b=1, c=2)",
			args: ast.Arguments{
				PosOnlyArgs: []ast.Arg{arg(6, "a")},
				Args:        []ast.Arg{arg(12, "b"), arg(17, "c")},
				Defaults:    []ast.Expr{one, two},
			},
			want: []*source.Location{nil, &one.Loc, &two.Loc},
		},
		{
			name: "def f(a=1, /, b=2)",
			args: ast.Arguments{
				PosOnlyArgs: []ast.Arg{arg(6, "a")},
				Args:        []ast.Arg{arg(15, "b")},
				Defaults:    []ast.Expr{one, two},
			},
			want: []*source.Location{&one.Loc, &two.Loc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.args.Positional()
			if len(pos) != len(tt.want) {
				t.Fatalf("Positional() = %d params, want %d", len(pos), len(tt.want))
			}
			for i, w := range tt.want {
				got := tt.args.Default(i)
				switch {
				case w == nil && got != nil:
					t.Errorf("param %d (%s) has default at %v", i, pos[i].Payload.Arg, got.Loc)
				case w != nil && (got == nil || got.Loc != *w):
					t.Errorf("param %d (%s): default = %v, want at %v", i, pos[i].Payload.Arg, got, *w)
				}
			}
			if tt.args.Default(-1) != nil || tt.args.Default(len(pos)) != nil {
				t.Errorf("out-of-range index returned a default")
			}
		})
	}
}

func TestArguments_KwDefault(t *testing.T) {
	d := ast.New[ast.ExprKind](loc(14, 15), &ast.Constant{Value: ast.IntConst(3)})
	a := ast.Arguments{
		KwOnlyArgs: []ast.Arg{
			ast.New(loc(9, 10), ast.ArgData{Arg: "k"}),
			ast.New(loc(12, 13), ast.ArgData{Arg: "m"}),
		},
		KwDefaults: []*ast.Expr{nil, &d},
	}
	if a.KwDefault(0) != nil {
		t.Errorf("required keyword-only parameter has a default")
	}
	if a.KwDefault(1) != &d {
		t.Errorf("KwDefault(1) = %v", a.KwDefault(1))
	}
	if a.KwDefault(2) != nil {
		t.Errorf("KwDefault(2) out of range")
	}
}

func TestContextOf(t *testing.T) {
	tests := []struct {
		kind ast.ExprKind
		ctx  ast.ExprContext
		ok   bool
	}{
		{&ast.Name{Ctx: ast.Store}, ast.Store, true},
		{&ast.Attribute{Ctx: ast.Del}, ast.Del, true},
		{&ast.Subscript{Ctx: ast.Load}, ast.Load, true},
		{&ast.Starred{Ctx: ast.Store}, ast.Store, true},
		{&ast.List{Ctx: ast.Del}, ast.Del, true},
		{&ast.Tuple{Ctx: ast.Store}, ast.Store, true},
		{&ast.Constant{}, ast.Load, false},
		{&ast.Call{}, ast.Load, false},
	}
	for _, tt := range tests {
		ctx, ok := ast.ContextOf(tt.kind)
		if ctx != tt.ctx || ok != tt.ok {
			t.Errorf("ContextOf(%s) = (%v, %v), want (%v, %v)", ast.KindName(tt.kind), ctx, ok, tt.ctx, tt.ok)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ast.Store.String(), "Store"},
		{ast.Or.String(), "or"},
		{ast.Modulo.String(), "%"},
		{ast.FloorDiv.String(), "//"},
		{ast.Not.String(), "not"},
		{ast.NotIn.String(), "not in"},
		{ast.IsNot.String(), "is not"},
		{ast.ExprContext(9).String(), "ExprContext(9)"},
		{ast.ConversionRepr.String(), "!r"},
		{ast.ConversionNone.String(), "none"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
