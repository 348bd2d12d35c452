package testkit

import (
	"serpent/internal/ast"
	"serpent/internal/source"
	"serpent/internal/token"
)

// Fixture is a source text with the tree and token stream a conforming
// parser must produce for it.
type Fixture struct {
	Name   string
	Source string
	Tree   *ast.Mod
	Stream token.Stream
}

func loc(start, end int) source.Location {
	return source.MustLocation(start, end)
}

func locs(pairs ...int) []source.Location {
	out := make([]source.Location, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, loc(pairs[i], pairs[i+1]))
	}
	return out
}

func ws(start, end int) token.Trivia {
	return token.NewTrivia(token.TriviaWhiteSpace, loc(start, end))
}

func nl(start, end int) token.Trivia {
	return token.NewTrivia(token.TriviaNewline, loc(start, end))
}

func module(start, end int, body ...ast.Stmt) *ast.Mod {
	m := ast.New[ast.ModKind](loc(start, end), &ast.Module{Body: body})
	return &m
}

// Fixtures returns the reference scenarios. Every call builds fresh trees,
// so callers may mutate them.
func Fixtures() []Fixture {
	return []Fixture{
		assignFixture(),
		attributeFixture(),
		functionDefFixture(),
		commentFixture(),
		tryFinallyFixture(),
	}
}

// Lookup returns the fixture with the given name.
func Lookup(name string) (Fixture, bool) {
	for _, f := range Fixtures() {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

func assignFixture() Fixture {
	assign := ast.New[ast.StmtKind](loc(0, 5), &ast.Assign{
		Targets: []ast.Expr{
			ast.New[ast.ExprKind](loc(0, 1), &ast.Name{ID: "x", Ctx: ast.Store}),
		},
		Value: ast.New[ast.ExprKind](loc(4, 5), &ast.Constant{Value: ast.IntConst(1)}),
	})
	return Fixture{
		Name:   "assign",
		Source: "x = 1",
		Tree:   module(0, 5, assign),
		Stream: token.Stream{
			Tokens: locs(0, 1, 2, 3, 4, 5),
			Trivia: []token.Trivia{ws(1, 2), ws(3, 4)},
		},
	}
}

func attributeFixture() Fixture {
	attr := ast.New[ast.ExprKind](loc(0, 3), &ast.Attribute{
		Value: ast.New[ast.ExprKind](loc(0, 1), &ast.Name{ID: "a", Ctx: ast.Load}),
		Attr:  "b",
		Ctx:   ast.Load,
	})
	stmt := ast.New[ast.StmtKind](loc(0, 3), &ast.ExprStmt{Value: attr})
	return Fixture{
		Name:   "attribute",
		Source: "a.b",
		Tree:   module(0, 3, stmt),
		Stream: token.Stream{Tokens: locs(0, 1, 1, 2, 2, 3)},
	}
}

func functionDefFixture() Fixture {
	def := ast.New[ast.StmtKind](loc(0, 19), &ast.FunctionDef{
		Name: "f",
		Args: ast.Arguments{
			Args: []ast.Arg{
				ast.New(loc(6, 7), ast.ArgData{Arg: "x"}),
				ast.New(loc(9, 10), ast.ArgData{Arg: "y"}),
			},
			Defaults: []ast.Expr{
				ast.New[ast.ExprKind](loc(11, 12), &ast.Constant{Value: ast.IntConst(1)}),
			},
		},
		Body: []ast.Stmt{
			ast.New[ast.StmtKind](loc(15, 19), &ast.Pass{}),
		},
	})
	return Fixture{
		Name:   "function_def",
		Source: "def f(x, y=1): pass",
		Tree:   module(0, 19, def),
		Stream: token.Stream{
			// def f ( x , y = 1 ) : pass
			Tokens: locs(0, 3, 4, 5, 5, 6, 6, 7, 7, 8, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 15, 19),
			Trivia: []token.Trivia{ws(3, 4), ws(8, 9), ws(14, 15)},
		},
	}
}

func commentFixture() Fixture {
	return Fixture{
		Name:   "comment",
		Source: "# comment\n",
		Tree:   module(0, 10),
		Stream: token.Stream{
			Trivia: []token.Trivia{
				token.NewTrivia(token.TriviaComment, loc(0, 9)),
				nl(9, 10),
			},
		},
	}
}

func tryFinallyFixture() Fixture {
	try := ast.New[ast.StmtKind](loc(0, 27), &ast.Try{
		Body: []ast.Stmt{
			ast.New[ast.StmtKind](loc(7, 11), &ast.Pass{}),
		},
		FinalBody: []ast.Stmt{
			ast.New[ast.StmtKind](loc(23, 27), &ast.Pass{}),
		},
	})
	return Fixture{
		Name:   "try_finally",
		Source: "try:\n  pass\nfinally:\n  pass",
		Tree:   module(0, 27, try),
		Stream: token.Stream{
			// try : pass finally : pass
			Tokens: locs(0, 3, 3, 4, 7, 11, 12, 19, 19, 20, 23, 27),
			Trivia: []token.Trivia{nl(4, 5), ws(5, 7), nl(11, 12), nl(20, 21), ws(21, 23)},
		},
	}
}
