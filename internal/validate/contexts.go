package validate

import (
	"serpent/internal/ast"
	"serpent/internal/diag"
)

func (w *walker) expect(e *ast.Expr, ctx ast.ExprContext) {
	if e != nil {
		w.want[e] = ctx
	}
}

func (w *walker) expectAll(es []ast.Expr, ctx ast.ExprContext) {
	for i := range es {
		w.want[&es[i]] = ctx
	}
}

func (w *walker) expectGenerators(gs []ast.Comprehension) {
	for i := range gs {
		w.want[&gs[i].Target] = ast.Store
	}
}

// contexts registers the expected context of target children and checks
// the context of reference expressions. Anything not registered is a read.
func (w *walker) contexts(r ast.Ref, payload any) {
	switch p := payload.(type) {
	case *ast.Assign:
		w.expectAll(p.Targets, ast.Store)
	case *ast.AugAssign:
		w.expect(&p.Target, ast.Store)
	case *ast.AnnAssign:
		w.expect(&p.Target, ast.Store)
	case *ast.For:
		w.expect(&p.Target, ast.Store)
	case *ast.AsyncFor:
		w.expect(&p.Target, ast.Store)
	case *ast.Delete:
		w.expectAll(p.Targets, ast.Del)
	case *ast.With:
		for i := range p.Items {
			w.expect(p.Items[i].OptionalVars, ast.Store)
		}
	case *ast.AsyncWith:
		for i := range p.Items {
			w.expect(p.Items[i].OptionalVars, ast.Store)
		}
	case *ast.NamedExpr:
		w.expect(&p.Target, ast.Store)
	case *ast.ListComp:
		w.expectGenerators(p.Generators)
	case *ast.SetComp:
		w.expectGenerators(p.Generators)
	case *ast.DictComp:
		w.expectGenerators(p.Generators)
	case *ast.GeneratorExp:
		w.expectGenerators(p.Generators)
	}

	e, ok := r.(*ast.Expr)
	if !ok {
		return
	}
	got, ok := ast.ContextOf(e.Payload)
	if !ok {
		return
	}
	want, registered := w.want[e]
	if !registered {
		want = ast.Load
	}
	if got != want {
		w.v.report(diag.SevError, diag.CtxMismatch, e.Loc,
			"%s has context %s, expected %s", ast.KindName(e.Payload), got, want)
	}

	// распаковка: элементы цели наследуют её контекст
	if want == ast.Load {
		return
	}
	switch p := e.Payload.(type) {
	case *ast.Tuple:
		w.expectAll(p.Elts, want)
	case *ast.List:
		w.expectAll(p.Elts, want)
	case *ast.Starred:
		w.expect(&p.Value, want)
	}
}
