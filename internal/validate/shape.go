package validate

import (
	"serpent/internal/ast"
	"serpent/internal/diag"
)

func (w *walker) nonEmpty(r ast.Ref, body []ast.Stmt, what string) {
	if len(body) == 0 {
		w.v.report(diag.SevError, diag.ShapeEmptyBody, r.Location(), "%s has an empty body", what)
	}
}

// shape checks the length pairings and arities the tree types cannot express.
func (w *walker) shape(r ast.Ref, payload any) {
	switch p := payload.(type) {
	case *ast.FunctionDef:
		w.nonEmpty(r, p.Body, "def")
	case *ast.AsyncFunctionDef:
		w.nonEmpty(r, p.Body, "async def")
	case *ast.ClassDef:
		w.nonEmpty(r, p.Body, "class")
	case *ast.For:
		w.nonEmpty(r, p.Body, "for")
	case *ast.AsyncFor:
		w.nonEmpty(r, p.Body, "async for")
	case *ast.While:
		w.nonEmpty(r, p.Body, "while")
	case *ast.If:
		w.nonEmpty(r, p.Body, "if")
	case *ast.With:
		w.nonEmpty(r, p.Body, "with")
		if len(p.Items) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "with has no items")
		}
	case *ast.AsyncWith:
		w.nonEmpty(r, p.Body, "async with")
		if len(p.Items) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "async with has no items")
		}
	case *ast.ExceptHandler:
		w.nonEmpty(r, p.Body, "except")
	case *ast.Match:
		if len(p.Cases) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyBody, r.Location(), "match has no cases")
		}
		for i := range p.Cases {
			w.nonEmpty(r, p.Cases[i].Body, "case")
		}
	case *ast.Try:
		w.nonEmpty(r, p.Body, "try")
		if len(p.Handlers) == 0 && len(p.FinalBody) == 0 {
			w.v.report(diag.SevError, diag.ShapeTryHandlers, r.Location(), "try needs an except or a finally block")
		}
		if len(p.Handlers) == 0 && len(p.OrElse) > 0 {
			w.v.report(diag.SevError, diag.ShapeTryHandlers, r.Location(), "try has an else block but no except")
		}
	case *ast.Assign:
		if len(p.Targets) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "assignment has no targets")
		}
	case *ast.Delete:
		if len(p.Targets) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "del has no targets")
		}
	case *ast.Import:
		if len(p.Names) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "import has no names")
		}
	case *ast.ImportFrom:
		if len(p.Names) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "from-import has no names")
		}
	case *ast.Global:
		if len(p.Names) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "global has no names")
		}
	case *ast.Nonlocal:
		if len(p.Names) == 0 {
			w.v.report(diag.SevError, diag.ShapeEmptyTargets, r.Location(), "nonlocal has no names")
		}
	case *ast.BoolOp:
		if len(p.Values) < 2 {
			w.v.report(diag.SevError, diag.ShapeBoolOpArity, r.Location(), "%s with %d values", p.Op, len(p.Values))
		}
	case *ast.Dict:
		if len(p.Keys) != len(p.Values) {
			w.v.report(diag.SevError, diag.ShapeDictLength, r.Location(), "%d keys, %d values", len(p.Keys), len(p.Values))
		}
	case *ast.Compare:
		if len(p.Ops) == 0 || len(p.Ops) != len(p.Comparators) {
			w.v.report(diag.SevError, diag.ShapeCompareLength, r.Location(),
				"%d operators, %d comparators", len(p.Ops), len(p.Comparators))
		}
	case *ast.MatchMapping:
		if len(p.Keys) != len(p.Patterns) {
			w.v.report(diag.SevError, diag.ShapeMappingLength, r.Location(), "%d keys, %d patterns", len(p.Keys), len(p.Patterns))
		}
	case *ast.MatchClass:
		if len(p.KwdAttrs) != len(p.KwdPatterns) {
			w.v.report(diag.SevError, diag.ShapeClassKwdLength, r.Location(),
				"%d keyword names, %d keyword patterns", len(p.KwdAttrs), len(p.KwdPatterns))
		}
	case *ast.FormattedValue:
		if !p.Conversion.Valid() {
			w.v.report(diag.SevError, diag.ShapeConversion, r.Location(), "conversion %q is not s, r or a", rune(p.Conversion))
		}
	case *ast.MatchSingleton:
		if !p.Value.IsSingleton() {
			w.v.report(diag.SevError, diag.ShapeSingleton, r.Location(), "singleton pattern holds %s", p.Value.Kind)
		}
	}
}
