package validate

import (
	"serpent/internal/ast"
	"serpent/internal/diag"
)

func (w *walker) ident(r ast.Ref, name string) {
	if !ast.IsIdentifier(name) {
		w.v.report(diag.SevError, diag.IdentInvalid, r.Location(), "%q is not an identifier", name)
		return
	}
	w.normalized(r, name)
}

func (w *walker) optIdent(r ast.Ref, name *string) {
	if name != nil {
		w.ident(r, *name)
	}
}

func (w *walker) dotted(r ast.Ref, name string) {
	if !ast.IsDottedName(name) {
		w.v.report(diag.SevError, diag.IdentInvalid, r.Location(), "%q is not a dotted name", name)
		return
	}
	w.normalized(r, name)
}

func (w *walker) normalized(r ast.Ref, name string) {
	if !ast.IsNormalizedIdent(name) {
		w.v.report(diag.SevWarning, diag.IdentNotNormalized, r.Location(),
			"%q should be stored as %q", name, ast.NormalizeIdent(name))
	}
}

func (w *walker) identifiers(r ast.Ref, payload any) {
	switch p := payload.(type) {
	case *ast.FunctionDef:
		w.ident(r, p.Name)
	case *ast.AsyncFunctionDef:
		w.ident(r, p.Name)
	case *ast.ClassDef:
		w.ident(r, p.Name)
	case *ast.ImportFrom:
		if p.Module != nil {
			w.dotted(r, *p.Module)
		}
	case *ast.Global:
		for _, n := range p.Names {
			w.ident(r, n)
		}
	case *ast.Nonlocal:
		for _, n := range p.Names {
			w.ident(r, n)
		}
	case *ast.Name:
		w.ident(r, p.ID)
	case *ast.Attribute:
		w.ident(r, p.Attr)
	case *ast.ArgData:
		w.ident(r, p.Arg)
	case *ast.KeywordData:
		w.optIdent(r, p.Arg)
	case *ast.AliasData:
		if p.Name != "*" {
			w.dotted(r, p.Name)
		}
		w.optIdent(r, p.AsName)
	case *ast.ExceptHandler:
		w.optIdent(r, p.Name)
	case *ast.MatchMapping:
		w.optIdent(r, p.Rest)
	case *ast.MatchClass:
		for _, n := range p.KwdAttrs {
			w.ident(r, n)
		}
	case *ast.MatchStar:
		w.optIdent(r, p.Name)
	case *ast.MatchAs:
		w.optIdent(r, p.Name)
	}
}
