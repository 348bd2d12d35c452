package validate

import (
	"serpent/internal/ast"
	"serpent/internal/diag"
)

func (w *walker) arguments(r ast.Ref, payload any) {
	var args *ast.Arguments
	switch p := payload.(type) {
	case *ast.FunctionDef:
		args = &p.Args
	case *ast.AsyncFunctionDef:
		args = &p.Args
	case *ast.Lambda:
		args = &p.Args
	default:
		return
	}

	positional := len(args.PosOnlyArgs) + len(args.Args)
	if len(args.Defaults) > positional {
		w.v.report(diag.SevError, diag.ArgsTooManyDefaults, r.Location(),
			"%d defaults for %d positional parameters", len(args.Defaults), positional)
	}
	if len(args.KwDefaults) != len(args.KwOnlyArgs) {
		w.v.report(diag.SevError, diag.ArgsKwDefaultsMismatch, r.Location(),
			"%d keyword-only defaults for %d keyword-only parameters", len(args.KwDefaults), len(args.KwOnlyArgs))
	}
}
