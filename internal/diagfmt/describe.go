package diagfmt

import (
	"fmt"
	"strings"

	"serpent/internal/ast"
)

func opt(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// describe renders a payload's kind with the scalar fields that the
// children listing cannot show.
func describe(v any) string {
	name := ast.KindName(v)
	switch p := v.(type) {
	case *ast.Module:
		if len(p.TypeIgnores) > 0 {
			return fmt.Sprintf("%s type_ignores=%d", name, len(p.TypeIgnores))
		}
	case *ast.FunctionDef:
		return fmt.Sprintf("%s name=%s", name, p.Name)
	case *ast.AsyncFunctionDef:
		return fmt.Sprintf("%s name=%s", name, p.Name)
	case *ast.ClassDef:
		return fmt.Sprintf("%s name=%s", name, p.Name)
	case *ast.AugAssign:
		return fmt.Sprintf("%s op=%s", name, p.Op)
	case *ast.AnnAssign:
		return fmt.Sprintf("%s simple=%v", name, p.Simple)
	case *ast.ImportFrom:
		level := 0
		if p.Level != nil {
			level = *p.Level
		}
		return fmt.Sprintf("%s module=%s level=%d", name, opt(p.Module), level)
	case *ast.Global:
		return fmt.Sprintf("%s names=%s", name, strings.Join(p.Names, ","))
	case *ast.Nonlocal:
		return fmt.Sprintf("%s names=%s", name, strings.Join(p.Names, ","))
	case *ast.Try:
		return fmt.Sprintf("%s handlers=%d orelse=%d finalbody=%d", name, len(p.Handlers), len(p.OrElse), len(p.FinalBody))

	case *ast.BoolOp:
		return fmt.Sprintf("%s op=%s", name, p.Op)
	case *ast.BinOp:
		return fmt.Sprintf("%s op=%s", name, p.Op)
	case *ast.UnaryOp:
		return fmt.Sprintf("%s op=%s", name, p.Op)
	case *ast.Compare:
		ops := make([]string, len(p.Ops))
		for i, op := range p.Ops {
			ops[i] = op.String()
		}
		return fmt.Sprintf("%s ops=[%s]", name, strings.Join(ops, " "))
	case *ast.FormattedValue:
		if p.Conversion != ast.ConversionNone {
			return fmt.Sprintf("%s conversion=%s", name, p.Conversion)
		}
	case *ast.Constant:
		if p.Kind != nil {
			return fmt.Sprintf("%s %s kind=%s", name, p.Value, *p.Kind)
		}
		return fmt.Sprintf("%s %s", name, p.Value)
	case *ast.Attribute:
		return fmt.Sprintf("%s attr=%s ctx=%s", name, p.Attr, p.Ctx)
	case *ast.Subscript:
		return fmt.Sprintf("%s ctx=%s", name, p.Ctx)
	case *ast.Starred:
		return fmt.Sprintf("%s ctx=%s", name, p.Ctx)
	case *ast.Name:
		return fmt.Sprintf("%s id=%s ctx=%s", name, p.ID, p.Ctx)
	case *ast.List:
		return fmt.Sprintf("%s ctx=%s", name, p.Ctx)
	case *ast.Tuple:
		return fmt.Sprintf("%s ctx=%s", name, p.Ctx)

	case *ast.MatchSingleton:
		return fmt.Sprintf("%s %s", name, p.Value)
	case *ast.MatchMapping:
		if p.Rest != nil {
			return fmt.Sprintf("%s rest=%s", name, *p.Rest)
		}
	case *ast.MatchClass:
		if len(p.KwdAttrs) > 0 {
			return fmt.Sprintf("%s kwd_attrs=%s", name, strings.Join(p.KwdAttrs, ","))
		}
	case *ast.MatchStar:
		return fmt.Sprintf("%s name=%s", name, opt(p.Name))
	case *ast.MatchAs:
		return fmt.Sprintf("%s name=%s", name, opt(p.Name))

	case *ast.ExceptHandler:
		return fmt.Sprintf("%s name=%s", name, opt(p.Name))
	case *ast.ArgData:
		return fmt.Sprintf("Arg %s", p.Arg)
	case *ast.KeywordData:
		return fmt.Sprintf("Keyword %s", opt(p.Arg))
	case *ast.AliasData:
		if p.AsName != nil {
			return fmt.Sprintf("Alias %s as %s", p.Name, *p.AsName)
		}
		return fmt.Sprintf("Alias %s", p.Name)
	}
	return name
}
