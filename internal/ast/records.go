package ast

// Arguments is a full parameter list.
//
// Defaults belong to the trailing len(Defaults) parameters of
// PosOnlyArgs+Args. KwDefaults parallels KwOnlyArgs one to one; a nil entry
// is a required keyword-only parameter.
type Arguments struct {
	PosOnlyArgs []Arg
	Args        []Arg
	VarArg      *Arg
	KwOnlyArgs  []Arg
	KwDefaults  []*Expr
	KwArg       *Arg
	Defaults    []Expr
}

// Positional returns PosOnlyArgs followed by Args.
func (a *Arguments) Positional() []Arg {
	out := make([]Arg, 0, len(a.PosOnlyArgs)+len(a.Args))
	out = append(out, a.PosOnlyArgs...)
	return append(out, a.Args...)
}

// Default returns the default of the i-th positional parameter (counting
// PosOnlyArgs first), or nil if it has none.
func (a *Arguments) Default(i int) *Expr {
	n := len(a.PosOnlyArgs) + len(a.Args)
	first := n - len(a.Defaults)
	if i < first || i >= n || first < 0 {
		return nil
	}
	return &a.Defaults[i-first]
}

// KwDefault returns the default of the i-th keyword-only parameter, or nil.
func (a *Arguments) KwDefault(i int) *Expr {
	if i < 0 || i >= len(a.KwDefaults) {
		return nil
	}
	return a.KwDefaults[i]
}

type ArgData struct {
	Arg         string
	Annotation  *Expr
	TypeComment *string
}

// KeywordData is `arg=value` in a call or class header; nil Arg is `**value`.
type KeywordData struct {
	Arg   *string
	Value Expr
}

// AliasData is `name as asname` in an import; Name may be dotted or "*".
type AliasData struct {
	Name   string
	AsName *string
}

type Withitem struct {
	ContextExpr  Expr
	OptionalVars *Expr
}

type MatchCase struct {
	Pattern Pattern
	Guard   *Expr
	Body    []Stmt
}

// Comprehension is one `for target in iter if ...` clause.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

// ExceptHandler is `except type as name:`; a bare `except:` has nil Type.
type ExceptHandler struct {
	Type *Expr
	Name *string
	Body []Stmt
}

func (*ExceptHandler) exceptHandlerKind() {}
