package ast

type FunctionDef struct {
	Name          string
	Args          Arguments
	Body          []Stmt
	DecoratorList []Expr
	Returns       *Expr
	TypeComment   *string
}

type AsyncFunctionDef struct {
	Name          string
	Args          Arguments
	Body          []Stmt
	DecoratorList []Expr
	Returns       *Expr
	TypeComment   *string
}

type ClassDef struct {
	Name          string
	Bases         []Expr
	Keywords      []Keyword
	Body          []Stmt
	DecoratorList []Expr
}

// Return with a nil Value is a bare `return`.
type Return struct {
	Value *Expr
}

type Delete struct {
	Targets []Expr
}

// Assign holds every target of a chained assignment `a = b = value`.
type Assign struct {
	Targets     []Expr
	Value       Expr
	TypeComment *string
}

type AugAssign struct {
	Target Expr
	Op     Operator
	Value  Expr
}

// AnnAssign: Simple is set when Target is a bare, unparenthesized Name.
type AnnAssign struct {
	Target     Expr
	Annotation Expr
	Value      *Expr
	Simple     bool
}

type For struct {
	Target      Expr
	Iter        Expr
	Body        []Stmt
	OrElse      []Stmt
	TypeComment *string
}

type AsyncFor struct {
	Target      Expr
	Iter        Expr
	Body        []Stmt
	OrElse      []Stmt
	TypeComment *string
}

type While struct {
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

// If: an `elif` chain is a single If nested in OrElse.
type If struct {
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

type With struct {
	Items       []Withitem
	Body        []Stmt
	TypeComment *string
}

type AsyncWith struct {
	Items       []Withitem
	Body        []Stmt
	TypeComment *string
}

type Match struct {
	Subject Expr
	Cases   []MatchCase
}

type Raise struct {
	Exc   *Expr
	Cause *Expr
}

// Try: Handlers are tried in order, the first match wins.
type Try struct {
	Body      []Stmt
	Handlers  []ExceptHandlerNode
	OrElse    []Stmt
	FinalBody []Stmt
}

type Assert struct {
	Test Expr
	Msg  *Expr
}

type Import struct {
	Names []Alias
}

// ImportFrom: Module is nil for `from . import x`; Level counts leading dots.
type ImportFrom struct {
	Module *string
	Names  []Alias
	Level  *int
}

type Global struct {
	Names []string
}

type Nonlocal struct {
	Names []string
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Value Expr
}

type Pass struct{}

type Break struct{}

type Continue struct{}

func (*FunctionDef) stmtKind()      {}
func (*AsyncFunctionDef) stmtKind() {}
func (*ClassDef) stmtKind()         {}
func (*Return) stmtKind()           {}
func (*Delete) stmtKind()           {}
func (*Assign) stmtKind()           {}
func (*AugAssign) stmtKind()        {}
func (*AnnAssign) stmtKind()        {}
func (*For) stmtKind()              {}
func (*AsyncFor) stmtKind()         {}
func (*While) stmtKind()            {}
func (*If) stmtKind()               {}
func (*With) stmtKind()             {}
func (*AsyncWith) stmtKind()        {}
func (*Match) stmtKind()            {}
func (*Raise) stmtKind()            {}
func (*Try) stmtKind()              {}
func (*Assert) stmtKind()           {}
func (*Import) stmtKind()           {}
func (*ImportFrom) stmtKind()       {}
func (*Global) stmtKind()           {}
func (*Nonlocal) stmtKind()         {}
func (*ExprStmt) stmtKind()         {}
func (*Pass) stmtKind()             {}
func (*Break) stmtKind()            {}
func (*Continue) stmtKind()         {}
