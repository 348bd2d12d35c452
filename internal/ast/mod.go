package ast

// Module is a file parsed in "exec" mode.
type Module struct {
	Body        []Stmt
	TypeIgnores []TypeIgnore
}

// Interactive is a single REPL input.
type Interactive struct {
	Body []Stmt
}

// Expression is a lone expression parsed in "eval" mode.
type Expression struct {
	Body Expr
}

// FunctionType is a signature type comment: (argtypes) -> returns.
type FunctionType struct {
	ArgTypes []Expr
	Returns  Expr
}

func (*Module) modKind()       {}
func (*Interactive) modKind()  {}
func (*Expression) modKind()   {}
func (*FunctionType) modKind() {}

// TypeIgnore records a `# type: ignore[tag]` comment on a line.
type TypeIgnore struct {
	Lineno int
	Tag    string
}
