package ast

// BoolOp folds `a or b or c` into one node with three Values.
type BoolOp struct {
	Op     BoolOperator
	Values []Expr
}

// NamedExpr is `target := value`.
type NamedExpr struct {
	Target Expr
	Value  Expr
}

type BinOp struct {
	Left  Expr
	Op    Operator
	Right Expr
}

type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
}

type Lambda struct {
	Args Arguments
	Body Expr
}

// IfExp is the conditional expression `body if test else orelse`.
type IfExp struct {
	Test   Expr
	Body   Expr
	OrElse Expr
}

// Dict: a nil key marks a `**mapping` entry whose mapping is the matching value.
type Dict struct {
	Keys   []*Expr
	Values []Expr
}

type Set struct {
	Elts []Expr
}

type ListComp struct {
	Elt        Expr
	Generators []Comprehension
}

type SetComp struct {
	Elt        Expr
	Generators []Comprehension
}

type DictComp struct {
	Key        Expr
	Value      Expr
	Generators []Comprehension
}

type GeneratorExp struct {
	Elt        Expr
	Generators []Comprehension
}

type Await struct {
	Value Expr
}

type Yield struct {
	Value *Expr
}

type YieldFrom struct {
	Value Expr
}

// Compare is a chain `left op0 c0 op1 c1 ...`; Ops and Comparators pair up.
type Compare struct {
	Left        Expr
	Ops         []CmpOperator
	Comparators []Expr
}

type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []Keyword
}

// Conversion is the `!s`, `!r` or `!a` suffix of an f-string field.
// The zero value means no conversion.
type Conversion rune

const (
	ConversionNone  Conversion = 0
	ConversionStr   Conversion = 's'
	ConversionRepr  Conversion = 'r'
	ConversionASCII Conversion = 'a'
)

// Valid reports whether c is one of the four known conversions.
func (c Conversion) Valid() bool {
	switch c {
	case ConversionNone, ConversionStr, ConversionRepr, ConversionASCII:
		return true
	}
	return false
}

func (c Conversion) String() string {
	if c == ConversionNone {
		return "none"
	}
	return "!" + string(rune(c))
}

// FormattedValue is one `{value!conv:spec}` field of an f-string.
type FormattedValue struct {
	Value      Expr
	Conversion Conversion
	FormatSpec *Expr
}

// JoinedStr is an f-string: Constant and FormattedValue parts in order.
type JoinedStr struct {
	Values []Expr
}

// Constant: Kind is "u" for u-prefixed strings, nil otherwise.
type Constant struct {
	Value ConstValue
	Kind  *string
}

type Attribute struct {
	Value Expr
	Attr  string
	Ctx   ExprContext
}

type Subscript struct {
	Value Expr
	Slice Expr
	Ctx   ExprContext
}

type Starred struct {
	Value Expr
	Ctx   ExprContext
}

type Name struct {
	ID  string
	Ctx ExprContext
}

type List struct {
	Elts []Expr
	Ctx  ExprContext
}

type Tuple struct {
	Elts []Expr
	Ctx  ExprContext
}

// Slice appears only as Subscript.Slice, possibly inside a Tuple.
type Slice struct {
	Lower *Expr
	Upper *Expr
	Step  *Expr
}

func (*BoolOp) exprKind()         {}
func (*NamedExpr) exprKind()      {}
func (*BinOp) exprKind()          {}
func (*UnaryOp) exprKind()        {}
func (*Lambda) exprKind()         {}
func (*IfExp) exprKind()          {}
func (*Dict) exprKind()           {}
func (*Set) exprKind()            {}
func (*ListComp) exprKind()       {}
func (*SetComp) exprKind()        {}
func (*DictComp) exprKind()       {}
func (*GeneratorExp) exprKind()   {}
func (*Await) exprKind()          {}
func (*Yield) exprKind()          {}
func (*YieldFrom) exprKind()      {}
func (*Compare) exprKind()        {}
func (*Call) exprKind()           {}
func (*FormattedValue) exprKind() {}
func (*JoinedStr) exprKind()      {}
func (*Constant) exprKind()       {}
func (*Attribute) exprKind()      {}
func (*Subscript) exprKind()      {}
func (*Starred) exprKind()        {}
func (*Name) exprKind()           {}
func (*List) exprKind()           {}
func (*Tuple) exprKind()          {}
func (*Slice) exprKind()          {}

// ContextOf returns the ExprContext of reference-like payloads.
func ContextOf(k ExprKind) (ExprContext, bool) {
	if isNilPayload(k) {
		return Load, false
	}
	switch e := k.(type) {
	case *Attribute:
		return e.Ctx, true
	case *Subscript:
		return e.Ctx, true
	case *Starred:
		return e.Ctx, true
	case *Name:
		return e.Ctx, true
	case *List:
		return e.Ctx, true
	case *Tuple:
		return e.Ctx, true
	}
	return Load, false
}
