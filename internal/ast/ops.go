package ast

import "fmt"

// ExprContext says whether a reference expression reads, binds or deletes.
type ExprContext uint8

const (
	Load ExprContext = iota
	Store
	Del
)

func (c ExprContext) String() string {
	switch c {
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Del:
		return "Del"
	}
	return fmt.Sprintf("ExprContext(%d)", uint8(c))
}

type BoolOperator uint8

const (
	And BoolOperator = iota
	Or
)

func (op BoolOperator) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	}
	return fmt.Sprintf("BoolOperator(%d)", uint8(op))
}

type Operator uint8

const (
	Add Operator = iota
	Sub
	Mult
	MatMult
	Div
	Modulo
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv
)

var operatorText = [...]string{
	Add:      "+",
	Sub:      "-",
	Mult:     "*",
	MatMult:  "@",
	Div:      "/",
	Modulo:   "%",
	Pow:      "**",
	LShift:   "<<",
	RShift:   ">>",
	BitOr:    "|",
	BitXor:   "^",
	BitAnd:   "&",
	FloorDiv: "//",
}

func (op Operator) String() string {
	if int(op) < len(operatorText) {
		return operatorText[op]
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

type UnaryOperator uint8

const (
	Invert UnaryOperator = iota
	Not
	UAdd
	USub
)

func (op UnaryOperator) String() string {
	switch op {
	case Invert:
		return "~"
	case Not:
		return "not"
	case UAdd:
		return "+"
	case USub:
		return "-"
	}
	return fmt.Sprintf("UnaryOperator(%d)", uint8(op))
}

type CmpOperator uint8

const (
	Eq CmpOperator = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

var cmpText = [...]string{
	Eq:    "==",
	NotEq: "!=",
	Lt:    "<",
	LtE:   "<=",
	Gt:    ">",
	GtE:   ">=",
	Is:    "is",
	IsNot: "is not",
	In:    "in",
	NotIn: "not in",
}

func (op CmpOperator) String() string {
	if int(op) < len(cmpText) {
		return cmpText[op]
	}
	return fmt.Sprintf("CmpOperator(%d)", uint8(op))
}
