package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConstKind is the closed set of literal kinds a ConstValue can hold.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstBool
	ConstStr
	ConstBytes
	ConstInt
	ConstTuple
	ConstFloat
	ConstComplex
	ConstEllipsis
)

func (k ConstKind) String() string {
	switch k {
	case ConstNone:
		return "None"
	case ConstBool:
		return "Bool"
	case ConstStr:
		return "Str"
	case ConstBytes:
		return "Bytes"
	case ConstInt:
		return "Int"
	case ConstTuple:
		return "Tuple"
	case ConstFloat:
		return "Float"
	case ConstComplex:
		return "Complex"
	case ConstEllipsis:
		return "Ellipsis"
	}
	return fmt.Sprintf("ConstKind(%d)", uint8(k))
}

// ConstValue is a literal. Only the fields matching Kind are meaningful:
// Float holds the real part and Imag the imaginary part of a complex.
type ConstValue struct {
	Kind  ConstKind
	Bool  bool
	Str   string
	Bytes []byte
	Int   int64
	Float float64
	Imag  float64
	Tuple []ConstValue
}

func NoneConst() ConstValue {
	return ConstValue{Kind: ConstNone}
}

func BoolConst(v bool) ConstValue {
	return ConstValue{Kind: ConstBool, Bool: v}
}

func StrConst(v string) ConstValue {
	return ConstValue{Kind: ConstStr, Str: v}
}

func BytesConst(v []byte) ConstValue {
	return ConstValue{Kind: ConstBytes, Bytes: v}
}

func IntConst(v int64) ConstValue {
	return ConstValue{Kind: ConstInt, Int: v}
}

func FloatConst(v float64) ConstValue {
	return ConstValue{Kind: ConstFloat, Float: v}
}

func ComplexConst(re, im float64) ConstValue {
	return ConstValue{Kind: ConstComplex, Float: re, Imag: im}
}

func TupleConst(elts ...ConstValue) ConstValue {
	return ConstValue{Kind: ConstTuple, Tuple: elts}
}

func EllipsisConst() ConstValue {
	return ConstValue{Kind: ConstEllipsis}
}

// IsSingleton reports whether the value is None, True or False, the only
// values a MatchSingleton may hold.
func (c ConstValue) IsSingleton() bool {
	return c.Kind == ConstNone || c.Kind == ConstBool
}

// String renders the value the way the language would print its repr.
func (c ConstValue) String() string {
	switch c.Kind {
	case ConstNone:
		return "None"
	case ConstBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case ConstStr:
		return strconv.Quote(c.Str)
	case ConstBytes:
		return "b" + strconv.Quote(string(c.Bytes))
	case ConstInt:
		return strconv.FormatInt(c.Int, 10)
	case ConstFloat:
		return formatFloat(c.Float)
	case ConstComplex:
		if c.Float == 0 {
			return formatFloat(c.Imag) + "j"
		}
		sign := "+"
		if c.Imag < 0 {
			sign = ""
		}
		return "(" + formatFloat(c.Float) + sign + formatFloat(c.Imag) + "j)"
	case ConstTuple:
		parts := make([]string, len(c.Tuple))
		for i, e := range c.Tuple {
			parts[i] = e.String()
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ConstEllipsis:
		return "Ellipsis"
	}
	return c.Kind.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
