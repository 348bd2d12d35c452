package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Вложенность локаций
	SpanNotContained Code = 1001
	SpanBeyondSource Code = 1002

	// Контексты выражений
	CtxMismatch Code = 1101

	// Параметры функций
	ArgsTooManyDefaults    Code = 1201
	ArgsKwDefaultsMismatch Code = 1202

	// Форма узлов
	ShapeMissingPayload Code = 1301
	ShapeDictLength     Code = 1302
	ShapeCompareLength  Code = 1303
	ShapeMappingLength  Code = 1304
	ShapeClassKwdLength Code = 1305
	ShapeBoolOpArity    Code = 1306
	ShapeTryHandlers    Code = 1307
	ShapeEmptyBody      Code = 1308
	ShapeSingleton      Code = 1309
	ShapeEmptyTargets   Code = 1310
	ShapeConversion     Code = 1311

	// Идентификаторы
	IdentInvalid       Code = 1401
	IdentNotNormalized Code = 1402

	// Trivia
	TriviaCoverage Code = 1501
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	SpanNotContained:       "Child location outside parent",
	SpanBeyondSource:       "Location beyond end of source",
	CtxMismatch:            "Wrong expression context",
	ArgsTooManyDefaults:    "More defaults than positional parameters",
	ArgsKwDefaultsMismatch: "Keyword-only defaults do not match parameters",
	ShapeMissingPayload:    "Node without payload",
	ShapeDictLength:        "Dict keys and values differ in length",
	ShapeCompareLength:     "Compare operators and comparators differ in length",
	ShapeMappingLength:     "Mapping pattern keys and patterns differ in length",
	ShapeClassKwdLength:    "Class pattern keyword names and patterns differ in length",
	ShapeBoolOpArity:       "Boolean operation with fewer than two values",
	ShapeTryHandlers:       "Malformed try statement",
	ShapeEmptyBody:         "Empty block",
	ShapeSingleton:         "Singleton pattern holds a non-singleton",
	ShapeEmptyTargets:      "Statement without targets",
	ShapeConversion:        "Unknown f-string conversion",
	IdentInvalid:           "Invalid identifier",
	IdentNotNormalized:     "Identifier not NFKC-normalized",
	TriviaCoverage:         "Tokens and trivia do not tile the source",
}

func (c Code) ID() string {
	ic := int(c)
	if ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("AST%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
