package ast

import (
	"reflect"

	"serpent/internal/source"
)

// Node wraps a payload with the Location it was parsed from.
type Node[T any] struct {
	Loc     source.Location
	Payload T
}

// New always succeeds; the producer is responsible for the payload.
func New[T any](loc source.Location, payload T) Node[T] {
	return Node[T]{Loc: loc, Payload: payload}
}

// Location implements Ref.
func (n *Node[T]) Location() source.Location {
	return n.Loc
}

// Value implements Ref. Union payloads are returned as stored (they are
// already pointers); record payloads are returned as a pointer into the node.
// A typed nil variant such as (*Attribute)(nil) comes back as untyped nil.
func (n *Node[T]) Value() any {
	switch p := any(&n.Payload).(type) {
	case *ArgData, *KeywordData, *AliasData:
		return p
	}
	v := any(n.Payload)
	if isNilPayload(v) {
		return nil
	}
	return v
}

// isNilPayload reports whether v is nil or a nil pointer in an interface.
func isNilPayload(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type (
	Mod               = Node[ModKind]
	Stmt              = Node[StmtKind]
	Expr              = Node[ExprKind]
	Pattern           = Node[PatternKind]
	ExceptHandlerNode = Node[ExceptHandlerKind]
	Arg               = Node[ArgData]
	Keyword           = Node[KeywordData]
	Alias             = Node[AliasData]
)

// Ref is a type-erased *Node[T], as seen by traversal.
type Ref interface {
	Location() source.Location
	Value() any
}

// Closed unions. The marker methods are unexported so only this package
// can add variants.
type (
	ModKind interface {
		modKind()
	}
	StmtKind interface {
		stmtKind()
	}
	ExprKind interface {
		exprKind()
	}
	PatternKind interface {
		patternKind()
	}
	ExceptHandlerKind interface {
		exceptHandlerKind()
	}
)
