package ast

type MatchValue struct {
	Value Expr
}

// MatchSingleton matches None, True or False by identity.
type MatchSingleton struct {
	Value ConstValue
}

type MatchSequence struct {
	Patterns []Pattern
}

// MatchMapping: Rest is the name bound by a trailing `**rest`.
type MatchMapping struct {
	Keys     []Expr
	Patterns []Pattern
	Rest     *string
}

// MatchClass: KwdAttrs and KwdPatterns pair up.
type MatchClass struct {
	Cls         Expr
	Patterns    []Pattern
	KwdAttrs    []string
	KwdPatterns []Pattern
}

// MatchStar is `*name` inside a sequence pattern; nil Name is `*_`.
type MatchStar struct {
	Name *string
}

// MatchAs: both nil is the wildcard `_`; nil Pattern is a capture.
type MatchAs struct {
	Pattern *Pattern
	Name    *string
}

// MatchOr tries alternatives left to right.
type MatchOr struct {
	Patterns []Pattern
}

func (*MatchValue) patternKind()     {}
func (*MatchSingleton) patternKind() {}
func (*MatchSequence) patternKind()  {}
func (*MatchMapping) patternKind()   {}
func (*MatchClass) patternKind()     {}
func (*MatchStar) patternKind()      {}
func (*MatchAs) patternKind()        {}
func (*MatchOr) patternKind()        {}
