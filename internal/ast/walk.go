package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of the node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(r Ref) (w Visitor)
}

// Walk traverses the tree rooted at r in depth-first order.
func Walk(v Visitor, r Ref) {
	if v = v.Visit(r); v == nil {
		return
	}
	for _, c := range Children(r) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Ref) bool

func (f inspector) Visit(r Ref) Visitor {
	if f(r) {
		return f
	}
	return nil
}

// Inspect calls f for every node in depth-first order, skipping the
// children of nodes for which f returns false. f is also called with nil
// after the children of a node are done.
func Inspect(r Ref, f func(Ref) bool) {
	Walk(inspector(f), r)
}

// Children lists the located nodes directly below r, in field order.
// Records without a Location of their own (Arguments, Withitem, MatchCase,
// Comprehension) are transparent: their fields are listed instead.
// Children panics on a payload that is not part of the tree vocabulary.
func Children(r Ref) []Ref {
	var c collector
	c.payload(r.Value())
	return c.out
}

type collector struct {
	out []Ref
}

func (c *collector) expr(e *Expr) {
	if e != nil {
		c.out = append(c.out, e)
	}
}

func (c *collector) exprs(es []Expr) {
	for i := range es {
		c.out = append(c.out, &es[i])
	}
}

func (c *collector) optExprs(es []*Expr) {
	for _, e := range es {
		c.expr(e)
	}
}

func (c *collector) stmts(ss []Stmt) {
	for i := range ss {
		c.out = append(c.out, &ss[i])
	}
}

func (c *collector) pattern(p *Pattern) {
	if p != nil {
		c.out = append(c.out, p)
	}
}

func (c *collector) patterns(ps []Pattern) {
	for i := range ps {
		c.out = append(c.out, &ps[i])
	}
}

func (c *collector) arg(a *Arg) {
	if a != nil {
		c.out = append(c.out, a)
	}
}

func (c *collector) argList(as []Arg) {
	for i := range as {
		c.out = append(c.out, &as[i])
	}
}

func (c *collector) keywords(ks []Keyword) {
	for i := range ks {
		c.out = append(c.out, &ks[i])
	}
}

func (c *collector) aliases(as []Alias) {
	for i := range as {
		c.out = append(c.out, &as[i])
	}
}

func (c *collector) arguments(a *Arguments) {
	c.argList(a.PosOnlyArgs)
	c.argList(a.Args)
	c.arg(a.VarArg)
	c.argList(a.KwOnlyArgs)
	c.optExprs(a.KwDefaults)
	c.arg(a.KwArg)
	c.exprs(a.Defaults)
}

func (c *collector) generators(gs []Comprehension) {
	for i := range gs {
		c.expr(&gs[i].Target)
		c.expr(&gs[i].Iter)
		c.exprs(gs[i].Ifs)
	}
}

func (c *collector) payload(v any) {
	if isNilPayload(v) {
		// незаполненный payload; об этом сообщает validate
		return
	}
	switch p := v.(type) {
	// modules
	case *Module:
		c.stmts(p.Body)
	case *Interactive:
		c.stmts(p.Body)
	case *Expression:
		c.expr(&p.Body)
	case *FunctionType:
		c.exprs(p.ArgTypes)
		c.expr(&p.Returns)

	// statements
	case *FunctionDef:
		c.exprs(p.DecoratorList)
		c.arguments(&p.Args)
		c.expr(p.Returns)
		c.stmts(p.Body)
	case *AsyncFunctionDef:
		c.exprs(p.DecoratorList)
		c.arguments(&p.Args)
		c.expr(p.Returns)
		c.stmts(p.Body)
	case *ClassDef:
		c.exprs(p.DecoratorList)
		c.exprs(p.Bases)
		c.keywords(p.Keywords)
		c.stmts(p.Body)
	case *Return:
		c.expr(p.Value)
	case *Delete:
		c.exprs(p.Targets)
	case *Assign:
		c.exprs(p.Targets)
		c.expr(&p.Value)
	case *AugAssign:
		c.expr(&p.Target)
		c.expr(&p.Value)
	case *AnnAssign:
		c.expr(&p.Target)
		c.expr(&p.Annotation)
		c.expr(p.Value)
	case *For:
		c.expr(&p.Target)
		c.expr(&p.Iter)
		c.stmts(p.Body)
		c.stmts(p.OrElse)
	case *AsyncFor:
		c.expr(&p.Target)
		c.expr(&p.Iter)
		c.stmts(p.Body)
		c.stmts(p.OrElse)
	case *While:
		c.expr(&p.Test)
		c.stmts(p.Body)
		c.stmts(p.OrElse)
	case *If:
		c.expr(&p.Test)
		c.stmts(p.Body)
		c.stmts(p.OrElse)
	case *With:
		c.withItems(p.Items)
		c.stmts(p.Body)
	case *AsyncWith:
		c.withItems(p.Items)
		c.stmts(p.Body)
	case *Match:
		c.expr(&p.Subject)
		for i := range p.Cases {
			mc := &p.Cases[i]
			c.pattern(&mc.Pattern)
			c.expr(mc.Guard)
			c.stmts(mc.Body)
		}
	case *Raise:
		c.expr(p.Exc)
		c.expr(p.Cause)
	case *Try:
		c.stmts(p.Body)
		for i := range p.Handlers {
			c.out = append(c.out, &p.Handlers[i])
		}
		c.stmts(p.OrElse)
		c.stmts(p.FinalBody)
	case *Assert:
		c.expr(&p.Test)
		c.expr(p.Msg)
	case *Import:
		c.aliases(p.Names)
	case *ImportFrom:
		c.aliases(p.Names)
	case *Global, *Nonlocal, *Pass, *Break, *Continue:
	case *ExprStmt:
		c.expr(&p.Value)

	// expressions
	case *BoolOp:
		c.exprs(p.Values)
	case *NamedExpr:
		c.expr(&p.Target)
		c.expr(&p.Value)
	case *BinOp:
		c.expr(&p.Left)
		c.expr(&p.Right)
	case *UnaryOp:
		c.expr(&p.Operand)
	case *Lambda:
		c.arguments(&p.Args)
		c.expr(&p.Body)
	case *IfExp:
		// порядок полей, а не порядок в исходнике (body if test else orelse)
		c.expr(&p.Test)
		c.expr(&p.Body)
		c.expr(&p.OrElse)
	case *Dict:
		for i := range p.Values {
			if i < len(p.Keys) {
				c.expr(p.Keys[i])
			}
			c.expr(&p.Values[i])
		}
	case *Set:
		c.exprs(p.Elts)
	case *ListComp:
		c.expr(&p.Elt)
		c.generators(p.Generators)
	case *SetComp:
		c.expr(&p.Elt)
		c.generators(p.Generators)
	case *DictComp:
		c.expr(&p.Key)
		c.expr(&p.Value)
		c.generators(p.Generators)
	case *GeneratorExp:
		c.expr(&p.Elt)
		c.generators(p.Generators)
	case *Await:
		c.expr(&p.Value)
	case *Yield:
		c.expr(p.Value)
	case *YieldFrom:
		c.expr(&p.Value)
	case *Compare:
		c.expr(&p.Left)
		c.exprs(p.Comparators)
	case *Call:
		c.expr(&p.Func)
		c.exprs(p.Args)
		c.keywords(p.Keywords)
	case *FormattedValue:
		c.expr(&p.Value)
		c.expr(p.FormatSpec)
	case *JoinedStr:
		c.exprs(p.Values)
	case *Constant, *Name:
	case *Attribute:
		c.expr(&p.Value)
	case *Subscript:
		c.expr(&p.Value)
		c.expr(&p.Slice)
	case *Starred:
		c.expr(&p.Value)
	case *List:
		c.exprs(p.Elts)
	case *Tuple:
		c.exprs(p.Elts)
	case *Slice:
		c.expr(p.Lower)
		c.expr(p.Upper)
		c.expr(p.Step)

	// patterns
	case *MatchValue:
		c.expr(&p.Value)
	case *MatchSingleton, *MatchStar:
	case *MatchSequence:
		c.patterns(p.Patterns)
	case *MatchMapping:
		for i := range p.Keys {
			c.expr(&p.Keys[i])
			if i < len(p.Patterns) {
				c.pattern(&p.Patterns[i])
			}
		}
		if len(p.Patterns) > len(p.Keys) {
			c.patterns(p.Patterns[len(p.Keys):])
		}
	case *MatchClass:
		c.expr(&p.Cls)
		c.patterns(p.Patterns)
		c.patterns(p.KwdPatterns)
	case *MatchAs:
		c.pattern(p.Pattern)
	case *MatchOr:
		c.patterns(p.Patterns)

	// records with a location
	case *ExceptHandler:
		c.expr(p.Type)
		c.stmts(p.Body)
	case *ArgData:
		c.expr(p.Annotation)
	case *KeywordData:
		c.expr(&p.Value)
	case *AliasData:

	default:
		panic(fmt.Sprintf("ast: unhandled payload %T", v))
	}
}

func (c *collector) withItems(items []Withitem) {
	for i := range items {
		c.expr(&items[i].ContextExpr)
		c.expr(items[i].OptionalVars)
	}
}
