// Package ast defines the syntax tree produced by the parser.
//
// Every syntactic category is a Node[T]: a Location plus a payload. Payloads
// of Mod, Stmt, Expr, Pattern and ExceptHandlerNode are closed unions:
// interfaces with an unexported marker method implemented only by the
// pointer variants declared in this package. Consumers switch on the
// concrete type and must handle every variant; Children shows the shape.
//
// Trees are built bottom-up by a single producer and are read-only
// afterwards, so they may be traversed from several goroutines at once.
// Each child is owned by exactly one parent: no sharing, no back pointers.
//
// Optional children are pointers (nil means absent), sequences are slices
// (possibly empty). The two are not interchangeable: `return` has a nil
// Value, `return ()` has an empty Tuple.
//
// Nothing here validates payload invariants (expression contexts, default
// counts, span nesting). That is the job of internal/validate.
package ast
