package validate

import (
	"serpent/internal/ast"
	"serpent/internal/diag"
)

// walker runs all tree passes in one depth-first traversal. parents holds
// the chain of enclosing nodes; want holds the context expected of target
// expressions, registered by their parent before the child is visited.
type walker struct {
	v       *Validator
	parents []ast.Ref
	want    map[*ast.Expr]ast.ExprContext
}

func (w *walker) Visit(r ast.Ref) ast.Visitor {
	if r == nil {
		w.parents = w.parents[:len(w.parents)-1]
		return nil
	}
	opts := w.v.opts
	if opts.Spans && len(w.parents) > 0 {
		parent := w.parents[len(w.parents)-1]
		if !parent.Location().Contains(r.Location()) {
			w.v.reportNote(diag.SevError, diag.SpanNotContained, r.Location(),
				parent.Location(), "enclosing "+ast.KindName(parent.Value())+" is here",
				"%s at %v is outside its parent %s at %v",
				ast.KindName(r.Value()), r.Location(), ast.KindName(parent.Value()), parent.Location())
		}
	}

	payload := r.Value()
	if payload == nil {
		w.v.report(diag.SevError, diag.ShapeMissingPayload, r.Location(), "node has no payload")
	}
	if opts.Contexts {
		w.contexts(r, payload)
	}
	if opts.Arguments {
		w.arguments(r, payload)
	}
	if opts.Shape {
		w.shape(r, payload)
	}
	if opts.Identifiers {
		w.identifiers(r, payload)
	}

	w.parents = append(w.parents, r)
	return w
}
