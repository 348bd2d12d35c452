package validate

import (
	"errors"
	"fmt"

	"serpent/internal/ast"
	"serpent/internal/diag"
	"serpent/internal/source"
	"serpent/internal/token"
)

// Validator checks the producer-side invariants of a finished tree. It never
// modifies the tree.
type Validator struct {
	opts Options
	r    diag.Reporter
}

func New(opts Options, r diag.Reporter) *Validator {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Validator{opts: opts, r: r}
}

// builder is nil for diagnostics below MinSeverity; a nil builder ignores
// WithNote and Emit.
func (v *Validator) builder(sev diag.Severity, code diag.Code, loc source.Location, format string, args ...any) *diag.ReportBuilder {
	if sev < v.opts.MinSeverity {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	switch sev {
	case diag.SevError:
		return diag.ReportError(v.r, code, loc, msg)
	case diag.SevWarning:
		return diag.ReportWarning(v.r, code, loc, msg)
	default:
		return diag.NewReportBuilder(v.r, sev, code, loc, msg)
	}
}

func (v *Validator) report(sev diag.Severity, code diag.Code, loc source.Location, format string, args ...any) {
	v.builder(sev, code, loc, format, args...).Emit()
}

// reportNote is report with one note pointing at a related node.
func (v *Validator) reportNote(sev diag.Severity, code diag.Code, loc, noteLoc source.Location, note, format string, args ...any) {
	v.builder(sev, code, loc, format, args...).WithNote(noteLoc, note).Emit()
}

// Run validates the tree rooted at mod.
func (v *Validator) Run(mod *ast.Mod) {
	if mod == nil {
		return
	}
	if v.opts.Spans && v.opts.SourceLen >= 0 && int(mod.Loc.End()) > v.opts.SourceLen {
		v.report(diag.SevError, diag.SpanBeyondSource, mod.Loc,
			"module location %v runs past the %d-byte source", mod.Loc, v.opts.SourceLen)
	}
	w := &walker{v: v, want: make(map[*ast.Expr]ast.ExprContext)}
	ast.Walk(w, mod)
}

// RunStream checks that st tiles a source of srcLen bytes.
func (v *Validator) RunStream(st token.Stream, srcLen int) {
	if !v.opts.Trivia {
		return
	}
	err := st.Check(srcLen)
	if err == nil {
		return
	}
	var ce *token.CoverageError
	if !errors.As(err, &ce) {
		v.report(diag.SevError, diag.TriviaCoverage, source.Location{}, "%v", err)
		return
	}
	loc := ce.Loc
	switch ce.Problem {
	case "gap":
		// подчёркиваем сами пропущенные байты, а не следующий кусок
		end := srcLen
		if !ce.Loc.Empty() {
			end = int(ce.Loc.Start())
		}
		if l, lerr := source.NewLocation(int(ce.Offset), end); lerr == nil {
			loc = l
		}
	case "overrun":
		if l, lerr := source.NewLocation(int(ce.Offset), int(ce.Offset)); lerr == nil {
			loc = l
		}
	}
	v.report(diag.SevError, diag.TriviaCoverage, loc, "%s at offset %d", ce.Problem, ce.Offset)
}

// Unit is one parsed source: the tree plus, optionally, its text and
// token/trivia stream.
type Unit struct {
	Path   string
	Source []byte
	Tree   *ast.Mod
	Stream *token.Stream
}

// Check runs every enabled pass over u and returns the sorted diagnostics.
func Check(u Unit, opts Options) *diag.Bag {
	bag := diag.NewBag(opts.MaxDiagnostics)
	if u.Source != nil {
		opts.SourceLen = len(u.Source)
	}
	v := New(opts, diag.BagReporter{Bag: bag})
	v.Run(u.Tree)
	if u.Stream != nil && u.Source != nil {
		v.RunStream(*u.Stream, len(u.Source))
	}
	bag.Dedup()
	bag.Sort()
	return bag
}
