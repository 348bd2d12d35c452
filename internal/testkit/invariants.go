package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"serpent/internal/ast"
	"serpent/internal/diag"
	"serpent/internal/source"
	"serpent/internal/token"
	"serpent/internal/validate"
)

// CheckSpanInvariants runs the minimal location invariants on a tree:
// 1) the root fits in a source of srcLen bytes
// 2) every node's location lies within its parent's
// It stops at the first violation.
func CheckSpanInvariants(mod *ast.Mod, srcLen int) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	n, err := safecast.Conv[uint32](srcLen)
	if err != nil {
		return fmt.Errorf("source length overflow: %w", err)
	}
	if mod.Loc.End() > n {
		return fmt.Errorf("module location %v runs past source of %d bytes", mod.Loc, n)
	}

	var (
		stack []source.Location
		bad   error
	)
	ast.Inspect(mod, func(r ast.Ref) bool {
		if r == nil {
			stack = stack[:len(stack)-1]
			return false
		}
		if bad != nil {
			return false
		}
		loc := r.Location()
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			if !parent.Contains(loc) {
				bad = fmt.Errorf("%s at %v is outside parent %v", ast.KindName(r.Value()), loc, parent)
				return false
			}
		}
		stack = append(stack, loc)
		return true
	})
	return bad
}

// CheckTree runs every validation pass and turns the first error-severity
// diagnostic into an error.
func CheckTree(mod *ast.Mod, srcLen int) error {
	opts := validate.DefaultOptions()
	opts.SourceLen = srcLen
	bag := diag.NewBag(opts.MaxDiagnostics)
	validate.New(opts, diag.BagReporter{Bag: bag}).Run(mod)
	bag.Sort()
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			return fmt.Errorf("%s at %v: %s", d.Code.ID(), d.Primary, d.Message)
		}
	}
	return nil
}

// CheckStream verifies that st tiles src and reproduces it byte for byte.
func CheckStream(st token.Stream, src []byte) error {
	out, err := st.Reconstruct(src)
	if err != nil {
		return err
	}
	if string(out) != string(src) {
		return fmt.Errorf("reconstruction mismatch: got %q, want %q", out, src)
	}
	return nil
}
