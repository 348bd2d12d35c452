package validate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"serpent/internal/diag"
)

// Progress is told when a unit starts and when its bag is ready (bag is nil
// on start). It is called from worker goroutines.
type Progress func(index int, bag *diag.Bag)

// RunAll validates independent units concurrently. Trees are only read, so
// they need no locking; bags[i] belongs to units[i].
func RunAll(ctx context.Context, units []Unit, opts Options, jobs int) ([]*diag.Bag, error) {
	return RunAllProgress(ctx, units, opts, jobs, nil)
}

// RunAllProgress is RunAll with a progress callback.
func RunAllProgress(ctx context.Context, units []Unit, opts Options, jobs int, progress Progress) ([]*diag.Bag, error) {
	bags := make([]*diag.Bag, len(units))
	if len(units) == 0 {
		return bags, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))
	for i := range units {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if progress != nil {
				progress(i, nil)
			}
			// индекс i уникален для горутины, мьютекс не нужен
			bags[i] = Check(units[i], opts)
			if progress != nil {
				progress(i, bags[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bags, nil
}
