package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"serpent/internal/astcache"
	"serpent/internal/diag"
	"serpent/internal/diagfmt"
	"serpent/internal/source"
	"serpent/internal/testkit"
	"serpent/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <unit.mp|source>...",
	Short: "Validate persisted trees and their trivia streams",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("fixtures", false, "also check the built-in reference fixtures")
	checkCmd.Flags().Bool("with-notes", false, "print diagnostic notes")
	checkCmd.Flags().Bool("progress", false, "show per-unit progress (terminal only)")
}

type loaded struct {
	unit *astcache.Unit
	file *source.File
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withFixtures, err := cmd.Flags().GetBool("fixtures")
	if err != nil {
		return fmt.Errorf("failed to get fixtures flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	if len(args) == 0 && !withFixtures {
		return fmt.Errorf("nothing to check: pass unit files or --fixtures")
	}
	opts, cfg, err := validateOptions(cmd)
	if err != nil {
		return err
	}
	cache, err := openCache(cfg)
	if err != nil {
		return err
	}
	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	units, err := loadAll(cmd.Context(), args, cache, jobs)
	if err != nil {
		return err
	}
	if withFixtures {
		for _, f := range testkit.Fixtures() {
			st := f.Stream
			u := astcache.NewUnit("<fixture:"+f.Name+">", []byte(f.Source), f.Tree, &st)
			file, err := sourceFile(u)
			if err != nil {
				return err
			}
			units = append(units, loaded{unit: u, file: file})
		}
	}

	work := make([]validate.Unit, len(units))
	for i, l := range units {
		st := l.unit.Stream()
		work[i] = validate.Unit{Path: l.unit.Path, Source: l.unit.Source, Tree: &l.unit.Tree, Stream: &st}
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var bags []*diag.Bag
	if showProgress && isTerminal(os.Stdout) {
		bags, err = runAllWithUI(ctx, "serpent check", work, opts, jobs)
	} else {
		bags, err = validate.RunAll(ctx, work, opts, jobs)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, bag := range bags {
		diagfmt.Pretty(out, bag, units[i].file, diagfmt.PrettyOpts{
			Color:     color,
			ShowNotes: withNotes,
		})
		if bag.HasErrors() {
			failed++
		}
	}
	total := countDiagnostics(bags)
	fmt.Fprintf(cmd.ErrOrStderr(), "checked %d unit(s): %d diagnostic(s), %d unit(s) with errors\n", len(bags), total, failed)
	if failed > 0 {
		return fmt.Errorf("%d unit(s) failed validation", failed)
	}
	return nil
}

// loadAll reads units concurrently, keeping argument order.
func loadAll(ctx context.Context, paths []string, cache *astcache.DiskCache, jobs int) ([]loaded, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]loaded, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := loadUnit(filepath.Clean(p), cache)
			if err == nil && cache != nil && filepath.Ext(p) == ".mp" {
				// загруженный юнит пригодится для проверки по исходнику
				err = cache.Put(u)
			}
			if err != nil {
				return err
			}
			file, err := sourceFile(u)
			if err != nil {
				return err
			}
			out[i] = loaded{unit: u, file: file}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func countDiagnostics(bags []*diag.Bag) int {
	n := 0
	for _, b := range bags {
		n += b.Len()
	}
	return n
}
