package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"serpent/internal/astcache"
	"serpent/internal/testkit"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [flags]",
	Short: "Write the built-in reference trees as unit files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("out")
		if err != nil {
			return fmt.Errorf("failed to get out flag: %w", err)
		}
		for _, f := range testkit.Fixtures() {
			st := f.Stream
			u := astcache.NewUnit(f.Name+".py", []byte(f.Source), f.Tree, &st)
			path := filepath.Join(dir, f.Name+".mp")
			if err := astcache.WriteFile(path, u); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	fixturesCmd.Flags().String("out", ".", "directory to write the unit files to")
}
