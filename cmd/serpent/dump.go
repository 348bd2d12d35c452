package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"serpent/internal/diagfmt"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <unit.mp|source>",
	Short: "Print the syntax tree of a unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cache, err := openCache(cfg)
		if err != nil {
			return err
		}
		u, err := loadUnit(args[0], cache)
		if err != nil {
			return err
		}
		file, err := sourceFile(u)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "tree":
			return diagfmt.Tree(out, &u.Tree, file)
		case "art":
			return diagfmt.TreeArt(out, &u.Tree, file)
		case "json":
			return diagfmt.TreeJSON(out, &u.Tree)
		}
		return fmt.Errorf("unsupported format %q (must be tree, art or json)", format)
	},
}

func init() {
	dumpCmd.Flags().String("format", "tree", "output format (tree|art|json)")
}
