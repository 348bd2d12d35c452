package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"serpent/internal/diagfmt"
)

var triviaCmd = &cobra.Command{
	Use:   "trivia [flags] <unit.mp|source>",
	Short: "Print the token and trivia stream of a unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		st := u.Stream()
		if err := diagfmt.Trivia(cmd.OutOrStdout(), st, file); err != nil {
			return err
		}

		reconstruct, err := cmd.Flags().GetBool("reconstruct")
		if err != nil {
			return fmt.Errorf("failed to get reconstruct flag: %w", err)
		}
		if !reconstruct {
			return nil
		}
		text, err := st.Reconstruct(u.Source)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(text)
		return err
	},
}

func init() {
	triviaCmd.Flags().Bool("reconstruct", false, "print the source rebuilt from tokens and trivia")
}
