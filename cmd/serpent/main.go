package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"serpent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "serpent",
	Short:         "Inspect and validate persisted syntax trees",
	Long:          `serpent checks, prints and caches syntax trees produced by an external parser`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// main registers subcommands and persistent flags and runs the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(triviaCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to serpent.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().Int("max-diagnostics", -1, "maximum number of diagnostics per unit (-1 = from config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
