package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"serpent/internal/astcache"
	"serpent/internal/version"
)

// buildInfo is what `serpent version` reports; the optional fields are set
// only with --full.
type buildInfo struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	CacheSchema uint16 `json:"cache_schema"`
	GitCommit   string `json:"git_commit,omitempty"`
	GitMessage  string `json:"git_message,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show serpent build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("full", false, "include commit, commit message and build date")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fmt.Errorf("failed to get full flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	info := collectBuildInfo(full)
	switch strings.ToLower(format) {
	case "json":
		return writeVersionJSON(cmd.OutOrStdout(), info)
	case "pretty":
		color, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		writeVersionPretty(cmd.OutOrStdout(), info, full, color)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func collectBuildInfo(full bool) buildInfo {
	info := buildInfo{
		Tool:        "serpent",
		Version:     strings.TrimSpace(version.Version),
		CacheSchema: astcache.SchemaVersion,
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if full {
		info.GitCommit = orUnknown(version.GitCommit)
		info.GitMessage = orUnknown(version.GitMessage)
		info.BuildDate = orUnknown(version.BuildDate)
	}
	return info
}

func writeVersionPretty(out io.Writer, info buildInfo, full, color bool) {
	fmt.Fprintf(out, "%s %s (cache schema %d)\n", info.Tool, version.Colorize(info.Version, color), info.CacheSchema)
	if !full {
		return
	}
	fmt.Fprintf(out, "commit:  %s\n", info.GitCommit)
	fmt.Fprintf(out, "message: %s\n", info.GitMessage)
	fmt.Fprintf(out, "built:   %s\n", info.BuildDate)
}

func writeVersionJSON(out io.Writer, info buildInfo) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
