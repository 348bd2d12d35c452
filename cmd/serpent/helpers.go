package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"serpent/internal/astcache"
	"serpent/internal/config"
	"serpent/internal/source"
	"serpent/internal/validate"
)

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	}
	return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorFlag)
}

// loadConfig resolves serpent.toml and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, _, err := config.Resolve(explicit, ".")
	if err != nil {
		return config.Config{}, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics >= 0 {
		cfg.Validate.MaxDiagnostics = maxDiagnostics
	}
	return cfg, nil
}

func validateOptions(cmd *cobra.Command) (validate.Options, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return validate.Options{}, config.Config{}, err
	}
	opts, err := validate.FromConfig(cfg)
	return opts, cfg, err
}

func openCache(cfg config.Config) (*astcache.DiskCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	return astcache.Open(cfg.Cache.Dir)
}

// loadUnit reads a persisted unit (*.mp). Any other path is treated as a
// source file whose unit is looked up in the cache by content.
func loadUnit(path string, cache *astcache.DiskCache) (*astcache.Unit, error) {
	if strings.HasSuffix(path, ".mp") {
		u, err := astcache.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return u, nil
	}
	if cache == nil {
		return nil, fmt.Errorf("%s: not a unit file and the cache is disabled", path)
	}
	src, err := source.LoadRaw(path)
	if err != nil {
		return nil, err
	}
	u, ok, err := cache.Lookup(src.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: cache: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: no cached tree for this source", path)
	}
	u.Path = src.Path
	return u, nil
}

func sourceFile(u *astcache.Unit) (*source.File, error) {
	return source.NewVirtualFile(u.Path, u.Source)
}
