package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"serpent/internal/diag"
)

// FileName is the configuration file looked up from the working directory upward.
const FileName = "serpent.toml"

type Config struct {
	Validate ValidateConfig `toml:"validate"`
	Cache    CacheConfig    `toml:"cache"`
}

// ValidateConfig toggles the passes of internal/validate.
type ValidateConfig struct {
	Spans          bool   `toml:"spans"`
	Contexts       bool   `toml:"contexts"`
	Arguments      bool   `toml:"arguments"`
	Shape          bool   `toml:"shape"`
	Identifiers    bool   `toml:"identifiers"`
	Trivia         bool   `toml:"trivia"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	MinSeverity    string `toml:"min_severity"`
}

type CacheConfig struct {
	// Dir overrides $XDG_CACHE_HOME/serpent.
	Dir     string `toml:"dir"`
	Enabled bool   `toml:"enabled"`
}

// Default enables every pass.
func Default() Config {
	return Config{
		Validate: ValidateConfig{
			Spans:          true,
			Contexts:       true,
			Arguments:      true,
			Shape:          true,
			Identifiers:    true,
			Trivia:         true,
			MaxDiagnostics: 100,
			MinSeverity:    "info",
		},
		Cache: CacheConfig{Enabled: true},
	}
}

// MinSeverity parses Validate.MinSeverity.
func (c Config) MinSeverity() (diag.Severity, error) {
	if c.Validate.MinSeverity == "" {
		return diag.SevInfo, nil
	}
	return diag.ParseSeverity(c.Validate.MinSeverity)
}

// Find walks up from startDir looking for serpent.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults, so keys left out keep their default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if _, err := cfg.MinSeverity(); err != nil {
		return Config{}, fmt.Errorf("%s: validate.min_severity: %w", path, err)
	}
	if cfg.Validate.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: validate.max_diagnostics must not be negative", path)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest serpent.toml above
// startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}
