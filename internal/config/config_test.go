package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"serpent/internal/diag"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[validate]
identifiers = false
max_diagnostics = 7
min_severity = "warning"

[cache]
dir = "/tmp/serpent-cache"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Validate.Identifiers {
		t.Errorf("identifiers should be disabled")
	}
	if !cfg.Validate.Spans || !cfg.Validate.Contexts {
		t.Errorf("omitted keys must keep defaults: %+v", cfg.Validate)
	}
	if cfg.Validate.MaxDiagnostics != 7 {
		t.Errorf("max_diagnostics = %d", cfg.Validate.MaxDiagnostics)
	}
	if sev, _ := cfg.MinSeverity(); sev != diag.SevWarning {
		t.Errorf("min severity = %v", sev)
	}
	if cfg.Cache.Dir != "/tmp/serpent-cache" || !cfg.Cache.Enabled {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[validate]\nspelling = true\n", "unknown key"},
		{"bad severity", "[validate]\nmin_severity = \"loud\"\n", "min_severity"},
		{"negative limit", "[validate]\nmax_diagnostics = -1\n", "negative"},
		{"broken toml", "[validate\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestResolve_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[validate]\ntrivia = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, path, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("path = %q", path)
	}
	if cfg.Validate.Trivia {
		t.Errorf("trivia should be disabled by the found config")
	}
}
