package validate

import (
	"serpent/internal/config"
	"serpent/internal/diag"
)

// Options selects the passes to run.
type Options struct {
	Spans       bool
	Contexts    bool
	Arguments   bool
	Shape       bool
	Identifiers bool
	Trivia      bool

	// SourceLen bounds the root location when >= 0.
	SourceLen      int
	MaxDiagnostics int
	MinSeverity    diag.Severity
}

func DefaultOptions() Options {
	return Options{
		Spans:          true,
		Contexts:       true,
		Arguments:      true,
		Shape:          true,
		Identifiers:    true,
		Trivia:         true,
		SourceLen:      -1,
		MaxDiagnostics: 100,
		MinSeverity:    diag.SevInfo,
	}
}

// FromConfig maps the [validate] table of serpent.toml onto Options.
func FromConfig(cfg config.Config) (Options, error) {
	sev, err := cfg.MinSeverity()
	if err != nil {
		return Options{}, err
	}
	v := cfg.Validate
	return Options{
		Spans:          v.Spans,
		Contexts:       v.Contexts,
		Arguments:      v.Arguments,
		Shape:          v.Shape,
		Identifiers:    v.Identifiers,
		Trivia:         v.Trivia,
		SourceLen:      -1,
		MaxDiagnostics: v.MaxDiagnostics,
		MinSeverity:    sev,
	}, nil
}
