package config

import (
	"fmt"
	"strings"
)

var knownLangs = map[string]struct{}{
	"czech": {}, "danish": {}, "dutch": {}, "english": {}, "estonian": {},
	"finnish": {}, "french": {}, "german": {}, "greek": {}, "italian": {},
	"norwegian": {}, "polish": {}, "portuguese": {}, "slovene": {},
	"spanish": {}, "swedish": {}, "turkish": {}, "none": {},
}

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	lang := strings.ToLower(strings.TrimSpace(cfg.DefaultLang))
	if lang == "" {
		return nil, fmt.Errorf("lang must not be empty")
	}
	if _, ok := knownLangs[lang]; !ok {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("lang %q is not one of the bundled languages; it must resolve via data_dir", lang),
		})
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != "" && format != "text" && format != "json" && format != "yaml" {
		return nil, fmt.Errorf("format must be one of text, json, yaml, got %q", cfg.Format)
	}

	p := cfg.Params
	if p.AbbrevLowerBound != nil && *p.AbbrevLowerBound < 0 {
		return nil, fmt.Errorf("params.abbrev_lower_bound must be >= 0")
	}
	if p.AbbrevUpperBound != nil && *p.AbbrevUpperBound < 0 {
		return nil, fmt.Errorf("params.abbrev_upper_bound must be >= 0")
	}
	if p.CollocationLowerBound != nil && *p.CollocationLowerBound < 0 {
		return nil, fmt.Errorf("params.collocation_lower_bound must be >= 0")
	}
	if p.SentenceStarterLowerBound != nil && *p.SentenceStarterLowerBound < 0 {
		return nil, fmt.Errorf("params.sentence_starter_lower_bound must be >= 0")
	}
	if p.CollocationFrequencyLowerBound != nil && *p.CollocationFrequencyLowerBound < 0 {
		return nil, fmt.Errorf("params.collocation_frequency_lower_bound must be >= 0")
	}

	return warnings, nil
}
