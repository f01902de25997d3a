// Package config resolves, parses, validates, and defaults punkt CLI
// configuration.
package config

import "github.com/rbright/punkt"

// Config is the fully materialized runtime configuration used by the punkt
// CLI: which language's pretrained data to load by default, where to look
// for custom data bundles, and the Params threshold overrides applied on
// top of punkt.StandardParams().
type Config struct {
	DefaultLang string
	DataDir     string
	Format      string
	Params      ParamsOverride
}

// ParamsOverride mirrors punkt.Params' numeric knobs and boolean switches.
// Every field is optional; a nil field leaves the corresponding
// punkt.StandardParams() value untouched. This mirrors the teacher's own
// pointer-typed optionality convention for config fields.
type ParamsOverride struct {
	AbbrevLowerBound               *float64
	AbbrevUpperBound               *float64
	IgnoreAbbrevPenalty            *bool
	CollocationLowerBound          *float64
	SentenceStarterLowerBound      *float64
	IncludeAllCollocations         *bool
	IncludeAbbrevCollocations      *bool
	CollocationFrequencyLowerBound *float64
}

// Apply overlays the set fields of p onto base, returning the merged Params.
func (p ParamsOverride) Apply(base punkt.Params) punkt.Params {
	if p.AbbrevLowerBound != nil {
		base.AbbrevLowerBound = *p.AbbrevLowerBound
	}
	if p.AbbrevUpperBound != nil {
		base.AbbrevUpperBound = *p.AbbrevUpperBound
	}
	if p.IgnoreAbbrevPenalty != nil {
		base.IgnoreAbbrevPenalty = *p.IgnoreAbbrevPenalty
	}
	if p.CollocationLowerBound != nil {
		base.CollocationLowerBound = *p.CollocationLowerBound
	}
	if p.SentenceStarterLowerBound != nil {
		base.SentenceStarterLowerBound = *p.SentenceStarterLowerBound
	}
	if p.IncludeAllCollocations != nil {
		base.IncludeAllCollocations = *p.IncludeAllCollocations
	}
	if p.IncludeAbbrevCollocations != nil {
		base.IncludeAbbrevCollocations = *p.IncludeAbbrevCollocations
	}
	if p.CollocationFrequencyLowerBound != nil {
		base.CollocationFrequencyLowerBound = *p.CollocationFrequencyLowerBound
	}
	return base
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
