// Package doctor runs runtime readiness diagnostics for config, data, and language resolution.
package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/rbright/punkt"
	"github.com/rbright/punkt/internal/config"
	"github.com/rbright/punkt/langdata"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes config/data/lang/params sanity checks for a loaded config.
func Run(cfg config.Loaded) Report {
	checks := []Check{}

	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: fmt.Sprintf("loaded %q", cfg.Path),
	})

	checks = append(checks, checkLang(cfg.Config.DefaultLang))
	checks = append(checks, checkDataDir(cfg.Config.DataDir))
	checks = append(checks, checkParams(cfg.Config))

	return Report{Checks: checks}
}

// checkLang verifies that the configured default language resolves through langdata.
func checkLang(lang string) Check {
	if strings.TrimSpace(lang) == "" {
		return Check{Name: "lang", Pass: false, Message: "lang is empty"}
	}
	if _, err := langdata.ByName(lang); err != nil {
		return Check{Name: "lang", Pass: false, Message: err.Error()}
	}
	return Check{Name: "lang", Pass: true, Message: fmt.Sprintf("%q resolves to bundled data", lang)}
}

// checkDataDir verifies that the config's data_dir path, when set, exists and
// parses as valid TrainingData JSON.
func checkDataDir(path string) Check {
	if strings.TrimSpace(path) == "" {
		return Check{Name: "data_dir", Pass: true, Message: "unset; using bundled language data"}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Check{Name: "data_dir", Pass: false, Message: fmt.Sprintf("cannot read %q: %v", path, err)}
	}

	if _, err := punkt.TrainingDataFromJSON(raw); err != nil {
		return Check{Name: "data_dir", Pass: false, Message: fmt.Sprintf("%q does not parse as training data: %v", path, err)}
	}
	return Check{Name: "data_dir", Pass: true, Message: fmt.Sprintf("%q parses as training data", path)}
}

// checkParams verifies the configured ParamsOverride bounds are non-negative.
func checkParams(cfg config.Config) Check {
	if _, err := config.Validate(cfg); err != nil {
		return Check{Name: "params", Pass: false, Message: err.Error()}
	}
	return Check{Name: "params", Pass: true, Message: "overrides within sane ranges"}
}
