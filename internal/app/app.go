// Package app wires parsed CLI commands to the punkt library and its
// supporting config, logging, and diagnostics packages.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/rbright/punkt"
	"github.com/rbright/punkt/internal/cli"
	"github.com/rbright/punkt/internal/config"
	"github.com/rbright/punkt/internal/doctor"
	"github.com/rbright/punkt/internal/logging"
	"github.com/rbright/punkt/internal/version"
	"github.com/rbright/punkt/langdata"
)

// Runner holds process-level dependencies used by command handlers.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Execute is the package entrypoint used by cmd/punkt/main.go.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

// Execute parses CLI arguments, loads config/logging, and dispatches a command.
func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("punkt"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("punkt"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.Report(parsed.Lang, langdata.Languages()))
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	lang := parsed.Lang
	if lang == "" {
		lang = cfgLoaded.Config.DefaultLang
	}
	format := parsed.Format
	if format == "" {
		format = cfgLoaded.Config.Format
	}

	start := time.Now()
	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
		"lang", lang,
	)

	var exitCode int
	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		exitCode = 0
		if !report.OK() {
			exitCode = 1
		}
	case cli.CommandSegment:
		exitCode = r.commandSegment(parsed, cfgLoaded.Config, lang, format)
	case cli.CommandTrain:
		exitCode = r.commandTrain(parsed, cfgLoaded.Config, lang, logger)
	case cli.CommandStats:
		exitCode = r.commandStats(parsed, cfgLoaded.Config, lang, format)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		exitCode = 2
	}

	logger.Info("command done",
		"command", parsed.Command,
		"duration_ms", time.Since(start).Milliseconds(),
		"exit_code", exitCode,
	)
	return exitCode
}

// loadTrainingData resolves a TrainingData bundle for lang, preferring a
// config/flag-supplied --data path over the bundled language seed.
func loadTrainingData(dataPath, lang string) (punkt.TrainingData, error) {
	if strings.TrimSpace(dataPath) != "" {
		raw, err := os.ReadFile(dataPath)
		if err != nil {
			return punkt.TrainingData{}, fmt.Errorf("read data file %q: %w", dataPath, err)
		}
		return punkt.TrainingDataFromJSON(raw)
	}
	return langdata.ByName(lang)
}

// commandSegment runs C8 over a single input file and prints its sentences.
func (r Runner) commandSegment(parsed cli.Parsed, cfg config.Config, lang, format string) int {
	dataPath := parsed.DataPath
	if dataPath == "" {
		dataPath = cfg.DataDir
	}

	data, err := loadTrainingData(dataPath, lang)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	raw, err := os.ReadFile(parsed.Files[0])
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: read %q: %v\n", parsed.Files[0], err)
		return 1
	}
	doc := string(raw)

	params := cfg.Params.Apply(punkt.StandardParams())
	tokenizer := punkt.NewSentenceTokenizer(params, data)

	if format == "json" {
		offsets := tokenizer.TokenizeBytes(doc)
		type jsonSentence struct {
			Start int    `json:"start"`
			End   int    `json:"end"`
			Text  string `json:"text"`
		}
		sentences := make([]jsonSentence, len(offsets))
		for i, off := range offsets {
			sentences[i] = jsonSentence{Start: off.Start, End: off.End, Text: doc[off.Start:off.End]}
		}
		out, err := json.Marshal(sentences)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: encode sentences: %v\n", err)
			return 1
		}
		fmt.Fprintln(r.Stdout, string(out))
		return 0
	}

	for _, sentence := range tokenizer.Tokenize(doc) {
		fmt.Fprintln(r.Stdout, sentence)
	}
	return 0
}

// commandTrain runs C7 over one or more documents and writes the resulting
// TrainingData as JSON to --out.
func (r Runner) commandTrain(parsed cli.Parsed, cfg config.Config, lang string, logger *slog.Logger) int {
	dataPath := parsed.DataPath
	if dataPath == "" {
		dataPath = cfg.DataDir
	}

	data, err := loadTrainingData(dataPath, lang)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	params := cfg.Params.Apply(punkt.StandardParams())
	trainer := punkt.NewTrainer(params)

	var bar *progressbar.ProgressBar
	if len(parsed.Files) > 1 && isTerminal(r.Stdout) {
		bar = progressbar.Default(int64(len(parsed.Files)), "training")
	}

	for _, path := range parsed.Files {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: read %q: %v\n", path, err)
			return 1
		}
		trainer.Train(string(raw), data)
		logger.Info("training batch", "file", path)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	trainer.Finalize(data)

	out, err := data.WriteJSON()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: encode training data: %v\n", err)
		return 1
	}
	if err := os.WriteFile(parsed.OutPath, out, 0o644); err != nil {
		fmt.Fprintf(r.Stderr, "error: write %q: %v\n", parsed.OutPath, err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "wrote %s\n", parsed.OutPath)
	return 0
}

// statsSummary is the table-size summary printed/rendered by `punkt stats`.
type statsSummary struct {
	Lang                 string `yaml:"lang"`
	AbbrevCount          int    `yaml:"abbrev_count"`
	SentenceStarterCount int    `yaml:"sentence_starter_count"`
	CollocationCount     int    `yaml:"collocation_count"`
	OrthoContextCount    int    `yaml:"ortho_context_count"`
}

// commandStats prints table sizes for a language's TrainingData.
func (r Runner) commandStats(parsed cli.Parsed, cfg config.Config, lang, format string) int {
	dataPath := parsed.DataPath
	if dataPath == "" {
		dataPath = cfg.DataDir
	}

	data, err := loadTrainingData(dataPath, lang)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	summary := statsSummary{
		Lang:                 lang,
		AbbrevCount:          data.AbbrevCount(),
		SentenceStarterCount: data.SentenceStarterCount(),
		CollocationCount:     data.CollocationCount(),
		OrthoContextCount:    data.OrthoContextCount(),
	}

	if format == "yaml" {
		out, err := yaml.Marshal(summary)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: encode stats: %v\n", err)
			return 1
		}
		fmt.Fprint(r.Stdout, string(out))
		return 0
	}

	bold := color.New(color.Bold)
	bold.Fprintf(r.Stdout, "stats for %s\n", summary.Lang)
	fmt.Fprintf(r.Stdout, "  %s %d\n", color.CyanString("abbreviations:"), summary.AbbrevCount)
	fmt.Fprintf(r.Stdout, "  %s %d\n", color.CyanString("sentence starters:"), summary.SentenceStarterCount)
	fmt.Fprintf(r.Stdout, "  %s %d\n", color.CyanString("collocations:"), summary.CollocationCount)
	fmt.Fprintf(r.Stdout, "  %s %d\n", color.CyanString("orthographic contexts:"), summary.OrthoContextCount)
	return 0
}

// isTerminal reports whether w is a terminal file descriptor, used to decide
// whether to render a progress bar during multi-file training.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
