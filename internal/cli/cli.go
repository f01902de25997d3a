// Package cli parses punkt's command-line arguments into a Parsed command.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandSegment Command = "segment"
	CommandTrain   Command = "train"
	CommandStats   Command = "stats"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandSegment: {},
	CommandTrain:   {},
	CommandStats:   {},
	CommandDoctor:  {},
	CommandVersion: {},
	CommandHelp:    {},
}

// Parsed is the fully parsed command line: the selected command plus every
// flag and positional argument any command might need.
type Parsed struct {
	Command    Command
	ConfigPath string
	ShowHelp   bool

	Lang     string
	DataPath string
	OutPath  string
	Format   string
	Files    []string
}

// Parse interprets args into a Parsed command. It accepts `--flag=value` and
// `--flag value` forms for every flag, matching the loose style the teacher's
// own flag-switch parser uses for --config.
func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}

	haveCommand := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-h" || arg == "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case arg == "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		case arg == "--config" || strings.HasPrefix(arg, "--config="):
			val, nextI, err := flagValue(args, i, "--config")
			if err != nil {
				return Parsed{}, fmt.Errorf("--config requires a path")
			}
			parsed.ConfigPath = val
			i = nextI
		case strings.HasPrefix(arg, "--lang"):
			val, nextI, err := flagValue(args, i, "--lang")
			if err != nil {
				return Parsed{}, err
			}
			parsed.Lang = val
			i = nextI
		case strings.HasPrefix(arg, "--data"):
			val, nextI, err := flagValue(args, i, "--data")
			if err != nil {
				return Parsed{}, err
			}
			parsed.DataPath = val
			i = nextI
		case strings.HasPrefix(arg, "--out"):
			val, nextI, err := flagValue(args, i, "--out")
			if err != nil {
				return Parsed{}, err
			}
			parsed.OutPath = val
			i = nextI
		case strings.HasPrefix(arg, "--format"):
			val, nextI, err := flagValue(args, i, "--format")
			if err != nil {
				return Parsed{}, err
			}
			parsed.Format = val
			i = nextI
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			if !haveCommand {
				cmd := Command(arg)
				if _, ok := validCommands[cmd]; !ok {
					return Parsed{}, fmt.Errorf("unknown command: %s", arg)
				}
				parsed.Command = cmd
				parsed.ShowHelp = cmd == CommandHelp
				haveCommand = true
				continue
			}

			parsed.Files = append(parsed.Files, arg)
		}
	}

	if err := validateArgs(parsed, haveCommand); err != nil {
		return Parsed{}, err
	}

	return parsed, nil
}

// validateArgs enforces the per-command argument shape described in the help text.
func validateArgs(p Parsed, haveCommand bool) error {
	if !haveCommand {
		return nil
	}

	switch p.Command {
	case CommandSegment:
		if len(p.Files) != 1 {
			return fmt.Errorf("segment requires exactly one input file")
		}
	case CommandTrain:
		if len(p.Files) < 1 {
			return fmt.Errorf("train requires at least one input file")
		}
		if strings.TrimSpace(p.OutPath) == "" {
			return fmt.Errorf("train requires --out")
		}
	case CommandStats, CommandDoctor, CommandVersion, CommandHelp:
		if len(p.Files) != 0 {
			return fmt.Errorf("unexpected arguments after command %q", p.Command)
		}
	}
	return nil
}

// takeValue consumes the argument following args[i] as a flag value.
func takeValue(args []string, i int) (string, int, error) {
	if i+1 >= len(args) {
		return "", i, errors.New("missing value")
	}
	return args[i+1], i + 1, nil
}

// flagValue extracts a flag's value from either `--name=value` or a trailing
// `--name value` pair.
func flagValue(args []string, i int, name string) (string, int, error) {
	arg := args[i]
	if arg == name {
		return takeValue(args, i)
	}
	if strings.HasPrefix(arg, name+"=") {
		return strings.TrimPrefix(arg, name+"="), i, nil
	}
	return "", i, fmt.Errorf("unknown flag: %s", arg)
}

// HelpText renders the top-level usage summary shown by `punkt help` and on parse errors.
func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--config PATH] <command> [flags] [files...]

Commands:
  segment --lang=<name> [--data=<path>] [--format=text|json] <file>
                Split a document into sentences and print them
  train --lang=<name> --out=<path> <file...>
                Train abbreviation/collocation/starter tables from documents
  stats --lang=<name> [--format=text|yaml]
                Print table sizes for a language's training data
  doctor        Run configuration and environment checks
  version       Print version information
  help          Show this help

Flags:
  --config PATH   Config file path (default: $XDG_CONFIG_HOME/punkt/config.jsonc)
  -h, --help      Show help
  --version       Show version
`, binaryName)
}
