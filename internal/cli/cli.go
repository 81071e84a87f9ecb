package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"bms-codec/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type runFunc func(ctx context.Context, a *app, args []string) error

var commands = map[string]runFunc{
	"decode":   runDecode,
	"encode":   runEncode,
	"validate": runValidate,
	"fmt":      runFmt,
}

// usages is kept apart from commands: the commands refer to it.
var usages = map[string]string{
	"decode":   "decode [-o out.yaml|out.json] [-format yaml|json|dump] <file.bms>",
	"encode":   "encode [-map NAME] [-o file.bms | -dir outdir] <project.yaml|project.json>",
	"validate": "validate <file.bms|project.yaml|project.json>",
	"fmt":      "fmt [-w] [-diff] <file.bms>",
}

// Run parses args (without the program name) and executes the selected
// command. Output goes to stdout, logs and usage to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("bms-codec", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
bms-codec - decode, encode, validate and format BMS screen maps.

Usage:
  bms-codec [options] <command> [command options] <file>

Commands:
`)

		for _, name := range commandNames() {
			fmt.Fprintf(stderr, "  %s\n", usages[name])
		}

		fmt.Fprint(stderr, "\nOptions:\n")
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the HCL configuration file (default "+config.DefaultPath+" if present).")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return usageError("no command given")
	}

	name := flagSet.Arg(0)

	run, ok := commands[name]
	if !ok {
		return usageError("unknown command %q (available: %s)", name, strings.Join(commandNames(), ", "))
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}

	if *logFormatFlag != "" {
		cfg.Log.Format = *logFormatFlag
	}

	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logger.Debug("Configuration loaded.", "config", *configFlag, "command", name)

	a := &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}

	err = run(ctx, a, flagSet.Args()[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}

func commandNames() []string {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// parseArgs parses flags that may appear before or after positional
// arguments and returns the positional ones.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}

		positional = append(positional, args[0])
		args = args[1:]
	}
}

// newFlagSet returns a flag set for a command whose errors are usage errors.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage:\n  bms-codec %s\n\nOptions:\n", usages[name])
		fs.PrintDefaults()
	}

	return fs
}

// singleFile parses the command flags and returns the one file argument.
func (a *app) singleFile(fs *flag.FlagSet, args []string) (string, error) {
	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", err
		}

		return "", &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if len(positional) != 1 {
		fs.Usage()
		return "", usageError("%s: expected exactly one file argument, got %d", fs.Name(), len(positional))
	}

	return positional[0], nil
}
