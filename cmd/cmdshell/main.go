// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// cmdshell is a demonstration host for the command shell engine. It
// mounts the builtin commands and a small demo tree, then reads
// statements interactively, from -e, or line by line from stdin.
//
// Interactive mode (stdin is a terminal): a prompt with history recall
// on the arrow keys and tab completion of command names.
//
// Batch mode (stdin is piped, or -e is given): every line is executed
// as an expression; the exit code is 1 if any statement failed.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/cmdshell/lib/builtin"
	"github.com/bureau-foundation/cmdshell/lib/config"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	expressions []string
	color       string
	logLevel    string
	showVersion bool
	help        bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var opts options
	flagSet := pflag.NewFlagSet("cmdshell", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringArrayVarP(&opts.expressions, "execute", "e", nil, "execute an expression and exit (repeatable)")
	flagSet.StringVar(&opts.color, "color", "", "colour output: auto, always or never (overrides the config file)")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn or error (overrides the config file)")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			opts.help = true
			return &opts, flagSet, nil
		}
		return nil, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return &opts, flagSet, nil
}

// loadConfig loads --config, then $CMDSHELL_CONFIG, then falls back
// to the defaults. Flags override file values.
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case opts.configPath != "":
		cfg, err = config.LoadFile(opts.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(args []string) error {
	opts, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(os.Stderr, flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Println("cmdshell " + version.Full())
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := newLogger(level)

	state := newSession()
	sh := newShell(cfg, logger, state)

	colorMode, _ := cfg.ColorMode()
	sinkOptions := []output.Option{
		output.WithIndent(cfg.Indent),
		output.WithTheme(output.NewTheme(os.Stdout, colorMode)),
	}
	stdout := output.NewWriter(os.Stdout, sinkOptions...)

	for _, expression := range cfg.Startup {
		if !sh.Execute(expression, stdout) {
			logger.Warn("startup expression failed", "expression", expression)
		}
	}

	if len(opts.expressions) > 0 {
		return runExpressions(sh, opts.expressions, stdout)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runInteractive(sh, state, cfg.Prompt, output.NewBuffer(sinkOptions...))
	}
	return runLines(sh, state, os.Stdin, stdout)
}

// newShell builds the session's shell with the builtins, the demo
// tree and the configured aliases and identifiers.
func newShell(cfg *config.Config, logger *slog.Logger, state *session) *shell.Shell {
	sh := shell.New(
		shell.WithLogger(logger),
		shell.WithCatalog(cfg.Catalog()),
	)
	builtin.Install(sh)
	installDemo(sh, state)
	if err := cfg.Apply(sh); err != nil {
		logger.Warn("configuration not fully applied", "error", err)
	}
	return sh
}

func runExpressions(sh *shell.Shell, expressions []string, out output.Sink) error {
	failed := false
	for _, expression := range expressions {
		if !sh.Execute(expression, out) {
			failed = true
			break
		}
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// runLines executes each input line until EOF or until a command ends
// the session. Blank lines are skipped rather than replayed. Failed
// statements do not stop later lines, but make the exit code 1.
func runLines(sh *shell.Shell, state *session, input io.Reader, out output.Sink) error {
	scanner := bufio.NewScanner(input)
	failed := false
	for !state.done && scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sh.Execute(line, out) {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `cmdshell - hierarchical command shell demo.

Commands are matched by unambiguous prefix, so "serv stat" runs
"service status". Separate statements with ";". An empty line repeats
the previous statement, and a trailing "?" shows a command's usage.

Usage:
  cmdshell [flags]

Examples:
  # Start an interactive session
  cmdshell

  # Run statements and exit
  cmdshell -e "service start api; service status"

  # Run a script
  cmdshell < script.txt

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
