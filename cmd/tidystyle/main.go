package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/discovery"
	"github.com/jeduden/tidystyle/internal/engine"
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/log"
	"github.com/jeduden/tidystyle/internal/output"
	"github.com/jeduden/tidystyle/internal/rules"

	_ "github.com/jeduden/tidystyle/internal/rules/all"
)

// Exit codes.
const (
	exitClean  = 0
	exitIssues = 1
	exitError  = 2
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: tidystyle <command> [flags] [files...]

Commands:
  check     Lint CSS files
  help      Show help for rules and topics
  init      Generate a default .tidystyle.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'tidystyle <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return exitClean
	}

	first := os.Args[1]
	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return exitClean
	case "check":
		return runCheck(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version", "--version":
		printVersion()
		return exitClean
	default:
		fmt.Fprintf(os.Stderr, "tidystyle: unknown command %q\n\n%s", first, usageText)
		return exitError
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("tidystyle %s\n", version)
}

func checkFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.StringP("config", "c", "", "Config file path (default: discovered from the working directory)")
	fs.String("config-basedir", "", "Directory that relative extends and plugins are resolved against")
	fs.String("config-overrides", "", "Config file merged over the resolved configuration")
	fs.StringP("format", "f", "text", "Output format: text, json, table")
	fs.Bool("no-color", false, "Disable ANSI colors")
	fs.BoolP("quiet", "q", false, "Only report errors, not warnings")
	fs.BoolP("verbose", "v", false, "Log configuration resolution and files")
	fs.BoolP("watch", "w", false, "Re-lint when files change")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidystyle check [flags] [files...]\n\n"+
			"Lint CSS files.\n\n"+
			"Files can be paths, directories (walked recursively for *.css), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// runCheck implements the "check" subcommand: lint files.
func runCheck(args []string) int {
	fs := checkFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}
		return exitError
	}

	s, err := loadSettings(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	formatter, err := output.New(s.Format, s.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	logger := log.New(os.Stderr, s.Verbose)

	opts, err := engineOptions(s, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	runner := &engine.Runner{Options: opts}

	args = fs.Args()
	if len(args) == 0 {
		if !isStdinPipe() {
			return exitClean
		}
		if s.Watch {
			fmt.Fprintf(os.Stderr, "tidystyle: cannot watch stdin\n")
			return exitError
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tidystyle: reading stdin: %v\n", err)
			return exitError
		}
		res, err := runner.RunSource("<stdin>", source)
		return report(res, err, formatter)
	}

	code := checkFiles(runner, args, formatter)
	if !s.Watch {
		return code
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	var mu sync.Mutex
	relint := func() {
		mu.Lock()
		defer mu.Unlock()
		checkFiles(runner, args, formatter)
	}
	fmt.Fprintf(os.Stderr, "tidystyle: watching for changes (Ctrl-C to stop)\n")
	if err := watch(ctx, args, logger, relint); err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	return code
}

// engineOptions turns CLI settings into engine options. Without an
// explicit --config, a config file is discovered from the working
// directory; finding none leaves the options empty and the engine
// reports the missing configuration.
func engineOptions(s settings, logger *log.Logger) (engine.Options, error) {
	opts := engine.Options{
		ConfigFile:    s.Config,
		ConfigBasedir: s.ConfigBasedir,
		Log:           logger,
	}

	if opts.ConfigFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return opts, fmt.Errorf("getting working directory: %w", err)
		}
		found, err := config.Discover(cwd)
		if err != nil {
			return opts, err
		}
		opts.ConfigFile = found
	}
	if opts.ConfigFile != "" {
		logger.Printf("config: %s", opts.ConfigFile)
	}

	overrides := config.Null()
	if s.ConfigOverrides != "" {
		v, err := config.Load(s.ConfigOverrides)
		if err != nil {
			return opts, err
		}
		overrides = v
	}
	if s.Quiet {
		m := config.NewMap()
		m.Set(config.KeyQuiet, config.Scalar(true))
		overrides = config.Merge(overrides, config.Mapping(m))
	}
	opts.ConfigOverrides = overrides
	return opts, nil
}

func checkFiles(runner *engine.Runner, args []string, formatter output.Formatter) int {
	files, err := discovery.ResolveArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	if len(files) == 0 {
		return exitClean
	}
	res, err := runner.Run(files)
	return report(res, err, formatter)
}

// report prints the outcome of a run and returns the exit code.
func report(res *engine.Result, err error, formatter output.Formatter) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}

	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", e)
	}

	diags := make([]lint.Diagnostic, 0, len(res.InvalidOptions)+len(res.Diagnostics))
	diags = append(diags, res.InvalidOptions...)
	diags = append(diags, res.Diagnostics...)

	if len(res.Errors) > 0 && len(diags) == 0 {
		return exitError
	}
	if len(diags) > 0 {
		if err := formatter.Format(os.Stderr, diags); err != nil {
			fmt.Fprintf(os.Stderr, "tidystyle: error writing output: %v\n", err)
			return exitError
		}
		return exitIssues
	}
	return exitClean
}

// runInit implements the "init" subcommand: generate .tidystyle.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidystyle init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileNames[0])
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "tidystyle: init takes no arguments\n")
		return exitError
	}

	configFile := config.FileNames[0]
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %s already exists\n", configFile)
		return exitError
	}

	defaults, err := rules.Defaults()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	cfg, err := config.DumpDefaults(defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: marshalling config: %v\n", err)
		return exitError
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: writing %s: %v\n", configFile, err)
		return exitError
	}

	fmt.Fprintf(os.Stderr, "tidystyle: created %s\n", configFile)
	return exitClean
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

const helpUsageText = `Usage: tidystyle help <topic>

Topics:
  rule [name]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return exitClean
	}

	switch args[0] {
	case "rule":
		if len(args) == 1 {
			return listAllRules()
		}
		return showRule(args[1])
	default:
		fmt.Fprintf(os.Stderr, "tidystyle: help: unknown topic %q\n", args[0])
		return exitError
	}
}

func listAllRules() int {
	list, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	for _, r := range list {
		fmt.Printf("%-42s %s\n", r.Name, r.Description)
	}
	return exitClean
}

func showRule(name string) int {
	content, err := rules.LookupRule(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidystyle: %v\n", err)
		return exitError
	}
	fmt.Print(content)
	return exitClean
}
