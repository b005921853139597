package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

var (
	version   = "dev"
	newLogger = logging.New
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

// newCLI declares the command-line grammar. It renders --help and --version
// output; the arguments themselves are classified by config.Resolve, which
// ignores unknown options and extra positionals instead of rejecting them.
func newCLI() *kingpin.Application {
	app := kingpin.New("minigrep", "Print the lines of a file that contain a query.")
	app.Version(version)
	// None of the switches can be turned off, so none render as --[no-]flag.
	app.HelpFlag.Short('h').UnNegatableBool()
	app.VersionFlag.UnNegatableBool()
	app.Flag("ignore-case", "Match case-insensitively (also enabled by IGNORE_CASE set to anything but 0).").Short('i').UnNegatableBool()
	app.Flag("config", "Path to YAML configuration file (also MINIGREP_CONFIG).").PlaceHolder("PATH").String()
	app.Arg("query", "Text to search for.").Required().String()
	app.Arg("file_path", "File to search.").Required().String()
	return app
}

func run(args []string, lookup config.LookupFunc, stdout, stderr io.Writer) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	switch {
	case config.HasOption(rest, "-h", "--help"):
		newCLI().UsageWriter(stdout).Usage(nil)
		return 0
	case config.HasOption(rest, "--help-long"):
		newCLI().UsageWriter(stdout).UsageTemplate(kingpin.LongHelpTemplate).Usage(nil)
		return 0
	case config.HasOption(rest, "--help-man"):
		newCLI().UsageWriter(stdout).UsageTemplate(kingpin.ManPageTemplate).Usage(nil)
		return 0
	case config.HasOption(rest, "--version"):
		fmt.Fprintln(stdout, version)
		return 0
	}

	cfg, err := config.Load(args, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		newCLI().UsageWriter(stderr).Usage(nil)
		return 1
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Debug("configuration resolved",
		zap.String("query", cfg.Query),
		zap.String("file_path", cfg.FilePath),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.String("config_file", cfg.ConfigFile),
	)

	fmt.Fprintf(stdout, "Searching for '%s'\n", cfg.Query)
	fmt.Fprintf(stdout, "In file '%s'\n==================\n", cfg.FilePath)

	app, err := application.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	if err := app.Run(stdout); err != nil {
		logger.Debug("run failed", zap.Error(err))
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	return 0
}
