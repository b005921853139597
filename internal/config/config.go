package config

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// EnvIgnoreCase enables case-insensitive search when set to anything but "0".
	EnvIgnoreCase = "IGNORE_CASE"
	// EnvLogLevel selects the log level.
	EnvLogLevel = "MINIGREP_LOG_LEVEL"
	// EnvConfigFile names a YAML configuration file.
	EnvConfigFile = "MINIGREP_CONFIG"

	// DefaultLogLevel keeps a successful run silent on stderr.
	DefaultLogLevel = "warn"

	configOption = "--config"
)

var ignoreCaseOptions = []string{"-i", "--ignore-case"}

// Config is the resolved configuration of a single invocation. It is passed
// by value and never modified after resolution.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
	LogLevel   string
	ConfigFile string
}

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// Resolve builds a Config from args and the environment. args is the full
// argument vector; its first element is the program name and is skipped.
//
// The first two positional arguments are the query and the file path, extra
// positionals are ignored. Case-insensitive search is enabled by IGNORE_CASE
// or by -i/--ignore-case anywhere in args; either is enough. The config file
// option accepts both "--config=PATH" and "--config PATH".
func Resolve(args []string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = noEnv
	}

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	parsed, err := scanArgs(rest)
	if err != nil {
		return Config{}, err
	}
	if len(parsed.positionals) < 2 {
		return Config{}, ErrInsufficientArguments
	}
	if parsed.positionals[1] == "" {
		return Config{}, fmt.Errorf("%w: file path is empty", ErrInsufficientArguments)
	}

	cfg := Config{
		Query:      parsed.positionals[0],
		FilePath:   parsed.positionals[1],
		IgnoreCase: envEnabled(lookup, EnvIgnoreCase) || HasOption(parsed.options, ignoreCaseOptions...),
		LogLevel:   DefaultLogLevel,
	}

	if level, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(level) != "" {
		cfg.LogLevel = strings.TrimSpace(level)
	}

	if path, ok := lookup(EnvConfigFile); ok {
		cfg.ConfigFile = path
	}
	if parsed.hasConfig {
		cfg.ConfigFile = parsed.configFile
	}

	return cfg, nil
}

// IsOption reports whether arg is an option: longer than one character and
// starting with '-'. A lone "-" is positional.
func IsOption(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

// Positionals returns the arguments that are neither options nor the value
// of a "--config PATH" pair, in order.
func Positionals(args []string) []string {
	parsed, _ := scanArgs(args)
	return parsed.positionals
}

// HasOption reports whether any of names appears verbatim in args.
func HasOption(args []string, names ...string) bool {
	for _, name := range names {
		if slices.Contains(args, name) {
			return true
		}
	}
	return false
}

type scannedArgs struct {
	positionals []string
	options     []string
	configFile  string
	hasConfig   bool
}

// scanArgs classifies args in one pass. The token after a bare --config is
// its value whatever it looks like; the last --config wins.
func scanArgs(args []string) (scannedArgs, error) {
	out := scannedArgs{positionals: make([]string, 0, len(args))}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == configOption:
			if i+1 >= len(args) {
				return out, fmt.Errorf("%w: %s", ErrMissingOptionValue, configOption)
			}
			i++
			out.configFile, out.hasConfig = args[i], true
		case strings.HasPrefix(arg, configOption+"="):
			out.configFile, out.hasConfig = strings.TrimPrefix(arg, configOption+"="), true
		case IsOption(arg):
			out.options = append(out.options, arg)
		default:
			out.positionals = append(out.positionals, arg)
		}
	}
	return out, nil
}

// envEnabled reports whether name is set to anything other than "0".
func envEnabled(lookup LookupFunc, name string) bool {
	value, ok := lookup(name)
	return ok && value != "0"
}

func noEnv(string) (string, bool) {
	return "", false
}
