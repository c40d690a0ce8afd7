package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdServe   = "serve"
	cmdDump    = "dump"
	cmdConfig  = "config"
	cmdDoctor  = "doctor"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if slices.Contains(os.Args[1:], "--verbose") || slices.Contains(os.Args[1:], "-v") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args to a command and returns the exit code.
// Without a command name, args are treated as convert arguments.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case cmdConvert:
		err = runConvert(ctx, rest, env)
	case cmdServe:
		err = runServe(ctx, rest, env)
	case cmdDump:
		err = runDump(rest, env)
	case cmdConfig:
		err = runConfig(rest, env)
	case cmdDoctor:
		err = runDoctorCmd(rest, env)
		if errors.Is(err, errDoctorFailed) {
			return ExitGeneral
		}
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "org2html %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	case cmdHelp, "--help", "-h":
		err = runHelp(rest, env)
	default:
		if !looksLikeInput(cmd) {
			printUsage(env.Stderr)
			return printError(env, usageError(fmt.Errorf("unknown command: %s", cmd)))
		}
		err = runConvert(ctx, args, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		return printError(env, err)
	}
	return ExitSuccess
}

// looksLikeInput reports whether arg names convert input rather than a
// command: stdin, an .org file, an existing path, or a flag.
func looksLikeInput(arg string) bool {
	if arg == stdinArg || strings.HasPrefix(arg, "-") {
		return true
	}
	if strings.EqualFold(filepath.Ext(arg), orgExt) {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}
