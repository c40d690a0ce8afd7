package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	var name string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	if fs.NArg() > 0 {
		return usageError(errUnexpectedArgs(fs.Args()))
	}

	warnUnknownEnvVars(env.Stderr)
	cfg, err := loadEffectiveConfig(name, loadEnvConfig())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out, err := cfg.Dump()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
