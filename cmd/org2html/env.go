package main

import (
	"io"
	"os"

	org2html "github.com/alnah/go-org2html"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// NewPool builds the converter pool once options are known.
	NewPool func(size int, opts ...org2html.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewPool: newConverterPool,
	}
}
