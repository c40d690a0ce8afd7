package main

import (
	"fmt"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/server"
)

// CLIConverter converts one input. *org2html.Converter satisfies it.
type CLIConverter = server.Converter

// Pool abstracts converter pool operations for testability.
type Pool interface {
	server.Pool
	Size() int
	Close() error
}

// poolAdapter exposes an *org2html.ConverterPool through Pool.
type poolAdapter struct {
	pool *org2html.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func newConverterPool(size int, opts ...org2html.Option) Pool {
	return &poolAdapter{pool: org2html.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	c, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release panics when given a converter this pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*org2html.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
