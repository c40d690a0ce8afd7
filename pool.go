package org2html

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("converter pool is closed")

// ConverterPool hands out Converters for parallel PDF rendering. Each
// converter owns its browser. Converters are created lazily on Acquire, all
// with the same options.
type ConverterPool struct {
	size       int
	opts       []Option
	converters []*Converter
	sem        chan *Converter
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewConverterPool creates a pool with capacity for n converters built with
// opts. n below 1 is treated as 1.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ConverterPool{
		size:       n,
		opts:       opts,
		converters: make([]*Converter, 0, n),
		sem:        make(chan *Converter, n),
	}
}

// Acquire returns an idle converter, creating one while under capacity.
// It blocks while all converters are in use.
func (p *ConverterPool) Acquire() (*Converter, error) {
	select {
	case c, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return c, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		c, err := NewConverter(p.opts...)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.created--
			return nil, err
		}
		p.converters = append(p.converters, c)
		return c, nil
	}
	p.mu.Unlock()

	c, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return c, nil
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(c *Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- c
}

// Close releases all browsers. Errors from individual converters are joined.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	converters := p.converters
	p.mu.Unlock()

	var errs []error
	for _, c := range converters {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize returns workers when positive, otherwise half of
// GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
