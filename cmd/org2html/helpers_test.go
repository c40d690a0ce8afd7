package main

// Notes:
// - This file contains mocks and environment builders shared by the cmd tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	org2html "github.com/alnah/go-org2html"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// staticMockConverter returns a fixed result and records its inputs.
type staticMockConverter struct {
	mu     sync.Mutex
	result *org2html.ConvertResult
	err    error
	inputs []org2html.Input
}

func (m *staticMockConverter) Convert(_ context.Context, in org2html.Input) (*org2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockPool hands out the same converter to every caller.
type mockPool struct {
	conv       CLIConverter
	acquireErr error
	size       int
	closed     bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int {
	if p.size == 0 {
		return 1
	}
	return p.size
}

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// Environment Builders
// ---------------------------------------------------------------------------

// testEnv returns an Environment with buffered output, the given stdin, and
// a real converter pool.
func testEnv(t *testing.T, stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		NewPool: newConverterPool,
	}
	return env, &stdout, &stderr
}

// mockEnv is like testEnv but every pool is pool.
func mockEnv(t *testing.T, stdin string, pool Pool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	env, stdout, stderr := testEnv(t, stdin)
	env.NewPool = func(int, ...org2html.Option) Pool { return pool }
	return env, stdout, stderr
}
