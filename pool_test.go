package org2html

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Worker count resolution
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("ResolvePoolSize(3) = %d, want 3", got)
	}

	want := runtime.GOMAXPROCS(0) / cpuDivisor
	want = max(MinPoolSize, min(want, MaxPoolSize))
	for _, n := range []int{0, -1} {
		if got := ResolvePoolSize(n); got != want {
			t.Errorf("ResolvePoolSize(%d) = %d, want %d", n, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConverterPool - Lazy creation, reuse and close
// ---------------------------------------------------------------------------

func TestConverterPool(t *testing.T) {
	t.Parallel()

	t.Run("size clamps to one", func(t *testing.T) {
		t.Parallel()

		p := NewConverterPool(0)
		defer p.Close()
		if p.Size() != 1 {
			t.Errorf("Size() = %d, want 1", p.Size())
		}
	})

	t.Run("reuses released converters", func(t *testing.T) {
		t.Parallel()

		p := NewConverterPool(1, WithChildSeparator("\n"))
		defer p.Close()

		a, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		p.Release(a)

		b, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		if a != b {
			t.Error("Acquire() created a second converter for a pool of one")
		}

		res, err := b.Convert(context.Background(), Input{Org: "a\n\nb"})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if string(res.HTML) != "<p>a</p>\n<p>b</p>" {
			t.Errorf("pool options not applied: %q", res.HTML)
		}
		p.Release(b)
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		p := NewConverterPool(2)
		defer p.Close()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c, err := p.Acquire()
				if err != nil {
					t.Errorf("Acquire() error = %v", err)
					return
				}
				defer p.Release(c)
				if _, err := c.Convert(context.Background(), Input{Org: "* x"}); err != nil {
					t.Errorf("Convert() error = %v", err)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("construction error frees the slot", func(t *testing.T) {
		t.Parallel()

		p := NewConverterPool(1, WithBaseHeadingLevel(0))
		defer p.Close()

		for range 2 {
			if _, err := p.Acquire(); !errors.Is(err, ErrInvalidHeadingLevel) {
				t.Errorf("Acquire() error = %v, want ErrInvalidHeadingLevel", err)
			}
		}
	})

	t.Run("acquire after close", func(t *testing.T) {
		t.Parallel()

		p := NewConverterPool(1)
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := p.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
		if _, err := p.Acquire(); !errors.Is(err, ErrPoolClosed) {
			t.Errorf("Acquire() error = %v, want ErrPoolClosed", err)
		}
	})
}
