//go:build bench

package org2html_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-org2html"
)

// benchDocument repeats the mixed document n times.
func benchDocument(n int) string {
	return strings.Repeat(mixDocument+"\n", n)
}

// BenchmarkConvert measures the fragment path for growing documents.
func BenchmarkConvert(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		text := benchDocument(n)
		b.Run(fmt.Sprintf("x%d", n), func(b *testing.B) {
			c, err := org2html.NewConverter()
			if err != nil {
				b.Fatal(err)
			}
			defer c.Close()

			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for b.Loop() {
				if _, err := c.Convert(context.Background(), org2html.Input{Org: text}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkConvert_Standalone includes template wrapping and CSS injection.
func BenchmarkConvert_Standalone(b *testing.B) {
	c, err := org2html.NewConverter(org2html.WithHighlighting(""))
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()

	text := benchDocument(10)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Convert(context.Background(), org2html.Input{Org: text, Standalone: true}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConverterPool_AcquireRelease measures pool overhead without a browser.
func BenchmarkConverterPool_AcquireRelease(b *testing.B) {
	for _, size := range []int{1, 4} {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			pool := org2html.NewConverterPool(size)
			defer pool.Close()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					c, err := pool.Acquire()
					if err != nil {
						b.Error(err)
						return
					}
					pool.Release(c)
				}
			})
		})
	}
}
