package pipeline

import (
	"context"
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

const byteOrderMark = "\uFEFF"

// Preprocessor prepares raw input text for parsing.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// OrgPreprocessor normalizes input before it reaches the parser.
type OrgPreprocessor struct{}

// Preprocess strips a leading byte order mark and converts \r\n and \r line
// endings to \n. A cancelled context returns content unchanged.
func (p *OrgPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

var _ Preprocessor = (*OrgPreprocessor)(nil)
