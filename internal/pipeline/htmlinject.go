package pipeline

import (
	"context"
	"strings"
)

// CSSInjector inserts a stylesheet into an HTML page.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, else right after the
// <body> start tag, else at the front of the content. Sequences that would
// close the style element early are escaped.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + "\n" + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if end := strings.Index(htmlContent[idx:], ">"); end != -1 {
			pos := idx + end + 1
			return htmlContent[:pos] + styleBlock + htmlContent[pos:]
		}
	}

	return styleBlock + htmlContent
}

func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

var _ CSSInjector = (*CSSInjection)(nil)
