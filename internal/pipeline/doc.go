// Package pipeline implements the org-to-HTML conversion stages that sit
// around the parser and renderer:
//   - input preprocessing (line endings, byte order mark)
//   - conversion of org text to an HTML fragment
//   - wrapping a fragment into a standalone HTML5 page
//   - CSS injection into a page
//   - rewriting relative image and link paths for file-based rendering
//
// PDF generation is handled by the root org2html package using headless
// Chrome (go-rod); the pipeline only produces markup.
package pipeline
