package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths turns relative img src and a href values into
// absolute file:// URLs under sourceDir, so a page loaded from a temporary
// file still finds the images that sit next to the org source. Org's
// "file:" link prefix is understood. URLs with any other scheme, anchors,
// absolute paths and paths escaping sourceDir are left alone. An empty
// sourceDir returns the content unchanged.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, absSourceDir)
	return renderHTML(doc, isFragment)
}

// parseHTML parses a full page or a body fragment. Fragments are gathered
// under a synthetic document node.
func parseHTML(content string) (*html.Node, bool, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", sourceDir)
		case atom.A:
			rewriteAttr(n, "href", sourceDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir)
	}
}

func rewriteAttr(n *html.Node, key, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		rel, ok := localPath(attr.Val)
		if !ok {
			continue
		}

		abs := filepath.Join(sourceDir, rel)
		if !isPathUnderDir(abs, sourceDir) {
			continue
		}
		n.Attr[i].Val = pathToFileURL(abs)
	}
}

// localPath reports whether ref names a relative file and returns its path.
// "file:img.png" yields "img.png"; "file:///x" is already absolute.
func localPath(ref string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	if filepath.IsAbs(ref) {
		return "", false
	}

	if rest, ok := strings.CutPrefix(ref, "file:"); ok {
		if rest == "" || strings.HasPrefix(rest, "/") {
			return "", false
		}
		return rest, true
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return "", false
	}
	return ref, true
}

// isPathUnderDir checks that absPath is dir or lies below it.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
