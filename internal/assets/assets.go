package assets

import "strings"

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// DocumentTemplateName is the name of the standalone page template.
const DocumentTemplateName = "document"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in stylesheet by name, without the .css extension.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a built-in page template by name, without the .html
// extension.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// StyleNames lists the built-in stylesheet names, sorted.
func StyleNames() []string {
	entries, err := builtin.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok {
			names = append(names, name)
		}
	}
	return names
}
