package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(name, "styles", ".css", ErrStyleNotFound)
}

// LoadTemplate loads a built-in page template.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(name, "templates", ".html", ErrTemplateNotFound)
}

func (e *EmbeddedLoader) load(name, dir, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := builtin.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
