package assets

import "errors"

// AssetResolver serves assets from a custom directory when one is
// configured, falling back to the embedded copy for anything the directory
// does not provide.
type AssetResolver struct {
	custom   AssetLoader // nil when no custom directory is configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// only embedded assets. Returns ErrInvalidBasePath if customBasePath is set
// but is not a readable directory.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	fsLoader, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = fsLoader
	return r, nil
}

// LoadStyle loads a CSS style, trying the custom loader first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads a page template, trying the custom loader first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// HasCustomLoader reports whether a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// first returns the custom asset when present. Only not-found errors fall
// through to the embedded loader; validation and I/O errors are returned.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	if r.custom != nil {
		content, err := load(r.custom)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return load(r.embedded)
}

var _ AssetLoader = (*AssetResolver)(nil)
