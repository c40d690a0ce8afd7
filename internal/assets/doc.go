// Package assets provides the stylesheets and the page template used for
// standalone HTML and PDF output.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader ships the built-in styles (default, minimal) and the
// document template. AssetResolver tries the custom directory first and
// falls back to the embedded copy when an asset is missing there, so a user
// can override one stylesheet without providing the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
