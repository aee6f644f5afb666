package ports

import "depwarden/internal/types"

// ManifestPort parses pyproject.toml files.
type ManifestPort interface {
	// Load parses a package manifest. Missing optional sections yield
	// zero values; a missing file or malformed TOML is an error.
	Load(path string) (types.Manifest, error)

	// LoadRoot parses the repository root manifest and returns the
	// [tool.depwarden] view. Absence of the section itself is reported
	// through RootConfig, not as an error.
	LoadRoot(path string) (types.RootConfig, error)
}
