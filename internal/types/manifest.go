package types

// Manifest is the typed view over a package's pyproject.toml.
type Manifest struct {
	Path           string
	Name           string
	Dependencies   []string
	OptionalGroups []DependencyGroup
	HasProject     bool
}

// DependencyGroup holds one [project.optional-dependencies] entry.
// Groups keep the order they appear in the TOML document.
type DependencyGroup struct {
	Name         string
	Dependencies []string
}

// RootConfig is the typed view over the [tool.depwarden] table of the
// repository root pyproject.toml. Section absence is reported through
// HasSection/HasAllow rather than as a load error so the caller decides
// how fatal it is.
type RootConfig struct {
	Path        string
	Allow       []string
	PackagesDir string
	Allowlists  []string
	HasSection  bool
	HasAllow    bool
}

// PackageDir describes one immediate subdirectory of the packages root.
type PackageDir struct {
	Name         string
	Path         string
	ManifestPath string
	HasManifest  bool

	// Marker names the foreign build file found when no manifest is
	// present ("package.json", "go.mod", ...). Empty when none matched.
	Marker string
}

// Overlay is one parsed shared allowlist layer.
type Overlay struct {
	Path    string
	Version string
	Allow   []string
}
