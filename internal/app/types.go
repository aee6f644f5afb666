package app

// ValidateRequest carries the inputs for a validation run. Package
// narrows the run to a single package directory when set.
type ValidateRequest struct {
	ManifestPath string
	PackagesDir  string
	Package      string
	ReportPath   string
}

type ListRequest struct {
	ManifestPath string
	PackagesDir  string
}

// ListResult holds the resolved allow policy inputs: internal package
// names as declared in their manifests and the approved entries as
// written in the root manifest and overlays.
type ListResult struct {
	Internal []string
	Approved []string
}

type InstallHookRequest struct {
	RepoRoot string
	Force    bool
}

type InstallHookResult struct {
	HookPath string
}
