package types

// Declaration is a single raw dependency string read from a manifest.
// Group names the optional-dependency group it came from; it is empty
// for entries of the required list.
type Declaration struct {
	Raw   string
	Group string
}

// PackageResult is the outcome of validating one package directory.
// A package is valid when Errors is empty; skipped packages never
// carry errors.
type PackageResult struct {
	Package      string
	Dir          string
	Skipped      bool
	SkipReason   string
	Declarations []Declaration
	Errors       []string
	Warnings     []string
}

// RepositoryOutcome aggregates package results in discovery order.
type RepositoryOutcome struct {
	Results     []PackageResult
	TotalErrors int
	Valid       bool
}
