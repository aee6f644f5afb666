package types

// InternalSet is the snapshot of packages that belong to the repository
// itself. Keys are PEP 503 normalized names; values keep the declared
// project name for display.
type InternalSet struct {
	Members map[string]string
}

// ApprovedSet is the snapshot of centrally approved external
// dependencies. Names holds PEP 503 normalized canonical names; Raw
// keeps the original specifier strings in declaration order.
type ApprovedSet struct {
	Names map[string]struct{}
	Raw   []string
}

// Decision is the outcome of an allow check for a single dependency.
type Decision struct {
	Allowed bool
	Basis   DecisionBasis
}
