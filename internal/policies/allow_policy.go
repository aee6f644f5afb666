package policies

import (
	"depwarden/internal/shared"
	"depwarden/internal/types"
)

// AllowPolicy decides whether a single dependency name is permitted.
// Internal packages are checked before the approved list, so a sibling
// package of the repository never needs an allowlist entry.
type AllowPolicy struct {
	internal types.InternalSet
	approved types.ApprovedSet
}

func NewAllowPolicy(internal types.InternalSet, approved types.ApprovedSet) AllowPolicy {
	return AllowPolicy{internal: internal, approved: approved}
}

// Decide checks one canonical dependency name. Comparisons run on PEP
// 503 normalized names on both sides; an empty name matches nothing.
func (p AllowPolicy) Decide(name string) types.Decision {
	normalized := shared.NormalizePipName(name)
	if normalized == "" {
		return types.Decision{Allowed: false, Basis: types.DecisionBasisUnapproved}
	}
	if _, ok := p.internal.Members[normalized]; ok {
		return types.Decision{Allowed: true, Basis: types.DecisionBasisInternal}
	}
	if _, ok := p.approved.Names[normalized]; ok {
		return types.Decision{Allowed: true, Basis: types.DecisionBasisApproved}
	}
	return types.Decision{Allowed: false, Basis: types.DecisionBasisUnapproved}
}
