package core

import (
	"fmt"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// opTokens is the ordered list of version operators tried when
// splitting a dependency declaration. The order is part of the split
// contract: each token is searched in turn and the declaration is cut
// at the first occurrence of the first token found, so "==" must come
// before the single-character operators it contains.
var opTokens = []string{"==", ">=", "<=", ">", "<", "~=", "!="}

// directRefSep separates PEP 508 direct references ("name @ url"). It
// is checked before any version operator so URLs containing operator
// characters never confuse the split.
const directRefSep = " @ "

// ExtractName returns the canonical package name of a raw dependency
// declaration. It never fails: declarations without an operator are
// returned trimmed, and a degenerate declaration yields an empty name
// that matches no set.
func ExtractName(declaration string) string {
	trimmed := strings.TrimSpace(declaration)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, directRefSep) {
		parts := strings.SplitN(trimmed, directRefSep, 2)
		return strings.TrimSpace(parts[0])
	}
	for _, op := range opTokens {
		if strings.Contains(trimmed, op) {
			parts := strings.SplitN(trimmed, op, 2)
			return strings.TrimSpace(parts[0])
		}
	}
	return trimmed
}

// Diagnose returns advisory warnings about the version syntax of a
// declaration. Warnings never affect the allow decision or validity;
// they surface typos like "requests==banana" that the allowlist match
// alone would hide.
func Diagnose(declaration string) []string {
	trimmed := strings.TrimSpace(declaration)
	if trimmed == "" {
		return nil
	}
	if strings.Contains(trimmed, directRefSep) {
		// Direct references carry a location, not a version specifier.
		return nil
	}
	for _, op := range opTokens {
		if !strings.Contains(trimmed, op) {
			continue
		}
		parts := strings.SplitN(trimmed, op, 2)
		spec := op + strings.TrimSpace(parts[1])
		if _, err := pep440.NewSpecifiers(spec); err != nil {
			return []string{fmt.Sprintf("declaration '%s' has a version constraint that is not a valid PEP 440 specifier", trimmed)}
		}
		return nil
	}
	return nil
}
