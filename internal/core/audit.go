package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"depwarden/internal/ports"
	"depwarden/internal/types"
)

// PackageAuditor validates a single package directory against the
// allow policy.
type PackageAuditor struct {
	Manifests ports.ManifestPort
	Policy    ports.PolicyPort
}

func NewPackageAuditor(manifests ports.ManifestPort, policy ports.PolicyPort) PackageAuditor {
	return PackageAuditor{Manifests: manifests, Policy: policy}
}

// AuditPackage judges one directory. Directories carrying a foreign
// project marker are skipped with a reason; directories with neither
// manifest nor marker are invalid. The returned result records every
// declaration that was read, required list first, then optional groups
// in document order; the package is valid when no errors accumulated.
func (a PackageAuditor) AuditPackage(ctx context.Context, dir types.PackageDir) types.PackageResult {
	result := types.PackageResult{Package: dir.Name, Dir: dir.Path}
	if !dir.HasManifest {
		if dir.Marker != "" {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("contains %s; not a Python package", dir.Marker)
			return result
		}
		result.Errors = append(result.Errors, fmt.Sprintf("no manifest found in %s", dir.Name))
		return result
	}

	manifest, err := a.Manifests.Load(dir.ManifestPath)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid manifest in %s: %v", dir.Name, err))
		return result
	}
	if manifest.Name != "" {
		result.Package = manifest.Name
	}

	for _, raw := range manifest.Dependencies {
		a.check(&result, types.Declaration{Raw: raw})
	}
	for _, group := range manifest.OptionalGroups {
		for _, raw := range group.Dependencies {
			a.check(&result, types.Declaration{Raw: raw, Group: group.Name})
		}
	}

	log.Ctx(ctx).Debug().
		Str("package", result.Package).
		Int("declarations", len(result.Declarations)).
		Int("errors", len(result.Errors)).
		Msg("package audited")
	return result
}

func (a PackageAuditor) check(result *types.PackageResult, decl types.Declaration) {
	result.Declarations = append(result.Declarations, decl)
	result.Warnings = append(result.Warnings, Diagnose(decl.Raw)...)

	decision := a.Policy.Decide(ExtractName(decl.Raw))
	if decision.Allowed {
		return
	}
	if decl.Group != "" {
		result.Errors = append(result.Errors,
			fmt.Sprintf("UNAPPROVED package '%s' found in %s (optional group '%s')", decl.Raw, result.Package, decl.Group))
		return
	}
	result.Errors = append(result.Errors,
		fmt.Sprintf("UNAPPROVED package '%s' found in %s", decl.Raw, result.Package))
}
