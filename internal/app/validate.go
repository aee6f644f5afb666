package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depwarden/internal/core"
	"depwarden/internal/policies"
	"depwarden/internal/types"
)

// runSnapshot bundles everything a validation run resolves up front:
// the root config, the assembled allow policy inputs and the package
// directories to audit.
type runSnapshot struct {
	cfg      types.RootConfig
	approved types.ApprovedSet
	internal types.InternalSet
	dirs     []types.PackageDir
	auditor  core.PackageAuditor
	root     string
}

func (s Service) buildSnapshot(ctx context.Context, manifestPath string, packagesDir string) (runSnapshot, error) {
	rootPath := strings.TrimSpace(manifestPath)
	if rootPath == "" {
		rootPath = "pyproject.toml"
	}
	cfg, err := s.Manifests.LoadRoot(rootPath)
	if err != nil {
		return runSnapshot{}, err
	}
	assembler := core.NewAllowlistAssembler(s.Overlays)
	approved, err := assembler.BuildApproved(ctx, cfg)
	if err != nil {
		return runSnapshot{}, err
	}
	root := resolvePackagesDir(cfg, packagesDir)
	dirs, err := s.Workspace.ListPackageDirs(root)
	if err != nil {
		if errbuilder.CodeOf(err) != errbuilder.CodeNotFound {
			return runSnapshot{}, err
		}
		log.Ctx(ctx).Warn().Str("root", root).Msg("packages root not found, nothing to validate")
		dirs = nil
	}
	discoverer := core.NewInternalDiscoverer(s.Manifests)
	internal := discoverer.DiscoverInternal(ctx, dirs)
	return runSnapshot{
		cfg:      cfg,
		approved: approved,
		internal: internal,
		dirs:     dirs,
		auditor:  core.NewPackageAuditor(s.Manifests, policies.NewAllowPolicy(internal, approved)),
		root:     root,
	}, nil
}

// resolvePackagesDir picks the packages root. An explicit flag value
// wins and is taken relative to the working directory; the configured
// or default value is taken relative to the root manifest.
func resolvePackagesDir(cfg types.RootConfig, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	dir := cfg.PackagesDir
	if dir == "" {
		dir = "packages"
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(cfg.Path), dir)
	}
	return dir
}

// ValidateRepository audits every package directory against the
// assembled allowlist and reports the combined outcome.
func (s Service) ValidateRepository(ctx context.Context, req ValidateRequest) (types.RepositoryOutcome, error) {
	snap, err := s.buildSnapshot(ctx, req.ManifestPath, req.PackagesDir)
	if err != nil {
		return types.RepositoryOutcome{}, err
	}
	var outcome types.RepositoryOutcome
	for _, dir := range snap.dirs {
		result := snap.auditor.AuditPackage(ctx, dir)
		outcome.Results = append(outcome.Results, result)
		outcome.TotalErrors += len(result.Errors)
	}
	outcome.Valid = outcome.TotalErrors == 0
	if err := s.writeReport(req.ReportPath, outcome); err != nil {
		return types.RepositoryOutcome{}, err
	}
	log.Ctx(ctx).Debug().
		Int("packages", len(outcome.Results)).
		Int("errors", outcome.TotalErrors).
		Bool("valid", outcome.Valid).
		Msg("repository validated")
	return outcome, nil
}

// ValidatePackage audits a single package directory by name. The
// allowlist and internal set still come from the whole repository so
// the verdict matches a full run.
func (s Service) ValidatePackage(ctx context.Context, req ValidateRequest) (types.PackageResult, error) {
	target := strings.TrimSpace(req.Package)
	if target == "" {
		return types.PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	snap, err := s.buildSnapshot(ctx, req.ManifestPath, req.PackagesDir)
	if err != nil {
		return types.PackageResult{}, err
	}
	for _, dir := range snap.dirs {
		if dir.Name != target {
			continue
		}
		result := snap.auditor.AuditPackage(ctx, dir)
		outcome := types.RepositoryOutcome{
			Results:     []types.PackageResult{result},
			TotalErrors: len(result.Errors),
			Valid:       len(result.Errors) == 0,
		}
		if err := s.writeReport(req.ReportPath, outcome); err != nil {
			return types.PackageResult{}, err
		}
		return result, nil
	}
	return types.PackageResult{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no package directory named %s under %s", target, snap.root))
}

func (s Service) writeReport(path string, outcome types.RepositoryOutcome) error {
	if path == "" {
		return nil
	}
	return s.Reports.WriteReport(path, outcome, s.Clock().UTC().Format(time.RFC3339))
}
