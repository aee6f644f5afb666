package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"depwarden/internal/ports"
	"depwarden/internal/shared"
	"depwarden/internal/types"
)

// InternalDiscoverer collects the declared project names of the
// repository's own packages. Discovery is deliberately tolerant: a
// directory whose manifest is missing, unreadable, or nameless is
// logged and left out here, and judged strictly later when the same
// directory is validated.
type InternalDiscoverer struct {
	Manifests ports.ManifestPort
}

func NewInternalDiscoverer(manifests ports.ManifestPort) InternalDiscoverer {
	return InternalDiscoverer{Manifests: manifests}
}

// DiscoverInternal builds the internal package snapshot for one run
// from the listed package directories.
func (d InternalDiscoverer) DiscoverInternal(ctx context.Context, dirs []types.PackageDir) types.InternalSet {
	set := types.InternalSet{Members: map[string]string{}}
	for _, dir := range dirs {
		if !dir.HasManifest {
			continue
		}
		manifest, err := d.Manifests.Load(dir.ManifestPath)
		if err != nil {
			log.Ctx(ctx).Warn().Str("package", dir.Name).Err(err).Msg("manifest unreadable, not registered as internal")
			continue
		}
		if manifest.Name == "" {
			log.Ctx(ctx).Warn().Str("package", dir.Name).Msg("manifest has no project name, not registered as internal")
			continue
		}
		set.Members[shared.NormalizePipName(manifest.Name)] = manifest.Name
	}
	log.Ctx(ctx).Debug().Int("internal", len(set.Members)).Msg("internal packages discovered")
	return set
}
