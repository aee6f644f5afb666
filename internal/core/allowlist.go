package core

import (
	"context"
	"fmt"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depwarden/internal/ports"
	"depwarden/internal/shared"
	"depwarden/internal/types"
)

// AllowlistAssembler builds the approved-dependency snapshot from the
// root manifest configuration and any shared overlay files it
// references.
type AllowlistAssembler struct {
	Overlays ports.OverlayPort
}

func NewAllowlistAssembler(overlays ports.OverlayPort) AllowlistAssembler {
	return AllowlistAssembler{Overlays: overlays}
}

// BuildApproved produces the approved set for one run. Any failure here
// is fatal to the caller: a partial allowlist would let unapproved
// dependencies slip through as false failures or false passes.
//
// Overlay paths are resolved relative to the root manifest. Raw entries
// keep their declared order (root first, then overlays); membership
// uses PEP 503 normalized canonical names, and entries without a name
// are warned about and left out of the set.
func (a AllowlistAssembler) BuildApproved(ctx context.Context, cfg types.RootConfig) (types.ApprovedSet, error) {
	assert.NotEmpty(ctx, cfg.Path, "root config path must be set")
	if !cfg.HasSection || !cfg.HasAllow {
		return types.ApprovedSet{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("root manifest %s has no [tool.depwarden] allow list", cfg.Path))
	}

	raw := append([]string(nil), cfg.Allow...)
	for _, ref := range cfg.Allowlists {
		overlayPath := ref
		if !filepath.IsAbs(overlayPath) {
			overlayPath = filepath.Join(filepath.Dir(cfg.Path), overlayPath)
		}
		overlay, err := a.Overlays.LoadOverlay(overlayPath)
		if err != nil {
			return types.ApprovedSet{}, err
		}
		raw = append(raw, overlay.Allow...)
	}

	set := types.ApprovedSet{Names: map[string]struct{}{}, Raw: raw}
	for _, entry := range raw {
		name := shared.NormalizePipName(ExtractName(entry))
		if name == "" {
			log.Ctx(ctx).Warn().Str("entry", entry).Msg("allowlist entry has no package name, ignored")
			continue
		}
		set.Names[name] = struct{}{}
	}

	log.Ctx(ctx).Debug().Int("entries", len(set.Raw)).Int("approved", len(set.Names)).Msg("allowlist assembled")
	return set, nil
}
