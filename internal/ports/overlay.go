package ports

import "depwarden/internal/types"

// OverlayPort loads shared allowlist files referenced from the root
// manifest.
type OverlayPort interface {
	LoadOverlay(path string) (types.Overlay, error)
}
