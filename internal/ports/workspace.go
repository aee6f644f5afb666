package ports

import "depwarden/internal/types"

// WorkspacePort lists candidate package directories under the packages
// root of the repository.
type WorkspacePort interface {
	// ListPackageDirs returns the immediate subdirectories of root in
	// sorted name order, each probed for a manifest or a foreign
	// project marker.
	ListPackageDirs(root string) ([]types.PackageDir, error)
}
