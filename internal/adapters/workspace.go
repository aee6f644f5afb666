package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depwarden/internal/ports"
	"depwarden/internal/types"
)

// foreignMarkers identifies build systems other than pyproject.toml,
// in probe order. A directory carrying one of these and no manifest is
// reported for skipping instead of failing validation.
var foreignMarkers = []string{
	"setup.py",
	"setup.cfg",
	"package.json",
	"Cargo.toml",
	"go.mod",
	"pom.xml",
	"build.gradle",
	"CMakeLists.txt",
}

// WorkspaceAdapter enumerates package directories on the local
// filesystem.
type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// ListPackageDirs returns the immediate subdirectories of root, each
// probed for a pyproject.toml or a foreign build marker. Entries come
// back in name order because os.ReadDir sorts them.
func (a WorkspaceAdapter) ListPackageDirs(root string) ([]types.PackageDir, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packages root is empty")
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("packages root not found: " + root).
				WithCause(err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read packages root").
			WithCause(err)
	}

	var dirs []types.PackageDir
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dirPath := filepath.Join(root, entry.Name())
		dir := types.PackageDir{
			Name: entry.Name(),
			Path: dirPath,
		}
		manifestPath := filepath.Join(dirPath, "pyproject.toml")
		if _, err := os.Stat(manifestPath); err == nil {
			dir.ManifestPath = manifestPath
			dir.HasManifest = true
		} else {
			dir.Marker = probeMarker(dirPath)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func probeMarker(dir string) string {
	for _, marker := range foreignMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return marker
		}
	}
	return ""
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
