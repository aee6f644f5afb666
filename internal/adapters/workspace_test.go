package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depwarden/internal/types"
)

func makePackageDir(t *testing.T, root, name string, files ...string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("{}"), 0644))
	}
}

func TestWorkspaceAdapterListPackageDirs(t *testing.T) {
	root := t.TempDir()
	makePackageDir(t, root, "web", "pyproject.toml")
	makePackageDir(t, root, "docs", "package.json")
	makePackageDir(t, root, "empty")
	makePackageDir(t, root, ".hidden", "pyproject.toml")
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0644))

	dirs, err := NewWorkspaceAdapter().ListPackageDirs(root)
	require.NoError(t, err)

	want := []types.PackageDir{
		{
			Name:   "docs",
			Path:   filepath.Join(root, "docs"),
			Marker: "package.json",
		},
		{
			Name: "empty",
			Path: filepath.Join(root, "empty"),
		},
		{
			Name:         "web",
			Path:         filepath.Join(root, "web"),
			ManifestPath: filepath.Join(root, "web", "pyproject.toml"),
			HasManifest:  true,
		},
	}
	if diff := cmp.Diff(want, dirs); diff != "" {
		t.Errorf("package dirs mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkspaceAdapterManifestWinsOverMarker(t *testing.T) {
	root := t.TempDir()
	makePackageDir(t, root, "hybrid", "pyproject.toml", "setup.py")

	dirs, err := NewWorkspaceAdapter().ListPackageDirs(root)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	assert.True(t, dirs[0].HasManifest)
	assert.Empty(t, dirs[0].Marker)
}

func TestWorkspaceAdapterMarkerProbeOrder(t *testing.T) {
	root := t.TempDir()
	makePackageDir(t, root, "legacy", "setup.py", "package.json")

	dirs, err := NewWorkspaceAdapter().ListPackageDirs(root)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	assert.Equal(t, "setup.py", dirs[0].Marker)
}

func TestWorkspaceAdapterMissingRoot(t *testing.T) {
	_, err := NewWorkspaceAdapter().ListPackageDirs(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWorkspaceAdapterEmptyRoot(t *testing.T) {
	_, err := NewWorkspaceAdapter().ListPackageDirs("")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWorkspaceAdapterEmptyDirListing(t *testing.T) {
	dirs, err := NewWorkspaceAdapter().ListPackageDirs(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, dirs)
}
