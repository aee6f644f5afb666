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

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestManifestFileAdapterLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "web-api"
dependencies = ["requests==2.31.0", "rich>=13.0"]

[project.optional-dependencies]
dev = ["pytest==7.4.0"]
docs = ["sphinx>=7.0"]
`)

	manifest, err := NewManifestFileAdapter().Load(path)
	require.NoError(t, err)

	want := types.Manifest{
		Path:         path,
		Name:         "web-api",
		Dependencies: []string{"requests==2.31.0", "rich>=13.0"},
		OptionalGroups: []types.DependencyGroup{
			{Name: "dev", Dependencies: []string{"pytest==7.4.0"}},
			{Name: "docs", Dependencies: []string{"sphinx>=7.0"}},
		},
		HasProject: true,
	}
	if diff := cmp.Diff(want, manifest); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestFileAdapterLoadGroupOrder(t *testing.T) {
	// Group order must follow the document, not the map iteration order.
	path := writeManifest(t, t.TempDir(), `
[project]
name = "ordered"

[project.optional-dependencies]
zeta = ["a==1.0"]
alpha = ["b==1.0"]
mid = ["c==1.0"]
`)

	manifest, err := NewManifestFileAdapter().Load(path)
	require.NoError(t, err)

	var names []string
	for _, group := range manifest.OptionalGroups {
		names = append(names, group.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestManifestFileAdapterLoadMinimal(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "bare"
`)

	manifest, err := NewManifestFileAdapter().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bare", manifest.Name)
	assert.Empty(t, manifest.Dependencies)
	assert.Empty(t, manifest.OptionalGroups)
	assert.True(t, manifest.HasProject)
}

func TestManifestFileAdapterLoadNoProjectTable(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[build-system]
requires = ["hatchling"]
`)

	manifest, err := NewManifestFileAdapter().Load(path)
	require.NoError(t, err)
	assert.False(t, manifest.HasProject)
	assert.Empty(t, manifest.Name)
}

func TestManifestFileAdapterLoadMissing(t *testing.T) {
	_, err := NewManifestFileAdapter().Load(filepath.Join(t.TempDir(), "pyproject.toml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestManifestFileAdapterLoadMalformed(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[project
name = broken
`)

	_, err := NewManifestFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestManifestFileAdapterLoadCaches(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[project]
name = "cached"
`)

	adapter := NewManifestFileAdapter()
	first, err := adapter.Load(path)
	require.NoError(t, err)

	// Replace the file content but keep the modification time so the
	// cached entry stays valid.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[project]\nname = \"changed\"\n"), 0644))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	second, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
}

func TestManifestFileAdapterLoadRoot(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "repo-root"

[tool.depwarden]
allow = ["requests==2.31.0", "pytest==7.4.0"]
packages_dir = "libs"
allowlists = ["shared-allowlist.yaml"]
`)

	cfg, err := NewManifestFileAdapter().LoadRoot(path)
	require.NoError(t, err)

	want := types.RootConfig{
		Path:        path,
		Allow:       []string{"requests==2.31.0", "pytest==7.4.0"},
		PackagesDir: "libs",
		Allowlists:  []string{"shared-allowlist.yaml"},
		HasSection:  true,
		HasAllow:    true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("root config mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestFileAdapterLoadRootSectionFlags(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		hasSection bool
		hasAllow   bool
	}{
		{
			name:       "no tool section",
			content:    "[project]\nname = \"x\"\n",
			hasSection: false,
			hasAllow:   false,
		},
		{
			name:       "section without allow",
			content:    "[tool.depwarden]\npackages_dir = \"packages\"\n",
			hasSection: true,
			hasAllow:   false,
		},
		{
			name:       "empty allow is still declared",
			content:    "[tool.depwarden]\nallow = []\n",
			hasSection: true,
			hasAllow:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			cfg, err := NewManifestFileAdapter().LoadRoot(path)
			require.NoError(t, err)
			assert.Equal(t, tt.hasSection, cfg.HasSection)
			assert.Equal(t, tt.hasAllow, cfg.HasAllow)
		})
	}
}

func TestManifestFileAdapterLoadRootMissing(t *testing.T) {
	_, err := NewManifestFileAdapter().LoadRoot(filepath.Join(t.TempDir(), "pyproject.toml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
