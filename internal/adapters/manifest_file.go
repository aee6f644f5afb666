package adapters

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"depwarden/internal/ports"
	"depwarden/internal/types"
)

// ManifestFileAdapter parses pyproject.toml files. Parsed package
// manifests are cached by path and modification time because discovery
// and validation both read every manifest in the same run.
type ManifestFileAdapter struct {
	mu    sync.Mutex
	cache map[string]manifestCacheEntry
}

func NewManifestFileAdapter() *ManifestFileAdapter {
	return &ManifestFileAdapter{cache: map[string]manifestCacheEntry{}}
}

type manifestCacheEntry struct {
	modTime  time.Time
	manifest types.Manifest
}

type pyprojectFile struct {
	Project pyprojectProject `toml:"project"`
	Tool    pyprojectTool    `toml:"tool"`
}

type pyprojectProject struct {
	Name                 string              `toml:"name"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}

type pyprojectTool struct {
	Depwarden pyprojectDepwarden `toml:"depwarden"`
}

type pyprojectDepwarden struct {
	Allow       []string `toml:"allow"`
	PackagesDir string   `toml:"packages_dir"`
	Allowlists  []string `toml:"allowlists"`
}

func (a *ManifestFileAdapter) Load(path string) (types.Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read pyproject.toml").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.manifest, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read pyproject.toml").
			WithCause(err)
	}
	var file pyprojectFile
	meta, err := toml.Decode(string(content), &file)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pyproject.toml: " + path).
			WithCause(err)
	}
	manifest := types.Manifest{
		Path:           path,
		Name:           strings.TrimSpace(file.Project.Name),
		Dependencies:   file.Project.Dependencies,
		OptionalGroups: optionalGroups(meta, file.Project.OptionalDependencies),
		HasProject:     meta.IsDefined("project"),
	}

	a.mu.Lock()
	a.cache[path] = manifestCacheEntry{modTime: info.ModTime(), manifest: manifest}
	a.mu.Unlock()
	return manifest, nil
}

func (a *ManifestFileAdapter) LoadRoot(path string) (types.RootConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RootConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("root manifest not found: " + path).
			WithCause(err)
	}
	var file pyprojectFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return types.RootConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse root manifest: " + path).
			WithCause(err)
	}
	return types.RootConfig{
		Path:        path,
		Allow:       file.Tool.Depwarden.Allow,
		PackagesDir: strings.TrimSpace(file.Tool.Depwarden.PackagesDir),
		Allowlists:  file.Tool.Depwarden.Allowlists,
		HasSection:  meta.IsDefined("tool", "depwarden"),
		HasAllow:    meta.IsDefined("tool", "depwarden", "allow"),
	}, nil
}

// optionalGroups returns the optional-dependency groups in the order
// they appear in the TOML document. The decoded map loses that order;
// meta.Keys preserves it.
func optionalGroups(meta toml.MetaData, groups map[string][]string) []types.DependencyGroup {
	if len(groups) == 0 {
		return nil
	}
	var ordered []types.DependencyGroup
	seen := map[string]struct{}{}
	for _, key := range meta.Keys() {
		if len(key) != 3 || key[0] != "project" || key[1] != "optional-dependencies" {
			continue
		}
		name := key[2]
		if _, dup := seen[name]; dup {
			continue
		}
		deps, ok := groups[name]
		if !ok {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, types.DependencyGroup{Name: name, Dependencies: deps})
	}
	return ordered
}

var _ ports.ManifestPort = (*ManifestFileAdapter)(nil)
