package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"depwarden/internal/ports"
	"depwarden/internal/types"
)

// OverlayFileAdapter loads shared allowlist files referenced from the
// root manifest.
type OverlayFileAdapter struct{}

func NewOverlayFileAdapter() OverlayFileAdapter {
	return OverlayFileAdapter{}
}

type overlayFile struct {
	Version string   `yaml:"version"`
	Allow   []string `yaml:"allow"`
}

func (a OverlayFileAdapter) LoadOverlay(path string) (types.Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Overlay{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("allowlist file not found: " + path).
			WithCause(err)
	}
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.Overlay{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse allowlist file: " + path).
			WithCause(err)
	}
	if file.Version == "" {
		return types.Overlay{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("allowlist file missing version: " + path)
	}
	return types.Overlay{
		Path:    path,
		Version: file.Version,
		Allow:   file.Allow,
	}, nil
}

var _ ports.OverlayPort = OverlayFileAdapter{}
