package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depwarden/internal/ports"
)

const hookScript = "#!/bin/sh\n# installed by depwarden\nexec depwarden validate\n"

// hookMarker identifies hooks written by us. A pre-commit hook without
// it belongs to someone else and is only replaced under force.
const hookMarker = "installed by depwarden"

// HookInstallerAdapter writes the pre-commit hook into a git checkout.
type HookInstallerAdapter struct{}

func NewHookInstallerAdapter() HookInstallerAdapter {
	return HookInstallerAdapter{}
}

func (a HookInstallerAdapter) Install(repoRoot string, force bool) (string, error) {
	gitDir := filepath.Join(repoRoot, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no .git directory under " + repoRoot)
	}
	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create hooks directory").
			WithCause(err)
	}
	hookPath := filepath.Join(hooksDir, "pre-commit")
	if existing, err := os.ReadFile(hookPath); err == nil {
		if !strings.Contains(string(existing), hookMarker) && !force {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("pre-commit hook already exists and was not installed by depwarden (use --force to overwrite)")
		}
	}
	if err := os.WriteFile(hookPath, []byte(hookScript), 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pre-commit hook").
			WithCause(err)
	}
	return hookPath, nil
}

var _ ports.HookInstallerPort = HookInstallerAdapter{}
