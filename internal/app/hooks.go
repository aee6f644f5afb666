package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// InstallHook writes a git pre-commit hook that runs validation.
func (s Service) InstallHook(ctx context.Context, req InstallHookRequest) (InstallHookResult, error) {
	root := req.RepoRoot
	if root == "" {
		root = "."
	}
	path, err := s.Hooks.Install(root, req.Force)
	if err != nil {
		return InstallHookResult{}, err
	}
	log.Ctx(ctx).Debug().Str("path", path).Msg("pre-commit hook installed")
	return InstallHookResult{HookPath: path}, nil
}
