package ports

// HookInstallerPort writes the git pre-commit hook that runs the
// validator before each commit.
type HookInstallerPort interface {
	// Install writes .git/hooks/pre-commit under repoRoot and returns
	// the hook path. An existing hook not written by this tool is left
	// alone unless force is set.
	Install(repoRoot string, force bool) (string, error)
}
