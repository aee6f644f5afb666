package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depwarden/internal/app"
)

type hooksInstallOptions struct {
	RepoRoot string
	Force    bool
}

func newHooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage git hooks",
	}
	cmd.AddCommand(newHooksInstallCommand())
	return cmd
}

func newHooksInstallCommand() *cobra.Command {
	opts := hooksInstallOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a pre-commit hook that runs validation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHooksInstall(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.RepoRoot, "repo-root", ".", "Repository root containing .git")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing pre-commit hook")
	_ = viper.BindPFlag("repo_root", cmd.Flags().Lookup("repo-root"))
	_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	return cmd
}

func runHooksInstall(ctx context.Context, cmd *cobra.Command, opts hooksInstallOptions) error {
	service := newAppService()
	result, err := service.InstallHook(ctx, app.InstallHookRequest{
		RepoRoot: resolveString(cmd, opts.RepoRoot, "repo_root", "repo-root"),
		Force:    resolveBool(cmd, opts.Force, "force", "force"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("installed: %s\n", result.HookPath)
	return nil
}
