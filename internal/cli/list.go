package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depwarden/internal/app"
)

type listOptions struct {
	Manifest string
	Packages string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List internal packages and the approved dependency set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "pyproject.toml", "Root manifest path")
	cmd.Flags().StringVar(&opts.Packages, "packages", "", "Packages directory (defaults to the configured packages_dir)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("packages", cmd.Flags().Lookup("packages"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		PackagesDir:  resolveString(cmd, opts.Packages, "packages", "packages"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("internal packages: %d\n", len(result.Internal))
	for _, name := range result.Internal {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("approved dependencies: %d\n", len(result.Approved))
	for _, entry := range result.Approved {
		fmt.Printf("  %s\n", entry)
	}
	return nil
}
