package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depwarden/internal/app"
	"depwarden/internal/types"
)

type validateOptions struct {
	Manifest string
	Packages string
	Report   string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [package]",
		Short: "Validate package dependencies against the allowlist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "pyproject.toml", "Root manifest path")
	cmd.Flags().StringVar(&opts.Packages, "packages", "", "Packages directory (defaults to the configured packages_dir)")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Write a JSON report to this path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("packages", cmd.Flags().Lookup("packages"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions, args []string) error {
	service := newAppService()
	req := app.ValidateRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		PackagesDir:  resolveString(cmd, opts.Packages, "packages", "packages"),
		ReportPath:   resolveString(cmd, opts.Report, "report", "report"),
	}

	var outcome types.RepositoryOutcome
	if len(args) > 0 {
		req.Package = args[0]
		result, err := service.ValidatePackage(ctx, req)
		if err != nil {
			return err
		}
		outcome = types.RepositoryOutcome{
			Results:     []types.PackageResult{result},
			TotalErrors: len(result.Errors),
			Valid:       len(result.Errors) == 0,
		}
	} else {
		var err error
		outcome, err = service.ValidateRepository(ctx, req)
		if err != nil {
			return err
		}
	}

	printOutcome(outcome, len(args) > 0)
	if !outcome.Valid {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("validation failed")
	}
	return nil
}

// printOutcome writes the per-package text report. Failing packages list the
// declarations they examined before their errors; listAll extends the listing
// to passing packages as well.
func printOutcome(outcome types.RepositoryOutcome, listAll bool) {
	for _, result := range outcome.Results {
		switch {
		case result.Skipped:
			fmt.Printf("package %s: SKIPPED (%s)\n", result.Package, result.SkipReason)
		case len(result.Errors) == 0:
			fmt.Printf("package %s: all dependencies approved\n", result.Package)
		default:
			fmt.Printf("package %s: %d error(s)\n", result.Package, len(result.Errors))
		}
		if listAll || len(result.Errors) > 0 {
			printDeclarations(result.Declarations)
		}
		for _, msg := range result.Errors {
			fmt.Printf("ERROR: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("WARNING: %s\n", msg)
		}
	}
	if outcome.Valid {
		fmt.Printf("validation PASSED: %d package(s) checked\n", len(outcome.Results))
	} else {
		fmt.Printf("validation FAILED: %d error(s) across %d package(s)\n", outcome.TotalErrors, len(outcome.Results))
	}
}

func printDeclarations(declarations []types.Declaration) {
	for _, decl := range declarations {
		if decl.Group != "" {
			fmt.Printf("- %s (optional group '%s')\n", decl.Raw, decl.Group)
			continue
		}
		fmt.Printf("- %s\n", decl.Raw)
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
