package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depwarden/internal/ports"
	"depwarden/internal/types"
)

// ReportFileAdapter writes validation outcomes as JSON reports.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WriteReport(path string, outcome types.RepositoryOutcome, generatedAt string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report directory").
				WithCause(err)
		}
	}
	type reportDeclaration struct {
		Raw   string `json:"raw"`
		Group string `json:"group,omitempty"`
	}
	type reportPackage struct {
		Package      string              `json:"package"`
		Dir          string              `json:"dir"`
		Skipped      bool                `json:"skipped,omitempty"`
		SkipReason   string              `json:"skip_reason,omitempty"`
		Declarations []reportDeclaration `json:"declarations,omitempty"`
		Errors       []string            `json:"errors,omitempty"`
		Warnings     []string            `json:"warnings,omitempty"`
		Valid        bool                `json:"valid"`
	}
	payload := struct {
		GeneratedAt string          `json:"generated_at"`
		Valid       bool            `json:"valid"`
		TotalErrors int             `json:"total_errors"`
		Packages    []reportPackage `json:"packages"`
	}{
		GeneratedAt: generatedAt,
		Valid:       outcome.Valid,
		TotalErrors: outcome.TotalErrors,
	}
	for _, result := range outcome.Results {
		pkg := reportPackage{
			Package:    result.Package,
			Dir:        result.Dir,
			Skipped:    result.Skipped,
			SkipReason: result.SkipReason,
			Errors:     result.Errors,
			Warnings:   result.Warnings,
			Valid:      len(result.Errors) == 0,
		}
		for _, decl := range result.Declarations {
			pkg.Declarations = append(pkg.Declarations, reportDeclaration{
				Raw:   decl.Raw,
				Group: decl.Group,
			})
		}
		payload.Packages = append(payload.Packages, pkg)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal report payload").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report file").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = ReportFileAdapter{}
