package ports

import "depwarden/internal/types"

type ReportPort interface {
	WriteReport(path string, outcome types.RepositoryOutcome, generatedAt string) error
}
