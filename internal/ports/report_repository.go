package ports

import (
	"context"

	"github.com/bft-labs/logostamp/internal/domain"
)

// ReportRepository persists the summary of a batch run.
type ReportRepository interface {
	// Save persists the report atomically.
	// The implementation should use atomic writes (e.g., write to temp file, then rename)
	// so a reader never sees a half-written report.
	Save(ctx context.Context, report domain.Report) error

	// Path is where Save writes, for logging.
	Path() string
}
