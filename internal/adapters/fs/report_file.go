package fs

import (
	"context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/bft-labs/logostamp/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportFileRepository implements ports.ReportRepository using a JSON file.
type ReportFileRepository struct {
	path string
}

// NewReportFileRepository creates a repository writing to path.
func NewReportFileRepository(path string) *ReportFileRepository {
	return &ReportFileRepository{path: path}
}

// Save persists the report atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *ReportFileRepository) Save(ctx context.Context, report domain.Report) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return writeAtomic(r.path, data, 0o644)
}

// Path returns the full path to the report file.
func (r *ReportFileRepository) Path() string {
	return r.path
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
