package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/logostamp/internal/domain"
)

// DefaultOutputDirName is the folder created inside the target directory.
const DefaultOutputDirName = "С ЛОГО"

// OutputDir implements ports.OutputStore as a subfolder of the target directory.
type OutputDir struct {
	path string
}

// NewOutputDir creates an output store at dir/name.
func NewOutputDir(dir, name string) *OutputDir {
	return &OutputDir{path: filepath.Join(dir, name)}
}

// Prepare creates the folder. The parent must exist; the folder itself must not.
// Both failure modes wrap domain.ErrOutputDir; an existing folder also wraps os.ErrExist.
func (o *OutputDir) Prepare(ctx context.Context) error {
	if err := os.Mkdir(o.path, 0o755); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputDir, err)
	}
	return nil
}

// Write stores data as name inside the folder, replacing any previous output.
func (o *OutputDir) Write(name string, data []byte) error {
	return writeAtomic(filepath.Join(o.path, name), data, 0o644)
}

// Dir returns the folder path.
func (o *OutputDir) Dir() string {
	return o.path
}
