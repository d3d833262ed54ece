package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions maps lower-case file extensions to the container they
// are expected to hold. The decoded format, not the extension, decides the
// output encoding.
var SupportedExtensions = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif", // first frame only; output reuses the source palette
}

// IsSupported reports whether name has a supported extension, ignoring case.
func IsSupported(name string) bool {
	_, ok := SupportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// DirSource implements ports.ImageSource over one directory, non-recursively.
type DirSource struct {
	dir string
}

// NewDirSource creates a source for dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// List returns supported regular files directly inside the directory, sorted by name.
// Subdirectories, including the output folder, and symlinks to directories are skipped.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !IsSupported(e.Name()) {
			continue
		}
		if !isRegular(filepath.Join(s.dir, e.Name()), e) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the contents of a file in the directory.
func (s *DirSource) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}

func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	// follow symlinks the way a plain open would
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
