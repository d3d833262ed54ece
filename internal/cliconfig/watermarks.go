package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/bft-labs/logostamp/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WatermarkTable maps short watermark names to image files.
//
// The file is a flat JSON object, e.g. {"nsh": "nsh_mark.png"}. Relative
// image paths are resolved against the directory holding the table.
type WatermarkTable struct {
	path    string
	entries map[string]string
}

// LoadWatermarkTable reads the lookup table at path.
func LoadWatermarkTable(path string) (*WatermarkTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read watermark table: %w", domain.ErrInvalidConfig, err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse watermark table %s: %w", domain.ErrInvalidConfig, path, err)
	}
	return &WatermarkTable{path: path, entries: entries}, nil
}

// Resolve returns the absolute image path for name.
func (t *WatermarkTable) Resolve(name string) (string, error) {
	rel, ok := t.entries[name]
	if !ok || rel == "" {
		return "", fmt.Errorf("%w: %q (known: %s)", domain.ErrUnknownWatermark, name, strings.Join(t.Names(), ", "))
	}
	if filepath.IsAbs(rel) {
		return rel, nil
	}
	return filepath.Join(filepath.Dir(t.path), rel), nil
}

// Names returns the known watermark names, sorted.
func (t *WatermarkTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for n := range t.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Path returns the table file path.
func (t *WatermarkTable) Path() string {
	return t.path
}
