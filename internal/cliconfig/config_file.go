package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML keys. Pointer fields distinguish an
// explicit false or zero from an absent key.
type FileConfig struct {
	Path           string   `toml:"path"`
	Watermark      string   `toml:"watermark"`
	WatermarksFile string   `toml:"watermarks_file"`
	Quality        int      `toml:"quality"`
	DPI            int      `toml:"dpi"`
	Margin         *float64 `toml:"margin"`
	RotatedTags    []int    `toml:"rotated_tags"`
	OutputDir      string   `toml:"output_dir"`
	FailFast       *bool    `toml:"fail_fast"`
	Report         string   `toml:"report"`
	LogLevel       string   `toml:"log_level"`
	LogFile        string   `toml:"log_file"`
	Pause          *bool    `toml:"pause"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.logostamp/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".logostamp", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("path", fc.Path, &cfg.Path)
	s.setString("watermark", fc.Watermark, &cfg.Watermark)
	s.setString("watermarks", fc.WatermarksFile, &cfg.WatermarksFile)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("report", fc.Report, &cfg.Report)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)

	s.setInt("quality", fc.Quality, &cfg.Quality)
	s.setInt("dpi", fc.DPI, &cfg.DPI)

	s.setFloat("margin", fc.Margin, &cfg.Margin)
	s.setInts("rotated-tags", fc.RotatedTags, &cfg.RotatedTags)

	s.setBool("fail-fast", fc.FailFast, &cfg.FailFast)
	s.setBool("pause", fc.Pause, &cfg.Pause)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
