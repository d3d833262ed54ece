package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/logostamp/internal/adapters/fs"
	"github.com/bft-labs/logostamp/internal/domain"
)

// DefaultWatermark is the lookup key used when --watermark is not given.
const DefaultWatermark = "default"

// WatermarksFileName is the lookup table looked for next to the executable.
const WatermarksFileName = "watermarks.json"

// Config holds CLI configuration for logostamp.
type Config struct {
	Path           string
	Watermark      string
	WatermarksFile string

	Quality int
	DPI     int

	Margin      float64
	RotatedTags []int
	OutputDir   string

	FailFast bool
	Report   string

	LogLevel string
	LogFile  string
	Pause    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Watermark:   DefaultWatermark,
		Quality:     95,
		DPI:         96,
		Margin:      domain.DefaultMargin,
		RotatedTags: []int{3, 6, 8},
		OutputDir:   fs.DefaultOutputDirName,
		LogLevel:    "info",
		// Path and WatermarksFile are derived during Validate
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("%w: resolve working directory: %w", domain.ErrInvalidConfig, err)
		}
		c.Path = wd
	}

	if c.WatermarksFile == "" {
		c.WatermarksFile = DefaultWatermarksPath()
	}

	if strings.TrimSpace(c.Watermark) == "" {
		return fmt.Errorf("%w: watermark name is required", domain.ErrInvalidConfig)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", domain.ErrInvalidConfig, c.Quality)
	}
	if c.DPI < 1 || c.DPI > 65535 {
		return fmt.Errorf("%w: dpi must be between 1 and 65535, got %d", domain.ErrInvalidConfig, c.DPI)
	}
	if c.Margin < 0 || c.Margin >= 1 {
		return fmt.Errorf("%w: margin must be in [0, 1), got %g", domain.ErrInvalidConfig, c.Margin)
	}
	if _, err := domain.NewRotationPolicy(c.RotatedTags); err != nil {
		return err
	}

	if c.OutputDir == "" || c.OutputDir == "." || c.OutputDir == ".." ||
		strings.ContainsAny(c.OutputDir, `/\`) {
		return fmt.Errorf("%w: output-dir must be a plain folder name, got %q", domain.ErrInvalidConfig, c.OutputDir)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	return nil
}

// Policy returns the failure policy selected by FailFast.
func (c *Config) Policy() domain.FailurePolicy {
	if c.FailFast {
		return domain.PolicyAbort
	}
	return domain.PolicySkip
}

// DefaultWatermarksPath returns watermarks.json next to the running executable,
// or in the working directory when the executable path is unknown.
func DefaultWatermarksPath() string {
	exe, err := os.Executable()
	if err != nil {
		return WatermarksFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), WatermarksFileName)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value from a pointer so an explicit zero is kept.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInts replaces a list if the new one is non-empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]int(nil), value...)
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setIntsFromString parses a comma-separated list such as "3,6,8".
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		return nil
	}
	*dst = out
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
