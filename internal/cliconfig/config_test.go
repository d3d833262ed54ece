package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bft-labs/logostamp/internal/adapters/fs"
	"github.com/bft-labs/logostamp/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Watermark != DefaultWatermark {
		t.Errorf("Watermark = %v, want %v", cfg.Watermark, DefaultWatermark)
	}
	if cfg.Quality != 95 {
		t.Errorf("Quality = %v, want 95", cfg.Quality)
	}
	if cfg.DPI != 96 {
		t.Errorf("DPI = %v, want 96", cfg.DPI)
	}
	if cfg.Margin != 0.03 {
		t.Errorf("Margin = %v, want 0.03", cfg.Margin)
	}
	if !reflect.DeepEqual(cfg.RotatedTags, []int{3, 6, 8}) {
		t.Errorf("RotatedTags = %v, want [3 6 8]", cfg.RotatedTags)
	}
	if cfg.OutputDir != fs.DefaultOutputDirName {
		t.Errorf("OutputDir = %v, want %v", cfg.OutputDir, fs.DefaultOutputDirName)
	}
	if cfg.FailFast {
		t.Error("FailFast = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		c := DefaultConfig()
		c.Path = "/photos"
		c.WatermarksFile = "/etc/logostamp/watermarks.json"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"quality lower bound", func(c *Config) { c.Quality = 1 }, false},
		{"quality upper bound", func(c *Config) { c.Quality = 100 }, false},
		{"quality zero", func(c *Config) { c.Quality = 0 }, true},
		{"quality too high", func(c *Config) { c.Quality = 101 }, true},
		{"dpi zero", func(c *Config) { c.DPI = 0 }, true},
		{"dpi overflows jfif", func(c *Config) { c.DPI = 70000 }, true},
		{"zero margin", func(c *Config) { c.Margin = 0 }, false},
		{"negative margin", func(c *Config) { c.Margin = -0.1 }, true},
		{"margin of one", func(c *Config) { c.Margin = 1 }, true},
		{"narrow rotated tags", func(c *Config) { c.RotatedTags = []int{8} }, false},
		{"empty rotated tags", func(c *Config) { c.RotatedTags = nil }, true},
		{"invalid rotated tag", func(c *Config) { c.RotatedTags = []int{3, 10} }, true},
		{"empty watermark", func(c *Config) { c.Watermark = "  " }, true},
		{"output dir with slash", func(c *Config) { c.OutputDir = "a/b" }, true},
		{"output dir dot-dot", func(c *Config) { c.OutputDir = ".." }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error but got nil")
				}
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg := DefaultConfig()
	cfg.LogLevel = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	resolvedDir, _ := filepath.EvalSymlinks(dir)
	resolvedPath, _ := filepath.EvalSymlinks(cfg.Path)
	if resolvedPath != resolvedDir {
		t.Errorf("Path = %v, want working directory %v", cfg.Path, dir)
	}
	if filepath.Base(cfg.WatermarksFile) != WatermarksFileName {
		t.Errorf("WatermarksFile = %v, want */%s", cfg.WatermarksFile, WatermarksFileName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestConfig_Policy(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Policy() != domain.PolicySkip {
		t.Errorf("Policy() = %v, want skip", cfg.Policy())
	}
	cfg.FailFast = true
	if cfg.Policy() != domain.PolicyAbort {
		t.Errorf("Policy() = %v, want abort", cfg.Policy())
	}
}

func TestConfigSetter_IntsFromString(t *testing.T) {
	tests := []struct {
		value   string
		want    []int
		wantErr bool
	}{
		{"3,6,8", []int{3, 6, 8}, false},
		{" 8 ", []int{8}, false},
		{"6,,8,", []int{6, 8}, false},
		{",", []int{1}, false},
		{"6,x", []int{1}, true},
	}

	for _, tt := range tests {
		dst := []int{1}
		err := newConfigSetter(nil).setIntsFromString("rotated-tags", tt.value, &dst)
		if (err != nil) != tt.wantErr {
			t.Errorf("setIntsFromString(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(dst, tt.want) {
			t.Errorf("setIntsFromString(%q) = %v, want %v", tt.value, dst, tt.want)
		}
	}
}
