package logostamp

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bft-labs/logostamp/internal/adapters/codec"
	"github.com/bft-labs/logostamp/internal/adapters/fs"
	"github.com/bft-labs/logostamp/internal/domain"
)

// Config describes one batch run.
// Start from DefaultConfig; a zero Margin means no margin.
type Config struct {
	// Dir is the directory whose images are stamped. Required.
	Dir string

	// WatermarkName labels the watermark in logs and the report.
	WatermarkName string

	// WatermarkPath is the overlay image file. Required.
	WatermarkPath string

	// OutputDirName is the subfolder of Dir that receives the results.
	OutputDirName string

	Quality int
	DPI     int

	// Margin is the gap to the bottom and right edges as a fraction of the
	// image width.
	Margin float64

	// RotatedTags are the EXIF orientation values that select the rotated
	// width ratio.
	RotatedTags []int

	// FailFast stops the batch at the first failed file.
	FailFast bool

	// ReportPath, when set, receives a JSON report after the run.
	ReportPath string

	// DropExif leaves the source EXIF block out of JPEG output. Rotated
	// photos then lose their orientation tag and display as stored.
	DropExif bool
}

// DefaultConfig returns a Config with default values.
// Dir and WatermarkPath must still be set.
func DefaultConfig() Config {
	return Config{
		WatermarkName: "default",
		OutputDirName: fs.DefaultOutputDirName,
		Quality:       codec.DefaultQuality,
		DPI:           codec.DefaultDPI,
		Margin:        domain.DefaultMargin,
		RotatedTags:   []int{3, 6, 8},
	}
}

// SetDefaults fills empty fields. Margin is left alone since zero is valid.
func (c *Config) SetDefaults() {
	if c.OutputDirName == "" {
		c.OutputDirName = fs.DefaultOutputDirName
	}
	if c.Quality == 0 {
		c.Quality = codec.DefaultQuality
	}
	if c.DPI == 0 {
		c.DPI = codec.DefaultDPI
	}
	if len(c.RotatedTags) == 0 {
		c.RotatedTags = []int{3, 6, 8}
	}
	if c.WatermarkName == "" && c.WatermarkPath != "" {
		c.WatermarkName = strings.TrimSuffix(filepath.Base(c.WatermarkPath), filepath.Ext(c.WatermarkPath))
	}
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: Dir is required", domain.ErrInvalidConfig)
	}
	if c.WatermarkPath == "" {
		return fmt.Errorf("%w: WatermarkPath is required", domain.ErrInvalidConfig)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: Quality must be between 1 and 100, got %d", domain.ErrInvalidConfig, c.Quality)
	}
	if c.DPI < 1 || c.DPI > 65535 {
		return fmt.Errorf("%w: DPI must be between 1 and 65535, got %d", domain.ErrInvalidConfig, c.DPI)
	}
	if c.Margin < 0 || c.Margin >= 1 {
		return fmt.Errorf("%w: Margin must be in [0, 1), got %g", domain.ErrInvalidConfig, c.Margin)
	}
	if c.OutputDirName == "." || c.OutputDirName == ".." || strings.ContainsAny(c.OutputDirName, `/\`) {
		return fmt.Errorf("%w: OutputDirName must be a plain folder name, got %q", domain.ErrInvalidConfig, c.OutputDirName)
	}
	if _, err := domain.NewRotationPolicy(c.RotatedTags); err != nil {
		return err
	}
	return nil
}
