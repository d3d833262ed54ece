package logostamp

import (
	"context"
	"path/filepath"

	"github.com/bft-labs/logostamp/internal/adapters/codec"
	"github.com/bft-labs/logostamp/internal/adapters/fs"
	"github.com/bft-labs/logostamp/internal/adapters/metadata"
	"github.com/bft-labs/logostamp/internal/app"
	"github.com/bft-labs/logostamp/internal/domain"
	"github.com/bft-labs/logostamp/internal/ports"
)

type (
	// Report summarizes a run.
	Report = domain.Report

	// FileResult is the outcome of one file.
	FileResult = domain.FileResult

	// PlacementPlan is where the watermark went on one file.
	PlacementPlan = domain.PlacementPlan
)

// Errors returned by New and Run. Match them with errors.Is.
var (
	ErrInvalidConfig       = domain.ErrInvalidConfig
	ErrWatermarkUnreadable = domain.ErrWatermarkUnreadable
	ErrAborted             = domain.ErrAborted
	ErrContextCanceled     = domain.ErrContextCanceled
)

// Stamper applies one watermark to every image of one directory.
type Stamper struct {
	config    Config
	watermark *app.Watermark
	driver    *app.Driver
	logger    ports.Logger
}

// New validates cfg and loads the watermark. A watermark that cannot be
// decoded fails here, before any image is touched.
func New(cfg Config, opts ...Option) (*Stamper, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := domain.NewRotationPolicy(cfg.RotatedTags)
	if err != nil {
		return nil, err
	}

	wm, err := app.LoadWatermark(cfg.WatermarkName, cfg.WatermarkPath)
	if err != nil {
		return nil, err
	}

	var reports ports.ReportRepository
	if cfg.ReportPath != "" {
		reports = fs.NewReportFileRepository(cfg.ReportPath)
	}

	var emitter app.FileEventEmitter
	if o.eventHandler != nil {
		emitter = &eventEmitterWrapper{handler: o.eventHandler}
	}

	driverCfg := app.DriverConfig{
		Dir:    cfg.Dir,
		Policy: domain.PolicySkip,
	}
	if cfg.FailFast {
		driverCfg.Policy = domain.PolicyAbort
	}

	driver := app.NewDriver(
		driverCfg,
		fs.NewDirSource(cfg.Dir),
		fs.NewOutputDir(cfg.Dir, cfg.OutputDirName),
		codec.New(codec.Options{Quality: cfg.Quality, DPI: cfg.DPI, KeepExif: !cfg.DropExif}),
		metadata.NewExifReader(),
		app.NewCompositor(policy, cfg.Margin),
		wm,
		reports,
		o.logger,
		emitter,
	)

	o.logger.Debug("watermark loaded",
		ports.String("name", wm.Name),
		ports.String("path", wm.Path),
		ports.Int("width", wm.Image.Bounds().Dx()),
		ports.Int("height", wm.Image.Bounds().Dy()),
	)

	return &Stamper{config: cfg, watermark: wm, driver: driver, logger: o.logger}, nil
}

// Run stamps the directory once and returns the report.
//
// A non-nil error means the batch did not complete: the directory could not
// be listed, ErrAborted under FailFast, or ErrContextCanceled. Per-file
// failures without FailFast are only visible in the report (see Report.OK).
func (s *Stamper) Run(ctx context.Context) (Report, error) {
	return s.driver.Run(ctx)
}

// OutputDir returns the folder results are written to.
func (s *Stamper) OutputDir() string {
	return filepath.Join(s.config.Dir, s.config.OutputDirName)
}

// Config returns the effective configuration after defaults.
func (s *Stamper) Config() Config {
	return s.config
}
