package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/bft-labs/logostamp/internal/domain"
	"github.com/bft-labs/logostamp/internal/ports"
)

// DriverConfig contains configuration for the batch loop.
type DriverConfig struct {
	Dir    string
	Policy domain.FailurePolicy
}

// FileEventEmitter is called after each file finishes, successfully or not.
type FileEventEmitter interface {
	OnFileDone(index, total int, result domain.FileResult)
}

// Driver runs one batch: prepare the output folder, enumerate images, and
// stamp them one at a time.
type Driver struct {
	config     DriverConfig
	source     ports.ImageSource
	output     ports.OutputStore
	codec      ports.ImageCodec
	meta       ports.MetadataReader
	compositor *Compositor
	watermark  *Watermark
	reports    ports.ReportRepository
	logger     ports.Logger
	emitter    FileEventEmitter
}

// NewDriver creates a driver with the given dependencies.
// reports and emitter may be nil.
func NewDriver(
	config DriverConfig,
	source ports.ImageSource,
	output ports.OutputStore,
	codec ports.ImageCodec,
	meta ports.MetadataReader,
	compositor *Compositor,
	watermark *Watermark,
	reports ports.ReportRepository,
	logger ports.Logger,
	emitter FileEventEmitter,
) *Driver {
	return &Driver{
		config:     config,
		source:     source,
		output:     output,
		codec:      codec,
		meta:       meta,
		compositor: compositor,
		watermark:  watermark,
		reports:    reports,
		logger:     logger,
		emitter:    emitter,
	}
}

// Run processes every supported file in the directory sequentially.
//
// Per-file decode and encode failures are recorded in the report. Under
// PolicySkip the batch continues; under PolicyAbort it stops and Run returns
// ErrAborted. Cancellation is honoured between files only, so an output file
// is never left half-written. A directory without images is not an error.
func (d *Driver) Run(ctx context.Context) (domain.Report, error) {
	start := time.Now()
	report := domain.Report{
		Dir:       d.config.Dir,
		OutputDir: d.output.Dir(),
		Watermark: d.watermark.Name,
		Policy:    d.config.Policy.String(),
		StartedAt: start,
	}

	if err := d.output.Prepare(ctx); err != nil {
		if errors.Is(err, fs.ErrExist) {
			d.logger.Warn("output directory already exists", ports.String("dir", d.output.Dir()))
		} else {
			d.logger.Error("failed to create output directory", ports.String("dir", d.output.Dir()), ports.Err(err))
		}
	}

	names, err := d.source.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.Canceled = true
			d.logger.Warn("batch canceled", ports.String("dir", d.config.Dir))
			return report, fmt.Errorf("%w: list %s: %w", domain.ErrContextCanceled, d.config.Dir, ctxErr)
		}
		return report, fmt.Errorf("list %s: %w", d.config.Dir, err)
	}
	report.Total = len(names)

	if report.Empty() {
		d.logger.Info("no images found", ports.String("dir", d.config.Dir))
	}

	var runErr error
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			report.Canceled = true
			d.logger.Warn("batch canceled",
				ports.Int("done", i),
				ports.Int("total", report.Total),
			)
			runErr = fmt.Errorf("%w: %w", domain.ErrContextCanceled, err)
			break
		}

		fileLog := d.logger.With(
			ports.File(name),
			ports.Progress(i, report.Total),
		)

		res := d.processFile(name, fileLog)
		report.Add(res)
		if d.emitter != nil {
			d.emitter.OnFileDone(i, report.Total, res)
		}

		if res.Status == domain.StatusFailed {
			fileLog.Error("file failed", ports.String("error", res.Error))
			if d.config.Policy == domain.PolicyAbort {
				report.Aborted = true
				runErr = fmt.Errorf("%w: %s: %s", domain.ErrAborted, name, res.Error)
				break
			}
			continue
		}

		fileLog.Info("processed",
			ports.String("format", res.Format),
			ports.Bool("rotated", res.Rotated),
			ports.Duration("took", res.Duration),
		)
	}

	report.Elapsed = time.Since(start)
	d.summarize(&report)

	if d.reports != nil {
		if err := d.reports.Save(ctx, report); err != nil {
			d.logger.Error("failed to save report", ports.String("path", d.reports.Path()), ports.Err(err))
		} else {
			d.logger.Info("report saved", ports.String("path", d.reports.Path()))
		}
	}

	return report, runErr
}

// processFile runs decode, stamp and encode for one file.
func (d *Driver) processFile(name string, logger ports.Logger) domain.FileResult {
	start := time.Now()
	res := domain.FileResult{Name: name, Status: domain.StatusFailed}
	fail := func(err error) domain.FileResult {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	data, err := d.source.Read(name)
	if err != nil {
		return fail(fmt.Errorf("%w: read: %w", domain.ErrDecode, err))
	}

	img, format, err := d.codec.Decode(data)
	if err != nil {
		return fail(err)
	}
	res.Format = format

	md := d.meta.Read(data)
	comp := d.compositor.Apply(img, md, d.watermark.Image)
	res.Rotated = comp.Resolution.Rotated
	plan := comp.Plan
	res.Plan = &plan

	logger.Debug("placement",
		ports.String("orientation", comp.Resolution.Source),
		ports.String("transform", comp.Resolution.Transform.String()),
		ports.Int("width", plan.ScaledWidth),
		ports.Int("height", plan.ScaledHeight),
		ports.Int("x", plan.XOffset),
		ports.Int("y", plan.YOffset),
	)
	if comp.Skipped {
		res.Skipped = true
		logger.Warn("image too small for watermark, written unchanged",
			ports.Int("width", plan.EffectiveWidth),
			ports.Int("height", plan.EffectiveHeight),
		)
	} else if plan.Clipped() {
		logger.Warn("watermark extends past the image edge and was clipped")
	}

	out, err := d.codec.Encode(comp.Image, format, data)
	if err != nil {
		return fail(err)
	}
	if err := d.output.Write(name, out); err != nil {
		return fail(fmt.Errorf("%w: write: %w", domain.ErrEncode, err))
	}

	res.Status = domain.StatusProcessed
	res.Duration = time.Since(start)
	return res
}

// summarize logs the end-of-run totals and every failure.
func (d *Driver) summarize(report *domain.Report) {
	fields := []ports.Field{
		ports.Int("total", report.Total),
		ports.Int("processed", report.Processed),
		ports.Int("failed", report.Failed),
		ports.Duration("elapsed", report.Elapsed),
		ports.String("output", report.OutputDir),
	}
	if report.Failed > 0 {
		d.logger.Warn("batch finished with failures", fields...)
		for _, f := range report.Failures() {
			d.logger.Warn("failed file", ports.File(f.Name), ports.String("error", f.Error))
		}
		return
	}
	d.logger.Info("batch finished", fields...)
}
