// Package logostamp stamps a watermark onto every image of a directory.
//
// It can be used through the logostamp CLI or embedded as a library:
//
//	cfg := logostamp.DefaultConfig()
//	cfg.Dir = "/photos/2024-05"
//	cfg.WatermarkPath = "/srv/marks/logo.png"
//
//	s, err := logostamp.New(cfg, logostamp.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := s.Run(ctx)
//
// # Placement
//
// The watermark is scaled to 30% of the image width, or 50% when the EXIF
// orientation marks the photo as rotated, keeping its aspect ratio. It sits
// in the bottom-right corner with a margin of [Config.Margin] times the
// image width from both edges. Images are normalized to their display
// orientation before placement and rotated back afterwards, so the stored
// orientation and EXIF stay valid.
//
// # Output
//
// Results go to [Config.OutputDirName] inside the source directory under the
// original file names and formats. JPEG output carries the configured quality
// and a JFIF density; PNG output carries a pHYs chunk.
//
// # Failures
//
// A file that cannot be decoded or encoded is recorded in the [Report] and
// the batch continues, unless [Config.FailFast] is set. Cancellation is
// checked between files.
package logostamp
