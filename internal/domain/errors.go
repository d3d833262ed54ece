package domain

import "errors"

// Domain errors represent error conditions in the logostamp domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("logostamp: invalid configuration")

	// ErrUnknownWatermark is returned when the requested watermark name is not
	// present in the lookup table. It is fatal and raised before any file is processed.
	ErrUnknownWatermark = errors.New("logostamp: unknown watermark")

	// ErrWatermarkUnreadable is returned when the watermark image cannot be loaded.
	ErrWatermarkUnreadable = errors.New("logostamp: watermark image unreadable")

	// ErrOutputDir is returned when the output directory cannot be created.
	// The batch continues; writes into the directory may fail later.
	ErrOutputDir = errors.New("logostamp: output directory")

	// ErrDecode is returned when a source file is not a decodable image.
	ErrDecode = errors.New("logostamp: decode failed")

	// ErrEncode is returned when the output image cannot be encoded or written.
	ErrEncode = errors.New("logostamp: encode failed")

	// ErrAborted is returned when the fail-fast policy stops a batch.
	ErrAborted = errors.New("logostamp: batch aborted")

	// ErrContextCanceled is returned when the run context is canceled between files.
	ErrContextCanceled = errors.New("logostamp: context canceled")
)
