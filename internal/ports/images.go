package ports

import (
	"context"
	"image"

	"github.com/bft-labs/logostamp/internal/domain"
)

// ImageSource enumerates and reads the files a batch should process.
type ImageSource interface {
	// List returns the names (not paths) of regular files directly inside the
	// target directory whose extension is supported. It never opens them.
	// A missing directory is an error.
	List(ctx context.Context) ([]string, error)

	// Read returns the bytes of a listed file.
	Read(name string) ([]byte, error)
}

// MetadataReader extracts orientation facts from encoded image bytes.
type MetadataReader interface {
	// Read never fails: unreadable or absent metadata yields a zero Metadata.
	Read(data []byte) domain.Metadata
}

// ImageCodec converts between encoded bytes and pixels.
type ImageCodec interface {
	// Decode returns the image and its container format name ("jpeg", "png", "gif").
	Decode(data []byte) (image.Image, string, error)

	// Encode writes img in the given container format. src is the original
	// encoded file; implementations may carry metadata over from it.
	Encode(img image.Image, format string, src []byte) ([]byte, error)
}

// OutputStore owns the output folder.
type OutputStore interface {
	// Prepare creates the output folder. An existing folder is reported with
	// domain.ErrOutputDir wrapping fs.ErrExist so the caller can tell it apart.
	Prepare(ctx context.Context) error

	// Write stores an output file under the same name as its source.
	Write(name string, data []byte) error

	// Dir returns the output folder path.
	Dir() string
}
