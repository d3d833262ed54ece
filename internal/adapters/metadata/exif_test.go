package metadata

import (
	"image/color"
	"testing"

	"github.com/bft-labs/logostamp/internal/domain"
	"github.com/bft-labs/logostamp/internal/testutil"
)

func TestExifReader_Read(t *testing.T) {
	base := testutil.Solid(40, 20, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	tests := []struct {
		name string
		data []byte
		want domain.Metadata
	}{
		{
			name: "jpeg without exif",
			data: testutil.JPEG(t, base, nil),
			want: domain.Metadata{},
		},
		{
			name: "png",
			data: testutil.PNG(t, base),
			want: domain.Metadata{},
		},
		{
			name: "garbage",
			data: []byte("not an image at all"),
			want: domain.Metadata{},
		},
		{
			name: "orientation 6",
			data: testutil.JPEG(t, base, testutil.ExifSegment(testutil.Exif{Orientation: 6})),
			want: domain.Metadata{Orientation: domain.OrientationRotate90CW, HasOrientation: true},
		},
		{
			name: "orientation 1 with dimensions",
			data: testutil.JPEG(t, base, testutil.ExifSegment(testutil.Exif{Orientation: 1, PixelWidth: 40, PixelHeight: 20})),
			want: domain.Metadata{Orientation: domain.OrientationNormal, HasOrientation: true, PixelWidth: 40, PixelHeight: 20},
		},
		{
			name: "malformed orientation",
			data: testutil.JPEG(t, base, testutil.ExifSegment(testutil.Exif{Orientation: 42})),
			want: domain.Metadata{Orientation: domain.OrientationNormal, HasOrientation: true},
		},
		{
			name: "dimensions only",
			data: testutil.JPEG(t, base, testutil.ExifSegment(testutil.Exif{PixelWidth: 20, PixelHeight: 40})),
			want: domain.Metadata{PixelWidth: 20, PixelHeight: 40},
		},
	}

	r := NewExifReader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Read(tt.data); got != tt.want {
				t.Errorf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
