package render

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// Format is a raster encoding.
type Format = imaging.Format

// Supported raster formats.
const (
	PNG  = imaging.PNG
	JPEG = imaging.JPEG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// JPEGQuality is used for JPEG output.
const JPEGQuality = 95

// RasterExtensions lists the file extensions [FormatFromPath] accepts.
var RasterExtensions = []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp"}

// FormatFromPath returns the raster format for the extension of path.
func FormatFromPath(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported image extension %q (use one of %s)", filepath.Ext(path), strings.Join(RasterExtensions, ", "))
	}
	return f, nil
}

// FormatFromName parses a format name such as "png" or "jpg".
func FormatFromName(name string) (Format, error) {
	return FormatFromPath("image." + strings.ToLower(name))
}

// IsRaster reports whether name is a raster format name.
func IsRaster(name string) bool {
	_, err := FormatFromName(name)
	return err == nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return errors.Wrap(errors.ErrCodeRenderBackend, err, "encode %s", format)
	}
	return nil
}
