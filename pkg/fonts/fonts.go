// Package fonts provides the label font for raster and SVG output.
//
// Labels use Go Regular, which ships inside golang.org/x/image, so rendering
// never depends on fonts installed on the host.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name used in SVG output.
const FontFamily = "Go Regular"

// FallbackFontFamily lists system fonts tried when the embedded face is
// unavailable to the SVG viewer.
const FallbackFontFamily = `'Go Regular', 'Segoe UI', 'Helvetica Neue', Arial, sans-serif`

var (
	parsed    *truetype.Font
	parseErr  error
	parseOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse go regular: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// Face returns a new face of Go Regular at size points (72 DPI, so one
// point is one pixel). The parsed font is shared, but a face keeps glyph
// buffers and is not safe for concurrent use, so every call gets its own.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %g must be positive", size)
	}
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// TTFBase64 returns the font file base64-encoded for an SVG @font-face rule.
// The result is computed once.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}
