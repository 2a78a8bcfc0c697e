package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"git_diagram.png", PNG, false},
		{"out/diagram.JPG", JPEG, false},
		{"diagram.jpeg", JPEG, false},
		{"diagram.gif", GIF, false},
		{"diagram.tiff", TIFF, false},
		{"diagram.bmp", BMP, false},
		{"diagram.svg", 0, true},
		{"diagram", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsRaster(t *testing.T) {
	for name, want := range map[string]bool{"png": true, "JPG": true, "svg": false, "dot": false, "": false} {
		if got := IsRaster(name); got != want {
			t.Errorf("IsRaster(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 24, G: 20, B: 29, A: 255})

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if r, g, b, _ := got.At(1, 1).RGBA(); r>>8 != 24 || g>>8 != 20 || b>>8 != 29 {
		t.Errorf("pixel = %d,%d,%d, want 24,20,29", r>>8, g>>8, b>>8)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := Encode(&bytes.Buffer{}, img, Format(99))
	if !errors.Is(err, errors.ErrCodeRenderBackend) {
		t.Errorf("Encode() error = %v, want RENDER_BACKEND", err)
	}
}
