package sink

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/layout"
	"github.com/matzehuels/gitdiagram/pkg/palette"
)

func renderExample(t *testing.T, opts ...RasterOption) image.Image {
	t.Helper()
	s, err := Compose(diagram.Example(), layout.Default())
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	img, err := RenderRaster(s, opts...)
	if err != nil {
		t.Fatalf("RenderRaster() error: %v", err)
	}
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderRasterSize(t *testing.T) {
	tests := []struct {
		name  string
		opts  []RasterOption
		wantW int
		wantH int
	}{
		{"default", nil, 2280, 600},
		{"scale 2", []RasterOption{WithScale(2)}, 4560, 1200},
		{"non-positive scale ignored", []RasterOption{WithScale(0)}, 2280, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := renderExample(t, tt.opts...).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderRasterPixels(t *testing.T) {
	img := renderExample(t)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background corner", 0, 0, palette.Background},
		{"node fill", 530, 150, palette.Fill(1)},
		{"node border ring", 530, 169, palette.Border(1)},
		{"cutout masks guide", 553, 150, palette.Background},
		{"cutout below node", 530, 173, palette.Background},
		{"release node", 680, 250, palette.Fill(2)},
		{"guide dash", 233, 50, palette.Fill(0)},
		{"guide gap", 242, 50, palette.Background},
		{"arrowhead", 800, 150, palette.Link},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbaAt(img, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderRasterNoLabels(t *testing.T) {
	cfg := layout.Default()
	cfg.LabelSize = 0
	s, err := Compose(diagram.Example(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	img, err := RenderRaster(s)
	if err != nil {
		t.Fatalf("RenderRaster() error: %v", err)
	}
	for x := 0; x < 230; x++ {
		if got := rgbaAt(img, x, 50); got != palette.Background {
			t.Fatalf("pixel (%d,50) = %v, want background with labels off", x, got)
		}
	}
}

func TestRenderRasterLabels(t *testing.T) {
	img := renderExample(t)
	// Some label pixel must differ from the background left of the guides.
	found := false
	for y := 38; y <= 62 && !found; y++ {
		for x := 100; x < 210; x++ {
			if rgbaAt(img, x, y) != palette.Background {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label drawn left of the Master guide")
	}
}

func TestRenderRasterConcurrent(t *testing.T) {
	s, err := Compose(diagram.Example(), layout.Default())
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	want, err := RenderRaster(s)
	if err != nil {
		t.Fatalf("RenderRaster() error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := RenderRaster(s)
			if err != nil {
				t.Errorf("RenderRaster() error: %v", err)
				return
			}
			if rgbaAt(img, 150, 50) != rgbaAt(want, 150, 50) || img.Bounds() != want.Bounds() {
				t.Error("concurrent render differs from a sequential one")
			}
		}()
	}
	wg.Wait()
}

func TestRenderRasterTooLarge(t *testing.T) {
	s, err := Compose(diagram.Example(), layout.Default())
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if _, err := RenderRaster(s, WithScale(1000)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("RenderRaster(scale 1000) error = %v, want INVALID_CONFIG", err)
	}
}
