package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/render"
	"github.com/matzehuels/gitdiagram/pkg/render/nodelink"
	"github.com/matzehuels/gitdiagram/pkg/render/sink"
)

// renderGraph draws the grid view. The raster image is drawn once and
// encoded for every raster format.
func renderGraph(scene *sink.Scene, opts Options) ([]Artifact, error) {
	var img image.Image
	artifacts := make([]Artifact, 0, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			var svgOpts []sink.SVGOption
			if opts.EmbedFont {
				svgOpts = append(svgOpts, sink.WithEmbeddedFont())
			}
			data = sink.RenderSVG(scene, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(scene)
		default:
			if img == nil {
				img, err = sink.RenderRaster(scene, sink.WithScale(opts.Scale))
				if err != nil {
					return nil, err
				}
			}
			data, err = encodeRaster(img, format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts = append(artifacts, Artifact{Format: format, Data: data})
	}
	return artifacts, nil
}

// renderNodelink renders Graphviz output. Graphviz produces PNG; other
// raster formats are re-encoded from it.
func renderNodelink(ctx context.Context, dot string, opts Options) ([]Artifact, error) {
	var pngData []byte
	artifacts := make([]Artifact, 0, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		default:
			if pngData == nil {
				pngData, err = nodelink.RenderPNG(ctx, dot)
				if err != nil {
					return nil, err
				}
			}
			data, err = reencode(pngData, format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts = append(artifacts, Artifact{Format: format, Data: data})
	}
	return artifacts, nil
}

func encodeRaster(img image.Image, name string) ([]byte, error) {
	format, err := render.FormatFromName(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reencode(pngData []byte, name string) ([]byte, error) {
	if format, err := render.FormatFromName(name); err == nil && format == render.PNG {
		return pngData, nil
	}
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "decode graphviz png")
	}
	return encodeRaster(img, name)
}
