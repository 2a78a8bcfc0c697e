package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/gitdiagram/pkg/io"
	"github.com/matzehuels/gitdiagram/pkg/observability"
	"github.com/matzehuels/gitdiagram/pkg/render"
)

// OutputPath returns the file an artifact of format is written to.
//
// A known format extension on output is replaced by format, so
// "diagram.png" becomes "diagram.svg" for SVG. An empty output means
// [DefaultOutput].
func OutputPath(output, format string) string {
	if output == "" {
		output = DefaultOutput
	}
	ext := filepath.Ext(output)
	name := strings.ToLower(strings.TrimPrefix(ext, "."))
	if name == format {
		return output
	}
	if knownExtension(name) {
		output = strings.TrimSuffix(output, ext)
	}
	return output + "." + format
}

func knownExtension(name string) bool {
	switch name {
	case FormatSVG, FormatJSON, FormatDOT:
		return true
	}
	return render.IsRaster(name)
}

// Write stores every artifact of result next to output and returns the
// written paths in artifact order. Each file is replaced atomically.
func (r *Runner) Write(ctx context.Context, result *Result, output string) ([]string, error) {
	hooks := observability.Output()
	paths := make([]string, 0, len(result.Artifacts))

	for _, a := range result.Artifacts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		path := OutputPath(output, a.Format)
		start := time.Now()
		err := io.WriteFile(path, a.Data)
		hooks.OnWrite(ctx, path, len(a.Data), time.Since(start), err)
		if err != nil {
			return paths, err
		}

		r.Logger.Debug("wrote artifact", "path", path, "bytes", len(a.Data))
		paths = append(paths, path)
	}
	return paths, nil
}
