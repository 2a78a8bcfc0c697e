package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

func TestMap(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name           string
		commit, branch int
		want           Point
	}{
		{"origin", 0, 0, Point{230, 50}},
		{"first cell", 1, 0, Point{380, 50}},
		{"second row", 2, 1, Point{530, 150}},
		{"far corner", 12, 5, Point{2030, 550}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Map(tt.commit, tt.branch); got != tt.want {
				t.Errorf("Map(%d, %d) = %v, want %v", tt.commit, tt.branch, got, tt.want)
			}
		})
	}
}

func TestMapFormula(t *testing.T) {
	cfg := Config{CellWidth: 70, CellHeight: 30, MarginLeft: 11, MarginY: 7}
	for c := 0; c < 20; c++ {
		for b := 0; b < 8; b++ {
			want := Point{X: float64(c*70 + 11), Y: float64(b*30 + 7)}
			if got := cfg.Map(c, b); got != want {
				t.Fatalf("Map(%d, %d) = %v, want %v", c, b, got, want)
			}
			if cfg.Map(c, b) != cfg.Map(c, b) {
				t.Fatalf("Map(%d, %d) not deterministic", c, b)
			}
		}
	}
}

func TestCanvas(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name       string
		branches   int
		wantWidth  int
		wantHeight int
	}{
		{"single branch", 1, 2280, 100},
		{"two branches", 2, 2280, 200},
		{"six branches", 6, 2280, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := cfg.Canvas(tt.branches)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Canvas(%d) = %dx%d, want %dx%d", tt.branches, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestRadii(t *testing.T) {
	cfg := Default()
	if !(cfg.NodeRadius < cfg.BorderRadius() && cfg.BorderRadius() < cfg.Clearance()) {
		t.Errorf("radii not nested: node %g, border %g, cutout %g", cfg.NodeRadius, cfg.BorderRadius(), cfg.Clearance())
	}
	if cfg.Clearance() != 25 {
		t.Errorf("Clearance() = %g, want 25", cfg.Clearance())
	}
}

func TestValidateNestedRadii(t *testing.T) {
	tests := []struct {
		name   string
		border float64
		offset float64
	}{
		{"no border", 0, 4},
		{"no offset", 3, 0},
		{"flat", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.NodeBorder, cfg.NodeOffset = tt.border, tt.offset
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestFit(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name      string
		maxCommit int
		wantErr   bool
	}{
		{"no commits", -1, false},
		{"first slot", 0, false},
		{"last fitting slot", 13, false},
		{"overflow", 14, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.Fit(tt.maxCommit)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fit(%d) error = %v, wantErr %v", tt.maxCommit, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Fit(%d) code = %v", tt.maxCommit, errors.GetCode(err))
			}
		})
	}
}

func TestFitTo(t *testing.T) {
	t.Run("fixed width unchanged", func(t *testing.T) {
		cfg := Default()
		if got := cfg.FitTo(40); got.DiagramWidth != DefaultDiagramWidth {
			t.Errorf("DiagramWidth = %g, want %d", got.DiagramWidth, DefaultDiagramWidth)
		}
	})

	t.Run("auto width grows", func(t *testing.T) {
		cfg := Default()
		cfg.AutoWidth = true
		got := cfg.FitTo(20)
		if got.DiagramWidth != 21*DefaultCellWidth {
			t.Errorf("DiagramWidth = %g, want %d", got.DiagramWidth, 21*DefaultCellWidth)
		}
		if err := got.Fit(20); err != nil {
			t.Errorf("Fit after FitTo: %v", err)
		}
		if cfg.DiagramWidth != DefaultDiagramWidth {
			t.Error("FitTo must not modify the receiver")
		}
	})

	t.Run("auto width never shrinks", func(t *testing.T) {
		cfg := Default()
		cfg.AutoWidth = true
		if got := cfg.FitTo(2); got.DiagramWidth != DefaultDiagramWidth {
			t.Errorf("DiagramWidth = %g, want %d", got.DiagramWidth, DefaultDiagramWidth)
		}
	})
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader("cell_width = 120\ncorner_radius = 30.5\nauto_width = true\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.CellWidth != 120 {
		t.Errorf("CellWidth = %g, want 120", cfg.CellWidth)
	}
	if cfg.CornerRadius != 30.5 {
		t.Errorf("CornerRadius = %g, want 30.5", cfg.CornerRadius)
	}
	if !cfg.AutoWidth {
		t.Error("AutoWidth = false, want true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.CellHeight != DefaultCellHeight || cfg.MarginLeft != DefaultMarginLeft {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "cell_width = = 3"},
		{"unknown key", "cel_width = 3"},
		{"zero cell", "cell_width = 0"},
		{"negative margin", "margin_y = -1"},
		{"zero border", "node_border = 0"},
		{"zero offset", "node_offset = 0"},
		{"flat node", "node_border = 0\nnode_offset = 0"},
		{"wrong type", `arrow_size = "big"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.ArrowSize = 12
	cfg.AutoWidth = true

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("arrow_size = 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ArrowSize != 14 {
		t.Errorf("ArrowSize = %g, want 14", cfg.ArrowSize)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
