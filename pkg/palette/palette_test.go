package palette

import (
	"fmt"
	"image/color"
	"testing"
)

func TestFor(t *testing.T) {
	tests := []struct {
		branch int
		fill   color.RGBA
		border color.RGBA
	}{
		{0, rgb(27, 161, 226), rgb(0, 110, 175)},
		{1, rgb(216, 0, 115), rgb(165, 0, 64)},
		{2, rgb(96, 169, 23), rgb(45, 118, 0)},
		{3, rgb(240, 163, 10), rgb(189, 112, 0)},
		{4, rgb(227, 200, 0), rgb(176, 149, 0)},
		{5, rgb(227, 200, 0), rgb(176, 149, 0)},
		{-1, rgb(227, 200, 0), rgb(176, 149, 0)},
		{1 << 20, rgb(227, 200, 0), rgb(176, 149, 0)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.branch), func(t *testing.T) {
			if got := Fill(tt.branch); got != tt.fill {
				t.Errorf("Fill(%d) = %v, want %v", tt.branch, got, tt.fill)
			}
			if got := Border(tt.branch); got != tt.border {
				t.Errorf("Border(%d) = %v, want %v", tt.branch, got, tt.border)
			}
			if got := For(tt.branch); got.Fill != tt.fill || got.Border != tt.border {
				t.Errorf("For(%d) = %+v", tt.branch, got)
			}
		})
	}
}

func TestFallbackDistinct(t *testing.T) {
	for i := 0; i < len(table); i++ {
		if For(i) == Fallback {
			t.Errorf("branch %d uses the fallback pair", i)
		}
		for j := i + 1; j < len(table); j++ {
			if For(i) == For(j) {
				t.Errorf("branches %d and %d share colours", i, j)
			}
		}
	}
}

func TestOpaque(t *testing.T) {
	for i := -1; i <= len(table); i++ {
		p := For(i)
		if p.Fill.A != 0xff || p.Border.A != 0xff {
			t.Errorf("branch %d: colours not opaque: %+v", i, p)
		}
	}
}

func ExampleHex() {
	fmt.Println(Hex(Fill(0)))
	fmt.Println(Hex(Border(7)))
	fmt.Println(Hex(Background))
	// Output:
	// #1ba1e2
	// #b09500
	// #18141d
}
