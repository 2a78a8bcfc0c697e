package fonts

import (
	"encoding/base64"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestFace(t *testing.T) {
	tests := []struct {
		name    string
		size    float64
		wantErr bool
	}{
		{"label size", 24, false},
		{"small", 8, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := Face(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Face(%g) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if face.Metrics().Height <= 0 {
				t.Errorf("Face(%g) has non-positive line height", tt.size)
			}
		})
	}
}

func TestFaceNotShared(t *testing.T) {
	a, err := Face(24)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Face(24)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("Face(24) returned the same face twice; faces are not safe to share")
	}
}

func TestFaceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			face, err := Face(24)
			if err != nil {
				t.Error(err)
				return
			}
			for _, r := range "Feature 2" {
				face.GlyphAdvance(r)
				face.Glyph(fixed.P(0, 24), r)
			}
		}()
	}
	wg.Wait()
}

func TestTTFBase64(t *testing.T) {
	decoded, err := base64.StdEncoding.DecodeString(TTFBase64())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(goregular.TTF) {
		t.Errorf("decoded %d bytes, want %d", len(decoded), len(goregular.TTF))
	}
}
