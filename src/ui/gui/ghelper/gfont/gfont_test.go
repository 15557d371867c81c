package gfont

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	for name, face := range map[string]font.Face{"small": f.Small, "normal": f.Normal, "bold": f.Bold, "mono": f.Mono} {
		if face == nil {
			t.Fatalf("%s face is nil", name)
		}
		if face.Metrics().Height <= 0 {
			t.Errorf("%s face has no height", name)
		}
	}
	a, _ := f.Mono.GlyphAdvance('1')
	b, _ := f.Mono.GlyphAdvance('8')
	if a != b {
		t.Errorf("mono digits differ in width: %v %v", a, b)
	}
}
