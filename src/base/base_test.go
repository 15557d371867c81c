package base

import "testing"

func TestOpposite(t *testing.T) {
	want := map[Direction]Direction{North: South, East: West, South: North, West: East}
	for d, o := range want {
		if got := d.Opposite(); got != o {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, o)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is not identity", d)
		}
		dc, dr := d.Offset()
		oc, or := o.Offset()
		if dc != -oc || dr != -or {
			t.Errorf("%v offset (%d,%d) is not the negation of %v offset (%d,%d)", d, dc, dr, o, oc, or)
		}
	}
}

func TestPackPixel(t *testing.T) {
	if p := PackPixel(10, 20, 30, 0); p != Transparent {
		t.Errorf("zero alpha packed to %#x, want Transparent", uint32(p))
	}
	p := PackPixel(0, 0, 0, 255)
	if !p.Opaque() {
		t.Fatalf("opaque black reported as transparent")
	}
	r, g, b, a := PackPixel(1, 2, 3, 4).RGBA()
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("RGBA() = %d,%d,%d,%d, want 1,2,3,4", r, g, b, a)
	}
}
