package samples

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/kovidgoyal/wallpaper"
)

var _ = fmt.Print

var black = color.NRGBA{0, 0, 0, 0xff}

func TestStandardSpecs(t *testing.T) {
	specs := Standard()
	if len(specs) != 9 {
		t.Fatalf("unexpected number of standard specs: %d", len(specs))
	}
	names := map[string]bool{}
	keys := map[uint64]bool{}
	for _, s := range specs {
		if s.Width < 1 || s.Height < 1 {
			t.Fatalf("spec %s has degenerate dimensions %dx%d", s.Name, s.Width, s.Height)
		}
		if names[s.Name] {
			t.Fatalf("duplicate spec name: %s", s.Name)
		}
		names[s.Name] = true
		if key := s.CacheKey(); keys[key] {
			t.Fatalf("cache key collision for spec %s", s.Name)
		} else {
			keys[key] = true
		}
	}
}

func TestRenderGeometry(t *testing.T) {
	spec := Spec{"test", 512, 512, blue}
	img, err := Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("unexpected dimensions: %dx%d", b.Dx(), b.Dy())
	}
	// corners lie outside both circle and border
	for _, p := range [][2]int{{0, 0}, {511, 0}, {0, 511}, {511, 511}} {
		if actual := img.NRGBAAt(p[0], p[1]); actual != blue {
			t.Fatalf("corner (%d, %d) is %v instead of the background color", p[0], p[1], actual)
		}
	}
	// the border path runs at 10% of the short side: (51, 256) is on it
	if actual := img.NRGBAAt(51, 256); actual != black {
		t.Fatalf("border pixel is %v", actual)
	}
	// the circle has radius 512/2.5 around the center: (460, 256) is on it
	if actual := img.NRGBAAt(460, 256); actual != black {
		t.Fatalf("circle pixel is %v", actual)
	}
}

func TestRenderNonSquare(t *testing.T) {
	img, err := Render(Spec{"test", 512, 256, green})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 512 || b.Dy() != 256 {
		t.Fatalf("unexpected dimensions: %dx%d", b.Dx(), b.Dy())
	}
	if actual := img.NRGBAAt(0, 0); actual != green {
		t.Fatalf("corner is %v instead of the background color", actual)
	}
	// geometry is sized by the short side: border inset 25.6, circle
	// radius 102.4 around (255.5, 127.5)
	if actual := img.NRGBAAt(26, 128); actual != black {
		t.Fatalf("border pixel is %v", actual)
	}
	if actual := img.NRGBAAt(255, 25); actual != black {
		t.Fatalf("circle pixel is %v", actual)
	}
}

func TestRenderLabel(t *testing.T) {
	spec := Spec{"test", 512, 512, blue}
	img, err := Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	// the resolution label is drawn in a band around the center, look for
	// ink that belongs to neither the circle nor the border
	w, h := 512.0, 512.0
	size := 512.0
	stroke := size * 3 / 100
	radius := size / 2.5
	inset := size * 0.1
	cx, cy := (w-1)/2, (h-1)/2
	found := false
	for y := 192; y < 320 && !found; y++ {
		for x := 0; x < 512; x++ {
			fx, fy := float64(x), float64(y)
			if on_circle(fx, fy, cx, cy, radius, stroke) || on_border(fx, fy, w, h, inset, stroke) {
				continue
			}
			if img.NRGBAAt(x, y) == black {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("no label ink found in the center band")
	}
}

func TestRenderInvalid(t *testing.T) {
	for _, spec := range []Spec{{"w", 0, 10, blue}, {"h", 10, 0, blue}, {"n", -3, 10, blue}} {
		if _, err := Render(spec); !errors.Is(err, wallpaper.ErrInvalidDimension) {
			t.Fatalf("spec %s did not report invalid dimensions: %v", spec.Name, err)
		}
	}
}
