// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package images

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

var test_gray = color.NRGBA{0x88, 0x88, 0x88, 0xff}
var test_red = color.NRGBA{0xff, 0x00, 0x00, 0xff}

func solid_nrgba(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func count_pixels(img *image.NRGBA, c color.NRGBA) int {
	count := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				count++
			}
		}
	}
	return count
}

func TestPasteClipping(t *testing.T) {
	ctx := Context{}
	foreground := solid_nrgba(2, 2, test_red)
	for _, q := range []struct {
		pos      image.Point
		expected int
		visible  image.Point
	}{
		{image.Pt(0, 0), 4, image.Pt(0, 0)},
		{image.Pt(-1, -1), 1, image.Pt(0, 0)},
		{image.Pt(2, 2), 1, image.Pt(2, 2)},
		{image.Pt(2, -1), 1, image.Pt(2, 0)},
	} {
		background := solid_nrgba(3, 3, test_gray)
		ctx.Paste(background, foreground, q.pos)
		if count := count_pixels(background, test_red); count != q.expected {
			t.Fatalf("paste at %v left %d foreground pixels instead of %d", q.pos, count, q.expected)
		}
		if actual := background.NRGBAAt(q.visible.X, q.visible.Y); actual != test_red {
			t.Fatalf("paste at %v: pixel at %v is %v", q.pos, q.visible, actual)
		}
	}

	// fully off canvas is a no-op
	background := solid_nrgba(3, 3, test_gray)
	ctx.Paste(background, foreground, image.Pt(5, 5))
	ctx.Paste(background, foreground, image.Pt(-2, -2))
	if count := count_pixels(background, test_gray); count != 9 {
		t.Fatalf("off canvas paste modified the background, %d pixels left", count)
	}
}

func TestPasteSourceKinds(t *testing.T) {
	ctx := Context{}

	background := solid_nrgba(2, 1, test_gray)
	gray_src := image.NewGray(image.Rect(0, 0, 1, 1))
	gray_src.Pix[0] = 100
	ctx.Paste(background, gray_src, image.Pt(0, 0))
	if actual := background.NRGBAAt(0, 0); actual != (color.NRGBA{100, 100, 100, 0xff}) {
		t.Fatalf("gray source pasted as %v", actual)
	}

	// alpha premultiplication is undone when scanning RGBA sources
	background = solid_nrgba(1, 1, test_gray)
	rgba_src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(rgba_src.Pix, []uint8{128, 0, 0, 128})
	ctx.Paste(background, rgba_src, image.Pt(0, 0))
	if actual := background.NRGBAAt(0, 0); actual != (color.NRGBA{255, 0, 0, 128}) {
		t.Fatalf("rgba source pasted as %v", actual)
	}

	background = solid_nrgba(2, 2, test_gray)
	paletted_src := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{test_red, color.NRGBA{0, 0, 255, 255}})
	paletted_src.Pix[3] = 1
	ctx.Paste(background, paletted_src, image.Pt(0, 0))
	if actual := background.NRGBAAt(0, 0); actual != test_red {
		t.Fatalf("paletted source pasted as %v", actual)
	}
	if actual := background.NRGBAAt(1, 1); actual != (color.NRGBA{0, 0, 255, 255}) {
		t.Fatalf("paletted source pasted as %v", actual)
	}

	// anything else goes through the generic color model scanner
	background = solid_nrgba(1, 1, test_gray)
	generic_src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	copy(generic_src.Pix, []uint8{0xff, 0xff, 0, 0, 0, 0, 0xff, 0xff})
	ctx.Paste(background, generic_src, image.Pt(0, 0))
	if actual := background.NRGBAAt(0, 0); actual != test_red {
		t.Fatalf("generic source pasted as %v", actual)
	}
}

func TestPasteCenter(t *testing.T) {
	ctx := Context{}
	background := solid_nrgba(5, 5, test_gray)
	ctx.PasteCenter(background, solid_nrgba(1, 1, test_red))
	expected := solid_nrgba(5, 5, test_gray)
	expected.SetNRGBA(2, 2, test_red)
	if diff := cmp.Diff(expected.Pix, background.Pix); diff != "" {
		t.Fatalf("unexpected pixels after centered paste: %s", diff)
	}
}
