// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Package wallpaper places a foreground image onto a background image.
//
// Every placement function takes a background and a foreground, modifies
// neither and returns a newly allocated image with exactly the dimensions
// of the background. The four policies mirror what desktop environments
// call wallpaper modes: Stretch, Scale, Shift and Tile.
package wallpaper

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/kovidgoyal/imaging"

	"github.com/kovidgoyal/wallpaper/tools/utils/images"
)

var _ = fmt.Print

// ErrInvalidDimension is returned when an input image has a width or height
// smaller than one pixel, for which the placement arithmetic is undefined.
var ErrInvalidDimension = errors.New("image dimensions must be at least 1x1")

func check_dimensions(background, foreground image.Image) error {
	for _, q := range []struct {
		name string
		img  image.Image
	}{{"background", background}, {"foreground", foreground}} {
		b := q.img.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 {
			return fmt.Errorf("%w: %s image is %dx%d", ErrInvalidDimension, q.name, b.Dx(), b.Dy())
		}
	}
	return nil
}

// Stretch resizes the foreground to exactly the dimensions of the
// background, ignoring its aspect ratio. No background pixel remains
// visible in the result.
func Stretch(background, foreground image.Image) (*image.NRGBA, error) {
	if err := check_dimensions(background, foreground); err != nil {
		return nil, err
	}
	b := background.Bounds()
	return imaging.Clone(imaging.Resize(foreground, b.Dx(), b.Dy(), imaging.Lanczos)), nil
}

// Scale resizes the foreground preserving its aspect ratio so that it
// covers the background completely in at least one dimension, then centers
// it on the background. The foreground may overhang the background in the
// other dimension, the overhang is clipped away.
func Scale(background, foreground image.Image) (*image.NRGBA, error) {
	if err := check_dimensions(background, foreground); err != nil {
		return nil, err
	}
	bb, fb := background.Bounds(), foreground.Bounds()
	ratio := min(
		float64(bb.Dx())/float64(fb.Dx()),
		float64(bb.Dy())/float64(fb.Dy()))
	// The two axes are rounded independently, so the covered axis can end
	// up one pixel off from the background. Accepted, not corrected.
	width := int(math.Round(float64(fb.Dx()) * ratio))
	height := int(math.Round(float64(fb.Dy()) * ratio))
	return place(background, imaging.Resize(foreground, width, height, imaging.Lanczos), false, Center, Center)
}

// Shift places the foreground so that the point at foreground_pos within it
// lands exactly on the point at background_pos within the background.
// Exactly one copy of the foreground is pasted: parts falling outside the
// background are clipped away, parts of the background left uncovered keep
// their pixels. Foreground pixels fully replace background pixels in the
// overlap, there is no blending.
func Shift(background, foreground image.Image, background_pos, foreground_pos Position) (*image.NRGBA, error) {
	return place(background, foreground, false, background_pos, foreground_pos)
}

// Tile is Shift extended periodically: copies of the foreground are pasted
// every foreground width and height so that the grid covers the whole
// background with no gaps, anchored exactly as the single Shift copy would
// have been.
func Tile(background, foreground image.Image, background_pos, foreground_pos Position) (*image.NRGBA, error) {
	return place(background, foreground, true, background_pos, foreground_pos)
}

// place is the single source of the anchor arithmetic shared by Shift and
// Tile (and by Scale, which is Shift of a resized foreground with both
// anchors at the center). The paste offset is the top left corner of the
// foreground in background coordinates.
func place(background, foreground image.Image, repeat bool, background_pos, foreground_pos Position) (*image.NRGBA, error) {
	if err := check_dimensions(background, foreground); err != nil {
		return nil, err
	}
	true_pos := PixelPosition(background, background_pos).Sub(PixelPosition(foreground, foreground_pos))
	result := imaging.Clone(background)
	ctx := images.Context{}
	if !repeat {
		ctx.Paste(result, foreground, true_pos)
		return result, nil
	}
	bb, fb := background.Bounds(), foreground.Bounds()
	fw, fh := fb.Dx(), fb.Dy()
	// Position of the top left tile. The remainder guarantees the grid
	// reproduces true_pos modulo the tile size, moving a non-zero
	// remainder one tile further out guarantees the first tile starts at
	// or before the canvas origin however far off canvas true_pos is.
	base := image.Pt(mod(true_pos.X, fw), mod(true_pos.Y, fh))
	if base.X != 0 {
		base.X -= fw
	}
	if base.Y != 0 {
		base.Y -= fh
	}
	// One extra tile per axis so edge tiles are never cut short.
	x_times := ceil_div(bb.Dx(), fw) + 1
	y_times := ceil_div(bb.Dy(), fh) + 1
	for i := range x_times {
		for j := range y_times {
			ctx.Paste(result, foreground, base.Add(image.Pt(i*fw, j*fh)))
		}
	}
	return result, nil
}

// mod is the mathematical remainder, non-negative for positive n unlike
// the builtin % operator.
func mod(a, n int) int {
	return (a%n + n) % n
}

func ceil_div(a, b int) int {
	return (a + b - 1) / b
}
