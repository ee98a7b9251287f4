// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package wallpaper

import (
	"fmt"
	"image"
	"math"
)

var _ = fmt.Print

// PixelPosition converts pos to 0-indexed pixel coordinates within the
// bounds of img. The Y sign is inverted since +Y is up in normalized
// coordinates while pixel rows grow downward. Each axis is rescaled from
// [-1, 1] to [0, dimension-1] and rounded to the nearest integer, with
// ties going to the even neighbor, so the center of an even sized axis
// rounds down. An axis of size 1 has a maximum coordinate of 0 and so maps
// every input to 0.
func PixelPosition(img image.Image, pos Position) image.Point {
	b := img.Bounds()
	x := (pos.X + 1) / 2 * float64(b.Dx()-1)
	y := (-pos.Y + 1) / 2 * float64(b.Dy()-1)
	return image.Pt(int(math.RoundToEven(x)), int(math.RoundToEven(y)))
}
