// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package samples

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/kovidgoyal/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kovidgoyal/wallpaper"
	"github.com/kovidgoyal/wallpaper/tools/utils/images"
)

var _ = fmt.Print

func on_circle(x, y, cx, cy, radius, stroke float64) bool {
	return math.Abs(math.Hypot(x-cx, y-cy)-radius) <= stroke/2
}

func on_border(x, y, w, h, inset, stroke float64) bool {
	o := inset - stroke/2
	i := inset + stroke/2
	in_outer := x >= o && y >= o && x <= w-1-o && y <= h-1-o
	in_inner := x > i && y > i && x < w-1-i && y < h-1-i
	return in_outer && !in_inner
}

// render_label draws text at basicfont size and scales it up with nearest
// neighbor so the label stays blocky and legible after further resizing.
// The target height is a quarter of the short side, clamped so the label
// never exceeds sixty percent of the canvas width.
func render_label(text string, size, canvas_width int) *image.NRGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{0, 0, 0, 0xff}),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	scale := float64(size) / 4 / float64(height)
	if max_width := 0.6 * float64(canvas_width); scale*float64(width) > max_width {
		scale = max_width / float64(width)
	}
	return imaging.Clone(imaging.Resize(img,
		int(math.Round(scale*float64(width))),
		int(math.Round(scale*float64(height))),
		imaging.NearestNeighbor))
}

// Render produces the sample image for spec: the background color, a black
// circle outline, a black border just inside the edges and the centered
// resolution label. The circle shows aspect distortion, the border shows
// clipping and the label shows which sample a pixel came from.
func Render(spec Spec) (*image.NRGBA, error) {
	if spec.Width < 1 || spec.Height < 1 {
		return nil, fmt.Errorf("%w: sample %s is %dx%d",
			wallpaper.ErrInvalidDimension, spec.Name, spec.Width, spec.Height)
	}
	canvas := imaging.New(spec.Width, spec.Height, spec.Background)
	w, h := float64(spec.Width), float64(spec.Height)
	size := min(w, h)
	stroke := max(1, size*3/100)
	radius := size / 2.5
	inset := size * 0.1
	cx, cy := (w-1)/2, (h-1)/2
	ctx := images.Context{}
	ctx.Parallel(0, spec.Height, func(ys <-chan int) {
		for y := range ys {
			i := y * canvas.Stride
			fy := float64(y)
			for x := 0; x < spec.Width; x++ {
				fx := float64(x)
				if on_circle(fx, fy, cx, cy, radius, stroke) || on_border(fx, fy, w, h, inset, stroke) {
					px := canvas.Pix[i+x*4 : i+x*4+4 : i+x*4+4]
					px[0], px[1], px[2], px[3] = 0, 0, 0, 0xff
				}
			}
		}
	})
	// basicfont only covers ASCII, so "x" rather than a multiplication sign
	label := render_label(fmt.Sprintf("%dx%d", spec.Width, spec.Height), int(size), spec.Width)
	return imaging.OverlayCenter(canvas, label, 1.0), nil
}
