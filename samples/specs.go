// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Package samples renders the example images used to demonstrate the
// wallpaper placement policies. Each sample is a colored canvas with a
// circle and a rectangular border to make distortion visible, and carries
// its own pixel resolution as a centered label so scaling effects can be
// read off a composed result.
package samples

import (
	"fmt"
	"image/color"

	"github.com/zeebo/xxh3"
)

var _ = fmt.Print

// Background colors, one per sample so composed results are easy to tell
// apart at a glance.
var (
	blue   = color.NRGBA{0x58, 0xc4, 0xdd, 0xff}
	teal   = color.NRGBA{0x5c, 0xd0, 0xb3, 0xff}
	green  = color.NRGBA{0x83, 0xc1, 0x67, 0xff}
	yellow = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	gold   = color.NRGBA{0xf0, 0xac, 0x5f, 0xff}
	orange = color.NRGBA{0xff, 0x86, 0x2f, 0xff}
	white  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	maroon = color.NRGBA{0xc5, 0x5f, 0x73, 0xff}
	purple = color.NRGBA{0x9a, 0x72, 0xac, 0xff}
)

// Spec describes one sample image.
type Spec struct {
	Name          string
	Width, Height int
	Background    color.NRGBA
}

// CacheKey identifies the rendered pixels of this spec in the disk cache.
func (s Spec) CacheKey() uint64 {
	return xxh3.HashString(fmt.Sprintf("%s\x00%d\x00%d\x00%02x%02x%02x%02x",
		s.Name, s.Width, s.Height, s.Background.R, s.Background.G, s.Background.B, s.Background.A))
}

// Standard returns the canonical set of sample specs: squares, horizontal
// and vertical rectangles in a small and a big variant, and three 16:9
// frames around a typical render resolution.
func Standard() []Spec {
	return []Spec{
		{"square-small", 512, 512, blue},
		{"square-big", 3000, 3000, teal},
		{"rect-horizontal-small", 512, 256, green},
		{"rect-horizontal-big", 3000, 1500, yellow},
		{"rect-vertical-small", 256, 512, gold},
		{"rect-vertical-big", 1500, 3000, orange},
		{"frame-small", 480, 270, white},
		{"frame-perfect", 1920, 1080, maroon},
		{"frame-big", 3840, 2160, purple},
	}
}
