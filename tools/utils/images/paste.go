// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package images

import (
	"fmt"
	"image"
	"image/color"
)

var _ = fmt.Print

// A scanner copies a rectangular region of its source image into a
// destination buffer as non-premultiplied RGBA bytes. Coordinates are
// relative to the top left corner of the source bounds.
type scanner interface {
	scan(x1, y1, x2, y2 int, dst []uint8)
	bounds() image.Rectangle
}

func new_scanner(img image.Image) scanner {
	switch img := img.(type) {
	case *image.NRGBA:
		return &nrgba_scanner{img}
	case *image.RGBA:
		return &rgba_scanner{img}
	case *image.Gray:
		return &gray_scanner{img}
	case *image.Paletted:
		s := &paletted_scanner{img: img, palette: make([]color.NRGBA, len(img.Palette))}
		for i, c := range img.Palette {
			s.palette[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
		return s
	}
	return &generic_scanner{img}
}

type nrgba_scanner struct{ img *image.NRGBA }

func (s *nrgba_scanner) bounds() image.Rectangle { return s.img.Bounds() }

func (s *nrgba_scanner) scan(x1, y1, x2, y2 int, dst []uint8) {
	size := (x2 - x1) * 4
	j := 0
	i := y1*s.img.Stride + x1*4
	for y := y1; y < y2; y++ {
		copy(dst[j:j+size], s.img.Pix[i:i+size])
		j += size
		i += s.img.Stride
	}
}

type rgba_scanner struct{ img *image.RGBA }

func (s *rgba_scanner) bounds() image.Rectangle { return s.img.Bounds() }

func (s *rgba_scanner) scan(x1, y1, x2, y2 int, dst []uint8) {
	j := 0
	for y := y1; y < y2; y++ {
		i := y*s.img.Stride + x1*4
		for x := x1; x < x2; x++ {
			p := s.img.Pix[i : i+4 : i+4]
			d := dst[j : j+4 : j+4]
			a := p[3]
			switch a {
			case 0:
				d[0], d[1], d[2] = 0, 0, 0
			case 0xff:
				d[0], d[1], d[2] = p[0], p[1], p[2]
			default:
				// undo alpha premultiplication
				a16 := uint16(a)
				d[0] = uint8(uint16(p[0]) * 0xff / a16)
				d[1] = uint8(uint16(p[1]) * 0xff / a16)
				d[2] = uint8(uint16(p[2]) * 0xff / a16)
			}
			d[3] = a
			j += 4
			i += 4
		}
	}
}

type gray_scanner struct{ img *image.Gray }

func (s *gray_scanner) bounds() image.Rectangle { return s.img.Bounds() }

func (s *gray_scanner) scan(x1, y1, x2, y2 int, dst []uint8) {
	j := 0
	for y := y1; y < y2; y++ {
		i := y*s.img.Stride + x1
		for x := x1; x < x2; x++ {
			c := s.img.Pix[i]
			d := dst[j : j+4 : j+4]
			d[0], d[1], d[2], d[3] = c, c, c, 0xff
			j += 4
			i++
		}
	}
}

type paletted_scanner struct {
	img     *image.Paletted
	palette []color.NRGBA
}

func (s *paletted_scanner) bounds() image.Rectangle { return s.img.Bounds() }

func (s *paletted_scanner) scan(x1, y1, x2, y2 int, dst []uint8) {
	j := 0
	for y := y1; y < y2; y++ {
		i := y*s.img.Stride + x1
		for x := x1; x < x2; x++ {
			c := s.palette[s.img.Pix[i]]
			d := dst[j : j+4 : j+4]
			d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
			j += 4
			i++
		}
	}
}

// generic_scanner handles any other image kind through the color model,
// which is slow but always correct.
type generic_scanner struct{ img image.Image }

func (s *generic_scanner) bounds() image.Rectangle { return s.img.Bounds() }

func (s *generic_scanner) scan(x1, y1, x2, y2 int, dst []uint8) {
	b := s.img.Bounds()
	j := 0
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			c := color.NRGBAModel.Convert(s.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			d := dst[j : j+4 : j+4]
			d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
			j += 4
		}
	}
}

// Paste pastes img onto background with its top left corner at pos,
// clipping away anything that falls outside the background bounds. Pasted
// pixels fully replace background pixels, there is no blending. The rows of
// the overlap region are written in parallel.
func (self *Context) Paste(background *image.NRGBA, img image.Image, pos image.Point) {
	src := new_scanner(img)
	pos = pos.Sub(background.Bounds().Min)
	paste_rect := image.Rectangle{Min: pos, Max: pos.Add(src.bounds().Size())}
	inter_rect := paste_rect.Intersect(background.Bounds())
	if inter_rect.Empty() {
		return
	}
	self.Parallel(inter_rect.Min.Y, inter_rect.Max.Y, func(ys <-chan int) {
		for y := range ys {
			x1 := inter_rect.Min.X - paste_rect.Min.X
			x2 := inter_rect.Max.X - paste_rect.Min.X
			y1 := y - paste_rect.Min.Y
			i1 := y*background.Stride + inter_rect.Min.X*4
			i2 := i1 + inter_rect.Dx()*4
			src.scan(x1, y1, x2, y1+1, background.Pix[i1:i2])
		}
	})
}

// PasteCenter pastes img onto the center of background.
func (self *Context) PasteCenter(background *image.NRGBA, img image.Image) {
	b := background.Bounds()
	x0 := b.Min.X + b.Dx()/2 - img.Bounds().Dx()/2
	y0 := b.Min.Y + b.Dy()/2 - img.Bounds().Dy()/2
	self.Paste(background, img, image.Pt(x0, y0))
}
