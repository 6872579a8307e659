// seehuhn.de/go/vectorize - trace raster images into vector outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vectorize

import (
	"image"

	"golang.org/x/image/draw"
)

// Grid is a single-channel 8-bit luminance image in row-major order.
// Pix[y*Width+x] holds the value of pixel (x, y).
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid wraps an existing luminance buffer. The buffer is not copied.
func NewGrid(width, height int, pix []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height {
		return nil, ErrPixelCount
	}
	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// At returns the luminance of pixel (x, y).
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// GridFromImage reduces img to luminance using the BT.601 weights
// 0.299 R + 0.587 G + 0.114 B. Colour channels are taken without
// premultiplication and alpha is ignored, so a fully transparent red pixel
// has the same luminance as an opaque one.
func GridFromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	g := &Grid{Width: w, Height: h, Pix: make([]uint8, w*h)}

	switch src := img.(type) {
	case *image.Gray:
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*w:(y+1)*w], src.Pix[off:off+w])
		}
	case *image.NRGBA:
		g.fromRGB(src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), false)
	case *image.RGBA:
		g.fromRGB(src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), true)
	default:
		tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Copy(tmp, image.Point{}, img, b, draw.Src, nil)
		g.fromRGB(tmp.Pix, tmp.Stride, 0, false)
	}
	return g, nil
}

// fromRGB fills g from 4-byte-per-pixel data starting at offset start.
// If premul is set, colour values are divided by alpha first.
func (g *Grid) fromRGB(pix []uint8, stride, start int, premul bool) {
	for y := range g.Height {
		row := pix[start+y*stride:]
		out := g.Pix[y*g.Width : (y+1)*g.Width]
		for x := range out {
			r, gr, bl := uint32(row[4*x]), uint32(row[4*x+1]), uint32(row[4*x+2])
			if premul {
				a := uint32(row[4*x+3])
				if a == 0 {
					r, gr, bl = 0, 0, 0
				} else if a < 255 {
					r = min(255, (r*255+a/2)/a)
					gr = min(255, (gr*255+a/2)/a)
					bl = min(255, (bl*255+a/2)/a)
				}
			}
			out[x] = luminance(r, gr, bl)
		}
	}
}

// luminance uses 14-bit fixed point weights which sum to 1<<14.
func luminance(r, g, b uint32) uint8 {
	return uint8((4899*r + 9617*g + 1868*b + 1<<13) >> 14)
}
