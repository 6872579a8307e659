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

	"golang.org/x/image/vector"
)

// Preview renders the filled document with anti-aliasing, one device pixel
// per unit. The outlines are shifted by half a pixel so that contour points
// land on pixel centres. Boundary pixels of a region are therefore only
// partially covered, and single-pixel regions do not show at all.
func (d *Document) Preview() *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, d.width, d.height))
	if len(d.contours) == 0 {
		return dst
	}

	r := vector.NewRasterizer(d.width, d.height)
	for _, c := range d.contours {
		if len(c) == 0 {
			continue
		}
		r.MoveTo(float32(c[0].X)+0.5, float32(c[0].Y)+0.5)
		for _, p := range c[1:] {
			r.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
