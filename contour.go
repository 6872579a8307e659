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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Contour is the closed outer boundary of one connected foreground region.
// Points are pixel centres in image coordinates (y down), listed
// counter-clockwise as seen on screen. The last point connects back to the
// first. A contour traced by this package has at least one point.
type Contour []image.Point

// Start returns the first point, which is the first pixel of the region in
// row-major order.
func (c Contour) Start() image.Point {
	return c[0]
}

// Bounds returns the smallest rectangle containing all pixels of the contour.
// The rectangle is half-open, so a single-point contour at (x, y) gives
// image.Rect(x, y, x+1, y+1).
func (c Contour) Bounds() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c[0], Max: c[0].Add(image.Pt(1, 1))}
	for _, p := range c[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

// Path converts the contour into a closed path: a MoveTo for the first
// point, a LineTo for each further point, and a final Close.
func (c Contour) Path() *path.Data {
	p := &path.Data{}
	if len(c) == 0 {
		return p
	}
	p = p.MoveTo(pt(c[0]))
	for _, q := range c[1:] {
		p = p.LineTo(pt(q))
	}
	return p.Close()
}

func pt(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
