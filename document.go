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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Document is a list of filled outlines on a canvas of fixed size.
// The canvas covers [0, Width] × [0, Height] in image coordinates.
type Document struct {
	width    int
	height   int
	contours []Contour
}

// NewDocument creates a document. The canvas size cannot be changed
// afterwards. The document keeps contours as given; callers must not modify
// the slice later.
func NewDocument(width, height int, contours []Contour) *Document {
	return &Document{width: width, height: height, contours: contours}
}

// Width returns the canvas width.
func (d *Document) Width() int { return d.width }

// Height returns the canvas height.
func (d *Document) Height() int { return d.height }

// Canvas returns the canvas as a rectangle.
func (d *Document) Canvas() rect.Rect {
	return rect.Rect{URx: float64(d.width), URy: float64(d.height)}
}

// Len returns the number of contours.
func (d *Document) Len() int { return len(d.contours) }

// Contours returns the contours in discovery order. The result must not be
// modified.
func (d *Document) Contours() []Contour { return d.contours }

// Path returns contour i as a closed path.
func (d *Document) Path(i int) *path.Data {
	return d.contours[i].Path()
}

// Points returns the total number of contour points.
func (d *Document) Points() int {
	n := 0
	for _, c := range d.contours {
		n += len(c)
	}
	return n
}
