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

import "image"

// Chain selects how boundary pixels are turned into contour points.
type Chain int

const (
	// ChainSimple keeps only the points where the boundary changes
	// direction. Horizontal, vertical and diagonal runs collapse to their
	// end points.
	ChainSimple Chain = iota

	// ChainNone keeps every boundary pixel in walk order.
	ChainNone
)

func (c Chain) String() string {
	switch c {
	case ChainSimple:
		return "simple"
	case ChainNone:
		return "none"
	default:
		return "Chain(?)"
	}
}

// simplify drops every point whose incoming and outgoing steps are the
// same. Consecutive boundary points are neighbours, so equal steps mean the
// three points are collinear with the middle one strictly between the
// others; removing it leaves the polygon unchanged.
//
// The first point of a traced contour always survives, because nothing
// above or to its left belongs to the region.
func simplify(pts []image.Point) []image.Point {
	n := len(pts)
	if n < 3 {
		return pts
	}

	out := make([]image.Point, 0, n)
	for i, p := range pts {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		if p.Sub(prev) != next.Sub(p) {
			out = append(out, p)
		}
	}
	return out
}
