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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// edge is a contour segment between two pixel centres.
type edge struct {
	x0, y0 int // start point
	x1, y1 int // end point
}

func (e *edge) yMin() int { return min(e.y0, e.y1) }
func (e *edge) yMax() int { return max(e.y0, e.y1) }

// crossing is the intersection of a non-horizontal edge with a scanline.
type crossing struct {
	x    float64
	wind int // +1 for downward edges, -1 for upward edges
}

// Filler converts contours back into pixels. A pixel belongs to the result
// if its centre lies on a contour, or strictly inside a contour under the
// nonzero winding rule. For contours produced by a Tracer this gives back
// the traced regions, with any holes filled in.
//
// Create one instance and reuse it for multiple calls. Internal buffers grow
// as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Clip bounds output to this rectangle of pixel indices.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	edges     []edge     // edge list for the current contours
	activeIdx []int      // indices of edges touching the current scanline
	cross     []crossing // crossings of the current scanline
	row       []bool     // pixels of the current scanline
}

// NewFiller returns a Filler with the given clip rectangle.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{Clip: clip}
}

// Reset changes the clip rectangle, keeping the internal buffers.
func (f *Filler) Reset(clip rect.Rect) {
	f.Clip = clip
}

// Fill computes the pixels covered by the contours. The emit callback
// receives each covered run [xMin, xMax) of scanline y, in increasing y and
// x order.
func (f *Filler) Fill(contours []Contour, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := f.collectEdges(contours)
	if !ok {
		return
	}

	clipXMin := int(f.Clip.LLx)
	clipXMax := int(f.Clip.URx)
	width := clipXMax - clipXMin
	if width <= 0 {
		return
	}
	yMin = max(yMin, int(f.Clip.LLy))
	yMax = min(yMax, int(f.Clip.URy)-1)

	f.row = slices.Grow(f.row[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	f.activeIdx = f.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y <= yMax; y++ {
		for nextEdge < len(f.edges) && f.edges[nextEdge].yMin() <= y {
			f.activeIdx = append(f.activeIdx, nextEdge)
			nextEdge++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.row)
		f.cross = f.cross[:0]
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if e.yMax() < y {
				// Remove from active list (swap with last)
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}

			f.markLattice(e, y, clipXMin)

			// Half-open in y, so that a vertex shared by two edges is
			// counted once.
			if e.y0 != e.y1 && y < e.yMax() {
				dy := e.y1 - e.y0
				wind := 1
				if dy < 0 {
					wind = -1
				}
				x := float64(e.x0) + float64((y-e.y0)*(e.x1-e.x0))/float64(dy)
				f.cross = append(f.cross, crossing{x: x, wind: wind})
			}
			i++
		}

		slices.SortFunc(f.cross, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})
		wind := 0
		for k := 0; k+1 < len(f.cross); k++ {
			wind += f.cross[k].wind
			if wind == 0 {
				continue
			}
			lo := int(math.Ceil(f.cross[k].x))
			hi := int(math.Floor(f.cross[k+1].x))
			f.markRange(lo, hi, clipXMin)
		}

		emitRuns(f.row, y, clipXMin, emit)
	}
}

// collectEdges builds the edge list. A single-point contour becomes a
// zero-length edge, so that its pixel is still marked. The returned range
// is inclusive.
func (f *Filler) collectEdges(contours []Contour) (yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	first := true
	for _, c := range contours {
		n := len(c)
		for i, a := range c {
			b := c[(i+1)%n]
			f.edges = append(f.edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y})
			if first {
				yMin, yMax = a.Y, a.Y
				first = false
			}
			yMin = min(yMin, a.Y)
			yMax = max(yMax, a.Y)
		}
	}
	return yMin, yMax, !first
}

// markLattice marks the pixel centres of scanline y which lie on e.
func (f *Filler) markLattice(e *edge, y, clipXMin int) {
	if e.y0 == e.y1 {
		f.markRange(min(e.x0, e.x1), max(e.x0, e.x1), clipXMin)
		return
	}
	num := (y - e.y0) * (e.x1 - e.x0)
	den := e.y1 - e.y0
	if num%den == 0 {
		x := e.x0 + num/den
		f.markRange(x, x, clipXMin)
	}
}

// markRange marks the pixels lo to hi inclusive, clipped to the row.
func (f *Filler) markRange(lo, hi, clipXMin int) {
	lo = max(lo-clipXMin, 0)
	hi = min(hi-clipXMin, len(f.row)-1)
	for x := lo; x <= hi; x++ {
		f.row[x] = true
	}
}

// emitRuns reports the runs of set pixels in row.
func emitRuns(row []bool, y, xOffset int, emit func(y, xMin, xMax int)) {
	for x := 0; x < len(row); {
		if !row[x] {
			x++
			continue
		}
		start := x
		for x < len(row) && row[x] {
			x++
		}
		emit(y, xOffset+start, xOffset+x)
	}
}

// Rasterize returns the pixels covered by the document's contours as a mask
// of the canvas size. For a document traced from mask m, the result equals
// m with the holes of every region filled in.
func (d *Document) Rasterize() *Mask {
	m := &Mask{width: d.width, height: d.height, bits: make([]bool, d.width*d.height)}
	f := NewFiller(d.Canvas())
	f.Fill(d.contours, func(y, xMin, xMax int) {
		row := m.bits[y*m.width:]
		for x := xMin; x < xMax; x++ {
			row[x] = true
		}
	})
	return m
}
