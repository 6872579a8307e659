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
	"slices"
)

// Connectivity selects which neighbouring pixels count as adjacent.
type Connectivity int

const (
	// Conn8 joins pixels that share an edge or a corner.
	Conn8 Connectivity = 8

	// Conn4 joins only pixels that share an edge.
	Conn4 Connectivity = 4
)

// step is the stride through the direction table: every direction for
// 8-connectivity, every other one for 4-connectivity.
func (c Connectivity) step() int {
	if c == Conn4 {
		return 2
	}
	return 1
}

func (c Connectivity) valid() bool {
	return c == Conn4 || c == Conn8
}

// dirs lists the eight neighbour offsets counter-clockwise as seen on
// screen (y down), starting with east. Even indices are the 4-neighbours.
var dirs = [8]image.Point{
	{1, 0},   // E
	{1, -1},  // NE
	{0, -1},  // N
	{-1, -1}, // NW
	{-1, 0},  // W
	{-1, 1},  // SW
	{0, 1},   // S
	{1, 1},   // SE
}

const dirWest = 4

// Tracer finds the outer boundaries of the connected foreground regions of
// a Mask. Create one instance and reuse it for multiple masks. Internal
// buffers grow as needed but never shrink.
//
// A Tracer is not safe for concurrent use.
type Tracer struct {
	// Connectivity selects 4- or 8-adjacency, both for deciding which
	// pixels form a region and for following its boundary.
	Connectivity Connectivity

	// Chain controls whether straight runs of boundary pixels are reduced
	// to their end points.
	Chain Chain

	// Internal buffers (reused across calls)
	claimed []bool        // pixels of regions which already have a contour
	stack   []int         // flood fill work list (pixel indices)
	walk    []image.Point // boundary pixels of the current region
}

// NewTracer returns a Tracer using 8-connectivity and simple chain
// approximation.
func NewTracer() *Tracer {
	return &Tracer{
		Connectivity: Conn8,
		Chain:        ChainSimple,
	}
}

// Trace returns the external contours of all foreground regions of m.
// Contours are ordered by the row-major position of their first point.
// An all-background mask gives an empty result.
func Trace(m *Mask, conn Connectivity) []Contour {
	t := NewTracer()
	t.Connectivity = conn
	return t.Trace(m)
}

// Trace returns the external contours of all foreground regions of m, in
// the order their first pixel appears in a row-major scan. Holes inside a
// region are not reported. Regions sitting inside the hole of another
// region get a contour of their own.
//
// Trace panics if t.Connectivity is neither Conn4 nor Conn8.
func (t *Tracer) Trace(m *Mask) []Contour {
	if !t.Connectivity.valid() {
		panic("vectorize: invalid connectivity")
	}

	n := len(m.bits)
	t.claimed = slices.Grow(t.claimed[:0], n)[:n]
	clear(t.claimed)

	var res []Contour
	for i, fg := range m.bits {
		if !fg || t.claimed[i] {
			continue
		}

		// The first pixel of an unclaimed region in scan order has a
		// background pixel to its west, so it lies on the outer boundary.
		start := image.Point{X: i % m.width, Y: i / m.width}
		pts := t.follow(m, start)
		if t.Chain == ChainSimple && len(pts) >= 3 {
			pts = simplify(pts)
		} else {
			// pts aliases t.walk
			pts = slices.Clone(pts)
		}
		res = append(res, Contour(pts))

		t.claim(m, i)
	}
	return res
}

// follow walks the outer boundary of the region containing start and
// returns the boundary pixels in walk order. The returned slice aliases
// t.walk.
//
// This is the border following step of Suzuki and Abe: the walk circles
// each boundary pixel counter-clockwise, starting just after the pixel it
// came from, and stops once it is about to leave the start pixel towards
// the same pixel as on the very first step.
func (t *Tracer) follow(m *Mask, start image.Point) []image.Point {
	step := t.Connectivity.step()
	t.walk = t.walk[:0]

	// Look clockwise from the west for the first foreground neighbour.
	first := -1
	for k := 0; k < 8; k += step {
		d := (dirWest - k + 8) % 8
		q := start.Add(dirs[d])
		if m.At(q.X, q.Y) {
			first = d
			break
		}
	}
	if first < 0 {
		t.walk = append(t.walk, start)
		return t.walk
	}
	second := start.Add(dirs[first])

	cur := start
	back := first // direction from cur to the previously visited pixel

	// Every boundary pixel is entered at most once per side.
	limit := 4*len(m.bits) + 4
	for range limit {
		d := back
		for k := step; k <= 8; k += step {
			cand := (back + k) % 8
			q := cur.Add(dirs[cand])
			if m.At(q.X, q.Y) {
				d = cand
				break
			}
		}

		t.walk = append(t.walk, cur)
		next := cur.Add(dirs[d])
		if next == start && cur == second {
			break
		}
		back = (d + 4) % 8
		cur = next
	}
	return t.walk
}

// claim marks the whole region containing pixel index i, so that neither
// its interior nor the borders of its holes start another contour.
func (t *Tracer) claim(m *Mask, i int) {
	step := t.Connectivity.step()
	w := m.width

	t.stack = append(t.stack[:0], i)
	t.claimed[i] = true
	for len(t.stack) > 0 {
		j := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		p := image.Point{X: j % w, Y: j / w}
		for d := 0; d < 8; d += step {
			q := p.Add(dirs[d])
			if !m.At(q.X, q.Y) {
				continue
			}
			k := q.Y*w + q.X
			if !t.claimed[k] {
				t.claimed[k] = true
				t.stack = append(t.stack, k)
			}
		}
	}
}
