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

package testcases

// largeCases are generated masks with many contours and long boundaries.
var largeCases = []TestCase{
	{
		Name: "disk",
		Rows: disk(128, 128, 64, 64, 50),
	},
	{
		Name: "concentric",
		Rows: squareRings(96, 6),
	},
	{
		Name: "concentric_conn_four",
		Rows: squareRings(96, 6),
		Conn: 4,
	},
	{
		Name: "dots",
		Rows: dotGrid(128, 96, 3, 5),
	},
	{
		Name: "noise",
		Rows: noise(80, 60, 1),
	},
	{
		Name: "noise_conn_four",
		Rows: noise(80, 60, 1),
		Conn: 4,
	},
}

// disk draws the pixels whose centres lie within radius r of (cx, cy).
func disk(width, height, cx, cy, r int) []string {
	rows := canvas(width, height)
	for y := range height {
		for x := range width {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				set(rows, x, y)
			}
		}
	}
	return toStrings(rows)
}

// squareRings draws nested one pixel wide square outlines with the given
// spacing. Each ring sits in the hole of the previous one.
func squareRings(size, spacing int) []string {
	rows := canvas(size, size)
	for d := 0; 2*d < size; d += spacing {
		lo, hi := d, size-1-d
		for i := lo; i <= hi; i++ {
			set(rows, i, lo)
			set(rows, i, hi)
			set(rows, lo, i)
			set(rows, hi, i)
		}
	}
	return toStrings(rows)
}

// dotGrid draws size × size blocks on a regular grid.
func dotGrid(width, height, size, pitch int) []string {
	rows := canvas(width, height)
	for y0 := 1; y0+size <= height; y0 += pitch {
		for x0 := 1; x0+size <= width; x0 += pitch {
			for y := y0; y < y0+size; y++ {
				for x := x0; x < x0+size; x++ {
					set(rows, x, y)
				}
			}
		}
	}
	return toStrings(rows)
}

// noise sets pixels pseudo-randomly, with a density just below one half.
// The same seed always gives the same mask.
func noise(width, height int, seed uint32) []string {
	rows := canvas(width, height)
	state := seed
	for y := range height {
		for x := range width {
			state = state*1664525 + 1013904223
			if state>>24 < 115 {
				set(rows, x, y)
			}
		}
	}
	return toStrings(rows)
}
