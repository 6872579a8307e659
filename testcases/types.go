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

import (
	"image"
	"strings"
)

// TestCase defines a single tracing test.
type TestCase struct {
	Name string          // lowercase a-z and _ only
	Rows []string        // the mask, one string per row; '#' marks foreground
	Conn int             // 4 or 8; zero means 8
	Want [][]image.Point // expected contours with simple chains, nil if not checked
}

// Connectivity returns the neighbourhood size used by the test case.
func (tc TestCase) Connectivity() int {
	if tc.Conn == 0 {
		return 8
	}
	return tc.Conn
}

// Size returns the mask dimensions.
func (tc TestCase) Size() (width, height int) {
	for _, row := range tc.Rows {
		width = max(width, len(row))
	}
	return width, len(tc.Rows)
}

// pts is a helper to write contours as x, y pairs.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, len(xy)/2)
	for i := range res {
		res[i] = image.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}

// canvas returns a width × height grid of background rows, ready to be
// drawn into with set.
func canvas(width, height int) [][]byte {
	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", width))
	}
	return rows
}

func set(rows [][]byte, x, y int) {
	if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
		rows[y][x] = '#'
	}
}

func toStrings(rows [][]byte) []string {
	res := make([]string, len(rows))
	for i, row := range rows {
		res[i] = string(row)
	}
	return res
}
