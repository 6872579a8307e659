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

import "image"

// holeCases contain regions with holes. Only the outer boundaries are
// traced, so filling the contours also fills the holes.
var holeCases = []TestCase{
	{
		Name: "ring",
		Rows: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
		Want: [][]image.Point{pts(0, 0, 0, 4, 4, 4, 4, 0)},
	},
	{
		Name: "ring_conn_four",
		Rows: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
		Conn: 4,
		Want: [][]image.Point{pts(0, 0, 0, 4, 4, 4, 4, 0)},
	},
	{
		Name: "ring_island",
		Rows: []string{
			"#######",
			"#.....#",
			"#.....#",
			"#..#..#",
			"#.....#",
			"#.....#",
			"#######",
		},
		Want: [][]image.Point{pts(0, 0, 0, 6, 6, 6, 6, 0), pts(3, 3)},
	},
	{
		Name: "diamond",
		Rows: []string{
			".#.",
			"#.#",
			".#.",
		},
		Want: [][]image.Point{pts(1, 0, 0, 1, 1, 2, 2, 1)},
	},
}
