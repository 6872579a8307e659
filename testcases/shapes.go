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

var shapeCases = []TestCase{
	{
		Name: "ell",
		Rows: []string{
			"#.",
			"##",
		},
		Want: [][]image.Point{pts(0, 0, 0, 1, 1, 1)},
	},
	{
		Name: "ell_conn_four",
		Rows: []string{
			"#.",
			"##",
		},
		Conn: 4,
		Want: [][]image.Point{pts(0, 0, 0, 1, 1, 1, 0, 1)},
	},
	{
		Name: "cup",
		Rows: []string{
			"#.#",
			"#.#",
			"###",
		},
		Want: [][]image.Point{pts(0, 0, 0, 2, 2, 2, 2, 0, 2, 1, 1, 2, 0, 1)},
	},
	{
		Name: "tee",
		Rows: []string{
			"###",
			".#.",
			".#.",
		},
	},
	{
		Name: "vee",
		Rows: []string{
			"#...#",
			".#.#.",
			"..#..",
		},
	},
	{
		Name: "blob",
		Rows: []string{
			"..##...",
			".####..",
			"######.",
			".###...",
			"..#....",
		},
	},
	{
		Name: "three_blobs",
		Rows: []string{
			"##....",
			"##..##",
			"....##",
			".##...",
		},
	},
	{
		Name: "three_blobs_conn_four",
		Rows: []string{
			"##....",
			"##..##",
			"....##",
			".##...",
		},
		Conn: 4,
	},
}
