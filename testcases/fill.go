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

var fillCases = []TestCase{
	{
		Name: "block",
		Rows: []string{
			"....",
			".##.",
			".##.",
			"....",
		},
		Want: [][]image.Point{pts(1, 1, 1, 2, 2, 2, 2, 1)},
	},
	{
		Name: "block_conn_four",
		Rows: []string{
			"....",
			".##.",
			".##.",
			"....",
		},
		Conn: 4,
		Want: [][]image.Point{pts(1, 1, 1, 2, 2, 2, 2, 1)},
	},
	{
		Name: "single_pixel",
		Rows: []string{
			"...",
			".#.",
			"...",
		},
		Want: [][]image.Point{pts(1, 1)},
	},
	{
		Name: "full",
		Rows: []string{
			"###",
			"###",
		},
		Want: [][]image.Point{pts(0, 0, 0, 1, 2, 1, 2, 0)},
	},
	{
		Name: "full_conn_four",
		Rows: []string{
			"###",
			"###",
		},
		Conn: 4,
		Want: [][]image.Point{pts(0, 0, 0, 1, 2, 1, 2, 0)},
	},
	{
		Name: "empty",
		Rows: []string{
			"...",
			"...",
		},
		Want: [][]image.Point{},
	},
	{
		Name: "hline",
		Rows: []string{
			"###",
		},
		Want: [][]image.Point{pts(0, 0, 2, 0)},
	},
	{
		Name: "hline_conn_four",
		Rows: []string{
			"###",
		},
		Conn: 4,
		Want: [][]image.Point{pts(0, 0, 2, 0)},
	},
	{
		Name: "vline",
		Rows: []string{
			"#",
			"#",
			"#",
		},
		Want: [][]image.Point{pts(0, 0, 0, 2)},
	},
}
