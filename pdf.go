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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes doc to fname as a single page PDF file. One pixel maps to
// one PDF point. All contours are filled in black as subpaths of a single
// path, using the nonzero winding rule.
//
// The file is not created if a coordinate is not finite; the error is then
// an [*EncodingError].
func WritePDF(fname string, doc *Document) error {
	paths := make([]*path.Data, doc.Len())
	for i := range paths {
		paths[i] = doc.Path(i)
		if err := checkFinite(paths[i], i); err != nil {
			return err
		}
	}

	paper := &pdf.Rectangle{
		URx: float64(doc.width),
		URy: float64(doc.height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; contours use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(doc.height)})
	page.SetFillColor(color.DeviceGray(0))

	for _, p := range paths {
		var cur, start vec.Vec2
		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				cur = p.Coords[coordIdx]
				start = cur
				page.MoveTo(cur.X, cur.Y)
				coordIdx++
			case path.CmdLineTo:
				cur = p.Coords[coordIdx]
				page.LineTo(cur.X, cur.Y)
				coordIdx++
			case path.CmdQuadTo:
				// PDF has no quadratic segments; use the equivalent cubic.
				c, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
				c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
				c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
				cur = end
				coordIdx += 2
			case path.CmdCubeTo:
				c := p.Coords[coordIdx : coordIdx+3]
				page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
				cur = c[2]
				coordIdx += 3
			case path.CmdClose:
				page.ClosePath()
				cur = start
			}
		}
	}
	if len(paths) > 0 {
		page.Fill()
	}

	return page.Close()
}

// checkFinite returns an EncodingError for the first NaN or infinite
// coordinate in p.
func checkFinite(p *path.Data, idx int) error {
	for _, c := range p.Coords {
		for _, v := range []float64{c.X, c.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &EncodingError{Path: idx, Value: v}
			}
		}
	}
	return nil
}
