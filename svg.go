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
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FillColor is the fill colour of every emitted outline.
const FillColor = "black"

// WriteSVG writes doc as an SVG document. The root element declares the
// canvas as its viewBox, and every contour becomes one filled path element
// without stroke, in document order. An empty document still produces a
// well-formed svg element.
//
// Nothing is written if a coordinate is not finite; the error is then an
// [*EncodingError].
func WriteSVG(w io.Writer, doc *Document) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		doc.width, doc.height, doc.width, doc.height)
	for i := range doc.Len() {
		sb.WriteString(`<path d="`)
		if err := writePathData(&sb, doc.Path(i), i); err != nil {
			return err
		}
		sb.WriteString(`" fill="` + FillColor + `" stroke="none"/>` + "\n")
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// SVG returns the document as SVG text.
func (d *Document) SVG() (string, error) {
	var sb strings.Builder
	if err := WriteSVG(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writePathData appends the SVG path data for p to sb. idx is used for
// error reporting.
func writePathData(sb *strings.Builder, p *path.Data, idx int) error {
	var buf []byte
	coordIdx := 0
	for i, cmd := range p.Cmds {
		if i > 0 {
			buf = append(buf, ' ')
		}

		var n int
		switch cmd {
		case path.CmdMoveTo:
			buf, n = append(buf, 'M'), 1
		case path.CmdLineTo:
			buf, n = append(buf, 'L'), 1
		case path.CmdQuadTo:
			buf, n = append(buf, 'Q'), 2
		case path.CmdCubeTo:
			buf, n = append(buf, 'C'), 3
		case path.CmdClose:
			buf = append(buf, 'Z')
		}

		for _, c := range p.Coords[coordIdx : coordIdx+n] {
			var err error
			buf = append(buf, ' ')
			if buf, err = appendPoint(buf, c, idx); err != nil {
				return err
			}
		}
		coordIdx += n
	}
	sb.Write(buf)
	return nil
}

func appendPoint(buf []byte, c vec.Vec2, idx int) ([]byte, error) {
	for _, v := range []float64{c.X, c.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return buf, &EncodingError{Path: idx, Value: v}
		}
	}
	buf = strconv.AppendFloat(buf, c.X, 'f', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, c.Y, 'f', -1, 64)
	return buf, nil
}
