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
	"strings"
)

// Mask is a binary image. A set bit marks a foreground pixel.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask returns an all-background mask of the given size.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Mask{width: width, height: height, bits: make([]bool, width*height)}, nil
}

// ParseMask builds a mask from text rows. '#', 'X', 'x' and '1' mark
// foreground pixels, every other byte is background. Short rows are padded
// with background.
func ParseMask(rows ...string) (*Mask, error) {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	m, err := NewMask(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := range len(row) {
			switch row[x] {
			case '#', 'X', 'x', '1':
				m.bits[y*w+x] = true
			}
		}
	}
	return m, nil
}

// Binarize thresholds a luminance grid. A pixel is foreground iff its value
// is at least threshold; invert swaps foreground and background.
func Binarize(g *Grid, threshold int, invert bool) (*Mask, error) {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(g.Pix) != g.Width*g.Height {
		return nil, ErrPixelCount
	}
	m := &Mask{width: g.Width, height: g.Height, bits: make([]bool, len(g.Pix))}
	for i, v := range g.Pix {
		m.bits[i] = (int(v) >= threshold) != invert
	}
	return m, nil
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At reports whether (x, y) is foreground. Pixels outside the mask are
// background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set changes pixel (x, y). Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, fg bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = fg
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same size and pixels.
func (m *Mask) Equal(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, b := range m.bits {
		if other.bits[i] != b {
			return false
		}
	}
	return true
}

// Covers reports whether every foreground pixel of other is also foreground
// in m. Both masks must have the same size.
func (m *Mask) Covers(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, b := range other.bits {
		if b && !m.bits[i] {
			return false
		}
	}
	return true
}

// Image returns the mask as a grayscale image with foreground white.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(m.Bounds())
	for i, b := range m.bits {
		if b {
			img.Pix[i] = 255
		}
	}
	return img
}

// String renders the mask in the ParseMask format, one row per line.
func (m *Mask) String() string {
	var sb strings.Builder
	for y := range m.height {
		for x := range m.width {
			if m.bits[y*m.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
