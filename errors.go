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
	"errors"
	"strconv"
)

var (
	// ErrInvalidDimensions indicates a grid or mask with zero width or height.
	ErrInvalidDimensions = errors.New("vectorize: image must have at least one row and one column")

	// ErrPixelCount indicates a pixel buffer whose length does not match
	// the stated dimensions.
	ErrPixelCount = errors.New("vectorize: pixel buffer length does not match dimensions")

	// ErrConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrConnectivity = errors.New("vectorize: connectivity must be 4 or 8")

	// ErrChain indicates an unknown chain approximation mode.
	ErrChain = errors.New("vectorize: unknown chain approximation")
)

// EncodingError is returned by the emitters when a path coordinate cannot be
// written because it is NaN or infinite.
type EncodingError struct {
	Path  int     // index of the offending path in the document
	Value float64 // the non-finite coordinate
}

func (e *EncodingError) Error() string {
	return "vectorize: path " + strconv.Itoa(e.Path) +
		": non-finite coordinate " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}
