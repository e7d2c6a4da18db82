// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"

	"github.com/jetsetilly/m65832dis/curated"
)

// Sentinal error returned by NewWidth().
const (
	InvalidWidth = "registers: invalid width (%d bits)"
)

// Width is the size of the accumulator or the index registers, expressed as a
// number of bytes.
type Width int

// List of valid Width values.
const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// NewWidth returns the Width for a number of bits. Only 8, 16 and 32 are
// valid.
func NewWidth(bits int) (Width, error) {
	switch bits {
	case 8:
		return Width8, nil
	case 16:
		return Width16, nil
	case 32:
		return Width32, nil
	}
	return Width16, curated.Errorf(InvalidWidth, bits)
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "8bit"
	case Width16:
		return "16bit"
	case Width32:
		return "32bit"
	}
	return fmt.Sprintf("invalid width (%d)", int(w))
}

// Valid returns true if width is one of the three valid widths.
func (w Width) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Bytes returns the number of bytes in an operand of this width.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the number of bits in an operand of this width.
func (w Width) Bits() int {
	return int(w) * 8
}

// Next returns the next largest width. The largest width wraps around to the
// smallest.
func (w Width) Next() Width {
	switch w {
	case Width8:
		return Width16
	case Width16:
		return Width32
	}
	return Width8
}
