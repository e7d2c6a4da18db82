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
	"strings"
)

// StatusBits is the immediate operand of the REP and SEP instructions. Each
// set bit in the value selects the corresponding bit of the processor status
// register.
type StatusBits uint8

// List of status bits. Of these only the IndexWidth and AccumulatorWidth bits
// have any effect on how instructions are decoded.
const (
	Carry            StatusBits = 0x01
	Zero             StatusBits = 0x02
	InterruptDisable StatusBits = 0x04
	DecimalMode      StatusBits = 0x08
	IndexWidth       StatusBits = 0x10
	AccumulatorWidth StatusBits = 0x20
	Overflow         StatusBits = 0x40
	Sign             StatusBits = 0x80
)

// String returns the bits as a sequence of flag letters. An upper case letter
// indicates the bit is selected.
func (sb StatusBits) String() string {
	s := strings.Builder{}

	const flags = "NVMXDIZC"
	for i := 0; i < len(flags); i++ {
		if sb&(0x80>>i) != 0 {
			s.WriteByte(flags[i])
		} else {
			s.WriteByte(flags[i] + ('a' - 'A'))
		}
	}

	return s.String()
}

// Rep returns the widths that result from clearing the selected bits. Clearing
// a width bit selects 16bit operands.
func (sb StatusBits) Rep(acc Width, idx Width) (Width, Width) {
	if sb&AccumulatorWidth == AccumulatorWidth {
		acc = Width16
	}
	if sb&IndexWidth == IndexWidth {
		idx = Width16
	}
	return acc, idx
}

// Sep returns the widths that result from setting the selected bits. Setting
// a width bit selects 8bit operands.
func (sb StatusBits) Sep(acc Width, idx Width) (Width, Width) {
	if sb&AccumulatorWidth == AccumulatorWidth {
		acc = Width8
	}
	if sb&IndexWidth == IndexWidth {
		idx = Width8
	}
	return acc, idx
}
