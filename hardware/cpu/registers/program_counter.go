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
)

// ProgramCounter represents the PC register of the CPU. The M65832 has a 32bit
// program counter.
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint32) ProgramCounter {
	return ProgramCounter{value: val}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("$%08X", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val
}

// Add a value to the PC. Returns true if the addition wrapped around.
func (pc *ProgramCounter) Add(val uint32) bool {
	v := pc.value
	pc.value += val
	return pc.value < v
}

// Offset adds a signed offset to the PC. The offset is sign extended from the
// number of bytes given.
func (pc *ProgramCounter) Offset(offset uint32, bytes int) {
	switch bytes {
	case 1:
		pc.value += uint32(int32(int8(offset)))
	case 2:
		pc.value += uint32(int32(int16(offset)))
	default:
		pc.value += offset
	}
}
