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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
)

// ExtendedPrefix is the opcode that introduces an instruction from the
// extended opcode table.
const ExtendedPrefix = 0x02

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// the instruction is in the extended opcode table. the instruction is
	// preceded by the ExtendedPrefix byte
	Extended bool

	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.Defined() {
		return "undefined instruction"
	}
	if defn.Extended {
		return fmt.Sprintf("%02x %02x %s [mode=%s effect=%s]", ExtendedPrefix, defn.OpCode, defn.Mnemonic, defn.AddressingMode, defn.Effect)
	}
	return fmt.Sprintf("%02x %s [mode=%s effect=%s]", defn.OpCode, defn.Mnemonic, defn.AddressingMode, defn.Effect)
}

// Defined returns false if the definition does not describe an instruction.
func (defn Definition) Defined() bool {
	return defn.AddressingMode != Undefined
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == RelativeLong) && defn.Effect == Flow
}

// IsModeSwitch returns true if the instruction changes the accumulator or index
// widths. Only REP and SEP do this.
func (defn Definition) IsModeSwitch() bool {
	return !defn.Extended && (defn.OpCode == OpREP || defn.OpCode == OpSEP)
}

// Bytes returns the minimum number of bytes in the instruction, including the
// opcode and any prefix.
func (defn Definition) Bytes(acc registers.Width, idx registers.Width) int {
	n := 1 + defn.AddressingMode.OperandBytes(acc, idx)
	if defn.Extended {
		n++
	}
	return n
}
