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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/m65832dis/hardware/cpu/instructions"
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
)

// little endian value of up to four bytes.
func value(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// immediate value formatted according to the number of bytes.
func immediate(b []byte) string {
	switch len(b) {
	case 1:
		return fmt.Sprintf("#$%02X", b[0])
	case 2:
		return fmt.Sprintf("#$%04X", value(b))
	}
	return fmt.Sprintf("#$%08X", value(b))
}

// absolute addresses are relative to the B register in 32bit mode.
func absolute(v uint32, wide bool) string {
	if wide {
		return fmt.Sprintf("B+$%04X", v&0xffff)
	}
	return fmt.Sprintf("$%04X", v&0xffff)
}

// branch destination is relative to the address of the next instruction. only
// the lower 16 bits of the destination are shown.
func branchDestination(address uint32, length int, offset []byte) string {
	pc := registers.NewProgramCounter(address)
	pc.Add(uint32(length))
	pc.Offset(value(offset), len(offset))
	return fmt.Sprintf("$%04X", pc.Address()&0xffff)
}

// add decoration to operand according to the addressing mode. the operand
// slice contains only the bytes that follow the opcode.
func addrModeDecoration(mode instructions.AddressingMode, operand []byte, address uint32, length int, wide bool) string {
	switch mode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"

	case instructions.Immediate, instructions.ImmediateM, instructions.ImmediateX, instructions.Immediate32:
		return immediate(operand)

	case instructions.DirectPage:
		return directPage(operand[0])
	case instructions.DirectPageX:
		return fmt.Sprintf("%s,X", directPage(operand[0]))
	case instructions.DirectPageY:
		return fmt.Sprintf("%s,Y", directPage(operand[0]))
	case instructions.DirectIndirect:
		return fmt.Sprintf("(%s)", directPage(operand[0]))
	case instructions.DirectIndexedIndirect:
		return fmt.Sprintf("(%s,X)", directPage(operand[0]))
	case instructions.DirectIndirectIndexed:
		return fmt.Sprintf("(%s),Y", directPage(operand[0]))
	case instructions.DirectIndirectLong:
		return fmt.Sprintf("[%s]", directPage(operand[0]))
	case instructions.DirectIndirectLongY:
		return fmt.Sprintf("[%s],Y", directPage(operand[0]))

	case instructions.StackRelative:
		return fmt.Sprintf("$%02X,S", operand[0])
	case instructions.StackRelativeIndirectY:
		return fmt.Sprintf("($%02X,S),Y", operand[0])

	case instructions.Absolute:
		return absolute(value(operand), wide)
	case instructions.AbsoluteX:
		return fmt.Sprintf("%s,X", absolute(value(operand), wide))
	case instructions.AbsoluteY:
		return fmt.Sprintf("%s,Y", absolute(value(operand), wide))
	case instructions.AbsoluteIndirect:
		return fmt.Sprintf("(%s)", absolute(value(operand), wide))
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("(%s,X)", absolute(value(operand), wide))
	case instructions.AbsoluteIndirectLong:
		// the pointer is a 16bit address even though the operand is three bytes
		return fmt.Sprintf("[%s]", absolute(value(operand[:2]), wide))

	case instructions.AbsoluteLong:
		return fmt.Sprintf("$%06X", value(operand))
	case instructions.AbsoluteLongX:
		return fmt.Sprintf("$%06X,X", value(operand))

	case instructions.Relative, instructions.RelativeLong:
		return branchDestination(address, length, operand)

	case instructions.BlockMove:
		// destination bank is the first operand byte but is written second
		return fmt.Sprintf("$%02X,$%02X", operand[1], operand[0])

	case instructions.FPURegisters:
		return fmt.Sprintf("F%d, F%d", operand[0]>>4, operand[0]&0x0f)
	case instructions.FPURegister:
		return fmt.Sprintf("F%d", operand[0]>>4)
	case instructions.FPUDirectPage:
		return fmt.Sprintf("F%d, $%02X", operand[0]&0x0f, operand[1])
	case instructions.FPUAbsolute:
		return fmt.Sprintf("F%d, $%04X", operand[0]&0x0f, value(operand[1:]))
	case instructions.FPUIndirect:
		return fmt.Sprintf("F%d, (R%d)", operand[0]>>4, operand[0]&0x0f)
	case instructions.FPUAbsolute32:
		return fmt.Sprintf("F%d, $%08X", operand[0]&0x0f, value(operand[1:]))
	}

	return ""
}
