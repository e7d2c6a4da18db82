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
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
)

// AddressingMode describes the method data for the instruction should be
// received and how the operand should be presented.
type AddressingMode int

// List of supported addressing modes.
const (
	Undefined AddressingMode = iota

	Implied
	Accumulator // A

	Immediate   // #$xx
	ImmediateM  // immediate sized by the accumulator width
	ImmediateX  // immediate sized by the index width
	Immediate32 // #$xxxxxxxx

	DirectPage  // $xx
	DirectPageX // $xx,X
	DirectPageY // $xx,Y

	Absolute  // $xxxx
	AbsoluteX // $xxxx,X
	AbsoluteY // $xxxx,Y

	AbsoluteLong  // $xxxxxx
	AbsoluteLongX // $xxxxxx,X

	DirectIndirect        // ($xx)
	DirectIndexedIndirect // ($xx,X)
	DirectIndirectIndexed // ($xx),Y
	DirectIndirectLong    // [$xx]
	DirectIndirectLongY   // [$xx],Y

	StackRelative          // $xx,S
	StackRelativeIndirectY // ($xx,S),Y

	Relative     // branch with a signed offset
	RelativeLong // branch with a signed 16bit offset

	BlockMove // $xx,$xx

	AbsoluteIndirect        // ($xxxx)
	AbsoluteIndexedIndirect // ($xxxx,X)
	AbsoluteIndirectLong    // [$xxxx]

	// FPU addressing modes. every FPU instruction has a register byte as the
	// first operand byte.
	FPURegisters  // Fd, Fs
	FPURegister   // Fd
	FPUDirectPage // Fn, $xx
	FPUAbsolute   // Fn, $xxxx
	FPUIndirect   // Fn, (Rm)
	FPUAbsolute32 // Fn, $xxxxxxxx

	// the following modes are only found in the extended opcode space. the
	// operands of these modes are described by their own encoding.
	ExtendedALU // mode byte, optional destination, source operand
	Shifter     // op|count, destination, source
	Extend      // sub-op, destination, source
)

func (m AddressingMode) String() string {
	switch m {
	case Undefined:
		return "Undefined"
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ImmediateM:
		return "ImmediateM"
	case ImmediateX:
		return "ImmediateX"
	case Immediate32:
		return "Immediate32"
	case DirectPage:
		return "DirectPage"
	case DirectPageX:
		return "DirectPageX"
	case DirectPageY:
		return "DirectPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongX:
		return "AbsoluteLongX"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndexedIndirect:
		return "DirectIndexedIndirect"
	case DirectIndirectIndexed:
		return "DirectIndirectIndexed"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectIndirectLongY:
		return "DirectIndirectLongY"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectY:
		return "StackRelativeIndirectY"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case BlockMove:
		return "BlockMove"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case FPURegisters:
		return "FPURegisters"
	case FPURegister:
		return "FPURegister"
	case FPUDirectPage:
		return "FPUDirectPage"
	case FPUAbsolute:
		return "FPUAbsolute"
	case FPUIndirect:
		return "FPUIndirect"
	case FPUAbsolute32:
		return "FPUAbsolute32"
	case ExtendedALU:
		return "ExtendedALU"
	case Shifter:
		return "Shifter"
	case Extend:
		return "Extend"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode for the
// addressing mode. The accumulator and index widths should already reflect
// 32bit mode, in which both widths are 32bit if either of them is.
//
// For the ExtendedALU mode the value is the minimum number of bytes, which is
// the mode byte alone. The full length depends on the content of the mode byte.
func (m AddressingMode) OperandBytes(acc registers.Width, idx registers.Width) int {
	if m.IsDirectPage() {
		return 1
	}

	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate:
		return 1
	case ImmediateM:
		return acc.Bytes()
	case ImmediateX:
		return idx.Bytes()
	case Immediate32:
		return 4
	case StackRelative, StackRelativeIndirectY:
		return 1
	case Relative:
		return 1
	case Absolute, AbsoluteX, AbsoluteY:
		return 2
	case AbsoluteIndirect, AbsoluteIndexedIndirect:
		return 2
	case RelativeLong, BlockMove:
		return 2
	case AbsoluteLong, AbsoluteLongX, AbsoluteIndirectLong:
		return 3
	case FPURegisters, FPURegister, FPUIndirect:
		return 1
	case FPUDirectPage:
		return 2
	case FPUAbsolute:
		return 3
	case FPUAbsolute32:
		return 5
	case ExtendedALU:
		return 1
	case Shifter, Extend:
		return 3
	}
	return 0
}

// IsLegacy returns true if the addressing mode exists only for compatibility
// with 24bit addressing. Instructions using these modes trap when executed in
// 32bit mode.
func (m AddressingMode) IsLegacy() bool {
	return m == AbsoluteLong || m == AbsoluteLongX || m == AbsoluteIndirectLong
}

// IsDirectPage returns true if the operand of the addressing mode is a direct
// page address. Direct page addresses can be rendered as register aliases.
func (m AddressingMode) IsDirectPage() bool {
	switch m {
	case DirectPage, DirectPageX, DirectPageY:
		return true
	case DirectIndirect, DirectIndexedIndirect, DirectIndirectIndexed:
		return true
	case DirectIndirectLong, DirectIndirectLongY:
		return true
	}
	return false
}
