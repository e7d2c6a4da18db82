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

import "fmt"

// OperandSize is the size field of an extended ALU mode byte.
type OperandSize uint8

// List of operand sizes. SizeReserved does not describe a valid instruction.
const (
	SizeByte OperandSize = iota
	SizeWord
	SizeLong
	SizeReserved
)

// Suffix returns the mnemonic suffix for the operand size. Full machine width
// operations have no suffix.
func (s OperandSize) Suffix() string {
	switch s {
	case SizeByte:
		return ".B"
	case SizeWord:
		return ".W"
	}
	return ""
}

// Bytes returns the number of bytes in an immediate value of the operand size.
func (s OperandSize) Bytes() int {
	switch s {
	case SizeByte:
		return 1
	case SizeWord:
		return 2
	case SizeLong:
		return 4
	}
	return 0
}

// SourceMode is the addressing sub-mode field of an extended ALU mode byte.
type SourceMode uint8

// List of defined source modes. Values not listed are undefined.
const (
	SourceDirectPage            SourceMode = 0x00 // dp
	SourceDirectPageX           SourceMode = 0x01 // dp,X
	SourceDirectPageY           SourceMode = 0x02 // dp,Y
	SourceDirectIndexedIndirect SourceMode = 0x03 // (dp,X)
	SourceDirectIndirectIndexed SourceMode = 0x04 // (dp),Y
	SourceDirectIndirect        SourceMode = 0x05 // (dp)
	SourceDirectIndirectLong    SourceMode = 0x06 // [dp]
	SourceDirectIndirectLongY   SourceMode = 0x07 // [dp],Y

	SourceAbsolute                SourceMode = 0x08 // abs
	SourceAbsoluteX               SourceMode = 0x09 // abs,X
	SourceAbsoluteY               SourceMode = 0x0a // abs,Y
	SourceAbsoluteIndirect        SourceMode = 0x0b // (abs)
	SourceAbsoluteIndexedIndirect SourceMode = 0x0c // (abs,X)
	SourceAbsoluteIndirectLong    SourceMode = 0x0d // [abs]

	SourceAbsolute32                SourceMode = 0x10 // abs32
	SourceAbsolute32X               SourceMode = 0x11 // abs32,X
	SourceAbsolute32Y               SourceMode = 0x12 // abs32,Y
	SourceAbsolute32Indirect        SourceMode = 0x13 // (abs32)
	SourceAbsolute32IndexedIndirect SourceMode = 0x14 // (abs32,X)
	SourceAbsolute32IndirectLong    SourceMode = 0x15 // [abs32]

	SourceImmediate   SourceMode = 0x18 // #imm, sized by the operand size
	SourceAccumulator SourceMode = 0x19 // A
	SourceX           SourceMode = 0x1a // X
	SourceY           SourceMode = 0x1b // Y

	SourceStackRelative          SourceMode = 0x1c // sr,S
	SourceStackRelativeIndirectY SourceMode = 0x1d // (sr,S),Y
)

// Defined returns true if the source mode describes a valid operand.
func (m SourceMode) Defined() bool {
	switch {
	case m <= SourceDirectIndirectLongY:
		return true
	case m >= SourceAbsolute && m <= SourceAbsoluteIndirectLong:
		return true
	case m >= SourceAbsolute32 && m <= SourceAbsolute32IndirectLong:
		return true
	case m >= SourceImmediate && m <= SourceStackRelativeIndirectY:
		return true
	}
	return false
}

// IsDirectPage returns true if the source operand is a direct page address.
func (m SourceMode) IsDirectPage() bool {
	return m <= SourceDirectIndirectLongY
}

// IsRegister returns true if the source operand is one of the A, X or Y
// registers and has no operand bytes.
func (m SourceMode) IsRegister() bool {
	return m == SourceAccumulator || m == SourceX || m == SourceY
}

// OperandBytes returns the number of bytes used by the source operand.
// Immediate operands are sized by the operand size field.
func (m SourceMode) OperandBytes(size OperandSize) int {
	switch {
	case m.IsDirectPage():
		return 1
	case m >= SourceAbsolute && m <= SourceAbsoluteIndirectLong:
		return 2
	case m >= SourceAbsolute32 && m <= SourceAbsolute32IndirectLong:
		return 4
	case m == SourceImmediate:
		return size.Bytes()
	case m == SourceStackRelative || m == SourceStackRelativeIndirectY:
		return 1
	}
	return 0
}

func (m SourceMode) String() string {
	switch m {
	case SourceDirectPage:
		return "dp"
	case SourceDirectPageX:
		return "dp,X"
	case SourceDirectPageY:
		return "dp,Y"
	case SourceDirectIndexedIndirect:
		return "(dp,X)"
	case SourceDirectIndirectIndexed:
		return "(dp),Y"
	case SourceDirectIndirect:
		return "(dp)"
	case SourceDirectIndirectLong:
		return "[dp]"
	case SourceDirectIndirectLongY:
		return "[dp],Y"
	case SourceAbsolute:
		return "abs"
	case SourceAbsoluteX:
		return "abs,X"
	case SourceAbsoluteY:
		return "abs,Y"
	case SourceAbsoluteIndirect:
		return "(abs)"
	case SourceAbsoluteIndexedIndirect:
		return "(abs,X)"
	case SourceAbsoluteIndirectLong:
		return "[abs]"
	case SourceAbsolute32:
		return "abs32"
	case SourceAbsolute32X:
		return "abs32,X"
	case SourceAbsolute32Y:
		return "abs32,Y"
	case SourceAbsolute32Indirect:
		return "(abs32)"
	case SourceAbsolute32IndexedIndirect:
		return "(abs32,X)"
	case SourceAbsolute32IndirectLong:
		return "[abs32]"
	case SourceImmediate:
		return "#imm"
	case SourceAccumulator:
		return "A"
	case SourceX:
		return "X"
	case SourceY:
		return "Y"
	case SourceStackRelative:
		return "sr,S"
	case SourceStackRelativeIndirectY:
		return "(sr,S),Y"
	}
	return fmt.Sprintf("undefined source mode (%#02x)", uint8(m))
}

// ModeByte is the byte that follows an extended ALU opcode.
//
//	bits 7-6	operand size
//	bit 5		destination is a direct page operand (otherwise the accumulator)
//	bits 4-0	source mode
type ModeByte uint8

// Size returns the operand size field.
func (b ModeByte) Size() OperandSize {
	return OperandSize(b>>6) & 0x03
}

// Target returns true if a destination byte follows the mode byte.
func (b ModeByte) Target() bool {
	return b&0x20 == 0x20
}

// Source returns the source mode field.
func (b ModeByte) Source() SourceMode {
	return SourceMode(b & 0x1f)
}

// Defined returns true if the mode byte describes a valid operand
// combination.
func (b ModeByte) Defined() bool {
	return b.Size() != SizeReserved && b.Source().Defined()
}

// OperandBytes returns the number of bytes that follow the mode byte for the
// extended ALU instruction. Unary instructions with a direct page source mode
// have no source operand.
func (b ModeByte) OperandBytes(opcode uint8) int {
	n := 0
	if b.Target() {
		n++
	}
	if b.NoSource(opcode) {
		return n
	}
	return n + b.Source().OperandBytes(b.Size())
}

// NoSource returns true if the instruction operates on the destination only.
// This is the case for the unary instructions and for STZ with a direct page
// destination, when the source mode is SourceDirectPage.
func (b ModeByte) NoSource(opcode uint8) bool {
	if b.Source() != SourceDirectPage {
		return false
	}
	return IsUnaryALU(opcode) || (opcode == OpSTZ && b.Target())
}

func (b ModeByte) String() string {
	return fmt.Sprintf("size=%d target=%v source=%s", b.Size(), b.Target(), b.Source())
}

// ShiftOperation is the operation field of the barrel shifter instruction.
type ShiftOperation uint8

// List of shift operations. Values greater than ShiftROR are undefined.
const (
	ShiftSHL ShiftOperation = iota
	ShiftSHR
	ShiftSAR
	ShiftROL
	ShiftROR
)

// ShiftCountA is the shift count that indicates the count is taken from the
// accumulator.
const ShiftCountA = 0x1f

var shiftMnemonics = [...]string{"SHL", "SHR", "SAR", "ROL", "ROR"}

// DecodeShift splits the first operand byte of the barrel shifter instruction
// into the operation and the shift count.
func DecodeShift(b uint8) (ShiftOperation, uint8) {
	return ShiftOperation(b >> 5), b & 0x1f
}

// Mnemonic returns the mnemonic for the shift operation. The second value is
// false if the operation is undefined.
func (op ShiftOperation) Mnemonic() (string, bool) {
	if int(op) >= len(shiftMnemonics) {
		return "", false
	}
	return shiftMnemonics[op], true
}

var extendMnemonics = [...]string{"SEXT8", "SEXT16", "ZEXT8", "ZEXT16", "CLZ", "CTZ", "POPCNT"}

// ExtendMnemonic returns the mnemonic for the extend instruction sub-operation.
// The second value is false if the sub-operation is undefined.
func ExtendMnemonic(subop uint8) (string, bool) {
	if int(subop) >= len(extendMnemonics) {
		return "", false
	}
	return extendMnemonics[subop], true
}
