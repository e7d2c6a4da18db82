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

// Package disassembly decodes M65832 machine code into assembly language text.
//
// The smallest unit of work is DecodeOne(), which decodes a single instruction
// into a caller supplied byte slice. Decode() does the same but returns an
// Entry, which is more convenient for Go callers. DecodeRange() decodes every
// instruction in a byte slice and calls a function for each instruction.
//
// The width of immediate operands depends on the accumulator and index widths
// of the processor. These are held in the State type, which is passed to every
// decode function:
//
//	st := disassembly.NewState()
//	e, err := disassembly.Decode([]byte{0xa9, 0x34, 0x12}, 0x8000, st)
//
// In this example e.Text will be "LDA #$1234". Decoding a REP or SEP
// instruction changes the State, so that the instructions that follow it are
// decoded correctly. The State is never changed when decoding fails.
//
// Decoding never fails because of the content of the data. Opcodes that are
// not defined are rendered as a raw ".BYTE" directive. The only failure is when
// there are not enough bytes for the instruction. In that case DecodeOne()
// returns zero and Decode() returns the Truncated error.
//
// Direct page addresses that are a multiple of four are rendered as the
// general purpose register they alias. For example, address $04 is rendered
// as R1. Stack relative offsets, block move banks and immediate values are not
// direct page addresses and are always rendered as hex values.
//
// The Iteration type and the Write() function are built on top of Decode().
// Write() produces a complete listing with optional address and bytecode
// columns.
package disassembly
