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

// Package registers contains the register types that are needed to decode
// M65832 instructions. These are the program counter, used when calculating
// branch destinations, the operand widths of the accumulator and index
// registers, and the status bits selected by the REP and SEP instructions.
//
// The status bits are not a full status register. Only the width bits have
// any effect on decoding and the StatusBits type is used to apply the operand
// of a REP or SEP instruction to a pair of widths:
//
//	acc, idx = registers.StatusBits(0x20).Sep(acc, idx)
//
// In this example the accumulator width is now 8bit and the index width is
// unchanged.
package registers
