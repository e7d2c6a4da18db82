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

// Package instructions defines the base and extended instruction tables of
// the M65832 processor.
//
// The Base table covers the single byte opcode space shared with the 6502 and
// 65816. Opcodes with the low two bits set are laid out in regular slots,
// selected by bits 4 to 2, except for the opcodes listed by SlotException(),
// which are resolved first.
//
// The Extended table covers the opcodes that follow the ExtendedPrefix byte.
// Extended ALU instructions are followed by a ModeByte which describes the
// operand size, the destination and the source of the operation.
package instructions
