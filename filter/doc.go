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

// Package filter implements disassembly filters written in Lua. A filter
// script is consulted for every decoded instruction and can rewrite the
// rendered text or suppress the line entirely.
//
// An example script that suppresses NOP instructions:
//
//	function filter(address, bytes, text, info)
//		if info.mnemonic == "NOP" then
//			return false
//		end
//		return nil
//	end
//
// The arguments are the address of the instruction, a table of the
// instruction bytes (indexed from 1), the rendered text and a table of
// additional information with the fields mnemonic, operand, length, illegal,
// raw, effect and branch. The effect field is one of General, Flow,
// Subroutine, Interrupt or ModeSwitch.
package filter
