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

// Package debugger implements the interactive stepping mode. Instructions are
// decoded one at a time as keys are pressed and the decoding state can be
// changed between instructions, which is useful when the REP and SEP
// instructions that set the register widths are not in the decoded data.
//
// The Stepper type does the work and can be used with any input and output.
// RunTerminal() runs a Stepper with the process's terminal in cbreak mode:
//
//	s := debugger.NewStepper(data, origin, nil, attr)
//	err := debugger.RunTerminal(ctx, s)
package debugger
