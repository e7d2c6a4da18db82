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

// State is the processor state that affects how instructions are decoded. The
// State is owned by the caller and is passed to every decode function. Only
// the REP and SEP instructions change the State.
//
// A State must not be shared between goroutines without synchronisation.
type State struct {
	AccumulatorWidth registers.Width
	IndexWidth       registers.Width

	// the emulation flag is carried with the state but the M65832 decodes
	// instructions in emulation mode the same as it does in native mode
	Emulation bool
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	st := &State{}
	st.Init()
	return st
}

// Init sets the state to the processor defaults: 16bit accumulator, 16bit
// index registers and native mode.
func (st *State) Init() {
	st.AccumulatorWidth = registers.Width16
	st.IndexWidth = registers.Width16
	st.Emulation = false
}

func (st State) String() string {
	mode := "native"
	if st.Emulation {
		mode = "emulation"
	}
	return fmt.Sprintf("A=%s X=%s %s", st.AccumulatorWidth, st.IndexWidth, mode)
}

// Wide returns true if the state describes 32bit mode. The processor is in
// 32bit mode if either of the widths is 32bit.
func (st State) Wide() bool {
	return st.AccumulatorWidth == registers.Width32 || st.IndexWidth == registers.Width32
}

// widths returns the accumulator and index widths to use for decoding. In
// 32bit mode both widths are 32bit. An invalid width is decoded as 16bit, the
// same as the processor default.
func (st State) widths() (registers.Width, registers.Width) {
	if st.Wide() {
		return registers.Width32, registers.Width32
	}

	acc, idx := st.AccumulatorWidth, st.IndexWidth
	if !acc.Valid() {
		acc = registers.Width16
	}
	if !idx.Valid() {
		idx = registers.Width16
	}
	return acc, idx
}

// apply the operand of a REP or SEP instruction.
func (st *State) modeSwitch(opcode uint8, operand uint8) {
	bits := registers.StatusBits(operand)
	switch opcode {
	case instructions.OpREP:
		st.AccumulatorWidth, st.IndexWidth = bits.Rep(st.AccumulatorWidth, st.IndexWidth)
	case instructions.OpSEP:
		st.AccumulatorWidth, st.IndexWidth = bits.Sep(st.AccumulatorWidth, st.IndexWidth)
	}
}
