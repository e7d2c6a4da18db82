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
	"strings"

	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/hardware/cpu/instructions"
)

// Sentinal error returned by Decode() when there are not enough bytes for the
// instruction.
const (
	Truncated = "disassembly: truncated instruction at $%08X (%d bytes available)"
)

// annotation for instructions that trap when executed in 32bit mode.
const illegalAnnotation = " ; illegal in 32-bit mode"

// result of decoding a single instruction.
type result struct {
	text   string
	length int
	defn   instructions.Definition

	// the instruction is not valid in the current mode
	illegal bool

	// the text is a raw byte directive
	raw bool
}

// RawDirective returns the bytes as a raw byte directive. eg. ".BYTE $02,$FF".
func RawDirective(b []byte) string {
	s := strings.Builder{}
	s.WriteString(".BYTE ")
	for i, v := range b {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(fmt.Sprintf("$%02X", v))
	}
	return s.String()
}

func rawResult(b []byte, defn instructions.Definition) result {
	return result{
		text:   RawDirective(b),
		length: len(b),
		defn:   defn,
		raw:    true,
	}
}

// decode a single instruction. the state is not changed. the boolean return
// value is false if there are not enough bytes in buf for the instruction.
func decode(buf []byte, address uint32, st State) (result, bool) {
	if len(buf) == 0 {
		return result{}, false
	}

	wide := st.Wide()
	acc, idx := st.widths()
	opcode := buf[0]

	if opcode == instructions.ExtendedPrefix {
		return decodeExtended(buf, address, st)
	}

	defn := instructions.Base[opcode]

	// WDM is the prefix for 32bit addressing in 32bit mode and has no meaning
	// on its own
	if wide && opcode == instructions.OpWDM {
		return rawResult(buf[:1], defn), true
	}

	n := defn.Bytes(acc, idx)
	if len(buf) < n {
		return result{}, false
	}

	r := result{
		text:   render(defn.Mnemonic, addrModeDecoration(defn.AddressingMode, buf[1:n], address, n, wide)),
		length: n,
		defn:   defn,
	}

	if wide && defn.AddressingMode.IsLegacy() {
		r.text += illegalAnnotation
		r.illegal = true
	}

	return r, true
}

// decode an instruction from the extended table. buf starts with the prefix
// byte.
func decodeExtended(buf []byte, address uint32, st State) (result, bool) {
	if len(buf) < 2 {
		return result{}, false
	}

	wide := st.Wide()
	acc, idx := st.widths()
	defn := instructions.Extended[buf[1]]

	switch defn.AddressingMode {
	case instructions.Undefined:
		return rawResult(buf[:2], defn), true
	case instructions.ExtendedALU:
		return decodeExtendedALU(buf, defn, wide)
	case instructions.Shifter:
		return decodeShifter(buf, defn)
	case instructions.Extend:
		return decodeExtend(buf, defn)
	}

	n := defn.Bytes(acc, idx)
	if len(buf) < n {
		return result{}, false
	}

	return result{
		text:   render(defn.Mnemonic, addrModeDecoration(defn.AddressingMode, buf[2:n], address, n, wide)),
		length: n,
		defn:   defn,
	}, true
}

func render(mnemonic string, operand string) string {
	if operand == "" {
		return mnemonic
	}
	return fmt.Sprintf("%s %s", mnemonic, operand)
}

// update state after a successful decode.
func (st *State) update(buf []byte, r result) {
	if r.raw || !r.defn.IsModeSwitch() {
		return
	}
	st.modeSwitch(buf[0], buf[1])
}

// DecodeOne decodes the instruction at the start of buf. The rendered
// instruction is written to out and terminated with a zero byte. If out is too
// small the rendering is truncated but is always terminated.
//
// The address argument is the address of the first byte in buf and is used to
// calculate branch destinations.
//
// Returns the number of bytes in the instruction. If there are not enough bytes
// in buf for the instruction then zero is returned, nothing is written to out
// and the state is unchanged.
//
// The state is updated if the instruction is REP or SEP. A nil state is
// equivalent to a new state from NewState(). A width in the state that is not
// one of the valid widths is treated as 16bit.
func DecodeOne(buf []byte, address uint32, st *State, out []byte) int {
	if st == nil {
		st = NewState()
	}

	r, ok := decode(buf, address, *st)
	if !ok {
		return 0
	}
	st.update(buf, r)

	if len(out) > 0 {
		n := copy(out[:len(out)-1], r.text)
		out[n] = 0
	}

	return r.length
}

// Decode is the same as DecodeOne() except that it returns a new Entry
// instance. If there are not enough bytes in buf for the instruction then the
// Truncated error is returned.
func Decode(buf []byte, address uint32, st *State) (*Entry, error) {
	if st == nil {
		st = NewState()
	}

	r, ok := decode(buf, address, *st)
	if !ok {
		return nil, curated.Errorf(Truncated, address, len(buf))
	}
	st.update(buf, r)

	return newEntry(address, buf[:r.length], r), nil
}
