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

	"github.com/jetsetilly/m65832dis/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint32

	// copy of the bytes that make up the instruction
	Bytes  []byte
	Length int

	// the rendered instruction
	Text string

	// the definition of the instruction. for instructions rendered as a raw
	// directive this will be the definition of the opcode that could not be
	// decoded, which may be undefined
	Defn instructions.Definition

	// the instruction traps in the current mode
	Illegal bool

	// the instruction could not be decoded and has been rendered as a raw
	// directive
	Raw bool
}

func newEntry(address uint32, b []byte, r result) *Entry {
	e := &Entry{
		Address: address,
		Bytes:   make([]byte, len(b)),
		Length:  r.length,
		Text:    r.text,
		Defn:    r.defn,
		Illegal: r.illegal,
		Raw:     r.raw,
	}
	copy(e.Bytes, b)
	return e
}

func (e *Entry) String() string {
	return fmt.Sprintf("%08X %s", e.Address, e.Text)
}

// Mnemonic returns the first field of the rendered instruction.
func (e *Entry) Mnemonic() string {
	m, _, _ := strings.Cut(e.Text, " ")
	return m
}

// Operand returns the rendered instruction with the mnemonic removed.
func (e *Entry) Operand() string {
	_, o, _ := strings.Cut(e.Text, " ")
	return o
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e *Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	return s.String()
}
