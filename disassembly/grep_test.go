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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/test"
)

func TestGrep(t *testing.T) {
	w := &test.CompareWriter{}
	attr := disassembly.WriteAttr{Addresses: true}

	itr := disassembly.NewIteration(program, 0x8000, nil)
	n, err := disassembly.Grep(w, itr, attr, disassembly.GrepMnemonic, "lda", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, w.Compare("00008002  LDA #$12\n00008006  LDA #$1234\n"))

	// case sensitive search does not match
	w.Clear()
	n, _ = disassembly.Grep(w, itr, attr, disassembly.GrepMnemonic, "lda", true)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, w.Compare(""))

	// the operand scope does not include the mnemonic
	w.Clear()
	n, _ = disassembly.Grep(w, itr, attr, disassembly.GrepOperand, "R1", true)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, w.Compare("0000800A  LD.B A,R1\n"))

	// the all scope includes the address column
	w.Clear()
	n, _ = disassembly.Grep(w, itr, attr, disassembly.GrepAll, "8009", true)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, w.Compare("00008009  NOP\n"))

	// the effect scope matches the effect category name
	w.Clear()
	n, err = disassembly.Grep(w, itr, attr, disassembly.GrepEffect, "modeswitch", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, w.Compare("00008000  SEP #$20\n00008004  REP #$20\n"))
}

func TestGrepWriteError(t *testing.T) {
	itr := disassembly.NewIteration(program, 0x8000, nil)
	n, err := disassembly.Grep(failingWriter{}, itr, disassembly.WriteAttr{}, disassembly.GrepMnemonic, "lda", false)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, curated.Is(err, disassembly.WriteError))
}
