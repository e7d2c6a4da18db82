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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
	"github.com/jetsetilly/m65832dis/test"
)

func TestWidth(t *testing.T) {
	w, err := registers.NewWidth(8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, registers.Width8)
	test.ExpectEquality(t, w.Bytes(), 1)
	test.ExpectEquality(t, w.Bits(), 8)

	w, err = registers.NewWidth(32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.Bytes(), 4)
	test.ExpectEquality(t, w.String(), "32bit")

	_, err = registers.NewWidth(24)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidWidth))

	test.ExpectFailure(t, registers.Width(3).Valid())
	test.ExpectSuccess(t, registers.Width16.Valid())

	test.ExpectEquality(t, registers.Width8.Next(), registers.Width16)
	test.ExpectEquality(t, registers.Width16.Next(), registers.Width32)
	test.ExpectEquality(t, registers.Width32.Next(), registers.Width8)
}

func TestStatusBits(t *testing.T) {
	test.ExpectEquality(t, registers.StatusBits(0x30).String(), "nvMXdizc")
	test.ExpectEquality(t, registers.StatusBits(0xff).String(), "NVMXDIZC")

	acc, idx := registers.StatusBits(0x20).Sep(registers.Width16, registers.Width16)
	test.ExpectEquality(t, acc, registers.Width8)
	test.ExpectEquality(t, idx, registers.Width16)

	acc, idx = registers.StatusBits(0x10).Sep(acc, idx)
	test.ExpectEquality(t, acc, registers.Width8)
	test.ExpectEquality(t, idx, registers.Width8)

	acc, idx = registers.StatusBits(0x30).Rep(acc, idx)
	test.ExpectEquality(t, acc, registers.Width16)
	test.ExpectEquality(t, idx, registers.Width16)

	// bits other than the width bits do nothing
	acc, idx = registers.StatusBits(0xcf).Sep(registers.Width32, registers.Width32)
	test.ExpectEquality(t, acc, registers.Width32)
	test.ExpectEquality(t, idx, registers.Width32)
}
