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

	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
	"github.com/jetsetilly/m65832dis/test"
)

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint32(0))

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), uint32(127))
	test.ExpectFailure(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), uint32(129))
	test.ExpectEquality(t, pc.String(), "$00000081")

	// wrap around
	pc.Load(0xffffffff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), uint32(0))
}

func TestProgramCounterOffset(t *testing.T) {
	pc := registers.NewProgramCounter(0x8002)

	// negative 8bit offset
	pc.Offset(0xfe, 1)
	test.ExpectEquality(t, pc.Address(), uint32(0x8000))

	// positive 8bit offset
	pc.Offset(0x10, 1)
	test.ExpectEquality(t, pc.Address(), uint32(0x8010))

	// negative 16bit offset
	pc.Offset(0xfff0, 2)
	test.ExpectEquality(t, pc.Address(), uint32(0x8000))

	// bits above the sign bit are ignored
	pc.Offset(0x1ff, 1)
	test.ExpectEquality(t, pc.Address(), uint32(0x7fff))
}
