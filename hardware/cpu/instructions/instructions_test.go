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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/m65832dis/hardware/cpu/instructions"
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
	"github.com/jetsetilly/m65832dis/test"
)

func TestBaseTableComplete(t *testing.T) {
	for i, defn := range instructions.Base {
		test.ExpectSuccess(t, defn.Defined(), i)
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectFailure(t, defn.Extended, i)
		test.ExpectInequality(t, defn.Mnemonic, "", i)
	}
}

func TestSlotLayout(t *testing.T) {
	modes := []instructions.AddressingMode{
		instructions.StackRelative,
		instructions.DirectIndirectLong,
		instructions.Implied,
		instructions.AbsoluteLong,
		instructions.StackRelativeIndirectY,
		instructions.DirectIndirectLongY,
		instructions.Implied,
		instructions.AbsoluteLongX,
	}

	for row := 0; row < 8; row++ {
		for slot := 0; slot < 8; slot++ {
			opcode := uint8(row<<5 | slot<<2 | 0x03)
			defn := instructions.Base[opcode]
			test.ExpectEquality(t, defn.AddressingMode, modes[slot], opcode)

			_, exception := instructions.SlotException(opcode)
			test.ExpectEquality(t, exception, slot == 2, opcode)
		}
	}
}

func TestSlotRegressions(t *testing.T) {
	defn := instructions.Base[0xab]
	test.ExpectEquality(t, defn.Mnemonic, "PLB")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Implied)
	test.ExpectEquality(t, defn.Bytes(registers.Width16, registers.Width16), 1)

	defn = instructions.Base[0xaf]
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.AbsoluteLong)
	test.ExpectEquality(t, defn.Bytes(registers.Width16, registers.Width16), 4)

	defn = instructions.Base[0x8f]
	test.ExpectEquality(t, defn.Mnemonic, "STA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.AbsoluteLong)

	defn = instructions.Base[0xb3]
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.StackRelativeIndirectY)

	defn = instructions.Base[0x93]
	test.ExpectEquality(t, defn.Mnemonic, "STA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.StackRelativeIndirectY)

	defn = instructions.Base[0xfb]
	test.ExpectEquality(t, defn.Mnemonic, "XCE")
	test.ExpectEquality(t, defn.Effect, instructions.ModeSwitch)

	defn = instructions.Base[0x6b]
	test.ExpectEquality(t, defn.Mnemonic, "RTL")
	test.ExpectEquality(t, defn.Effect, instructions.Subroutine)
	test.ExpectFailure(t, defn.IsBranch())

	defn = instructions.Base[0xf0]
	test.ExpectEquality(t, defn.Mnemonic, "BEQ")
	test.ExpectSuccess(t, defn.IsBranch())

	defn = instructions.Base[0x82]
	test.ExpectEquality(t, defn.Mnemonic, "BRL")
	test.ExpectSuccess(t, defn.IsBranch())

	defn = instructions.Base[0x4c]
	test.ExpectEquality(t, defn.Effect, instructions.Flow)
	test.ExpectFailure(t, defn.IsBranch())
}

func TestOperandBytes(t *testing.T) {
	w8 := registers.Width8
	w16 := registers.Width16
	w32 := registers.Width32

	test.ExpectEquality(t, instructions.ImmediateM.OperandBytes(w8, w16), 1)
	test.ExpectEquality(t, instructions.ImmediateM.OperandBytes(w16, w8), 2)
	test.ExpectEquality(t, instructions.ImmediateX.OperandBytes(w16, w8), 1)
	test.ExpectEquality(t, instructions.ImmediateX.OperandBytes(w32, w32), 4)
	test.ExpectEquality(t, instructions.Immediate.OperandBytes(w32, w32), 1)
	test.ExpectEquality(t, instructions.Relative.OperandBytes(w16, w16), 1)
	test.ExpectEquality(t, instructions.Relative.OperandBytes(w32, w32), 1)
	test.ExpectEquality(t, instructions.RelativeLong.OperandBytes(w8, w8), 2)
	test.ExpectEquality(t, instructions.AbsoluteLongX.OperandBytes(w8, w8), 3)
	test.ExpectEquality(t, instructions.FPUAbsolute32.OperandBytes(w8, w8), 5)
	test.ExpectEquality(t, instructions.Shifter.OperandBytes(w8, w8), 3)

	test.ExpectSuccess(t, instructions.AbsoluteIndirectLong.IsLegacy())
	test.ExpectFailure(t, instructions.AbsoluteIndirect.IsLegacy())
}

func TestExtendedTable(t *testing.T) {
	defn := instructions.Extended[0xff]
	test.ExpectFailure(t, defn.Defined())
	test.ExpectSuccess(t, defn.Extended)

	defn = instructions.Extended[0x20]
	test.ExpectEquality(t, defn.Mnemonic, "SVBR")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate32)
	test.ExpectEquality(t, defn.Bytes(registers.Width16, registers.Width16), 6)

	for op := instructions.OpExtendedALUFirst; op <= instructions.OpExtendedALULast; op++ {
		test.ExpectEquality(t, instructions.Extended[op].AddressingMode, instructions.ExtendedALU, op)
	}
	test.ExpectEquality(t, instructions.Extended[instructions.OpSTZ].Mnemonic, "STZ")
	test.ExpectEquality(t, instructions.Extended[instructions.OpShifter].AddressingMode, instructions.Shifter)
	test.ExpectEquality(t, instructions.Extended[instructions.OpExtend].AddressingMode, instructions.Extend)

	// gaps in the FPU rows
	test.ExpectFailure(t, instructions.Extended[0xb8].Defined())
	test.ExpectFailure(t, instructions.Extended[0xcb].Defined())
	test.ExpectFailure(t, instructions.Extended[0xe6].Defined())
}

func TestModeByte(t *testing.T) {
	b := instructions.ModeByte(0x00)
	test.ExpectEquality(t, b.Size(), instructions.SizeByte)
	test.ExpectFailure(t, b.Target())
	test.ExpectEquality(t, b.Source(), instructions.SourceDirectPage)
	test.ExpectEquality(t, b.OperandBytes(0x80), 1)
	test.ExpectSuccess(t, b.Defined())

	b = instructions.ModeByte(0xb8)
	test.ExpectEquality(t, b.Size(), instructions.SizeLong)
	test.ExpectSuccess(t, b.Target())
	test.ExpectEquality(t, b.Source(), instructions.SourceImmediate)
	test.ExpectEquality(t, b.OperandBytes(0x80), 5)
	test.ExpectEquality(t, b.Size().Suffix(), "")

	b = instructions.ModeByte(0x40 | 0x10)
	test.ExpectEquality(t, b.Size().Suffix(), ".W")
	test.ExpectEquality(t, b.OperandBytes(0x82), 4)

	// reserved size
	b = instructions.ModeByte(0xc0)
	test.ExpectFailure(t, b.Defined())

	// undefined source modes
	for _, m := range []uint8{0x0e, 0x0f, 0x16, 0x17, 0x1e, 0x1f} {
		test.ExpectFailure(t, instructions.ModeByte(m).Defined(), m)
	}

	// unary instructions have no source operand with source mode zero
	b = instructions.ModeByte(0x20)
	test.ExpectSuccess(t, b.NoSource(0x8b))
	test.ExpectEquality(t, b.OperandBytes(0x8b), 1)
	test.ExpectSuccess(t, b.NoSource(instructions.OpSTZ))
	test.ExpectFailure(t, instructions.ModeByte(0x00).NoSource(instructions.OpSTZ))
	test.ExpectFailure(t, b.NoSource(0x80))
}

func TestShiftAndExtend(t *testing.T) {
	op, count := instructions.DecodeShift(0x23)
	test.ExpectEquality(t, op, instructions.ShiftSHR)
	test.ExpectEquality(t, count, uint8(3))
	mnemonic, ok := op.Mnemonic()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mnemonic, "SHR")

	op, _ = instructions.DecodeShift(0xa0)
	_, ok = op.Mnemonic()
	test.ExpectFailure(t, ok)

	mnemonic, ok = instructions.ExtendMnemonic(6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mnemonic, "POPCNT")
	_, ok = instructions.ExtendMnemonic(7)
	test.ExpectFailure(t, ok)
}
