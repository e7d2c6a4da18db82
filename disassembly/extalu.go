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
)

// the source operand of an extended ALU instruction. the operand slice
// contains only the bytes of the source operand.
func sourceOperand(mode instructions.ModeByte, operand []byte, wide bool) string {
	switch mode.Source() {
	case instructions.SourceDirectPage:
		return directPage(operand[0])
	case instructions.SourceDirectPageX:
		return fmt.Sprintf("%s,X", directPage(operand[0]))
	case instructions.SourceDirectPageY:
		return fmt.Sprintf("%s,Y", directPage(operand[0]))
	case instructions.SourceDirectIndexedIndirect:
		return fmt.Sprintf("(%s,X)", directPage(operand[0]))
	case instructions.SourceDirectIndirectIndexed:
		return fmt.Sprintf("(%s),Y", directPage(operand[0]))
	case instructions.SourceDirectIndirect:
		return fmt.Sprintf("(%s)", directPage(operand[0]))
	case instructions.SourceDirectIndirectLong:
		return fmt.Sprintf("[%s]", directPage(operand[0]))
	case instructions.SourceDirectIndirectLongY:
		return fmt.Sprintf("[%s],Y", directPage(operand[0]))

	case instructions.SourceAbsolute:
		return absolute(value(operand), wide)
	case instructions.SourceAbsoluteX:
		return fmt.Sprintf("%s,X", absolute(value(operand), wide))
	case instructions.SourceAbsoluteY:
		return fmt.Sprintf("%s,Y", absolute(value(operand), wide))
	case instructions.SourceAbsoluteIndirect:
		return fmt.Sprintf("(%s)", absolute(value(operand), wide))
	case instructions.SourceAbsoluteIndexedIndirect:
		return fmt.Sprintf("(%s,X)", absolute(value(operand), wide))
	case instructions.SourceAbsoluteIndirectLong:
		return fmt.Sprintf("[%s]", absolute(value(operand), wide))

	case instructions.SourceAbsolute32:
		return fmt.Sprintf("$%08X", value(operand))
	case instructions.SourceAbsolute32X:
		return fmt.Sprintf("$%08X,X", value(operand))
	case instructions.SourceAbsolute32Y:
		return fmt.Sprintf("$%08X,Y", value(operand))
	case instructions.SourceAbsolute32Indirect:
		return fmt.Sprintf("($%08X)", value(operand))
	case instructions.SourceAbsolute32IndexedIndirect:
		return fmt.Sprintf("($%08X,X)", value(operand))
	case instructions.SourceAbsolute32IndirectLong:
		return fmt.Sprintf("[$%08X]", value(operand))

	case instructions.SourceImmediate:
		return immediate(operand)
	case instructions.SourceAccumulator:
		return "A"
	case instructions.SourceX:
		return "X"
	case instructions.SourceY:
		return "Y"

	case instructions.SourceStackRelative:
		return fmt.Sprintf("$%02X,S", operand[0])
	case instructions.SourceStackRelativeIndirectY:
		return fmt.Sprintf("($%02X,S),Y", operand[0])
	}

	return ""
}

// decode an extended ALU instruction. buf starts with the prefix byte.
func decodeExtendedALU(buf []byte, defn instructions.Definition, wide bool) (result, bool) {
	if len(buf) < 3 {
		return result{}, false
	}

	// an invalid mode byte is not consumed. it is decoded again as the
	// next instruction
	mode := instructions.ModeByte(buf[2])
	if !mode.Defined() {
		return rawResult(buf[:2], defn), true
	}

	n := 3 + mode.OperandBytes(defn.OpCode)
	if len(buf) < n {
		return result{}, false
	}
	operand := buf[3:n]

	dest := "A"
	if mode.Target() {
		dest = directPage(operand[0])
		operand = operand[1:]
	}

	mnemonic := defn.Mnemonic + mode.Size().Suffix()

	r := result{
		length: n,
		defn:   defn,
	}

	switch {
	case mode.NoSource(defn.OpCode):
		r.text = fmt.Sprintf("%s %s", mnemonic, dest)
	case defn.OpCode == instructions.OpSTZ && !mode.Target() && !mode.Source().IsRegister():
		// storing zero to the source operand
		r.text = fmt.Sprintf("%s %s", mnemonic, sourceOperand(mode, operand, wide))
	default:
		r.text = fmt.Sprintf("%s %s,%s", mnemonic, dest, sourceOperand(mode, operand, wide))
	}

	return r, true
}

// decode a barrel shifter instruction. buf starts with the prefix byte.
func decodeShifter(buf []byte, defn instructions.Definition) (result, bool) {
	n := defn.Bytes(0, 0)
	if len(buf) < n {
		return result{}, false
	}

	op, count := instructions.DecodeShift(buf[2])
	mnemonic, ok := op.Mnemonic()
	if !ok {
		return rawResult(buf[:n], defn), true
	}

	r := result{
		length: n,
		defn:   defn,
	}

	if count == instructions.ShiftCountA {
		r.text = fmt.Sprintf("%s %s,%s,A", mnemonic, directPage(buf[3]), directPage(buf[4]))
	} else {
		r.text = fmt.Sprintf("%s %s,%s,#%d", mnemonic, directPage(buf[3]), directPage(buf[4]), count)
	}

	return r, true
}

// decode a sign/zero extend or bit count instruction. buf starts with the
// prefix byte.
func decodeExtend(buf []byte, defn instructions.Definition) (result, bool) {
	n := defn.Bytes(0, 0)
	if len(buf) < n {
		return result{}, false
	}

	mnemonic, ok := instructions.ExtendMnemonic(buf[2])
	if !ok {
		return rawResult(buf[:n], defn), true
	}

	return result{
		text:   fmt.Sprintf("%s %s,%s", mnemonic, directPage(buf[3]), directPage(buf[4])),
		length: n,
		defn:   defn,
	}, true
}
