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

package instructions

// Opcodes that receive special treatment by the decoder.
const (
	OpWDM = 0x42
	OpREP = 0xc2
	OpSEP = 0xe2
)

// opcodes in the base table with the low two bits set follow a regular layout
// and are not listed in baseOpcodes. see slotDefinition().
var baseOpcodes = map[uint8]Definition{
	0x00: {Mnemonic: "BRK", AddressingMode: Implied},
	0x01: {Mnemonic: "ORA", AddressingMode: DirectIndexedIndirect},
	0x02: {Mnemonic: "COP", AddressingMode: Immediate},
	0x04: {Mnemonic: "TSB", AddressingMode: DirectPage},
	0x05: {Mnemonic: "ORA", AddressingMode: DirectPage},
	0x06: {Mnemonic: "ASL", AddressingMode: DirectPage},
	0x08: {Mnemonic: "PHP", AddressingMode: Implied},
	0x09: {Mnemonic: "ORA", AddressingMode: ImmediateM},
	0x0a: {Mnemonic: "ASL", AddressingMode: Accumulator},
	0x0c: {Mnemonic: "TSB", AddressingMode: Absolute},
	0x0d: {Mnemonic: "ORA", AddressingMode: Absolute},
	0x0e: {Mnemonic: "ASL", AddressingMode: Absolute},
	0x10: {Mnemonic: "BPL", AddressingMode: Relative},
	0x11: {Mnemonic: "ORA", AddressingMode: DirectIndirectIndexed},
	0x12: {Mnemonic: "ORA", AddressingMode: DirectIndirect},
	0x14: {Mnemonic: "TRB", AddressingMode: DirectPage},
	0x15: {Mnemonic: "ORA", AddressingMode: DirectPageX},
	0x16: {Mnemonic: "ASL", AddressingMode: DirectPageX},
	0x18: {Mnemonic: "CLC", AddressingMode: Implied},
	0x19: {Mnemonic: "ORA", AddressingMode: AbsoluteY},
	0x1a: {Mnemonic: "INC", AddressingMode: Accumulator},
	0x1c: {Mnemonic: "TRB", AddressingMode: Absolute},
	0x1d: {Mnemonic: "ORA", AddressingMode: AbsoluteX},
	0x1e: {Mnemonic: "ASL", AddressingMode: AbsoluteX},
	0x20: {Mnemonic: "JSR", AddressingMode: Absolute},
	0x21: {Mnemonic: "AND", AddressingMode: DirectIndexedIndirect},
	0x22: {Mnemonic: "JSL", AddressingMode: AbsoluteLong},
	0x24: {Mnemonic: "BIT", AddressingMode: DirectPage},
	0x25: {Mnemonic: "AND", AddressingMode: DirectPage},
	0x26: {Mnemonic: "ROL", AddressingMode: DirectPage},
	0x28: {Mnemonic: "PLP", AddressingMode: Implied},
	0x29: {Mnemonic: "AND", AddressingMode: ImmediateM},
	0x2a: {Mnemonic: "ROL", AddressingMode: Accumulator},
	0x2c: {Mnemonic: "BIT", AddressingMode: Absolute},
	0x2d: {Mnemonic: "AND", AddressingMode: Absolute},
	0x2e: {Mnemonic: "ROL", AddressingMode: Absolute},
	0x30: {Mnemonic: "BMI", AddressingMode: Relative},
	0x31: {Mnemonic: "AND", AddressingMode: DirectIndirectIndexed},
	0x32: {Mnemonic: "AND", AddressingMode: DirectIndirect},
	0x34: {Mnemonic: "BIT", AddressingMode: DirectPageX},
	0x35: {Mnemonic: "AND", AddressingMode: DirectPageX},
	0x36: {Mnemonic: "ROL", AddressingMode: DirectPageX},
	0x38: {Mnemonic: "SEC", AddressingMode: Implied},
	0x39: {Mnemonic: "AND", AddressingMode: AbsoluteY},
	0x3a: {Mnemonic: "DEC", AddressingMode: Accumulator},
	0x3c: {Mnemonic: "BIT", AddressingMode: AbsoluteX},
	0x3d: {Mnemonic: "AND", AddressingMode: AbsoluteX},
	0x3e: {Mnemonic: "ROL", AddressingMode: AbsoluteX},
	0x40: {Mnemonic: "RTI", AddressingMode: Implied},
	0x41: {Mnemonic: "EOR", AddressingMode: DirectIndexedIndirect},
	0x42: {Mnemonic: "WDM", AddressingMode: Immediate},
	0x44: {Mnemonic: "MVP", AddressingMode: BlockMove},
	0x45: {Mnemonic: "EOR", AddressingMode: DirectPage},
	0x46: {Mnemonic: "LSR", AddressingMode: DirectPage},
	0x48: {Mnemonic: "PHA", AddressingMode: Implied},
	0x49: {Mnemonic: "EOR", AddressingMode: ImmediateM},
	0x4a: {Mnemonic: "LSR", AddressingMode: Accumulator},
	0x4c: {Mnemonic: "JMP", AddressingMode: Absolute},
	0x4d: {Mnemonic: "EOR", AddressingMode: Absolute},
	0x4e: {Mnemonic: "LSR", AddressingMode: Absolute},
	0x50: {Mnemonic: "BVC", AddressingMode: Relative},
	0x51: {Mnemonic: "EOR", AddressingMode: DirectIndirectIndexed},
	0x52: {Mnemonic: "EOR", AddressingMode: DirectIndirect},
	0x54: {Mnemonic: "MVN", AddressingMode: BlockMove},
	0x55: {Mnemonic: "EOR", AddressingMode: DirectPageX},
	0x56: {Mnemonic: "LSR", AddressingMode: DirectPageX},
	0x58: {Mnemonic: "CLI", AddressingMode: Implied},
	0x59: {Mnemonic: "EOR", AddressingMode: AbsoluteY},
	0x5a: {Mnemonic: "PHY", AddressingMode: Implied},
	0x5c: {Mnemonic: "JML", AddressingMode: AbsoluteLong},
	0x5d: {Mnemonic: "EOR", AddressingMode: AbsoluteX},
	0x5e: {Mnemonic: "LSR", AddressingMode: AbsoluteX},
	0x60: {Mnemonic: "RTS", AddressingMode: Implied},
	0x61: {Mnemonic: "ADC", AddressingMode: DirectIndexedIndirect},
	0x62: {Mnemonic: "PER", AddressingMode: RelativeLong},
	0x64: {Mnemonic: "STZ", AddressingMode: DirectPage},
	0x65: {Mnemonic: "ADC", AddressingMode: DirectPage},
	0x66: {Mnemonic: "ROR", AddressingMode: DirectPage},
	0x68: {Mnemonic: "PLA", AddressingMode: Implied},
	0x69: {Mnemonic: "ADC", AddressingMode: ImmediateM},
	0x6a: {Mnemonic: "ROR", AddressingMode: Accumulator},
	0x6c: {Mnemonic: "JMP", AddressingMode: AbsoluteIndirect},
	0x6d: {Mnemonic: "ADC", AddressingMode: Absolute},
	0x6e: {Mnemonic: "ROR", AddressingMode: Absolute},
	0x70: {Mnemonic: "BVS", AddressingMode: Relative},
	0x71: {Mnemonic: "ADC", AddressingMode: DirectIndirectIndexed},
	0x72: {Mnemonic: "ADC", AddressingMode: DirectIndirect},
	0x74: {Mnemonic: "STZ", AddressingMode: DirectPageX},
	0x75: {Mnemonic: "ADC", AddressingMode: DirectPageX},
	0x76: {Mnemonic: "ROR", AddressingMode: DirectPageX},
	0x78: {Mnemonic: "SEI", AddressingMode: Implied},
	0x79: {Mnemonic: "ADC", AddressingMode: AbsoluteY},
	0x7a: {Mnemonic: "PLY", AddressingMode: Implied},
	0x7c: {Mnemonic: "JMP", AddressingMode: AbsoluteIndexedIndirect},
	0x7d: {Mnemonic: "ADC", AddressingMode: AbsoluteX},
	0x7e: {Mnemonic: "ROR", AddressingMode: AbsoluteX},
	0x80: {Mnemonic: "BRA", AddressingMode: Relative},
	0x81: {Mnemonic: "STA", AddressingMode: DirectIndexedIndirect},
	0x82: {Mnemonic: "BRL", AddressingMode: RelativeLong},
	0x84: {Mnemonic: "STY", AddressingMode: DirectPage},
	0x85: {Mnemonic: "STA", AddressingMode: DirectPage},
	0x86: {Mnemonic: "STX", AddressingMode: DirectPage},
	0x88: {Mnemonic: "DEY", AddressingMode: Implied},
	0x89: {Mnemonic: "BIT", AddressingMode: ImmediateM},
	0x8a: {Mnemonic: "TXA", AddressingMode: Implied},
	0x8c: {Mnemonic: "STY", AddressingMode: Absolute},
	0x8d: {Mnemonic: "STA", AddressingMode: Absolute},
	0x8e: {Mnemonic: "STX", AddressingMode: Absolute},
	0x90: {Mnemonic: "BCC", AddressingMode: Relative},
	0x91: {Mnemonic: "STA", AddressingMode: DirectIndirectIndexed},
	0x92: {Mnemonic: "STA", AddressingMode: DirectIndirect},
	0x94: {Mnemonic: "STY", AddressingMode: DirectPageX},
	0x95: {Mnemonic: "STA", AddressingMode: DirectPageX},
	0x96: {Mnemonic: "STX", AddressingMode: DirectPageY},
	0x98: {Mnemonic: "TYA", AddressingMode: Implied},
	0x99: {Mnemonic: "STA", AddressingMode: AbsoluteY},
	0x9a: {Mnemonic: "TXS", AddressingMode: Implied},
	0x9c: {Mnemonic: "STZ", AddressingMode: Absolute},
	0x9d: {Mnemonic: "STA", AddressingMode: AbsoluteX},
	0x9e: {Mnemonic: "STZ", AddressingMode: AbsoluteX},
	0xa0: {Mnemonic: "LDY", AddressingMode: ImmediateX},
	0xa1: {Mnemonic: "LDA", AddressingMode: DirectIndexedIndirect},
	0xa2: {Mnemonic: "LDX", AddressingMode: ImmediateX},
	0xa4: {Mnemonic: "LDY", AddressingMode: DirectPage},
	0xa5: {Mnemonic: "LDA", AddressingMode: DirectPage},
	0xa6: {Mnemonic: "LDX", AddressingMode: DirectPage},
	0xa8: {Mnemonic: "TAY", AddressingMode: Implied},
	0xa9: {Mnemonic: "LDA", AddressingMode: ImmediateM},
	0xaa: {Mnemonic: "TAX", AddressingMode: Implied},
	0xac: {Mnemonic: "LDY", AddressingMode: Absolute},
	0xad: {Mnemonic: "LDA", AddressingMode: Absolute},
	0xae: {Mnemonic: "LDX", AddressingMode: Absolute},
	0xb0: {Mnemonic: "BCS", AddressingMode: Relative},
	0xb1: {Mnemonic: "LDA", AddressingMode: DirectIndirectIndexed},
	0xb2: {Mnemonic: "LDA", AddressingMode: DirectIndirect},
	0xb4: {Mnemonic: "LDY", AddressingMode: DirectPageX},
	0xb5: {Mnemonic: "LDA", AddressingMode: DirectPageX},
	0xb6: {Mnemonic: "LDX", AddressingMode: DirectPageY},
	0xb8: {Mnemonic: "CLV", AddressingMode: Implied},
	0xb9: {Mnemonic: "LDA", AddressingMode: AbsoluteY},
	0xba: {Mnemonic: "TSX", AddressingMode: Implied},
	0xbc: {Mnemonic: "LDY", AddressingMode: AbsoluteX},
	0xbd: {Mnemonic: "LDA", AddressingMode: AbsoluteX},
	0xbe: {Mnemonic: "LDX", AddressingMode: AbsoluteY},
	0xc0: {Mnemonic: "CPY", AddressingMode: ImmediateX},
	0xc1: {Mnemonic: "CMP", AddressingMode: DirectIndexedIndirect},
	0xc2: {Mnemonic: "REP", AddressingMode: Immediate},
	0xc4: {Mnemonic: "CPY", AddressingMode: DirectPage},
	0xc5: {Mnemonic: "CMP", AddressingMode: DirectPage},
	0xc6: {Mnemonic: "DEC", AddressingMode: DirectPage},
	0xc8: {Mnemonic: "INY", AddressingMode: Implied},
	0xc9: {Mnemonic: "CMP", AddressingMode: ImmediateM},
	0xca: {Mnemonic: "DEX", AddressingMode: Implied},
	0xcc: {Mnemonic: "CPY", AddressingMode: Absolute},
	0xcd: {Mnemonic: "CMP", AddressingMode: Absolute},
	0xce: {Mnemonic: "DEC", AddressingMode: Absolute},
	0xd0: {Mnemonic: "BNE", AddressingMode: Relative},
	0xd1: {Mnemonic: "CMP", AddressingMode: DirectIndirectIndexed},
	0xd2: {Mnemonic: "CMP", AddressingMode: DirectIndirect},
	0xd4: {Mnemonic: "PEI", AddressingMode: DirectIndirect},
	0xd5: {Mnemonic: "CMP", AddressingMode: DirectPageX},
	0xd6: {Mnemonic: "DEC", AddressingMode: DirectPageX},
	0xd8: {Mnemonic: "CLD", AddressingMode: Implied},
	0xd9: {Mnemonic: "CMP", AddressingMode: AbsoluteY},
	0xda: {Mnemonic: "PHX", AddressingMode: Implied},
	0xdc: {Mnemonic: "JML", AddressingMode: AbsoluteIndirectLong},
	0xdd: {Mnemonic: "CMP", AddressingMode: AbsoluteX},
	0xde: {Mnemonic: "DEC", AddressingMode: AbsoluteX},
	0xe0: {Mnemonic: "CPX", AddressingMode: ImmediateX},
	0xe1: {Mnemonic: "SBC", AddressingMode: DirectIndexedIndirect},
	0xe2: {Mnemonic: "SEP", AddressingMode: Immediate},
	0xe4: {Mnemonic: "CPX", AddressingMode: DirectPage},
	0xe5: {Mnemonic: "SBC", AddressingMode: DirectPage},
	0xe6: {Mnemonic: "INC", AddressingMode: DirectPage},
	0xe8: {Mnemonic: "INX", AddressingMode: Implied},
	0xe9: {Mnemonic: "SBC", AddressingMode: ImmediateM},
	0xea: {Mnemonic: "NOP", AddressingMode: Implied},
	0xec: {Mnemonic: "CPX", AddressingMode: Absolute},
	0xed: {Mnemonic: "SBC", AddressingMode: Absolute},
	0xee: {Mnemonic: "INC", AddressingMode: Absolute},
	0xf0: {Mnemonic: "BEQ", AddressingMode: Relative},
	0xf1: {Mnemonic: "SBC", AddressingMode: DirectIndirectIndexed},
	0xf2: {Mnemonic: "SBC", AddressingMode: DirectIndirect},
	0xf4: {Mnemonic: "PEA", AddressingMode: Absolute},
	0xf5: {Mnemonic: "SBC", AddressingMode: DirectPageX},
	0xf6: {Mnemonic: "INC", AddressingMode: DirectPageX},
	0xf8: {Mnemonic: "SED", AddressingMode: Implied},
	0xf9: {Mnemonic: "SBC", AddressingMode: AbsoluteY},
	0xfa: {Mnemonic: "PLX", AddressingMode: Implied},
	0xfc: {Mnemonic: "JSR", AddressingMode: AbsoluteIndexedIndirect},
	0xfd: {Mnemonic: "SBC", AddressingMode: AbsoluteX},
	0xfe: {Mnemonic: "INC", AddressingMode: AbsoluteX},
}

// slotException lists the opcodes with the low two bits set that do not
// follow the regular slot layout.
var slotException = map[uint8]Definition{
	0x0b: {Mnemonic: "PHD", AddressingMode: Implied},
	0x2b: {Mnemonic: "PLD", AddressingMode: Implied},
	0x4b: {Mnemonic: "PHK", AddressingMode: Implied},
	0x6b: {Mnemonic: "RTL", AddressingMode: Implied},
	0x8b: {Mnemonic: "PHB", AddressingMode: Implied},
	0xab: {Mnemonic: "PLB", AddressingMode: Implied},
	0xcb: {Mnemonic: "WAI", AddressingMode: Implied},
	0xeb: {Mnemonic: "XBA", AddressingMode: Implied},
}

// the ALU operation for opcodes with the low two bits set is selected by bits
// 7 to 5 of the opcode.
var slotALU = [8]string{"ORA", "AND", "EOR", "ADC", "STA", "LDA", "CMP", "SBC"}

// the addressing mode for opcodes with the low two bits set is selected by
// bits 4 to 2 of the opcode. slot 2 is always a slotException and slot 6 is
// always an implied instruction.
var slotModes = [8]AddressingMode{
	StackRelative,
	DirectIndirectLong,
	Undefined,
	AbsoluteLong,
	StackRelativeIndirectY,
	DirectIndirectLongY,
	Implied,
	AbsoluteLongX,
}

// mnemonics for the implied instructions in slot 6, indexed by bits 7 to 5.
var slotImplied = [8]string{"TCS", "TSC", "TCD", "TDC", "TXY", "TYX", "STP", "XCE"}

// SlotException returns the definition of an opcode that is an exception to
// the regular slot layout. The opcode must have the low two bits set for the
// function to return true.
func SlotException(opcode uint8) (Definition, bool) {
	defn, ok := slotException[opcode]
	if !ok {
		return Definition{}, false
	}
	defn.OpCode = opcode
	defn.Effect = effectOf(defn.Mnemonic)
	return defn, true
}

// slotDefinition returns the definition of an opcode with the low two bits set.
// exceptions to the layout are checked first.
func slotDefinition(opcode uint8) Definition {
	if defn, ok := SlotException(opcode); ok {
		return defn
	}

	slot := (opcode >> 2) & 0x07
	row := (opcode >> 5) & 0x07

	defn := Definition{
		OpCode:         opcode,
		AddressingMode: slotModes[slot],
	}
	if slotModes[slot] == Implied {
		defn.Mnemonic = slotImplied[row]
	} else {
		defn.Mnemonic = slotALU[row]
	}
	defn.Effect = effectOf(defn.Mnemonic)

	return defn
}

// Base is the table of instructions decoded from a single opcode byte. Every
// entry is defined.
var Base [256]Definition

func init() {
	for i := range Base {
		opcode := uint8(i)
		if opcode&0x03 == 0x03 {
			Base[i] = slotDefinition(opcode)
			continue
		}

		defn, ok := baseOpcodes[opcode]
		if !ok {
			panic("instructions: incomplete base opcode table")
		}
		defn.OpCode = opcode
		defn.Effect = effectOf(defn.Mnemonic)
		Base[i] = defn
	}
}
