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

// Opcodes in the extended table with operands that are not described by a
// single addressing mode.
const (
	OpExtendedALUFirst = 0x80
	OpExtendedALULast  = 0x90
	OpSTZ              = 0x97
	OpShifter          = 0x98
	OpExtend           = 0x99
)

var extendedOpcodes = map[uint8]Definition{
	0x00: {Mnemonic: "MUL", AddressingMode: DirectPage},
	0x01: {Mnemonic: "MULU", AddressingMode: DirectPage},
	0x02: {Mnemonic: "MUL", AddressingMode: Absolute},
	0x03: {Mnemonic: "MULU", AddressingMode: Absolute},
	0x04: {Mnemonic: "DIV", AddressingMode: DirectPage},
	0x05: {Mnemonic: "DIVU", AddressingMode: DirectPage},
	0x06: {Mnemonic: "DIV", AddressingMode: Absolute},
	0x07: {Mnemonic: "DIVU", AddressingMode: Absolute},
	0x10: {Mnemonic: "CAS", AddressingMode: DirectPage},
	0x11: {Mnemonic: "CAS", AddressingMode: Absolute},
	0x12: {Mnemonic: "LLI", AddressingMode: DirectPage},
	0x13: {Mnemonic: "LLI", AddressingMode: Absolute},
	0x14: {Mnemonic: "SCI", AddressingMode: DirectPage},
	0x15: {Mnemonic: "SCI", AddressingMode: Absolute},
	0x20: {Mnemonic: "SVBR", AddressingMode: Immediate32},
	0x21: {Mnemonic: "SVBR", AddressingMode: DirectPage},
	0x22: {Mnemonic: "SB", AddressingMode: Immediate32},
	0x23: {Mnemonic: "SB", AddressingMode: DirectPage},
	0x24: {Mnemonic: "SD", AddressingMode: Immediate32},
	0x25: {Mnemonic: "SD", AddressingMode: DirectPage},
	0x30: {Mnemonic: "RSET", AddressingMode: Implied},
	0x31: {Mnemonic: "RCLR", AddressingMode: Implied},
	0x40: {Mnemonic: "TRAP", AddressingMode: Immediate},
	0x50: {Mnemonic: "FENCE", AddressingMode: Implied},
	0x51: {Mnemonic: "FENCER", AddressingMode: Implied},
	0x52: {Mnemonic: "FENCEW", AddressingMode: Implied},
	0x60: {Mnemonic: "REPE", AddressingMode: Immediate},
	0x61: {Mnemonic: "SEPE", AddressingMode: Immediate},
	0x70: {Mnemonic: "PHD32", AddressingMode: Implied},
	0x71: {Mnemonic: "PLD32", AddressingMode: Implied},
	0x72: {Mnemonic: "PHB32", AddressingMode: Implied},
	0x73: {Mnemonic: "PLB32", AddressingMode: Implied},
	0x74: {Mnemonic: "PHVBR", AddressingMode: Implied},
	0x75: {Mnemonic: "PLVBR", AddressingMode: Implied},
	0x91: {Mnemonic: "TAB", AddressingMode: Implied},
	0x92: {Mnemonic: "TBA", AddressingMode: Implied},
	0x93: {Mnemonic: "TXB", AddressingMode: Implied},
	0x94: {Mnemonic: "TBX", AddressingMode: Implied},
	0x95: {Mnemonic: "TYB", AddressingMode: Implied},
	0x96: {Mnemonic: "TBY", AddressingMode: Implied},
	0x9a: {Mnemonic: "TTA", AddressingMode: Implied},
	0x9b: {Mnemonic: "TAT", AddressingMode: Implied},
	0x9c: {Mnemonic: "LDQ", AddressingMode: DirectPage},
	0x9d: {Mnemonic: "LDQ", AddressingMode: Absolute},
	0x9e: {Mnemonic: "STQ", AddressingMode: DirectPage},
	0x9f: {Mnemonic: "STQ", AddressingMode: Absolute},
	0xa0: {Mnemonic: "LEA", AddressingMode: DirectPage},
	0xa1: {Mnemonic: "LEA", AddressingMode: DirectPageX},
	0xa2: {Mnemonic: "LEA", AddressingMode: Absolute},
	0xa3: {Mnemonic: "LEA", AddressingMode: AbsoluteX},
	0xa4: {Mnemonic: "TSPB", AddressingMode: Implied},
	0xb0: {Mnemonic: "LDF", AddressingMode: FPUDirectPage},
	0xb1: {Mnemonic: "LDF", AddressingMode: FPUAbsolute},
	0xb2: {Mnemonic: "STF", AddressingMode: FPUDirectPage},
	0xb3: {Mnemonic: "STF", AddressingMode: FPUAbsolute},
	0xb4: {Mnemonic: "LDF", AddressingMode: FPUIndirect},
	0xb5: {Mnemonic: "STF", AddressingMode: FPUIndirect},
	0xb6: {Mnemonic: "LDF", AddressingMode: FPUAbsolute32},
	0xb7: {Mnemonic: "STF", AddressingMode: FPUAbsolute32},
	0xba: {Mnemonic: "LDF.S", AddressingMode: FPUIndirect},
	0xbb: {Mnemonic: "STF.S", AddressingMode: FPUIndirect},
	0xc0: {Mnemonic: "FADD.S", AddressingMode: FPURegisters},
	0xc1: {Mnemonic: "FSUB.S", AddressingMode: FPURegisters},
	0xc2: {Mnemonic: "FMUL.S", AddressingMode: FPURegisters},
	0xc3: {Mnemonic: "FDIV.S", AddressingMode: FPURegisters},
	0xc4: {Mnemonic: "FNEG.S", AddressingMode: FPURegisters},
	0xc5: {Mnemonic: "FABS.S", AddressingMode: FPURegisters},
	0xc6: {Mnemonic: "FCMP.S", AddressingMode: FPURegisters},
	0xc7: {Mnemonic: "F2I.S", AddressingMode: FPURegister},
	0xc8: {Mnemonic: "I2F.S", AddressingMode: FPURegister},
	0xc9: {Mnemonic: "FMOV.S", AddressingMode: FPURegisters},
	0xca: {Mnemonic: "FSQRT.S", AddressingMode: FPURegisters},
	0xd0: {Mnemonic: "FADD.D", AddressingMode: FPURegisters},
	0xd1: {Mnemonic: "FSUB.D", AddressingMode: FPURegisters},
	0xd2: {Mnemonic: "FMUL.D", AddressingMode: FPURegisters},
	0xd3: {Mnemonic: "FDIV.D", AddressingMode: FPURegisters},
	0xd4: {Mnemonic: "FNEG.D", AddressingMode: FPURegisters},
	0xd5: {Mnemonic: "FABS.D", AddressingMode: FPURegisters},
	0xd6: {Mnemonic: "FCMP.D", AddressingMode: FPURegisters},
	0xd7: {Mnemonic: "F2I.D", AddressingMode: FPURegister},
	0xd8: {Mnemonic: "I2F.D", AddressingMode: FPURegister},
	0xd9: {Mnemonic: "FMOV.D", AddressingMode: FPURegisters},
	0xda: {Mnemonic: "FSQRT.D", AddressingMode: FPURegisters},
	0xe0: {Mnemonic: "FTOA", AddressingMode: FPURegister},
	0xe1: {Mnemonic: "FTOT", AddressingMode: FPURegister},
	0xe2: {Mnemonic: "ATOF", AddressingMode: FPURegister},
	0xe3: {Mnemonic: "TTOF", AddressingMode: FPURegister},
	0xe4: {Mnemonic: "FCVT.DS", AddressingMode: FPURegisters},
	0xe5: {Mnemonic: "FCVT.SD", AddressingMode: FPURegisters},

	// barrel shifter and sign/zero extension
	OpShifter: {Mnemonic: "SHIFT", AddressingMode: Shifter},
	OpExtend:  {Mnemonic: "EXTEND", AddressingMode: Extend},
}

// mnemonics of the extended ALU instructions, indexed by opcode minus
// OpExtendedALUFirst.
var extendedALU = [...]string{
	"LD", "ST", "ADC", "SBC", "AND", "ORA", "EOR", "CMP",
	"BIT", "TSB", "TRB", "INC", "DEC", "ASL", "LSR", "ROL",
	"ROR",
}

// Extended is the table of instructions that follow the ExtendedPrefix byte.
// Entries that are not defined have an AddressingMode of Undefined.
var Extended [256]Definition

func init() {
	for i := range Extended {
		Extended[i] = Definition{OpCode: uint8(i), Extended: true}
	}

	for opcode, defn := range extendedOpcodes {
		defn.OpCode = opcode
		defn.Extended = true
		defn.Effect = effectOf(defn.Mnemonic)
		Extended[opcode] = defn
	}

	for i, mnemonic := range extendedALU {
		opcode := OpExtendedALUFirst + i
		Extended[opcode] = Definition{
			OpCode:         uint8(opcode),
			Mnemonic:       mnemonic,
			Extended:       true,
			AddressingMode: ExtendedALU,
		}
	}

	Extended[OpSTZ] = Definition{
		OpCode:         OpSTZ,
		Mnemonic:       "STZ",
		Extended:       true,
		AddressingMode: ExtendedALU,
	}
}

// IsUnaryALU returns true if the extended ALU instruction operates on a single
// operand. Unary instructions with a source sub-mode of zero have no source
// operand.
func IsUnaryALU(opcode uint8) bool {
	switch opcode {
	case 0x8b, 0x8c, 0x8d, 0x8e, 0x8f, 0x90:
		return true
	}
	return false
}
