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

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	General EffectCategory = iota

	// flow consists of the branch and jump instructions. branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt

	// mode switch instructions change how the instructions following them
	// are decoded or executed.
	ModeSwitch
)

func (e EffectCategory) String() string {
	switch e {
	case General:
		return "General"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case ModeSwitch:
		return "ModeSwitch"
	}
	return "unknown effect"
}

// effects lists the mnemonics that have an effect other than General.
var effects = map[string]EffectCategory{
	"BPL": Flow, "BMI": Flow, "BVC": Flow, "BVS": Flow,
	"BCC": Flow, "BCS": Flow, "BNE": Flow, "BEQ": Flow,
	"BRA": Flow, "BRL": Flow, "JMP": Flow, "JML": Flow,

	"JSR": Subroutine, "JSL": Subroutine, "RTS": Subroutine, "RTL": Subroutine,

	"BRK": Interrupt, "COP": Interrupt, "RTI": Interrupt, "WAI": Interrupt,
	"STP": Interrupt, "TRAP": Interrupt,

	"REP": ModeSwitch, "SEP": ModeSwitch, "XCE": ModeSwitch,
	"REPE": ModeSwitch, "SEPE": ModeSwitch,
}

func effectOf(mnemonic string) EffectCategory {
	if e, ok := effects[mnemonic]; ok {
		return e
	}
	return General
}
