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

package debugger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/m65832dis/debugger"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/hardware/cpu/registers"
	"github.com/jetsetilly/m65832dis/test"
)

// LDA #$1234; NOP; AD 34 (truncated)
var program = []byte{0xa9, 0x34, 0x12, 0xea, 0xad, 0x34}

func TestStep(t *testing.T) {
	s := debugger.NewStepper(program, 0x8000, nil, disassembly.WriteAttr{Addresses: true})

	w := &test.CompareWriter{}
	test.ExpectEquality(t, s.Step(w), true)
	test.ExpectEquality(t, s.Step(w), true)
	test.ExpectEquality(t, s.Step(w), false)
	test.ExpectEquality(t, s.Step(w), false)
	test.ExpectEquality(t, s.Done(), true)
	test.ExpectEquality(t, s.Steps, 2)

	expected := []string{
		"00008000  LDA #$1234",
		"00008003  NOP",
		"00008004  .BYTE $AD,$34",
	}
	if diff := cmp.Diff(expected, w.Lines()); diff != "" {
		t.Errorf("step mismatch (-want +got):\n%s", diff)
	}
}

func TestRun(t *testing.T) {
	s := debugger.NewStepper(program, 0x8000, nil, disassembly.WriteAttr{})

	// change accumulator width to 32bit (16 -> 32) then 8bit (32 -> 8) before
	// the first instruction
	w := &test.CompareWriter{}
	err := s.Run(context.Background(), strings.NewReader("mm "), w)
	test.ExpectSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 5)
	test.ExpectEquality(t, lines[1], "A=16bit X=16bit native")
	test.ExpectEquality(t, lines[2], "A=32bit X=16bit native")
	test.ExpectEquality(t, lines[3], "A=8bit X=16bit native")
	test.ExpectEquality(t, lines[4], "LDA #$34")

	// the input ended before the data so the stepper stopped early
	test.ExpectEquality(t, s.Done(), false)
	test.ExpectEquality(t, s.State().AccumulatorWidth, registers.Width8)
}

func TestRunToEnd(t *testing.T) {
	s := debugger.NewStepper(program, 0, nil, disassembly.WriteAttr{})

	// 32bit index registers put the processor into 32bit mode so the immediate
	// operand of LDA is four bytes long. that leaves a single byte which is
	// not a complete instruction
	w := &test.CompareWriter{}
	err := s.Run(context.Background(), strings.NewReader("xs    "), w)
	test.ExpectSuccess(t, err)

	expected := []string{
		"A=16bit X=16bit native",
		"A=16bit X=32bit native",
		"A=16bit X=32bit native",
		"LDA #$ADEA1234",
		".BYTE $34",
		"end of data (1 instructions)",
	}

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 7)
	if diff := cmp.Diff(expected, lines[1:]); diff != "" {
		t.Errorf("run mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, s.Done(), true)
}

func TestQuit(t *testing.T) {
	s := debugger.NewStepper(program, 0, nil, disassembly.WriteAttr{})

	w := &test.CompareWriter{}
	err := s.Run(context.Background(), strings.NewReader(" q "), w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Steps, 1)
}

func TestCancel(t *testing.T) {
	s := debugger.NewStepper(program, 0, nil, disassembly.WriteAttr{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.CompareWriter{}
	err := s.Run(ctx, strings.NewReader("    "), w)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.Steps, 0)
}

func TestWidthAndColor(t *testing.T) {
	s := debugger.NewStepper(program, 0x8000, nil, disassembly.WriteAttr{Addresses: true, ByteCode: true})
	s.Width = 16

	w := &test.CompareWriter{}
	s.Step(w)
	test.ExpectEquality(t, w.String(), "00008000  A9 34 \n")

	s = debugger.NewStepper(program, 0, nil, disassembly.WriteAttr{})
	s.Color = true

	w.Clear()
	s.Step(w)
	test.ExpectEquality(t, w.String(), "\033[93mLDA\033[0m #$1234\n")
}
