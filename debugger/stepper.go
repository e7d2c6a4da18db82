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

package debugger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/m65832dis/debugger/terminal/easyterm"
	"github.com/jetsetilly/m65832dis/debugger/terminal/easyterm/ansi"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/logger"
)

// list of key commands recognised by the Stepper.
const (
	KeyQuit        = 'q'
	KeyAccumulator = 'm'
	KeyIndex       = 'x'
	KeyState       = 's'
	KeyHelp        = '?'
)

const help = "any key: step   m: cycle accumulator width   x: cycle index width   s: show state   q: quit"

// Stepper decodes a buffer one instruction at a time in response to key
// presses. The decoding state can be changed between instructions.
type Stepper struct {
	buf    []byte
	origin uint32
	st     *disassembly.State

	// offset of the next instruction in buf
	offset int

	// number of instructions decoded so far
	Steps int

	// if Color is true then the mnemonic of each instruction is drawn in
	// color. it should only be set when the output is a terminal
	Color bool

	// if Width is greater than zero lines are clipped to that many columns
	Width int

	attr disassembly.WriteAttr
}

// NewStepper is the preferred method of initialisation for the Stepper type.
// A nil State is equivalent to a new state from disassembly.NewState().
func NewStepper(buf []byte, origin uint32, st *disassembly.State, attr disassembly.WriteAttr) *Stepper {
	if st == nil {
		st = disassembly.NewState()
	}
	return &Stepper{
		buf:    buf,
		origin: origin,
		st:     st,
		attr:   attr,
	}
}

// State returns the decoding state that will be used for the next
// instruction.
func (s *Stepper) State() disassembly.State {
	return *s.st
}

// Done returns true if there are no more instructions to step through.
func (s *Stepper) Done() bool {
	return s.offset >= len(s.buf)
}

// Step decodes the next instruction and writes it to the output. Returns
// false if there are no more instructions.
func (s *Stepper) Step(output io.Writer) bool {
	if s.Done() {
		return false
	}

	address := s.origin + uint32(s.offset)

	e, err := disassembly.Decode(s.buf[s.offset:], address, s.st)
	if err != nil {
		// the remaining bytes do not make a complete instruction
		rem := s.buf[s.offset:]
		s.print(output, address, rem, disassembly.RawDirective(rem), "")
		s.offset = len(s.buf)
		logger.Log(logger.Allow, "stepper", err)
		return false
	}

	text := e.Text
	if s.attr.Filter != nil {
		var keep bool
		text, keep, err = s.attr.Filter.Filter(e)
		if err != nil {
			logger.Log(logger.Allow, "stepper", err)
			text = e.Text
		} else if !keep {
			text = ""
		}
	}

	s.offset += e.Length
	s.Steps++

	if text != "" {
		s.print(output, e.Address, e.Bytes, text, e.Mnemonic())
	}

	return true
}

func (s *Stepper) print(output io.Writer, address uint32, bytes []byte, text string, mnemonic string) {
	line := &strings.Builder{}
	_ = disassembly.WriteLine(line, s.attr, address, bytes, text)

	l := strings.TrimSuffix(line.String(), "\n")
	if s.Width > 0 && len(l) > s.Width {
		l = l[:s.Width]
	}

	if s.Color && mnemonic != "" {
		if i := strings.LastIndex(l, mnemonic); i >= 0 && strings.HasPrefix(text, mnemonic) {
			l = fmt.Sprintf("%s%s%s", l[:i], ansi.Paint(mnemonic, "yellow", true), l[i+len(mnemonic):])
		}
	}

	io.WriteString(output, l)
	io.WriteString(output, "\n")
}

// Run the stepper until the buffer is exhausted, the quit key is pressed, the
// input ends or the context is cancelled.
//
// The input should be unbuffered (a terminal in cbreak mode) for the stepper
// to respond to individual key presses.
func (s *Stepper) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	rd := bufio.NewReader(input)

	fmt.Fprintf(output, "%s\n%s\n", help, s.st)

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, _, err := rd.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch r {
		case KeyQuit, easyterm.KeyCtrlC, easyterm.KeyCtrlD:
			return nil
		case KeyAccumulator:
			s.st.AccumulatorWidth = s.st.AccumulatorWidth.Next()
			fmt.Fprintf(output, "%s\n", s.st)
		case KeyIndex:
			s.st.IndexWidth = s.st.IndexWidth.Next()
			fmt.Fprintf(output, "%s\n", s.st)
		case KeyState:
			fmt.Fprintf(output, "%s\n", s.st)
		case KeyHelp:
			fmt.Fprintf(output, "%s\n", help)
		default:
			s.Step(output)
		}
	}

	fmt.Fprintf(output, "end of data (%d instructions)\n", s.Steps)

	return nil
}
