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

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/m65832dis/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// error patterns returned by the Terminal type.
const (
	NotATerminal = "easyterm: %s is not a terminal"
	NoFile       = "easyterm: requires an %s file"
	ModeError    = "easyterm: cannot change terminal mode: %v"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal) in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are  called from the signal handler are prefaced
	// with (to prevent race conditions, or worse):
	// 		pt.mu.Lock()
	// 		defer pt.mu.Unlock()
	mu sync.Mutex
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Initialise the fields in the Terminal struct. Both files must be
// terminals.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(NoFile, "input")
	}
	if outputFile == nil {
		return curated.Errorf(NoFile, "output")
	}
	if !IsTerminal(inputFile) {
		return curated.Errorf(NotATerminal, inputFile.Name())
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using.
	// the cbreak and raw attributes start from the canonical attributes so that
	// unrelated settings survive the mode change
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(ModeError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	_ = pt.UpdateGeometry()

	// set up sig/ack channels for signal handler
	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	if pt.terminateHandlerSig == nil {
		return
	}
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
	pt.terminateHandlerSig = nil
}

// Print writes the formatted string to the output file
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// Width returns the number of columns of the output terminal. A default
// width of 80 is returned if the geometry is not known.
func (pt *Terminal) Width() int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if pt.Geometry.Cols <= 0 {
		return 80
	}
	return pt.Geometry.Cols
}

// UpdateGeometry gets the current dimensions of the output terminal
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return fmt.Errorf("error updating terminal geometry information: %w", err)
	}
	pt.Geometry.Cols = cols
	pt.Geometry.Rows = rows
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode
func (pt *Terminal) CanonicalMode() error {
	return pt.setAttr(&pt.canAttr)
}

// RawMode puts terminal into raw mode
func (pt *Terminal) RawMode() error {
	return pt.setAttr(&pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode
func (pt *Terminal) CBreakMode() error {
	return pt.setAttr(&pt.cbreakAttr)
}

func (pt *Terminal) setAttr(attr *unix.Termios) error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr); err != nil {
		return curated.Errorf(ModeError, err)
	}
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
