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
	"context"
	"os"

	"github.com/jetsetilly/m65832dis/debugger/terminal/easyterm"
)

// RunTerminal runs the Stepper with the process's terminal. The terminal is
// put into cbreak mode for the duration so that every key press steps without
// waiting for the return key.
func RunTerminal(ctx context.Context, s *Stepper) error {
	var pt easyterm.Terminal

	err := pt.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer pt.CleanUp()

	if err := pt.CBreakMode(); err != nil {
		return err
	}
	_ = pt.Flush()

	s.Color = easyterm.IsTerminal(os.Stdout)
	s.Width = pt.Width()

	return s.Run(ctx, os.Stdin, os.Stdout)
}
