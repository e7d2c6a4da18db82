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

// Package ansi defines the ANSI control codes used when writing to a
// terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// control sequences.
const (
	ClearLine = "\033[2K"
	NormalPen = "\033[0m"
	Bold      = "\033[1m"
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// Pen returns the CSI sequence that selects the named foreground color.
func Pen(color string, bright bool) (string, error) {
	c, ok := colors[strings.ToUpper(color)]
	if !ok {
		return "", fmt.Errorf("unknown ANSI pen (%s)", color)
	}
	target := targetPen
	if bright {
		target = targetBrightPen
	}
	return fmt.Sprintf("\033[%d%dm", target, c), nil
}

// Paint wraps s in the CSI sequence for the color and a reset to the normal
// pen. An unknown color leaves s unchanged.
func Paint(s string, color string, bright bool) string {
	p, err := Pen(color, bright)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s%s%s", p, s, NormalPen)
}
