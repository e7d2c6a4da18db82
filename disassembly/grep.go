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
	"io"
	"strings"

	"github.com/jetsetilly/m65832dis/curated"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll

	// the effect category of the instruction. for example, Flow or
	// ModeSwitch
	GrepEffect
)

// Grep searches the entries of the iteration for the search string. Matching
// entries are written to output with WriteLine(). Returns the number of
// matching entries and the first error from the output writer.
//
// The GrepAll scope searches the entire line as it would be written, including
// the address and bytecode columns if they are selected by the WriteAttr
// argument.
func Grep(output io.Writer, itr *Iteration, attr WriteAttr, scope GrepScope, search string, caseSensitive bool) (int, error) {
	var matches int

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, e := itr.Start(); e != nil; _, e = itr.Next() {
		// line representation of the entry. we'll print this in case of a
		// match
		line := &strings.Builder{}
		_ = WriteLine(line, attr, e.Address, e.Bytes, e.Text)

		// limit scope of grep to the correct field
		var s string
		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = line.String()
		case GrepEffect:
			s = e.Defn.Effect.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			if _, err := io.WriteString(output, line.String()); err != nil {
				return matches, curated.Errorf(WriteError, err)
			}
			matches++
		}
	}

	return matches, nil
}
