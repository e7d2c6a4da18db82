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
	"io"
	"strings"

	"github.com/jetsetilly/m65832dis/curated"
)

// Sentinal errors returned by Write(), WriteLine() and Grep().
const (
	WriteError  = "disassembly: write: %v"
	FilterError = "disassembly: filter: %v (at $%08X)"
)

// the maximum number of bytes shown in the bytecode column.
const maxBytecode = 6

// Filter can be used to change or suppress the text of an Entry before it is
// written. Filter() returns the text to write and whether the Entry should be
// written at all.
type Filter interface {
	Filter(e *Entry) (string, bool, error)
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	Addresses bool
	ByteCode  bool

	// if Filter is not nil it is consulted for every Entry
	Filter Filter
}

// WriteHeader writes the comment lines that introduce a listing.
func WriteHeader(output io.Writer, name string, origin uint32, length int) error {
	_, err := fmt.Fprintf(output, "; Disassembly of %s\n; Origin: $%08X, Length: %d bytes\n\n", name, origin, length)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

// Write a complete listing of buf to output, starting at the origin address.
// The name argument is used in the header of the listing.
//
// Bytes at the end of buf that do not make a complete instruction are written
// as a single raw directive.
func Write(output io.Writer, name string, buf []byte, origin uint32, st *State, attr WriteAttr) error {
	err := WriteHeader(output, name, origin, len(buf))
	if err != nil {
		return err
	}

	itr := NewIteration(buf, origin, st)
	for _, e := itr.Start(); e != nil; _, e = itr.Next() {
		text := e.Text

		if attr.Filter != nil {
			var keep bool
			text, keep, err = attr.Filter.Filter(e)
			if err != nil {
				return curated.Errorf(FilterError, err, e.Address)
			}
			if !keep {
				continue // for loop
			}
		}

		err = WriteLine(output, attr, e.Address, e.Bytes, text)
		if err != nil {
			return err
		}
	}

	if rem := itr.Remaining(); len(rem) > 0 {
		return WriteLine(output, attr, itr.Address(), rem, RawDirective(rem))
	}

	return nil
}

// WriteLine writes a single line of a listing to output.
func WriteLine(output io.Writer, attr WriteAttr, address uint32, bytes []byte, text string) error {
	s := strings.Builder{}

	if attr.Addresses {
		s.WriteString(fmt.Sprintf("%08X  ", address))
	}

	if attr.ByteCode {
		n := 0
		for ; n < len(bytes) && n < maxBytecode; n++ {
			s.WriteString(fmt.Sprintf("%02X ", bytes[n]))
		}
		s.WriteString(strings.Repeat("   ", maxBytecode-n))
	}

	s.WriteString(text)
	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}
