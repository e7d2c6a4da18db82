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

// DecodeRange decodes every instruction in buf, starting at the start address.
// The callback function, if it is not nil, is called after every instruction
// is decoded.
//
// Decoding stops when the end of buf is reached or when there are not enough
// bytes for the next instruction. Returns the number of bytes decoded.
//
// The same state is used for every instruction so a REP or SEP instruction
// affects the decoding of the instructions that follow it.
func DecodeRange(buf []byte, start uint32, st *State, callback func(address uint32, bytes []byte, length int, text string)) int {
	if st == nil {
		st = NewState()
	}

	var total int
	for total < len(buf) {
		address := start + uint32(total)

		r, ok := decode(buf[total:], address, *st)
		if !ok {
			break // for loop
		}
		st.update(buf[total:], r)

		if callback != nil {
			callback(address, buf[total:total+r.length], r.length, r.text)
		}

		total += r.length
	}

	return total
}
