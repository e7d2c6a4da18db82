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

import "fmt"

// RegisterAlias returns the name of the register that the direct page address
// refers to. Direct page addresses that are a multiple of four are aliases of
// the general purpose registers R0 to R63.
func RegisterAlias(dp uint8) (string, bool) {
	if dp&0x03 != 0 {
		return "", false
	}
	return fmt.Sprintf("R%d", dp>>2), true
}

// directPage formats a direct page address, using the register alias if one
// exists.
func directPage(dp uint8) string {
	if r, ok := RegisterAlias(dp); ok {
		return r
	}
	return fmt.Sprintf("$%02X", dp)
}
