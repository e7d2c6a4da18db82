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

// Package binaryloader loads the binary image to be disassembled. Images can
// be local files or HTTP(S) URLs. The sha1 hash of the complete image is
// recorded and, if a hash was specified before loading, checked.
//
// The Offset and Length fields select the window of the image that is passed
// on to the disassembler. An offset at or beyond the end of the image is an
// error.
package binaryloader
