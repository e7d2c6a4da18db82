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

package test

import (
	"fmt"
)

// CappedWriter keeps the first bytes of a listing, up to a fixed size. Output
// beyond the size is accepted but discarded, so a listing can be written to a
// CappedWriter without error and the head of it examined afterwards.
type CappedWriter struct {
	kept      []byte
	discarded int
}

// NewCappedWriter returns a CappedWriter that keeps size bytes.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("capped writer: invalid size (%d)", size)
	}
	return &CappedWriter{
		kept: make([]byte, 0, size),
	}, nil
}

// String returns the kept bytes.
func (c *CappedWriter) String() string {
	return string(c.kept)
}

// Discarded returns the number of bytes written after the cap was reached.
func (c *CappedWriter) Discarded() int {
	return c.discarded
}

// Reset empties the writer.
func (c *CappedWriter) Reset() {
	c.kept = c.kept[:0]
	c.discarded = 0
}

// Write implements the io.Writer interface. It never fails.
func (c *CappedWriter) Write(p []byte) (int, error) {
	n := min(cap(c.kept)-len(c.kept), len(p))
	c.kept = append(c.kept, p[:n]...)
	c.discarded += len(p) - n
	return len(p), nil
}
