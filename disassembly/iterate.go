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

// Iteration facilitates traversal over the instructions in a byte slice.
//
// The Iteration can be restarted with Start(). The state is restored to the
// value it had when NewIteration() was called, so restarting the iteration
// will produce the same sequence of Entries.
type Iteration struct {
	buf   []byte
	start uint32

	st      *State
	initial State

	// number of entries returned so far
	idx int

	// offset into buf of the next instruction
	offset int

	lastEntry *Entry
}

// NewIteration is the preferred method of initialisation for the Iteration
// type. A nil State is equivalent to a new state from NewState().
func NewIteration(buf []byte, start uint32, st *State) *Iteration {
	if st == nil {
		st = NewState()
	}
	return &Iteration{
		buf:     buf,
		start:   start,
		st:      st,
		initial: *st,
	}
}

// Start new iteration from the first instruction.
func (itr *Iteration) Start() (int, *Entry) {
	*itr.st = itr.initial
	itr.idx = -1
	itr.offset = 0
	itr.lastEntry = nil
	return itr.next()
}

// Next instruction in the iteration. Returns (-1, nil) if the end of the data
// has been reached or if there are not enough bytes for the next instruction.
func (itr *Iteration) Next() (int, *Entry) {
	return itr.next()
}

// SkipNext n entries and return that Entry. An n value of zero returns the
// most recent Entry in the iteration.
func (itr *Iteration) SkipNext(n int) (int, *Entry) {
	e := itr.lastEntry
	for ; n > 0 && e != nil; n-- {
		_, e = itr.next()
	}
	if e == nil {
		return -1, nil
	}
	return itr.idx, e
}

// Remaining returns the bytes that have not yet been decoded. At the end of the
// iteration these are the bytes that could not be decoded because the data
// ends part way through an instruction.
func (itr *Iteration) Remaining() []byte {
	return itr.buf[itr.offset:]
}

// Address returns the address of the next instruction in the iteration.
func (itr *Iteration) Address() uint32 {
	return itr.start + uint32(itr.offset)
}

func (itr *Iteration) next() (int, *Entry) {
	if itr.offset >= len(itr.buf) {
		return -1, nil
	}

	e, err := Decode(itr.buf[itr.offset:], itr.Address(), itr.st)
	if err != nil {
		return -1, nil
	}

	itr.offset += e.Length
	itr.idx++
	itr.lastEntry = e

	return itr.idx, e
}
