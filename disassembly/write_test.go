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

package disassembly_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/test"
)

func TestWriteListing(t *testing.T) {
	expected := []string{
		"; Disassembly of test.bin",
		"; Origin: $00008000, Length: 16 bytes",
		"",
		"00008000  E2 20             SEP #$20",
		"00008002  A9 12             LDA #$12",
		"00008004  C2 20             REP #$20",
		"00008006  A9 34 12          LDA #$1234",
		"00008009  EA                NOP",
		"0000800A  02 80 00 04       LD.B A,R1",
		"0000800E  AD 34             .BYTE $AD,$34",
	}

	w := &test.CompareWriter{}
	err := disassembly.Write(w, "test.bin", program, 0x8000, disassembly.NewState(), disassembly.WriteAttr{
		Addresses: true,
		ByteCode:  true,
	})
	test.ExpectSuccess(t, err)

	if diff := cmp.Diff(expected, w.Lines()); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteListingPlain(t *testing.T) {
	expected := []string{
		"; Disassembly of test.bin",
		"; Origin: $00000000, Length: 4 bytes",
		"",
		"NOP",
		"LDA #$1234",
	}

	w := &test.CompareWriter{}
	err := disassembly.Write(w, "test.bin", []byte{0xea, 0xa9, 0x34, 0x12}, 0, nil, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)

	if diff := cmp.Diff(expected, w.Lines()); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLineLongInstruction(t *testing.T) {
	w := &test.CompareWriter{}
	attr := disassembly.WriteAttr{Addresses: true, ByteCode: true}
	err := disassembly.WriteLine(w, attr, 0x8000, []byte{0x02, 0x82, 0xb8, 0x04, 0x78, 0x56, 0x34, 0x12}, "ADC R1,#$12345678")
	test.ExpectSuccess(t, err)

	// only the first six bytes are shown
	test.ExpectSuccess(t, w.Compare("00008000  02 82 B8 04 78 56 ADC R1,#$12345678\n"))
}

// filter that suppresses NOP instructions and lower cases everything else.
type lowerFilter struct {
	fail bool
}

func (f lowerFilter) Filter(e *disassembly.Entry) (string, bool, error) {
	if f.fail {
		return "", false, errors.New("test failure")
	}
	if e.Mnemonic() == "NOP" {
		return "", false, nil
	}
	return strings.ToLower(e.Text), true, nil
}

func TestWriteFilter(t *testing.T) {
	expected := []string{
		"; Disassembly of test.bin",
		"; Origin: $00008000, Length: 16 bytes",
		"",
		"sep #$20",
		"lda #$12",
		"rep #$20",
		"lda #$1234",
		"ld.b a,r1",
		".BYTE $AD,$34",
	}

	w := &test.CompareWriter{}
	err := disassembly.Write(w, "test.bin", program, 0x8000, nil, disassembly.WriteAttr{
		Filter: lowerFilter{},
	})
	test.ExpectSuccess(t, err)

	if diff := cmp.Diff(expected, w.Lines()); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}

	err = disassembly.Write(w, "test.bin", program, 0x8000, nil, disassembly.WriteAttr{
		Filter: lowerFilter{fail: true},
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.FilterError))
}

func TestWriteCapped(t *testing.T) {
	w, err := test.NewCappedWriter(1)
	test.DemandSuccess(t, err)

	err = disassembly.Write(w, "test.bin", program, 0x8000, nil, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), ";")
	test.ExpectInequality(t, w.Discarded(), 0)
}

// writer that fails on every call.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	err := disassembly.WriteLine(failingWriter{}, disassembly.WriteAttr{}, 0x8000, []byte{0xea}, "NOP")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.WriteError))

	err = disassembly.Write(failingWriter{}, "test.bin", program, 0x8000, nil, disassembly.WriteAttr{})
	test.ExpectSuccess(t, curated.Is(err, disassembly.WriteError))
}
