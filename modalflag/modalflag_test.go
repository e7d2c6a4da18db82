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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/m65832dis/modalflag"
	"github.com/jetsetilly/m65832dis/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-x", "1.bin", "2.bin"})
	hex := md.AddBool("x", false, "show hex bytes")
	test.ExpectFailure(t, *hex)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *hex)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2.bin")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-x", "test.bin"})
	md.AddSubModes("disasm", "step", "version")

	// unrecognised flags at the top level select the default mode
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	hex := md.AddBool("x", false, "show hex bytes")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *hex)
	test.ExpectEquality(t, md.GetArg(0), "test.bin")
	test.ExpectEquality(t, md.Path(), "DISASM")
}

func TestSelectedMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"step", "test.bin"})
	md.AddSubModes("disasm", "step", "version")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "STEP")

	md.NewMode()
	md.AddSubModes("A", "B")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "A")
	test.ExpectEquality(t, md.Path(), "STEP/A")
	test.ExpectEquality(t, md.GetArg(0), "test.bin")
}

func TestAddress(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-o", "0x8000", "-s", "$10", "-l", "64"})
	origin := md.AddAddress("o", 0, "origin")
	offset := md.AddAddress("s", 0, "offset")
	length := md.AddAddress("l", 0, "length")
	def := md.AddAddress("d", 0xfffc, "default")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, uint32(0x8000))
	test.ExpectEquality(t, *offset, uint32(0x10))
	test.ExpectEquality(t, *length, uint32(64))
	test.ExpectEquality(t, *def, uint32(0xfffc))

	md.NewArgs([]string{"-o", "nonsense"})
	md.AddAddress("o", 0, "origin")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSwitch(t *testing.T) {
	options := []modalflag.SwitchOption{
		{Name: "m8", Usage: "8bit"},
		{Name: "m16", Usage: "16bit"},
		{Name: "m32", Usage: "32bit"},
	}

	md := modalflag.Modes{}
	md.NewArgs([]string{})
	sw := md.AddSwitch("m16", options...)
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sw.Selected(), "m16")

	// the last flag on the command line is selected
	md.NewArgs([]string{"-m32", "-m8"})
	sw = md.AddSwitch("m16", options...)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sw.Selected(), "m8")

	md.NewArgs([]string{"-m8", "-m32"})
	sw = md.AddSwitch("m16", options...)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sw.Selected(), "m32")

	// switching off a flag does not change the selection
	md.NewArgs([]string{"-m8", "-m32=false"})
	sw = md.AddSwitch("m16", options...)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sw.Selected(), "m8")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n" +
		"\n" +
		"more help\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}
