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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DISASM", "STEP", "VERSION")
//	_, _ = md.Parse()
//
// The first sub-mode is the default mode. It is selected if the first
// argument is not the name of a sub-mode, or if the arguments contain a flag
// that has not been added at the current level. Sub-mode comparisons are case
// insensitive.
//
// Once the mode has been decided, NewMode() prepares for the flags of that
// mode:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		origin := md.AddAddress("o", 0, "origin address")
//		hex := md.AddBool("x", false, "show hex bytes")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		disasm(md.RemainingArgs(), *origin, *hex)
//	}
//
// In addition to the flag types of the flag package, AddAddress() accepts
// numbers in hexadecimal with either the 0x or $ prefix, and AddSwitch()
// groups boolean flags so that only one of them can be selected:
//
//	acc := md.AddSwitch("m16",
//		modalflag.SwitchOption{Name: "m8", Usage: "8bit accumulator"},
//		modalflag.SwitchOption{Name: "m16", Usage: "16bit accumulator"},
//		modalflag.SwitchOption{Name: "m32", Usage: "32bit accumulator"},
//	)
//
// If more than one flag in the group is specified on the command line, the
// last one is selected.
package modalflag
