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

package filter

import (
	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/disassembly"
	"github.com/jetsetilly/m65832dis/logger"
	lua "github.com/yuin/gopher-lua"
)

// error patterns returned by the filter package.
const (
	ScriptError    = "filter: %v"
	NoFunction     = "filter: script does not define a %s() function"
	UnexpectedType = "filter: %s() returned a %s"
)

// the name of the function the script must define.
const function = "filter"

// Lua is an implementation of the disassembly.Filter interface. The filter is
// a Lua script that defines the function:
//
//	function filter(address, bytes, text, info)
//
// The function should return a string to replace the text, nil or true to
// keep the text unchanged, or false to suppress the line.
//
// A Lua filter is not safe for concurrent use. Listings made in parallel
// should each use their own instance.
type Lua struct {
	state *lua.LState
	fn    lua.LValue
	name  string
}

// NewFromFile loads a filter script from a file.
func NewFromFile(filename string) (*Lua, error) {
	L := lua.NewState()
	if err := L.DoFile(filename); err != nil {
		L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return newLua(L, filename)
}

// NewFromString loads a filter script from a string. The name is used in log
// messages.
func NewFromString(name string, script string) (*Lua, error) {
	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return newLua(L, name)
}

func newLua(L *lua.LState, name string) (*Lua, error) {
	fn := L.GetGlobal(function)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, curated.Errorf(NoFunction, function)
	}

	logger.Logf(logger.Allow, "filter", "loaded %s", name)

	return &Lua{
		state: L,
		fn:    fn,
		name:  name,
	}, nil
}

// Close the Lua state. The filter should not be used after Close() has been
// called.
func (f *Lua) Close() {
	f.state.Close()
}

// Filter implements the disassembly.Filter interface.
func (f *Lua) Filter(e *disassembly.Entry) (string, bool, error) {
	L := f.state

	bytes := L.NewTable()
	for i, b := range e.Bytes {
		bytes.RawSetInt(i+1, lua.LNumber(b))
	}

	info := L.NewTable()
	info.RawSetString("mnemonic", lua.LString(e.Mnemonic()))
	info.RawSetString("operand", lua.LString(e.Operand()))
	info.RawSetString("length", lua.LNumber(e.Length))
	info.RawSetString("illegal", lua.LBool(e.Illegal))
	info.RawSetString("raw", lua.LBool(e.Raw))
	info.RawSetString("effect", lua.LString(e.Defn.Effect.String()))
	info.RawSetString("branch", lua.LBool(e.Defn.IsBranch()))

	err := L.CallByParam(lua.P{
		Fn:      f.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(e.Address), bytes, lua.LString(e.Text), info)
	if err != nil {
		return "", false, curated.Errorf(ScriptError, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	switch v := ret.(type) {
	case lua.LString:
		return string(v), true, nil
	case lua.LBool:
		return e.Text, bool(v), nil
	}

	if ret == lua.LNil {
		return e.Text, true, nil
	}

	return "", false, curated.Errorf(UnexpectedType, function, ret.Type().String())
}
