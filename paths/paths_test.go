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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/m65832dis/paths"
	"github.com/jetsetilly/m65832dis/test"
)

func TestPaths(t *testing.T) {
	// run the test from an empty directory so that the base path is in the
	// config directory
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")

	test.ExpectEquality(t, paths.ResourcePath("filters", "a.lua"), "/tmp/config/m65832dis/filters/a.lua")

	// a base path in the current directory takes precedence
	test.DemandSuccess(t, os.Mkdir(".m65832dis", 0o700))
	test.ExpectEquality(t, paths.ResourcePath("filters", "a.lua"), ".m65832dis/filters/a.lua")
	test.ExpectEquality(t, paths.ResourcePath("", "a.lua"), ".m65832dis/a.lua")
	test.ExpectEquality(t, paths.ResourcePath(), ".m65832dis")
}

func TestFind(t *testing.T) {
	t.Chdir(t.TempDir())

	test.DemandSuccess(t, os.MkdirAll(filepath.Join(".m65832dis", "filters"), 0o700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".m65832dis", "filters", "a.lua"), []byte{}, 0o644))
	test.DemandSuccess(t, os.WriteFile("b.lua", []byte{}, 0o644))

	test.ExpectEquality(t, paths.Find("filters", "a.lua"), ".m65832dis/filters/a.lua")
	test.ExpectEquality(t, paths.Find("filters", "b.lua"), "b.lua")
	test.ExpectEquality(t, paths.Find("filters", "c.lua"), "c.lua")
	test.ExpectEquality(t, paths.Find("filters", "x/a.lua"), "x/a.lua")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "prog.bin", "dot")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_prog\.bin_\d{8}_\d{6}\.dot$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("memviz", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_\d{8}_\d{6}$`).MatchString(fn), fn)
	test.ExpectSuccess(t, !strings.Contains(fn, "."))
}
