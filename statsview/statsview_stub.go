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

//go:build !statsview
// +build !statsview

package statsview

import (
	"context"
	"io"

	"github.com/jetsetilly/m65832dis/logger"
)

// Address of the local statistics server. Empty when the statsview build
// constraint is not present.
const Address = ""

// Launch does nothing in this build except note that the server is not
// available.
func Launch(_ context.Context, output io.Writer) {
	logger.Log(logger.Allow, "statsview", "not available in this build")
	if output != nil {
		output.Write([]byte("stats server not available (build with -tags statsview)\n"))
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
