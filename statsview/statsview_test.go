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

package statsview_test

import (
	"context"
	"testing"

	"github.com/jetsetilly/m65832dis/statsview"
	"github.com/jetsetilly/m65832dis/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	tw := &test.CompareWriter{}
	statsview.Launch(context.Background(), tw)
	test.ExpectSuccess(t, tw.Compare("stats server not available (build with -tags statsview)\n"))

	// nil output is allowed
	statsview.Launch(context.Background(), nil)
}
