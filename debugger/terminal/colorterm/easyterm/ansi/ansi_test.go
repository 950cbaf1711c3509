// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopher8/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("cyan", "", "bold", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[36;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")
	test.ExpectEquality(t, ansi.NormalPen, "\033[m")

	_, err = ansi.ColorBuild("orange", "", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.DimPens["cyan"], "\033[36;49m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0), "")
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
}
