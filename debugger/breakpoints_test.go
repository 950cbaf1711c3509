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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestBreakpoints(t *testing.T) {
	var bp breakpoints
	test.ExpectEquality(t, bp.String(), "no breakpoints")

	test.ExpectSuccess(t, bp.add(0x210))
	test.ExpectSuccess(t, bp.add(0x200))
	test.ExpectSuccess(t, curated.Is(bp.add(0x200), BreakpointExists))
	test.ExpectSuccess(t, curated.Is(bp.add(0x1000), BreakpointRange))
	test.ExpectEquality(t, bp.String(), "breakpoints: 200 210")

	test.ExpectEquality(t, bp.check(0x200), true)
	test.ExpectEquality(t, bp.check(0x202), false)

	test.ExpectSuccess(t, bp.drop(0x200))
	test.ExpectSuccess(t, curated.Is(bp.drop(0x200), BreakpointNotFound))
	test.ExpectEquality(t, bp.check(0x200), false)

	bp.clear()
	test.ExpectEquality(t, bp.check(0x210), false)
}
