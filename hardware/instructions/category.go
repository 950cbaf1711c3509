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

package instructions

// Category describes the effect an instruction has on the program counter.
type Category int

// List of valid Category values.
const (
	// the program counter advances to the next instruction
	Regular Category = iota

	// the program counter is set to an address. JP V0 is a Flow instruction
	// but the address can only be known at execution time
	Flow

	// the current address is pushed onto the stack and the program counter is
	// set to an address
	Subroutine

	// an address is popped from the stack
	Return

	// the next instruction might be skipped
	Skip

	// the program counter does not advance until a key is pressed
	Wait

	// the instruction is not executed
	Undefined
)

func (c Category) String() string {
	switch c {
	case Regular:
		return "Regular"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Return:
		return "Return"
	case Skip:
		return "Skip"
	case Wait:
		return "Wait"
	case Undefined:
		return "Undefined"
	}
	return "unknown category"
}
