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

package hardware

import "fmt"

// SetKey sets the state of a key on the keypad. Key indexes are 0 to 15. Any
// other index is a programming error and will cause a panic.
func (mc *Machine) SetKey(index int, pressed bool) {
	if index < 0 || index >= NumKeys {
		panic(fmt.Sprintf("hardware: key index out of range (%d)", index))
	}
	if pressed {
		mc.keypad[index] = 1
	} else {
		mc.keypad[index] = 0
	}
}

// Keypad returns a copy of the keypad state. A value of 1 means the key is
// pressed.
func (mc *Machine) Keypad() [NumKeys]uint8 {
	return mc.keypad
}

// keyPressed is used by the SKP and SKNP instructions. the key index comes
// from a register so might be out of range, in which case the key is treated
// as not being pressed.
func (mc *Machine) keyPressed(key uint8) bool {
	if int(key) >= NumKeys {
		mc.problem(fmt.Sprintf("key index out of range (%02x)", key))
		return false
	}
	return mc.keypad[key] != 0
}

// lastKeyPressed returns the highest numbered key currently pressed. the
// boolean return value is false if no key is pressed.
func (mc *Machine) lastKeyPressed() (uint8, bool) {
	var key uint8
	var ok bool
	for i := range mc.keypad {
		if mc.keypad[i] != 0 {
			key = uint8(i)
			ok = true
		}
	}
	return key, ok
}
