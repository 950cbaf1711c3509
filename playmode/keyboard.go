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

package playmode

import (
	"unicode"

	"github.com/jetsetilly/gopher8/hardware"
)

// number of frames a key stays down after a key press
const keyHoldFrames = 10

// map of keyboard keys to keypad keys
var keymap = map[rune]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// keyboard translates key presses into keypad state.
type keyboard struct {
	mc   *hardware.Machine
	hold [hardware.NumKeys]int
}

// press the keypad key that corresponds to the keyboard key. returns false
// if the keyboard key is not mapped.
func (kb *keyboard) press(r rune) bool {
	k, ok := keymap[unicode.ToLower(r)]
	if !ok {
		return false
	}
	kb.hold[k] = keyHoldFrames
	kb.mc.SetKey(k, true)
	return true
}

// frame releases keys that have been held for long enough.
func (kb *keyboard) frame() {
	for k := range kb.hold {
		if kb.hold[k] == 0 {
			continue
		}
		kb.hold[k]--
		if kb.hold[k] == 0 {
			kb.mc.SetKey(k, false)
		}
	}
}
