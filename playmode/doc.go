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

// Package playmode runs a program in a terminal window without the debugger.
//
// The display is drawn with half-block characters so that two rows of pixels
// fit in one row of the terminal. The keypad is mapped onto the left hand
// side of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// Terminals do not report key releases so a key is held down for a fixed
// number of frames after it is pressed. Holding a key down on the keyboard
// keeps the key down on the keypad because of key repeat.
//
// The machine is stepped in bursts, once per frame, so that the number of
// steps per second matches the requested rate. The delay and sound timers are
// decremented once per step and not at a fixed 60Hz. The timers therefore run
// faster or slower depending on the step rate.
//
// The ESC key ends play.
package playmode
