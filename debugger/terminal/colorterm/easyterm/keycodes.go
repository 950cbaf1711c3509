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

package easyterm

// Key codes.
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyEOT            = 4 // end-of-transmission character
	KeyBackspace      = 8
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyDelete         = 127
)

// Escape sequences.
const (
	EscDelete = 51
	EscCursor = 91
)

// Cursor movement.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'
)
