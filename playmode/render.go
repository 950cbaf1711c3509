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
	"github.com/jetsetilly/gopher8/hardware"
)

// the number of terminal rows required by the display
const displayRows = hardware.DisplayHeight / 2

// halfBlocks returns the rows of the display drawn with half-block
// characters. each character represents two vertically adjacent pixels.
func halfBlocks(fb [hardware.DisplaySize]uint8) [displayRows][hardware.DisplayWidth]rune {
	var rows [displayRows][hardware.DisplayWidth]rune

	for y := range displayRows {
		top := fb[y*2*hardware.DisplayWidth:]
		bottom := fb[(y*2+1)*hardware.DisplayWidth:]
		for x := range hardware.DisplayWidth {
			switch {
			case top[x] != 0 && bottom[x] != 0:
				rows[y][x] = '█'
			case top[x] != 0:
				rows[y][x] = '▀'
			case bottom[x] != 0:
				rows[y][x] = '▄'
			default:
				rows[y][x] = ' '
			}
		}
	}

	return rows
}
