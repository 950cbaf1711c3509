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

// Dimensions of the display.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight
)

// sprites are always eight pixels wide
const spriteWidth = 8

// Framebuffer returns a copy of the display. Each cell is 0 or 1 and the
// cells are in row-major order.
func (mc *Machine) Framebuffer() [DisplaySize]uint8 {
	return mc.framebuffer
}

// ShouldRedraw returns true if the framebuffer has changed since the last
// call to ConsumeRedraw(). It does not clear the redraw flag.
func (mc *Machine) ShouldRedraw() bool {
	return mc.redraw
}

// ConsumeRedraw returns the redraw flag and clears it.
func (mc *Machine) ConsumeRedraw() bool {
	r := mc.redraw
	mc.redraw = false
	return r
}

func (mc *Machine) clearDisplay() {
	clear(mc.framebuffer[:])
	mc.redraw = true
}

// drawSprite XORs the rows of the sprite onto the framebuffer at (x, y).
// pixels that fall off the right edge of a row continue on the next row and
// pixels past the end of the framebuffer wrap to the start. returns true if
// any pixel was turned off.
func (mc *Machine) drawSprite(x, y uint8, sprite []uint8) bool {
	var collision bool

	for row, data := range sprite {
		for col := 0; col < spriteWidth; col++ {
			if data&(0x80>>col) == 0 {
				continue
			}
			i := (int(x) + col + (int(y)+row)*DisplayWidth) % DisplaySize
			if mc.framebuffer[i] == 1 {
				collision = true
			}
			mc.framebuffer[i] ^= 1
		}
	}

	mc.redraw = true
	return collision
}

// DisplayLines renders the framebuffer as text. There is one string for each
// row of the display. Set pixels are drawn with the on rune and clear pixels
// with the off rune.
func DisplayLines(fb [DisplaySize]uint8, on, off rune) []string {
	lines := make([]string, DisplayHeight)
	row := make([]rune, DisplayWidth)
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if fb[y*DisplayWidth+x] != 0 {
				row[x] = on
			} else {
				row[x] = off
			}
		}
		lines[y] = string(row)
	}
	return lines
}
