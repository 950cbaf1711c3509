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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware"
)

// Video is an implementation of Digest for the framebuffer.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the framebuffer
	pixels [sha1.Size + hardware.DisplaySize]byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame adds the framebuffer to the digest.
func (dig *Video) NewFrame(fb [hardware.DisplaySize]uint8) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels[:], dig.digest[:])
	copy(dig.pixels[n:], fb[:])
	dig.digest = sha1.Sum(dig.pixels[:])
	dig.frames++
}

// Snapshot adds the current framebuffer of the machine to the digest, but only
// if the machine indicates that the framebuffer has changed. The redraw flag
// of the machine is consumed.
func (dig *Video) Snapshot(mc *hardware.Machine) bool {
	if !mc.ConsumeRedraw() {
		return false
	}
	dig.NewFrame(mc.Framebuffer())
	return true
}
