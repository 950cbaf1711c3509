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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware"
)

// State is an implementation of Digest for the registers, stack, timers and
// memory of the machine.
type State struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// Hash implements the Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *State) ResetDigest() {
	clear(dig.digest[:])
}

// Snapshot adds the current state of the machine to the digest.
func (dig *State) Snapshot(mc *hardware.Machine) error {
	dig.data = dig.data[:0]
	dig.data = append(dig.data, dig.digest[:]...)

	dig.data = binary.BigEndian.AppendUint16(dig.data, mc.PC())
	dig.data = binary.BigEndian.AppendUint16(dig.data, mc.Index())
	r := mc.Registers()
	dig.data = append(dig.data, r[:]...)
	dig.data = append(dig.data, mc.SP(), mc.DelayTimer(), mc.SoundTimer())
	for _, a := range mc.Stack() {
		dig.data = binary.BigEndian.AppendUint16(dig.data, a)
	}

	mem, err := mc.PeekRange(0, hardware.MemorySize)
	if err != nil {
		return err
	}
	dig.data = append(dig.data, mem...)

	dig.digest = sha1.Sum(dig.data)
	return nil
}
