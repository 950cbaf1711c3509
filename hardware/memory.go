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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// the highest valid memory address
const memtop = MemorySize - 1

// Peek returns the value at the memory address. Peek does not affect the
// state of the machine.
func (mc *Machine) Peek(address uint16) (uint8, error) {
	if address > memtop {
		return 0, curated.Errorf(MemoryOutOfRange, address)
	}
	return mc.memory[address], nil
}

// PeekRange returns a copy of n bytes of memory starting at address.
func (mc *Machine) PeekRange(address uint16, n int) ([]uint8, error) {
	if err := mc.checkRange(address, n); err != nil {
		return nil, err
	}
	d := make([]uint8, n)
	copy(d, mc.memory[address:])
	return d, nil
}

// checkRange makes sure that n bytes starting at address are inside memory.
func (mc *Machine) checkRange(address uint16, n int) error {
	if n <= 0 {
		return nil
	}
	if end := int(address) + n - 1; end > memtop {
		return curated.Errorf(MemoryOutOfRange, end)
	}
	return nil
}

// write a byte to memory on behalf of the program. writes to the font are
// ignored. the address must have been checked with checkRange()
func (mc *Machine) write(address uint16, data uint8) {
	if int(address) <= FontMemtop {
		mc.problem(fmt.Sprintf("write to font area ignored (%03x)", address))
		return
	}
	mc.memory[address] = data
}
