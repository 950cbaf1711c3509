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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instructions"
)

// flow follows every path through the program from the origin.
func (dsm *Disassembly) flow() {
	paths := []uint16{hardware.ProgramStart}

	for len(paths) > 0 {
		address := paths[len(paths)-1]
		paths = paths[:len(paths)-1]

		for {
			if _, ok := dsm.byAddress[address]; ok {
				break // for loop
			}

			ins, d, ok := dsm.decode(address)
			if !ok {
				break // for loop
			}

			// an instruction that can't be executed ends the path and is
			// probably data
			if ins.Operator.Category() == instructions.Undefined {
				break // for loop
			}

			dsm.add(&Entry{
				Level:       EntryLevelBlessed,
				Address:     address,
				Instruction: ins,
				Bytes:       d,
			})

			next := address + 2

			switch ins.Operator.Category() {
			case instructions.Flow:
				if ins.Operator == instructions.JpV0 {
					dsm.ComputedJumps = true
				} else {
					paths = append(paths, ins.NNN)
				}
				next = 0

			case instructions.Subroutine:
				paths = append(paths, ins.NNN)

			case instructions.Return:
				next = 0

			case instructions.Skip:
				paths = append(paths, address+4)
			}

			if next == 0 {
				break // for loop
			}
			address = next
		}
	}
}
