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

import "github.com/jetsetilly/gopher8/hardware"

// linear decodes every pair of bytes from the origin.
func (dsm *Disassembly) linear() {
	for address := uint16(hardware.ProgramStart); ; address += 2 {
		ins, d, ok := dsm.decode(address)
		if !ok {
			return
		}
		dsm.add(&Entry{
			Level:       EntryLevelDecoded,
			Address:     address,
			Instruction: ins,
			Bytes:       d,
		})
	}
}
