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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/instructions"
)

// EntryLevel describes how confident the disassembly is that the entry is an
// instruction.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the entry was not reached by the flow trace and is probably data
	EntryLevelData EntryLevel = iota

	// the entry was decoded as part of a linear sweep
	EntryLevelDecoded

	// the entry was reached by the flow trace
	EntryLevelBlessed
)

// Entry is a single line of the disassembly.
type Entry struct {
	Level   EntryLevel
	Address uint16

	// the instruction. data entries are one byte long and the instruction
	// field is the zero value
	Instruction instructions.Instruction
	Bytes       []uint8

	// label is not empty if the address is the target of a jump or call
	Label string
}

// Mnemonic returns the instruction mnemonic or the data directive.
func (e *Entry) Mnemonic() string {
	if e.Level == EntryLevelData {
		return "DB"
	}
	return e.Instruction.String()
}

// Bytecode returns the raw bytes of the entry as a hex string.
func (e *Entry) Bytecode() string {
	s := ""
	for _, b := range e.Bytes {
		s += fmt.Sprintf("%02X", b)
	}
	return s
}

func (e *Entry) String() string {
	if e.Level == EntryLevelData {
		return fmt.Sprintf("%03X DB $%02X", e.Address, e.Bytes[0])
	}
	return fmt.Sprintf("%03X %s", e.Address, e.Instruction.String())
}

// label name for an address
func labelName(address uint16) string {
	return fmt.Sprintf("L%03X", address)
}
