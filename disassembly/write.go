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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		if _, err := io.WriteString(output, fmt.Sprintf("%s:\n", e.Label)); err != nil {
			return err
		}
	}

	s := fmt.Sprintf("  %03X  ", e.Address)
	if attr.ByteCode {
		s = fmt.Sprintf("%s%-4s  ", s, e.Bytecode())
	}

	if e.Level == EntryLevelData {
		s = fmt.Sprintf("%sDB $%02X", s, e.Bytes[0])
	} else {
		s = fmt.Sprintf("%s%s", s, e.Instruction.String())
	}

	_, err := io.WriteString(output, s+"\n")
	return err
}
