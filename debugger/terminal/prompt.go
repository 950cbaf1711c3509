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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	// the address of the next instruction
	Address uint16

	// the disassembly of the next instruction
	Content string

	// the machine has halted and will not step again
	Halted bool
}

func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[ %03X %s", p.Address, strings.TrimSpace(p.Content)))
	if p.Halted {
		s.WriteString(" (halted)")
	}
	s.WriteString(" ] > ")
	return s.String()
}
