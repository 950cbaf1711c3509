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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/instructions"
)

// Result records the execution of one instruction.
type Result struct {
	// address of the instruction
	Address uint16

	Instruction instructions.Instruction

	// whether the step completed. a step that ends with a fatal error is not
	// final
	Final bool

	// the instruction was a skip instruction and the condition was met
	Skipped bool

	// the instruction was waiting for a key press. the program counter has
	// not advanced
	Waiting bool

	// the opcode could not be executed
	Unknown bool

	// the sound timer reached zero during the step
	SoundEnded bool

	// description of a non-fatal problem that occurred during the step
	Error string
}

// Reset the result to its zero value.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a one line description of the result.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%03x %04x %s", r.Address, r.Instruction.Opcode, r.Instruction.String()))
	if r.Skipped {
		s.WriteString(" [skipped]")
	}
	if r.Waiting {
		s.WriteString(" [waiting]")
	}
	if r.Unknown {
		s.WriteString(" [unknown]")
	}
	if r.SoundEnded {
		s.WriteString(" [sound ended]")
	}
	if !r.Final {
		s.WriteString(" [not final]")
	}
	if r.Error != "" {
		s.WriteString(fmt.Sprintf(" (%s)", r.Error))
	}
	return s.String()
}
