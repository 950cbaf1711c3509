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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/instructions"
)

// the highest address an instruction can be fetched from. both bytes of the
// opcode must be inside memory
const maxPC = memtop - 1

// Step executes one instruction and then updates the timers.
//
// A returned error is fatal and halts the machine. The timers are not
// updated for a step that fails. Once halted, Step() will always return an
// error matching the Halted pattern.
func (mc *Machine) Step() error {
	if mc.halted != nil {
		return curated.Errorf(Halted, mc.halted)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.pc

	if mc.pc > maxPC {
		return mc.halt(curated.Errorf(ProgramCounterOutOfRange, mc.pc))
	}

	opcode := uint16(mc.memory[mc.pc])<<8 | uint16(mc.memory[mc.pc+1])
	ins := instructions.Decode(opcode)
	mc.LastResult.Instruction = ins

	if err := mc.execute(ins); err != nil {
		return mc.halt(err)
	}

	// a jump or a skip might have moved the program counter out of range.
	// this is checked now rather than waiting for the next fetch so that the
	// error is attributed to the instruction that caused it
	if mc.pc > maxPC {
		return mc.halt(curated.Errorf(ProgramCounterOutOfRange, mc.pc))
	}

	mc.updateTimers()

	mc.cycles++
	mc.LastResult.Final = true

	return nil
}

// timers are decremented once per step
func (mc *Machine) updateTimers() {
	if mc.delayTimer > 0 {
		mc.delayTimer--
	}
	if mc.soundTimer > 0 {
		mc.soundTimer--
		if mc.soundTimer == 0 {
			mc.LastResult.SoundEnded = true
		}
	}
}
