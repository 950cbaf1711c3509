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
	"github.com/jetsetilly/gopher8/hardware/instructions"
)

// flag converts a boolean to a value suitable for the VF register.
func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// skipIf advances the program counter past the next instruction if the
// condition is true.
func (mc *Machine) skipIf(cond bool) {
	if cond {
		mc.pc += 4
		mc.LastResult.Skipped = true
	} else {
		mc.pc += 2
	}
}

// execute the decoded instruction. only fatal errors are returned.
//
// for the instructions that set VF and also write to VX, the order of the
// two writes matters when X is 0xF. the order here is the order of the
// historical interpreters that programs have been written against.
func (mc *Machine) execute(ins instructions.Instruction) error {
	x := ins.X
	y := ins.Y

	switch ins.Operator {
	case instructions.Cls:
		mc.clearDisplay()
		mc.pc += 2

	case instructions.Ret:
		if mc.sp == 0 {
			return curated.Errorf(StackUnderflow, mc.pc)
		}
		mc.sp--
		mc.pc = mc.stack[mc.sp] + 2

	case instructions.Jp:
		mc.pc = ins.NNN

	case instructions.Call:
		if int(mc.sp) >= StackDepth {
			return curated.Errorf(StackOverflow, mc.pc)
		}
		mc.stack[mc.sp] = mc.pc
		mc.sp++
		mc.pc = ins.NNN

	case instructions.SeByte:
		mc.skipIf(mc.v[x] == ins.NN)

	case instructions.SneByte:
		mc.skipIf(mc.v[x] != ins.NN)

	case instructions.SeReg:
		mc.skipIf(mc.v[x] == mc.v[y])

	case instructions.LdByte:
		mc.v[x] = ins.NN
		mc.pc += 2

	case instructions.AddByte:
		mc.v[x] += ins.NN
		mc.pc += 2

	case instructions.LdReg:
		mc.v[x] = mc.v[y]
		mc.pc += 2

	case instructions.Or:
		mc.v[x] |= mc.v[y]
		mc.pc += 2

	case instructions.And:
		mc.v[x] &= mc.v[y]
		mc.pc += 2

	case instructions.Xor:
		mc.v[x] ^= mc.v[y]
		mc.pc += 2

	case instructions.AddReg:
		// flag is written after the result
		sum := uint16(mc.v[x]) + uint16(mc.v[y])
		mc.v[x] = uint8(sum)
		mc.v[vf] = flag(sum > 0xff)
		mc.pc += 2

	case instructions.Sub:
		// flag is written before the result
		mc.v[vf] = flag(mc.v[x] >= mc.v[y])
		mc.v[x] -= mc.v[y]
		mc.pc += 2

	case instructions.Shr:
		mc.v[vf] = mc.v[x] & 0x01
		mc.v[x] >>= 1
		mc.pc += 2

	case instructions.Subn:
		mc.v[vf] = flag(mc.v[y] >= mc.v[x])
		mc.v[x] = mc.v[y] - mc.v[x]
		mc.pc += 2

	case instructions.Shl:
		mc.v[vf] = mc.v[x] >> 7
		mc.v[x] <<= 1
		mc.pc += 2

	case instructions.SneReg:
		mc.skipIf(mc.v[x] != mc.v[y])

	case instructions.LdI:
		mc.index = ins.NNN
		mc.pc += 2

	case instructions.JpV0:
		mc.pc = ins.NNN + uint16(mc.v[0])

	case instructions.Rnd:
		mc.v[x] = uint8(mc.Random.Rewindable(256)) & ins.NN
		mc.pc += 2

	case instructions.Drw:
		if err := mc.checkRange(mc.index, int(ins.N)); err != nil {
			return err
		}
		var sprite []uint8
		if ins.N > 0 {
			sprite = mc.memory[mc.index : int(mc.index)+int(ins.N)]
		}
		mc.v[vf] = flag(mc.drawSprite(mc.v[x], mc.v[y], sprite))
		mc.pc += 2

	case instructions.Skp:
		mc.skipIf(mc.keyPressed(mc.v[x]))

	case instructions.Sknp:
		mc.skipIf(!mc.keyPressed(mc.v[x]))

	case instructions.LdVxDT:
		mc.v[x] = mc.delayTimer
		mc.pc += 2

	case instructions.LdVxK:
		if key, ok := mc.lastKeyPressed(); ok {
			mc.v[x] = key
			mc.pc += 2
		} else {
			mc.LastResult.Waiting = true
		}

	case instructions.LdDTVx:
		mc.delayTimer = mc.v[x]
		mc.pc += 2

	case instructions.LdSTVx:
		mc.soundTimer = mc.v[x]
		mc.pc += 2

	case instructions.AddI:
		// index wraps at 16 bits. the flag is taken from the wrapped value
		mc.index += uint16(mc.v[x])
		mc.v[vf] = flag(mc.index > memtop)
		mc.pc += 2

	case instructions.LdF:
		mc.index = uint16(mc.v[x]) * GlyphSize
		mc.pc += 2

	case instructions.LdB:
		if err := mc.checkRange(mc.index, 3); err != nil {
			return err
		}
		v := mc.v[x]
		mc.write(mc.index, v/100)
		mc.write(mc.index+1, (v/10)%10)
		mc.write(mc.index+2, v%10)
		mc.pc += 2

	case instructions.LdIVx:
		// registers V0 to VX-1 are stored. VX itself is not
		if err := mc.checkRange(mc.index, int(x)); err != nil {
			return err
		}
		for i := uint16(0); i < uint16(x); i++ {
			mc.write(mc.index+i, mc.v[i])
		}
		mc.index += uint16(x) + 1
		mc.pc += 2

	case instructions.LdVxI:
		// registers V0 to VX inclusive are loaded
		if err := mc.checkRange(mc.index, int(x)+1); err != nil {
			return err
		}
		for i := uint16(0); i <= uint16(x); i++ {
			mc.v[i] = mc.memory[mc.index+i]
		}
		mc.index += uint16(x) + 1
		mc.pc += 2

	default:
		// unknown opcodes, including SYS instructions, are not executed and
		// the program counter does not advance
		mc.LastResult.Unknown = true
		mc.problem(fmt.Sprintf("unknown opcode (%04x)", ins.Opcode))
	}

	return nil
}
