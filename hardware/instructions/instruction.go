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

package instructions

import "fmt"

// Instruction is a decoded opcode.
type Instruction struct {
	Opcode   uint16
	Operator Operator

	// register indexes
	X uint8
	Y uint8

	// immediate values
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode an opcode. Decode never fails. Opcodes that match no pattern are
// returned with the Unknown operator.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Operator = Cls
		case 0x00ee:
			ins.Operator = Ret
		default:
			ins.Operator = Sys
		}
	case 0x1:
		ins.Operator = Jp
	case 0x2:
		ins.Operator = Call
	case 0x3:
		ins.Operator = SeByte
	case 0x4:
		ins.Operator = SneByte
	case 0x5:
		// lowest nibble is not checked
		ins.Operator = SeReg
	case 0x6:
		ins.Operator = LdByte
	case 0x7:
		ins.Operator = AddByte
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LdReg
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddReg
		case 0x5:
			ins.Operator = Sub
		case 0x6:
			ins.Operator = Shr
		case 0x7:
			ins.Operator = Subn
		case 0xe:
			ins.Operator = Shl
		}
	case 0x9:
		// lowest nibble is not checked
		ins.Operator = SneReg
	case 0xa:
		ins.Operator = LdI
	case 0xb:
		ins.Operator = JpV0
	case 0xc:
		ins.Operator = Rnd
	case 0xd:
		ins.Operator = Drw
	case 0xe:
		switch ins.NN {
		case 0x9e:
			ins.Operator = Skp
		case 0xa1:
			ins.Operator = Sknp
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			ins.Operator = LdVxDT
		case 0x0a:
			ins.Operator = LdVxK
		case 0x15:
			ins.Operator = LdDTVx
		case 0x18:
			ins.Operator = LdSTVx
		case 0x1e:
			ins.Operator = AddI
		case 0x29:
			ins.Operator = LdF
		case 0x33:
			ins.Operator = LdB
		case 0x55:
			ins.Operator = LdIVx
		case 0x65:
			ins.Operator = LdVxI
		}
	}

	return ins
}

// Target returns the address the instruction jumps or calls to. The boolean
// return value is false if the instruction has no fixed target address.
func (ins Instruction) Target() (uint16, bool) {
	switch ins.Operator {
	case Jp, Call:
		return ins.NNN, true
	}
	return 0, false
}

// String returns the instruction in assembly form.
func (ins Instruction) String() string {
	m := ins.Operator.Mnemonic()

	switch ins.Operator {
	case Unknown:
		return fmt.Sprintf("%s $%04X", m, ins.Opcode)
	case Cls, Ret:
		return m
	case Sys, Jp, Call:
		return fmt.Sprintf("%s $%03X", m, ins.NNN)
	case SeByte, SneByte, LdByte, AddByte, Rnd:
		return fmt.Sprintf("%s V%X, $%02X", m, ins.X, ins.NN)
	case SeReg, SneReg, LdReg, Or, And, Xor, AddReg, Sub, Subn:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case Shr, Shl, Skp, Sknp:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LdI:
		return fmt.Sprintf("%s I, $%03X", m, ins.NNN)
	case JpV0:
		return fmt.Sprintf("%s V0, $%03X", m, ins.NNN)
	case Drw:
		return fmt.Sprintf("%s V%X, V%X, %d", m, ins.X, ins.Y, ins.N)
	case LdVxDT:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case LdVxK:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case LdDTVx:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case LdSTVx:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case AddI:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case LdF:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case LdB:
		return fmt.Sprintf("%s B, V%X", m, ins.X)
	case LdIVx:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case LdVxI:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}

	return m
}
