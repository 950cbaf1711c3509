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

// Operator identifies the behaviour of an instruction.
type Operator int

// List of valid Operator values. Comments show the encoding of the opcode.
const (
	Unknown Operator = iota
	Sys              // 0nnn
	Cls              // 00E0
	Ret              // 00EE
	Jp               // 1nnn
	Call             // 2nnn
	SeByte           // 3xnn
	SneByte          // 4xnn
	SeReg            // 5xy0
	LdByte           // 6xnn
	AddByte          // 7xnn
	LdReg            // 8xy0
	Or               // 8xy1
	And              // 8xy2
	Xor              // 8xy3
	AddReg           // 8xy4
	Sub              // 8xy5
	Shr              // 8xy6
	Subn             // 8xy7
	Shl              // 8xyE
	SneReg           // 9xy0
	LdI              // Annn
	JpV0             // Bnnn
	Rnd              // Cxnn
	Drw              // Dxyn
	Skp              // Ex9E
	Sknp             // ExA1
	LdVxDT           // Fx07
	LdVxK            // Fx0A
	LdDTVx           // Fx15
	LdSTVx           // Fx18
	AddI             // Fx1E
	LdF              // Fx29
	LdB              // Fx33
	LdIVx            // Fx55
	LdVxI            // Fx65
)

// NumOperators is the number of Operator values, including Unknown.
const NumOperators = int(LdVxI) + 1

// Mnemonic returns the assembly mnemonic for the operator. Operators that
// share a mnemonic are distinguished by their operands.
func (op Operator) Mnemonic() string {
	switch op {
	case Sys:
		return "SYS"
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp, JpV0:
		return "JP"
	case Call:
		return "CALL"
	case SeByte, SeReg:
		return "SE"
	case SneByte, SneReg:
		return "SNE"
	case LdByte, LdReg, LdI, LdVxDT, LdVxK, LdDTVx, LdSTVx, LdF, LdB, LdIVx, LdVxI:
		return "LD"
	case AddByte, AddReg, AddI:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Sub:
		return "SUB"
	case Shr:
		return "SHR"
	case Subn:
		return "SUBN"
	case Shl:
		return "SHL"
	case Rnd:
		return "RND"
	case Drw:
		return "DRW"
	case Skp:
		return "SKP"
	case Sknp:
		return "SKNP"
	}
	return "DW"
}

// Category returns the effect the operator has on the program counter.
func (op Operator) Category() Category {
	switch op {
	case Unknown, Sys:
		return Undefined
	case Jp, JpV0:
		return Flow
	case Call:
		return Subroutine
	case Ret:
		return Return
	case SeByte, SneByte, SeReg, SneReg, Skp, Sknp:
		return Skip
	case LdVxK:
		return Wait
	}
	return Regular
}
