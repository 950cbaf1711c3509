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

// Package instructions defines the CHIP-8 instruction set. An opcode is
// decoded with the Decode() function into an Instruction. The Operator field
// of the Instruction identifies the behaviour and the remaining fields are the
// operands, extracted from the opcode whether the operator uses them or not.
//
// Opcodes that do not match any known pattern are decoded with the Unknown
// operator. Opcodes in the 0nnn range, other than 00E0 and 00EE, are decoded
// as the Sys operator. Sys instructions called machine code routines on the
// original hardware and are not executed by the emulation.
package instructions
