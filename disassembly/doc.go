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

// Package disassembly coordinates the disassembly of CHIP-8 programs.
//
// The default strategy is a flow trace. Starting at the program origin, each
// instruction is decoded and the paths that the program can take are
// followed. Jumps, subroutine calls and skips all create new paths. Paths end
// at a return instruction, at an instruction that cannot be executed, or at a
// computed jump (JP V0, addr) because the destination is not known until the
// program runs. Bytes that are not reached by any path are treated as data.
//
// The linear strategy decodes every pair of bytes from the origin to the end
// of the program. This is useful for programs that use computed jumps.
package disassembly
