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

// Package hardware is the base package for the CHIP-8 emulation. The Machine
// type owns the memory, registers, stack, timers, keypad and framebuffer of
// the virtual machine.
//
// A host program creates a Machine with NewMachine(), copies a program into
// memory with Load() and then calls Step() repeatedly. Each call to Step()
// executes exactly one instruction and then decrements the delay and sound
// timers. There is no other clock, so the rate at which the host calls Step()
// is also the rate at which the timers count down.
//
// Between steps the host reads the display with ShouldRedraw(),
// ConsumeRedraw() and Framebuffer() and writes the keypad with SetKey().
//
// Errors returned by Step() are fatal. Once a fatal error has occurred the
// Machine is halted and every subsequent call to Step() returns an error
// matching the Halted pattern. Non-fatal conditions, such as an unknown
// opcode, are logged and recorded in the LastResult field.
//
// The Machine is not safe for concurrent use.
package hardware
