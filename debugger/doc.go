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

// Package debugger implements a line-oriented debugger for the CHIP-8
// machine. It is run through an implementation of the terminal.Terminal
// interface.
//
// The debugger accepts commands of the form:
//
//	STEP 10
//	BREAK $21a
//	RUN
//
// Command keywords can be abbreviated to any unique prefix. The HELP command
// lists the available commands.
//
// Errors from commands are printed and never end the debugging session. A
// machine that has halted with a fatal error can still be inspected.
package debugger
