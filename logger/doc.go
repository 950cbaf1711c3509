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

// Package logger is the central log repository for gopher8. Log entries are
// made with the Log() and Logf() functions and tagged so that the origin of
// the entry is clear. For example, the CHIP-8 machine logs with the "cpu"
// tag:
//
//	logger.Logf(logger.Allow, "cpu", "unknown opcode %04x at %03x", opcode, pc)
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
//
// The first argument to the logging functions is a Permission. Logging only
// happens if AllowLogging() returns true. The Allow value can be used
// whenever there is no reason to restrict logging.
//
// The package level functions operate on a central logger. Isolated Logger
// instances can be created with NewLogger(), which is useful for testing or
// for components that want to keep a private history.
package logger
