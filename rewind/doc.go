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

// Package rewind keeps a history of machine states so that execution can be
// wound back.
//
// A snapshot of the machine should be recorded with Record() before every
// step. The history is limited in size and the oldest snapshots are forgotten
// first.
//
// Random numbers generated by the machine depend only on the cycle count so
// a machine that has been wound back will generate the same numbers again
// when stepped forward.
package rewind
