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

// Package romloader is used to specify and load CHIP-8 program data. A
// Loader is created with NewLoader() and the data is read with Load(). The
// data can come from a local file or from an http or https URL.
//
// The Loader does not check that the data is a valid CHIP-8 program. Program
// size is checked by hardware.Machine.Load().
package romloader
