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

// Package digest is used to create a fingerprint of the emulation. The Video
// type fingerprints the framebuffer and the State type fingerprints the
// registers and memory of the machine.
//
// Fingerprints are chained. Each new fingerprint is the hash of the previous
// fingerprint and the new data, so the final fingerprint depends on every
// frame (or state) that has been seen and the order in which they were seen.
//
// Fingerprints are useful for regression testing. If the fingerprint of a
// program run for a fixed number of steps changes then the behaviour of the
// emulation has changed.
package digest
