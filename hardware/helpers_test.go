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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

// assemble a list of opcodes into program data
func assemble(program ...uint16) []byte {
	rom := make([]byte, 0, len(program)*2)
	for _, op := range program {
		rom = append(rom, byte(op>>8), byte(op))
	}
	return rom
}

// newMachine creates a machine with the program loaded and with predictable
// random numbers
func newMachine(t *testing.T, program ...uint16) *hardware.Machine {
	t.Helper()
	mc := hardware.NewMachine()
	mc.Random.ZeroSeed = true
	mc.Quiet = true
	test.DemandSuccess(t, mc.Load(assemble(program...)))
	return mc
}

// step the machine n times. any error is fatal to the test
func step(t *testing.T, mc *hardware.Machine, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, mc.Step())
	}
}

// peek memory. any error is fatal to the test
func peek(t *testing.T, mc *hardware.Machine, address uint16) uint8 {
	t.Helper()
	v, err := mc.Peek(address)
	test.DemandSuccess(t, err)
	return v
}
