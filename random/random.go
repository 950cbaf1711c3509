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

package random

import (
	"math/rand"
	"time"
)

// the base seed is added to the cycle count when seeding the random number
// generator. it is chosen once per program run.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// CycleCounter is the source of the seed for Rewindable() numbers.
type CycleCounter interface {
	Cycles() uint64
}

// Random is a random number generator tied to the state of the emulation.
type Random struct {
	counter CycleCounter

	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable
	ZeroSeed bool

	// generator for NoRewind() values. created on first use
	norewind *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter CycleCounter) *Random {
	return &Random{
		counter: counter,
	}
}

func (rnd *Random) seed() int64 {
	s := int64(rnd.counter.Cycles())
	if rnd.ZeroSeed {
		return s
	}
	return baseSeed + s
}

// Rewindable returns a random number in the range [0, n). The number depends
// only on the cycle count (and the base seed) so is repeatable.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed())).Intn(n)
}

// NoRewind returns a random number in the range [0, n). The sequence of
// numbers is seeded once on first use and is not tied to the cycle count.
func (rnd *Random) NoRewind(n int) int {
	if rnd.norewind == nil {
		rnd.norewind = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.norewind.Intn(n)
}
