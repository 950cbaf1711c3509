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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/execution"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Sizes of the machine's components.
const (
	MemorySize   = 4096
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart
	NumRegisters = 16
	StackDepth   = 16
	NumKeys      = 16
)

// the flag register
const vf = 0xf

// Sentinel error patterns.
const (
	CapacityExceeded         = "machine: rom too large (%d bytes, maximum is %d)"
	StackOverflow            = "machine: stack overflow at %03x"
	StackUnderflow           = "machine: stack underflow at %03x"
	ProgramCounterOutOfRange = "machine: program counter out of range (%04x)"
	MemoryOutOfRange         = "machine: memory access out of range (%04x)"
	Halted                   = "machine: halted: %v"
)

// Machine is the CHIP-8 virtual machine.
type Machine struct {
	memory [MemorySize]uint8

	v     [NumRegisters]uint8
	index uint16
	pc    uint16

	stack [StackDepth]uint16
	sp    uint8

	delayTimer uint8
	soundTimer uint8

	framebuffer [DisplaySize]uint8
	redraw      bool

	keypad [NumKeys]uint8

	// number of completed steps
	cycles uint64

	// the fatal error that halted the machine. nil if the machine is running
	halted error

	// the result of the most recent call to Step()
	LastResult execution.Result

	// source of numbers for the RND instruction
	Random *random.Random

	// suppress log entries made by the machine
	Quiet bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The font is copied into memory and the program counter is set to the start
// of the program area.
func NewMachine() *Machine {
	mc := &Machine{
		pc: ProgramStart,
	}
	copy(mc.memory[FontOrigin:], font[:])
	mc.Random = random.NewRandom(mc)
	return mc
}

// Load copies the program data into memory at the start of the program
// area. Nothing else in the machine is changed. The load fails if the data is
// too large for the program area, in which case memory is left unchanged.
func (mc *Machine) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return curated.Errorf(CapacityExceeded, len(rom), MaxROMSize)
	}
	copy(mc.memory[ProgramStart:], rom)
	return nil
}

// Snapshot creates a copy of the machine. The copy is independent of the
// original and has its own random number generator.
func (mc *Machine) Snapshot() *Machine {
	n := *mc
	n.Random = random.NewRandom(&n)
	n.Random.ZeroSeed = mc.Random.ZeroSeed
	return &n
}

// AllowLogging implements the logger.Permission interface.
func (mc *Machine) AllowLogging() bool {
	return !mc.Quiet
}

// halt the machine with a fatal error. the error is returned unchanged.
func (mc *Machine) halt(err error) error {
	mc.halted = err
	logger.Log(mc, "cpu", err)
	return err
}

// note a non-fatal problem with the current step.
func (mc *Machine) problem(detail string) {
	if mc.LastResult.Error == "" {
		mc.LastResult.Error = detail
	} else {
		mc.LastResult.Error = fmt.Sprintf("%s; %s", mc.LastResult.Error, detail)
	}
	logger.Logf(mc, "cpu", "%03x: %s", mc.LastResult.Address, detail)
}

// Halted returns the error that halted the machine, or nil if the machine
// has not been halted.
func (mc *Machine) Halted() error {
	return mc.halted
}

// Cycles returns the number of completed steps. Implements the
// random.CycleCounter interface.
func (mc *Machine) Cycles() uint64 {
	return mc.cycles
}

// PC returns the current value of the program counter.
func (mc *Machine) PC() uint16 {
	return mc.pc
}

// Index returns the current value of the I register.
func (mc *Machine) Index() uint16 {
	return mc.index
}

// Register returns the value of register Vn. Only the lower nibble of n is
// used.
func (mc *Machine) Register(n uint8) uint8 {
	return mc.v[n&0x0f]
}

// Registers returns a copy of the V registers.
func (mc *Machine) Registers() [NumRegisters]uint8 {
	return mc.v
}

// SP returns the number of addresses on the stack.
func (mc *Machine) SP() uint8 {
	return mc.sp
}

// Stack returns the return addresses currently on the stack. The most
// recently pushed address is last.
func (mc *Machine) Stack() []uint16 {
	s := make([]uint16, mc.sp)
	copy(s, mc.stack[:mc.sp])
	return s
}

// DelayTimer returns the current value of the delay timer.
func (mc *Machine) DelayTimer() uint8 {
	return mc.delayTimer
}

// SoundTimer returns the current value of the sound timer.
func (mc *Machine) SoundTimer() uint8 {
	return mc.soundTimer
}

// Sounding is true while the sound timer is non-zero. The machine does not
// produce any sound itself.
func (mc *Machine) Sounding() bool {
	return mc.soundTimer > 0
}

// String returns the state of the registers and timers.
func (mc *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%d DT=%02x ST=%02x", mc.pc, mc.index, mc.sp, mc.delayTimer, mc.soundTimer))
	for i, v := range mc.v {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	return s.String()
}
