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
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

func TestNewMachine(t *testing.T) {
	mc := hardware.NewMachine()
	test.ExpectEquality(t, mc.PC(), hardware.ProgramStart)
	test.ExpectEquality(t, mc.Index(), 0)
	test.ExpectEquality(t, mc.SP(), 0)
	test.ExpectEquality(t, mc.DelayTimer(), 0)
	test.ExpectEquality(t, mc.SoundTimer(), 0)
	test.ExpectEquality(t, mc.ShouldRedraw(), false)
	test.ExpectEquality(t, mc.Halted(), nil)
	test.ExpectEquality(t, mc.Registers(), [hardware.NumRegisters]uint8{})
	test.ExpectEquality(t, mc.Framebuffer(), [hardware.DisplaySize]uint8{})

	// font is in memory
	for d := range uint8(16) {
		g := hardware.Glyph(d)
		for i := range hardware.GlyphSize {
			a := uint16(hardware.FontOrigin + int(d)*hardware.GlyphSize + i)
			test.ExpectEquality(t, peek(t, mc, a), g[i], d, i)
		}
	}
	test.ExpectEquality(t, hardware.FontMemtop, 0x4f)
	test.ExpectEquality(t, hardware.Glyph(0xf), [hardware.GlyphSize]uint8{0xf0, 0x80, 0xf0, 0x80, 0x80})
}

func TestLoad(t *testing.T) {
	mc := hardware.NewMachine()

	// largest possible program
	rom := make([]byte, hardware.MaxROMSize)
	rom[0] = 0x12
	rom[len(rom)-1] = 0xab
	test.ExpectSuccess(t, mc.Load(rom))
	test.ExpectEquality(t, peek(t, mc, 0x200), 0x12)
	test.ExpectEquality(t, peek(t, mc, 0xfff), 0xab)

	// loading again copies over the top of the previous data
	test.ExpectSuccess(t, mc.Load([]byte{0x34}))
	test.ExpectEquality(t, peek(t, mc, 0x200), 0x34)
	test.ExpectEquality(t, peek(t, mc, 0xfff), 0xab)
}

func TestLoadCapacity(t *testing.T) {
	mc := hardware.NewMachine()

	rom := make([]byte, hardware.MaxROMSize+1)
	for i := range rom {
		rom[i] = 0xff
	}
	err := mc.Load(rom)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.CapacityExceeded))

	// memory is unchanged
	for a := uint16(hardware.ProgramStart); a < hardware.MemorySize; a++ {
		test.ExpectEquality(t, peek(t, mc, a), 0, a)
	}
	test.ExpectEquality(t, mc.PC(), hardware.ProgramStart)
}

func TestPeek(t *testing.T) {
	mc := newMachine(t, 0x1234, 0x5678)

	d, err := mc.PeekRange(0x200, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), 4)
	test.ExpectEquality(t, d[0], 0x12)
	test.ExpectEquality(t, d[3], 0x78)

	_, err = mc.Peek(0x1000)
	test.ExpectSuccess(t, curated.Is(err, hardware.MemoryOutOfRange))

	_, err = mc.PeekRange(0xffe, 3)
	test.ExpectSuccess(t, curated.Is(err, hardware.MemoryOutOfRange))
}

func TestSetKey(t *testing.T) {
	mc := hardware.NewMachine()
	mc.SetKey(0, true)
	mc.SetKey(15, true)
	k := mc.Keypad()
	test.ExpectEquality(t, k[0], 1)
	test.ExpectEquality(t, k[15], 1)
	mc.SetKey(15, false)
	k = mc.Keypad()
	test.ExpectEquality(t, k[15], 0)

	for _, index := range []int{-1, 16} {
		func() {
			defer func() {
				test.ExpectInequality(t, recover(), nil, index)
			}()
			mc.SetKey(index, true)
		}()
	}
}

func TestRedraw(t *testing.T) {
	mc := newMachine(t, 0x00e0)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.ShouldRedraw(), true)
	test.ExpectEquality(t, mc.ShouldRedraw(), true)
	test.ExpectEquality(t, mc.ConsumeRedraw(), true)
	test.ExpectEquality(t, mc.ShouldRedraw(), false)
	test.ExpectEquality(t, mc.ConsumeRedraw(), false)
}

func TestTimers(t *testing.T) {
	mc := newMachine(t,
		0x6003, // LD V0, $03
		0xf015, // LD DT, V0
		0xf018, // LD ST, V0
		0x1206, // JP $206
	)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.DelayTimer(), 2)
	test.ExpectEquality(t, mc.SoundTimer(), 0)
	test.ExpectEquality(t, mc.Sounding(), false)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.DelayTimer(), 1)
	test.ExpectEquality(t, mc.SoundTimer(), 2)
	test.ExpectEquality(t, mc.Sounding(), true)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.DelayTimer(), 0)
	test.ExpectEquality(t, mc.SoundTimer(), 1)
	test.ExpectEquality(t, mc.LastResult.SoundEnded, false)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.DelayTimer(), 0)
	test.ExpectEquality(t, mc.SoundTimer(), 0)
	test.ExpectEquality(t, mc.LastResult.SoundEnded, true)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.LastResult.SoundEnded, false)
	test.ExpectEquality(t, mc.Cycles(), 6)
}

func TestSnapshot(t *testing.T) {
	mc := newMachine(t, 0x6001, 0x6102)
	step(t, mc, 1)

	snap := mc.Snapshot()
	step(t, mc, 1)

	test.ExpectEquality(t, snap.PC(), 0x202)
	test.ExpectEquality(t, snap.Register(1), 0)
	test.ExpectEquality(t, mc.PC(), 0x204)
	test.ExpectEquality(t, mc.Register(1), 2)
	test.ExpectEquality(t, snap.Random.ZeroSeed, true)

	// the snapshot can be stepped independently
	test.ExpectSuccess(t, snap.Step())
	test.ExpectEquality(t, snap.Register(1), 2)
}

func TestString(t *testing.T) {
	mc := newMachine(t, 0x6f2a)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.String(),
		"PC=202 I=000 SP=0 DT=00 ST=00 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=00 VB=00 VC=00 VD=00 VE=00 VF=2a")
}

func TestDisplayLines(t *testing.T) {
	mc := newMachine(t,
		0x6000, // LD V0, $00
		0xf029, // LD F, V0
		0xd005, // DRW V0, V0, 5
	)
	step(t, mc, 3)

	lines := hardware.DisplayLines(mc.Framebuffer(), '#', '.')
	test.ExpectEquality(t, len(lines), hardware.DisplayHeight)
	test.ExpectEquality(t, lines[0][:8], "####....")
	test.ExpectEquality(t, lines[1][:8], "#..#....")
	test.ExpectEquality(t, lines[4][:8], "####....")
	test.ExpectEquality(t, lines[5], strings.Repeat(".", hardware.DisplayWidth))
}
