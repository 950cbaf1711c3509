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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

func TestLdByte(t *testing.T) {
	var program []uint16
	for x := range uint16(16) {
		program = append(program, 0x6000|x<<8|(x*3))
	}
	mc := newMachine(t, program...)

	for x := range uint8(16) {
		step(t, mc, 1)
		test.ExpectEquality(t, mc.Register(x), x*3)
		test.ExpectEquality(t, mc.PC(), 0x202+uint16(x)*2)
	}
}

func TestAddByte(t *testing.T) {
	mc := newMachine(t, 0x6fff, 0x6001, 0x7f02, 0x70ff)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.Register(0xf), 0x01)

	// no flag is set by ADD VX, byte
	test.ExpectEquality(t, mc.Register(0), 0x00)
}

func TestLogical(t *testing.T) {
	mc := newMachine(t,
		0x60f0, // LD V0, $F0
		0x613c, // LD V1, $3C
		0x8200, // LD V2, V0
		0x8211, // OR V2, V1
		0x8300, // LD V3, V0
		0x8312, // AND V3, V1
		0x8400, // LD V4, V0
		0x8413, // XOR V4, V1
	)
	step(t, mc, 8)
	test.ExpectEquality(t, mc.Register(2), 0xfc)
	test.ExpectEquality(t, mc.Register(3), 0x30)
	test.ExpectEquality(t, mc.Register(4), 0xcc)
}

// arithmetic tests reload a short program and jump back to the start so that
// one machine can be used for every combination of values
func arithmetic(t *testing.T, mc *hardware.Machine, a, b uint8, opcode uint16) {
	t.Helper()
	test.DemandSuccess(t, mc.Load(assemble(0x6000|uint16(a), 0x6100|uint16(b), opcode, 0x1200)))
	step(t, mc, 4)
}

func TestAddReg(t *testing.T) {
	mc := newMachine(t)
	for a := range 256 {
		for b := range 256 {
			arithmetic(t, mc, uint8(a), uint8(b), 0x8014)
			test.ExpectEquality(t, int(mc.Register(0)), (a+b)%256, a, b)
			test.ExpectEquality(t, mc.Register(0xf) == 1, a+b > 255, a, b)
		}
	}
}

func TestSub(t *testing.T) {
	mc := newMachine(t)
	for a := range 256 {
		for b := range 256 {
			arithmetic(t, mc, uint8(a), uint8(b), 0x8015)
			test.ExpectEquality(t, mc.Register(0), uint8(a)-uint8(b), a, b)
			test.ExpectEquality(t, mc.Register(0xf) == 1, a >= b, a, b)
		}
	}
}

func TestSubn(t *testing.T) {
	mc := newMachine(t)
	for a := range 256 {
		for b := range 256 {
			arithmetic(t, mc, uint8(a), uint8(b), 0x8017)
			test.ExpectEquality(t, mc.Register(0), uint8(b)-uint8(a), a, b)
			test.ExpectEquality(t, mc.Register(0xf) == 1, b >= a, a, b)
		}
	}
}

func TestShifts(t *testing.T) {
	mc := newMachine(t)

	arithmetic(t, mc, 0x81, 0, 0x8016)
	test.ExpectEquality(t, mc.Register(0), 0x40)
	test.ExpectEquality(t, mc.Register(0xf), 1)

	arithmetic(t, mc, 0x80, 0, 0x8016)
	test.ExpectEquality(t, mc.Register(0), 0x40)
	test.ExpectEquality(t, mc.Register(0xf), 0)

	arithmetic(t, mc, 0x81, 0, 0x801e)
	test.ExpectEquality(t, mc.Register(0), 0x02)
	test.ExpectEquality(t, mc.Register(0xf), 1)

	arithmetic(t, mc, 0x41, 0, 0x801e)
	test.ExpectEquality(t, mc.Register(0), 0x82)
	test.ExpectEquality(t, mc.Register(0xf), 0)
}

func TestFlagRegisterAsOperand(t *testing.T) {
	// ADD writes the flag after the result so VF holds the flag
	mc := newMachine(t, 0x6fff, 0x6105, 0x8f14)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Register(0xf), 1)

	// SUB writes the flag before the result so VF holds the result
	mc = newMachine(t, 0x6f05, 0x6102, 0x8f15)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Register(0xf), 0xff)
}

func TestSkips(t *testing.T) {
	tests := []struct {
		opcode  uint16
		skipped bool
	}{
		{0x3005, true},
		{0x3006, false},
		{0x4005, false},
		{0x4006, true},
		{0x5010, true},
		{0x5020, false},
		{0x9010, false},
		{0x9020, true},
	}

	for _, tt := range tests {
		// V0 and V1 are 5, V2 is 6
		mc := newMachine(t, 0x6005, 0x6105, 0x6206, tt.opcode)
		step(t, mc, 4)
		test.ExpectEquality(t, mc.LastResult.Skipped, tt.skipped, tt.opcode)
		if tt.skipped {
			test.ExpectEquality(t, mc.PC(), 0x20a, tt.opcode)
		} else {
			test.ExpectEquality(t, mc.PC(), 0x208, tt.opcode)
		}
	}
}

func TestJumps(t *testing.T) {
	mc := newMachine(t, 0x1234)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC(), 0x234)

	mc = newMachine(t, 0x6004, 0xb300)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC(), 0x304)
}

func TestSubroutine(t *testing.T) {
	mc := newMachine(t,
		0x2206, // 200: CALL $206
		0x6001, // 202: LD V0, $01
		0x1204, // 204: JP $204
		0x00ee, // 206: RET
	)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC(), 0x206)
	test.ExpectEquality(t, mc.SP(), 1)
	test.ExpectEquality(t, len(mc.Stack()), 1)
	test.ExpectEquality(t, mc.Stack()[0], 0x200)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC(), 0x202)
	test.ExpectEquality(t, mc.SP(), 0)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Register(0), 1)
}

func TestStackOverflow(t *testing.T) {
	// a subroutine that calls itself
	mc := newMachine(t, 0x2200)
	step(t, mc, hardware.StackDepth)
	test.ExpectEquality(t, int(mc.SP()), hardware.StackDepth)

	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.StackOverflow))
	test.ExpectEquality(t, int(mc.SP()), hardware.StackDepth)
	test.ExpectEquality(t, mc.LastResult.Final, false)

	// the machine is halted
	err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.Halted))
	test.ExpectSuccess(t, curated.Has(err, hardware.StackOverflow))
	test.ExpectSuccess(t, curated.Has(mc.Halted(), hardware.StackOverflow))
}

func TestStackUnderflow(t *testing.T) {
	mc := newMachine(t, 0x00ee)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.StackUnderflow))
	test.ExpectEquality(t, mc.SP(), 0)
	test.ExpectFailure(t, mc.Step())
}

func TestProgramCounterOutOfRange(t *testing.T) {
	mc := newMachine(t,
		0x6005, // LD V0, $05
		0xf015, // LD DT, V0
		0x1fff, // JP $FFF
	)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.DelayTimer(), 4)

	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.ProgramCounterOutOfRange))

	// timers are not updated for a step that fails
	test.ExpectEquality(t, mc.DelayTimer(), 4)

	// the last valid fetch address is fine
	mc = newMachine(t, 0x1ffe)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC(), 0xffe)
}

func TestClearScreen(t *testing.T) {
	mc := newMachine(t,
		0xd005, // DRW V0, V0, 5
		0x00e0, // CLS
	)
	step(t, mc, 1)
	test.ExpectInequality(t, mc.Framebuffer(), [hardware.DisplaySize]uint8{})
	mc.ConsumeRedraw()

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Framebuffer(), [hardware.DisplaySize]uint8{})
	test.ExpectEquality(t, mc.ShouldRedraw(), true)
}

func TestDrawGlyph(t *testing.T) {
	mc := newMachine(t,
		0x6008, // LD V0, $08
		0xf029, // LD F, V0
		0xd125, // DRW V1, V2, 5
	)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Index(), 8*hardware.GlyphSize)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Register(0xf), 0)
	test.ExpectEquality(t, mc.ShouldRedraw(), true)

	fb := mc.Framebuffer()
	expected := []uint8{0xf0, 0x90, 0xf0, 0x90, 0xf0}
	for row := range hardware.DisplayHeight {
		for col := range hardware.DisplayWidth {
			var v uint8
			if row < len(expected) && col < 8 && expected[row]&(0x80>>col) != 0 {
				v = 1
			}
			test.ExpectEquality(t, fb[row*hardware.DisplayWidth+col], v, row, col)
		}
	}
}

func TestDrawCollision(t *testing.T) {
	mc := newMachine(t,
		0xd005, // DRW V0, V0, 5
		0xd005, // DRW V0, V0, 5
	)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.Register(0xf), 0)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.Register(0xf), 1)
	test.ExpectEquality(t, mc.Framebuffer(), [hardware.DisplaySize]uint8{})
}

func TestDrawWrap(t *testing.T) {
	// the top row of the glyph for zero is 0xf0
	mc := newMachine(t,
		0x603e, // LD V0, $3E
		0x611f, // LD V1, $1F
		0xd011, // DRW V0, V1, 1
	)
	step(t, mc, 3)
	fb := mc.Framebuffer()

	// pixels that fall off the right edge continue on the next row. the next
	// row after the last row is the first row
	test.ExpectEquality(t, fb[31*64+62], 1)
	test.ExpectEquality(t, fb[31*64+63], 1)
	test.ExpectEquality(t, fb[0], 1)
	test.ExpectEquality(t, fb[1], 1)
	test.ExpectEquality(t, fb[2], 0)
}

func TestDrawOutOfRange(t *testing.T) {
	mc := newMachine(t, 0xaffe, 0xd005)
	step(t, mc, 1)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.MemoryOutOfRange))
}

func TestBCD(t *testing.T) {
	mc := newMachine(t,
		0x60fe, // LD V0, $FE
		0xa300, // LD I, $300
		0xf033, // LD B, V0
	)
	step(t, mc, 3)
	test.ExpectEquality(t, peek(t, mc, 0x300), 2)
	test.ExpectEquality(t, peek(t, mc, 0x301), 5)
	test.ExpectEquality(t, peek(t, mc, 0x302), 4)
	test.ExpectEquality(t, mc.Index(), 0x300)
}

func TestFontIsReadOnly(t *testing.T) {
	mc := newMachine(t,
		0x607b, // LD V0, $7B
		0xa000, // LD I, $000
		0xf033, // LD B, V0
	)
	step(t, mc, 3)
	test.ExpectInequality(t, mc.LastResult.Error, "")
	test.ExpectEquality(t, mc.Halted(), nil)

	g := hardware.Glyph(0)
	for i := range hardware.GlyphSize {
		test.ExpectEquality(t, peek(t, mc, uint16(i)), g[i])
	}

	// the write that straddles the end of the font still writes the part
	// outside the font
	mc = newMachine(t, 0x607b, 0xa04f, 0xf033)
	step(t, mc, 3)
	test.ExpectEquality(t, peek(t, mc, 0x4f), hardware.Glyph(0xf)[4])
	test.ExpectEquality(t, peek(t, mc, 0x50), 2)
	test.ExpectEquality(t, peek(t, mc, 0x51), 3)
}

func TestStoreAndLoadRegisters(t *testing.T) {
	mc := newMachine(t,
		0x6001, // LD V0, $01
		0x6102, // LD V1, $02
		0x6203, // LD V2, $03
		0x6304, // LD V3, $04
		0xa300, // LD I, $300
		0xf355, // LD [I], V3
	)
	step(t, mc, 6)

	// V3 is not stored
	test.ExpectEquality(t, peek(t, mc, 0x300), 1)
	test.ExpectEquality(t, peek(t, mc, 0x301), 2)
	test.ExpectEquality(t, peek(t, mc, 0x302), 3)
	test.ExpectEquality(t, peek(t, mc, 0x303), 0)
	test.ExpectEquality(t, mc.Index(), 0x304)

	mc = newMachine(t,
		0xa200, // LD I, $200
		0xf365, // LD V3, [I]
	)
	step(t, mc, 2)

	// V0 to V3 inclusive are loaded
	test.ExpectEquality(t, mc.Register(0), 0xa2)
	test.ExpectEquality(t, mc.Register(1), 0x00)
	test.ExpectEquality(t, mc.Register(2), 0xf3)
	test.ExpectEquality(t, mc.Register(3), 0x65)
	test.ExpectEquality(t, mc.Index(), 0x204)
}

func TestStoreRegistersOutOfRange(t *testing.T) {
	mc := newMachine(t, 0xaffe, 0xf365)
	step(t, mc, 1)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.MemoryOutOfRange))
}

func TestAddI(t *testing.T) {
	mc := newMachine(t,
		0x6001, // LD V0, $01
		0xaffe, // LD I, $FFE
		0xf01e, // ADD I, V0
		0xf01e, // ADD I, V0
	)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Index(), 0xfff)
	test.ExpectEquality(t, mc.Register(0xf), 0)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Index(), 0x1000)
	test.ExpectEquality(t, mc.Register(0xf), 1)

	// adding until the index passes 0xffff
	mc = newMachine(t,
		0x60ff, // LD V0, $FF
		0xafff, // LD I, $FFF
		0xf01e, // ADD I, V0
		0x1204, // JP $204
	)
	step(t, mc, 2+240*2)
	test.ExpectEquality(t, mc.Index(), 0xff0f)
	test.ExpectEquality(t, mc.Register(0xf), 1)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Index(), 0x000e)
	test.ExpectEquality(t, mc.Register(0xf), 0)
}

func TestDelayTimerRead(t *testing.T) {
	mc := newMachine(t, 0x600a, 0xf015, 0xf107)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Register(1), 9)
}

func TestWaitForKey(t *testing.T) {
	mc := newMachine(t, 0xf50a)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.PC(), 0x200)
	test.ExpectEquality(t, mc.LastResult.Waiting, true)

	// the highest numbered key wins
	mc.SetKey(3, true)
	mc.SetKey(7, true)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC(), 0x202)
	test.ExpectEquality(t, mc.Register(5), 7)
	test.ExpectEquality(t, mc.LastResult.Waiting, false)
}

func TestKeySkips(t *testing.T) {
	mc := newMachine(t, 0x6004, 0xe09e)
	mc.SetKey(4, true)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC(), 0x206)

	mc = newMachine(t, 0x6004, 0xe0a1)
	mc.SetKey(4, true)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC(), 0x204)

	mc = newMachine(t, 0x6004, 0xe0a1)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC(), 0x206)

	// a key index out of range is not pressed
	mc = newMachine(t, 0x6020, 0xe09e)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC(), 0x204)
	test.ExpectInequality(t, mc.LastResult.Error, "")
}

func TestRandom(t *testing.T) {
	a := newMachine(t, 0xc0ff, 0xc1ff, 0xc20f, 0xc300)
	b := newMachine(t, 0xc0ff, 0xc1ff, 0xc20f, 0xc300)
	step(t, a, 4)
	step(t, b, 4)
	test.ExpectEquality(t, a.Registers(), b.Registers())
	test.ExpectEquality(t, a.Register(2)&0xf0, 0)
	test.ExpectEquality(t, a.Register(3), 0)
}

func TestUnknownOpcode(t *testing.T) {
	for _, opcode := range []uint16{0xffff, 0x0123, 0x8008, 0xe000} {
		mc := newMachine(t, 0x6a55, opcode)
		step(t, mc, 1)
		before := mc.Snapshot()

		test.ExpectSuccess(t, mc.Step(), opcode)
		test.ExpectEquality(t, mc.LastResult.Unknown, true, opcode)
		test.ExpectEquality(t, mc.LastResult.Final, true, opcode)
		test.ExpectInequality(t, mc.LastResult.Error, "", opcode)
		test.ExpectEquality(t, mc.PC(), before.PC(), opcode)
		test.ExpectEquality(t, mc.Index(), before.Index(), opcode)
		test.ExpectEquality(t, mc.Registers(), before.Registers(), opcode)
		test.ExpectEquality(t, mc.SP(), before.SP(), opcode)
		test.ExpectEquality(t, mc.Framebuffer(), before.Framebuffer(), opcode)
		for a := uint16(0); a < hardware.MemorySize; a++ {
			test.DemandEquality(t, peek(t, mc, a), peek(t, before, a), opcode, a)
		}
	}
}
