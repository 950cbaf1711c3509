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

package disassembly

import (
	"sort"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instructions"
	"github.com/jetsetilly/gopher8/romloader"
)

// DisasmError is the pattern for errors returned by the disassembly package.
const DisasmError = "disassembly: %v"

// Disassembly represents the annotated disassembly of a CHIP-8 program.
type Disassembly struct {
	// the program data is held in a machine. the machine is never stepped
	mc  *hardware.Machine
	end uint16

	// entries sorted by address
	entries []*Entry

	// entries indexed by address
	byAddress map[uint16]*Entry

	// the program contains computed jumps so the flow trace might have
	// missed some code
	ComputedJumps bool
}

// FromLoader disassembles the program named by the loader. The program will
// be loaded if it hasn't been already.
func FromLoader(ld romloader.Loader, linear bool) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromBytes(ld.Data, linear)
}

// FromBytes disassembles the program data.
func FromBytes(data []byte, linear bool) (*Disassembly, error) {
	dsm := &Disassembly{
		mc:        hardware.NewMachine(),
		end:       hardware.ProgramStart + uint16(len(data)),
		byAddress: make(map[uint16]*Entry),
	}

	if err := dsm.mc.Load(data); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	if linear {
		dsm.linear()
	} else {
		dsm.flow()
	}

	dsm.fillData()
	dsm.label()

	sort.Slice(dsm.entries, func(i, j int) bool {
		return dsm.entries[i].Address < dsm.entries[j].Address
	})

	return dsm, nil
}

// decode the instruction at the address. the boolean return value is false
// if there are not enough bytes left in the program.
func (dsm *Disassembly) decode(address uint16) (instructions.Instruction, []uint8, bool) {
	if address < hardware.ProgramStart || int(address)+2 > int(dsm.end) {
		return instructions.Instruction{}, nil, false
	}

	d, err := dsm.mc.PeekRange(address, 2)
	if err != nil {
		return instructions.Instruction{}, nil, false
	}

	return instructions.Decode(uint16(d[0])<<8 | uint16(d[1])), d, true
}

func (dsm *Disassembly) add(e *Entry) {
	dsm.entries = append(dsm.entries, e)
	dsm.byAddress[e.Address] = e
}

// fillData creates data entries for every byte not covered by an
// instruction.
func (dsm *Disassembly) fillData() {
	covered := make(map[uint16]bool)
	for _, e := range dsm.entries {
		for i := range e.Bytes {
			covered[e.Address+uint16(i)] = true
		}
	}

	for a := uint16(hardware.ProgramStart); a < dsm.end; a++ {
		if covered[a] {
			continue
		}
		b, _ := dsm.mc.Peek(a)
		dsm.add(&Entry{
			Level:   EntryLevelData,
			Address: a,
			Bytes:   []uint8{b},
		})
	}
}

// label every entry that is the target of a jump or call.
func (dsm *Disassembly) label() {
	for _, e := range dsm.entries {
		if e.Level == EntryLevelData {
			continue
		}
		if t, ok := e.Instruction.Target(); ok {
			if target, ok := dsm.byAddress[t]; ok && target.Level != EntryLevelData {
				target.Label = labelName(t)
			}
		}
	}
}

// Entries returns the entries of the disassembly in address order.
func (dsm *Disassembly) Entries() []*Entry {
	return dsm.entries
}

// GetEntryByAddress returns the entry at the address. Addresses in the middle
// of an instruction do not have an entry.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e, ok := dsm.byAddress[address]
	return e, ok
}
