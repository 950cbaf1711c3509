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

package debugger

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
)

// Sentinel error patterns for breakpoints.
const (
	BreakpointExists   = "breakpoint: already exists (%03x)"
	BreakpointNotFound = "breakpoint: no breakpoint at %03x"
	BreakpointRange    = "breakpoint: address out of range (%x)"
)

// breakpoints halt a RUN when the program counter reaches the address.
type breakpoints struct {
	breaks []uint16
}

func (bp *breakpoints) add(address int) error {
	if address < 0 || address >= hardware.MemorySize {
		return curated.Errorf(BreakpointRange, address)
	}
	a := uint16(address)
	if slices.Contains(bp.breaks, a) {
		return curated.Errorf(BreakpointExists, a)
	}
	bp.breaks = append(bp.breaks, a)
	slices.Sort(bp.breaks)
	return nil
}

func (bp *breakpoints) drop(address int) error {
	i := slices.Index(bp.breaks, uint16(address))
	if i == -1 || address < 0 || address >= hardware.MemorySize {
		return curated.Errorf(BreakpointNotFound, address)
	}
	bp.breaks = slices.Delete(bp.breaks, i, i+1)
	return nil
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) check(address uint16) bool {
	return slices.Contains(bp.breaks, address)
}

func (bp *breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := "breakpoints:"
	for _, a := range bp.breaks {
		s = fmt.Sprintf("%s %03x", s, a)
	}
	return s
}
