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

package rewind

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
)

// Sentinel error patterns.
const (
	NothingToRewind = "rewind: no more history (%d steps available)"
)

// the maximum number of entries to store before the earliest steps are
// forgotten. there is an overhead of one entry so that a full history can be
// distinguished from an empty one
const overhead = 1
const maxEntries = 1000 + overhead

// Rewind contains a history of machine states.
type Rewind struct {
	// circular array of snapshotted entries. start is the oldest entry and
	// end is the position of the next entry to be written
	entries [maxEntries]*hardware.Machine
	start   int
	end     int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind() *Rewind {
	return &Rewind{}
}

// Reset removes all entries. This should be called whenever a new machine is
// created.
func (r *Rewind) Reset() {
	clear(r.entries[:])
	r.start = 0
	r.end = 0
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	n := r.end - r.start
	if n < 0 {
		n += maxEntries
	}
	return n
}

// Record a snapshot of the machine.
func (r *Rewind) Record(mc *hardware.Machine) {
	r.entries[r.end] = mc.Snapshot()

	r.end++
	if r.end >= maxEntries {
		r.end = 0
	}

	// push start index along, forgetting the oldest entry
	if r.end == r.start {
		r.entries[r.start] = nil
		r.start++
		if r.start >= maxEntries {
			r.start = 0
		}
	}
}

// Back removes the most recent n entries from the history and returns the
// last one removed. That is, the state of the machine before the nth most
// recent step. The history is not changed if there are fewer than n entries.
func (r *Rewind) Back(n int) (*hardware.Machine, error) {
	if n <= 0 || n > r.Len() {
		return nil, curated.Errorf(NothingToRewind, r.Len())
	}

	var mc *hardware.Machine
	for range n {
		r.end--
		if r.end < 0 {
			r.end = maxEntries - 1
		}
		mc = r.entries[r.end]
		r.entries[r.end] = nil
	}

	return mc, nil
}
