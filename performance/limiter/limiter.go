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

// Package limiter paces a loop to a fixed number of iterations per second.
package limiter

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// FPSLimiter paces a loop. The loop should call Wait() once per iteration.
type FPSLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FPSLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf("limiter: invalid frame rate (%d)", framesPerSecond)
	}
	return &FPSLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}, nil
}

// FramesPerSecond returns the rate of the limiter.
func (lim *FPSLimiter) FramesPerSecond() int {
	return lim.framesPerSecond
}

// Wait blocks until the next frame is due.
func (lim *FPSLimiter) Wait() {
	<-lim.ticker.C
}

// C returns the channel on which the ticks are delivered. Useful for select
// statements.
func (lim *FPSLimiter) C() <-chan time.Time {
	return lim.ticker.C
}

// HasWaited returns true if a frame is due. It does not block.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FPSLimiter) Stop() {
	lim.ticker.Stop()
}
