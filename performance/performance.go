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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// the number of steps between checks of the clock. checking the clock is
// relatively expensive
const performanceBrake = 1000

// ReferenceRate is the number of steps per second that a typical host runs
// the machine at. Used to report the speed of the emulation as a multiple of
// normal speed.
const ReferenceRate = 500

// Check the performance of the emulator by running the program for the
// duration with no pacing.
func Check(output io.Writer, profile Profile, ld romloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := ld.Load(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	mc := hardware.NewMachine()
	mc.Quiet = true
	if err := mc.Load(ld.Data); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var steps uint64
	var elapsed time.Duration

	err = RunProfiler(profile, "performance", func() error {
		var err error
		steps, elapsed, err = Measure(mc, dur)
		return err
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(steps) / elapsed.Seconds()
	logger.Logf(logger.Allow, "performance", "%s: %d steps in %v", ld.ShortName(), steps, elapsed)
	_, err = io.WriteString(output, fmt.Sprintf("%.0f steps per second (%d steps in %.2f seconds) %.1fx\n",
		rate, steps, elapsed.Seconds(), rate/ReferenceRate))

	return err
}

// Measure steps the machine as quickly as possible for the duration. Returns
// the number of steps completed and the actual time taken. A fatal error from
// the machine ends the measurement early and is returned.
func Measure(mc *hardware.Machine, dur time.Duration) (uint64, time.Duration, error) {
	var steps uint64

	start := time.Now()
	end := start.Add(dur)

	for {
		for range performanceBrake {
			if err := mc.Step(); err != nil {
				return steps, time.Since(start), err
			}
			steps++
		}

		if time.Now().After(end) {
			return steps, time.Since(start), nil
		}
	}
}
