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

package playmode

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/nsf/termbox-go"
)

// PlayError is the sentinel error pattern for errors that are not caused by
// the machine.
const PlayError = "playmode: %v"

// the row of the status line
const statusRow = displayRows + 1

type playmode struct {
	mc   *hardware.Machine
	name string

	hz  int
	lim *limiter.FPSLimiter

	keys keyboard

	// accumulated fraction of a step carried over from the previous frame
	stepAccumulator int

	intChan chan os.Signal
	events  chan termbox.Event

	// the sound indicator is shown
	sounding bool

	quit bool
}

// Play runs the machine in the terminal at the requested number of steps
// per second and frames per second. A fatal machine error ends play and is
// returned.
func Play(mc *hardware.Machine, name string, hz int, fps int) error {
	if hz <= 0 {
		return curated.Errorf(PlayError, fmt.Sprintf("step rate must be positive (%d)", hz))
	}

	lim, err := limiter.NewFPSLimiter(fps)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer lim.Stop()

	pl := &playmode{
		mc:      mc,
		name:    name,
		hz:      hz,
		lim:     lim,
		keys:    keyboard{mc: mc},
		intChan: make(chan os.Signal, 1),
		events:  make(chan termbox.Event, 16),
	}

	if err := termbox.Init(); err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	// termbox.PollEvent() blocks so events are forwarded from a separate
	// goroutine. the goroutine ends when termbox.Interrupt() is called
	done := make(chan bool)
	go func() {
		defer close(done)
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			pl.events <- ev
		}
	}()
	defer func() {
		termbox.Interrupt()
		for {
			select {
			case <-done:
				return
			case <-pl.events:
			}
		}
	}()

	logger.Logf(logger.Allow, "playmode", "playing %s at %dHz (%d fps)", name, hz, fps)

	pl.draw(true)

	return pl.loop()
}

func (pl *playmode) loop() error {
	for !pl.quit {
		select {
		case <-pl.intChan:
			pl.quit = true

		case ev := <-pl.events:
			if err := pl.eventHandler(ev); err != nil {
				return err
			}

		case <-pl.lim.C():
			if err := pl.frame(); err != nil {
				logger.Log(logger.Allow, "playmode", err)
				return err
			}
		}
	}

	return nil
}

func (pl *playmode) eventHandler(ev termbox.Event) error {
	switch ev.Type {
	case termbox.EventKey:
		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			pl.quit = true
		default:
			pl.keys.press(ev.Ch)
		}
	case termbox.EventResize:
		pl.draw(true)
	case termbox.EventError:
		return curated.Errorf(PlayError, ev.Err)
	}
	return nil
}

// stepsThisFrame returns the number of steps to run in the current frame.
// the fractional part is carried over to the next frame.
func (pl *playmode) stepsThisFrame() int {
	pl.stepAccumulator += pl.hz
	n := pl.stepAccumulator / pl.lim.FramesPerSecond()
	pl.stepAccumulator %= pl.lim.FramesPerSecond()
	return n
}

func (pl *playmode) frame() error {
	for range pl.stepsThisFrame() {
		if err := pl.mc.Step(); err != nil {
			return err
		}
	}

	pl.keys.frame()
	pl.draw(false)

	return nil
}

// draw the display if it has changed. the status line is drawn if the sound
// state has changed. everything is drawn if force is true.
func (pl *playmode) draw(force bool) {
	redraw := pl.mc.ConsumeRedraw() || force
	sounding := pl.mc.Sounding()

	if !redraw && sounding == pl.sounding {
		return
	}
	pl.sounding = sounding

	if force {
		_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	}

	if redraw {
		for y, row := range halfBlocks(pl.mc.Framebuffer()) {
			for x, r := range row {
				termbox.SetCell(x, y, r, termbox.ColorWhite, termbox.ColorDefault)
			}
		}
	}

	status := fmt.Sprintf("%s  %dHz  ", pl.name, pl.hz)
	if sounding {
		status += "♪"
	} else {
		status += " "
	}
	status += "  ESC to quit"
	for x, r := range []rune(status) {
		termbox.SetCell(x, statusRow, r, termbox.ColorDefault, termbox.ColorDefault)
	}

	_ = termbox.Flush()
}
