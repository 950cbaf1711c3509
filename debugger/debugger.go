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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instructions"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/rewind"
	"github.com/jetsetilly/gopher8/romloader"
)

// Debugger is the basic debugging frontend for the machine.
type Debugger struct {
	mc     *hardware.Machine
	loader romloader.Loader

	term terminal.Terminal
	cmds *commandline.Commands

	breakpoints breakpoints

	// history of machine states for the BACK command
	rewind *rewind.Rewind

	// events monitored during terminal input and while running
	events *terminal.ReadEvents

	// whether at least one step has been attempted since the last reset
	stepped bool

	// the QUIT command has been issued
	quit bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The loader is loaded if it has not been already.
func NewDebugger(term terminal.Terminal, ld romloader.Loader) (*Debugger, error) {
	if !ld.HasLoaded() {
		if err := ld.Load(); err != nil {
			return nil, err
		}
	}

	cmds, err := commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, err
	}

	dbg := &Debugger{
		loader: ld,
		term:   term,
		cmds:   cmds,
		rewind: rewind.NewRewind(),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	if err := dbg.reset(); err != nil {
		return nil, err
	}

	return dbg, nil
}

// reset creates a new machine and loads the program into it. breakpoints
// are kept.
func (dbg *Debugger) reset() error {
	mc := hardware.NewMachine()
	if err := mc.Load(dbg.loader.Data); err != nil {
		return err
	}
	dbg.mc = mc
	dbg.rewind.Reset()
	dbg.stepped = false
	return nil
}

// Start the main debugger sequence. Returns when the QUIT command is issued
// or when the terminal has no more input.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(dbg.cmds))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	logger.Logf(logger.Allow, "debugger", "loaded %s (%d bytes)", dbg.loader.ShortName(), len(dbg.loader.Data))
	dbg.printLine(terminal.StyleFeedback, "%s loaded. type HELP for a list of commands", dbg.loader.ShortName())

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to end the session")
				continue // for loop
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return err
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// prompt describes the next instruction to be executed.
func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Address: dbg.mc.PC(),
		Halted:  dbg.mc.Halted() != nil,
	}
	if d, err := dbg.mc.PeekRange(p.Address, 2); err == nil {
		p.Content = instructions.Decode(uint16(d[0])<<8 | uint16(d[1])).String()
	}
	return p
}

// interrupted returns true if an interrupt signal has been received. the
// signal is consumed.
func (dbg *Debugger) interrupted() bool {
	select {
	case <-dbg.events.IntEvents:
		return true
	default:
	}
	return false
}
