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
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instructions"
	"github.com/jetsetilly/gopher8/logger"
)

// debugger keywords
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdBack    = "BACK"
	cmdBreak   = "BREAK"
	cmdClear   = "CLEAR"
	cmdList    = "LIST"
	cmdCPU     = "CPU"
	cmdStack   = "STACK"
	cmdMem     = "MEM"
	cmdDisplay = "DISPLAY"
	cmdKey     = "KEY"
	cmdLast    = "LAST"
	cmdLog     = "LOG"
	cmdMemviz  = "MEMVIZ"
	cmdReset   = "RESET"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

var commandTemplate = []string{
	cmdStep + " (%N)",
	cmdRun + " (%N)",
	cmdBack + " (%N)",
	cmdBreak + " (%N)",
	cmdClear + " (%N)",
	cmdList + " (%N) (%N)",
	cmdCPU,
	cmdStack,
	cmdMem + " %N (%N)",
	cmdDisplay,
	cmdKey + " %N DOWN|UP",
	cmdLast,
	cmdLog + " (%N)",
	cmdMemviz + " %S",
	cmdReset,
	cmdHelp + " (%S)",
	cmdQuit,
}

var help = map[string]string{
	cmdStep:    "Execute the next instruction. A number executes that many instructions",
	cmdRun:     "Run until a breakpoint is reached, the machine halts or it is waiting for a key. A number limits the number of instructions",
	cmdBack:    "Wind execution back by a number of instructions (default 1)",
	cmdBreak:   "Add a breakpoint at the address. With no address the breakpoints are listed",
	cmdClear:   "Remove the breakpoint at the address. With no address all breakpoints are removed",
	cmdList:    "Disassemble memory from the address (default is the program counter) for a number of instructions (default 10)",
	cmdCPU:     "Show the registers, the timers and the program counter",
	cmdStack:   "Show the return addresses on the stack",
	cmdMem:     "Show memory from the address for a number of bytes (default 16)",
	cmdDisplay: "Show the display",
	cmdKey:     "Press or release a key on the keypad",
	cmdLast:    "Show the result of the most recent instruction",
	cmdLog:     "Show the most recent log entries (default 10)",
	cmdMemviz:  "Write a graphviz diagram of the machine structure to the named file",
	cmdReset:   "Create a new machine and reload the program. Breakpoints are kept",
	cmdHelp:    "Show help for a command",
	cmdQuit:    "End the debugging session",
}

// default values for commands with optional arguments
const (
	defaultListLength = 10
	defaultMemLength  = 16
	defaultLogLength  = 10
)

// number of bytes shown on each line of the MEM command
const memLineLength = 16

// parseInput validates the input and then runs the command.
func (dbg *Debugger) parseInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	tokens, err := dbg.cmds.Validate(input)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleEcho, tokens.String())

	return dbg.processTokens(tokens)
}

// the next token as a number. validation has already happened so errors are
// not possible. returns false if there are no more tokens.
func number(tokens *commandline.Tokens) (int, bool) {
	s, ok := tokens.Get()
	if !ok {
		return 0, false
	}
	n, _ := commandline.ParseNumber(s)
	return n, true
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()

	switch command {
	case cmdStep:
		n, ok := number(tokens)
		if !ok {
			n = 1
		}
		for range n {
			err := dbg.step()
			if curated.Is(err, hardware.Halted) {
				return err
			}
			dbg.printLine(terminal.StyleCPUStep, dbg.mc.LastResult.String())
			if err != nil {
				return err
			}
		}

	case cmdRun:
		n, limited := number(tokens)
		return dbg.run(n, limited)

	case cmdBack:
		n, ok := number(tokens)
		if !ok {
			n = 1
		}
		mc, err := dbg.rewind.Back(n)
		if err != nil {
			return err
		}
		dbg.mc = mc
		dbg.printLine(terminal.StyleFeedback, "wound back %d instructions", n)

	case cmdBreak:
		a, ok := number(tokens)
		if !ok {
			dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}
		if err := dbg.breakpoints.add(a); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %03x", a)

	case cmdClear:
		a, ok := number(tokens)
		if !ok {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		if err := dbg.breakpoints.drop(a); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at %03x removed", a)

	case cmdList:
		a, ok := number(tokens)
		if !ok {
			a = int(dbg.mc.PC())
		}
		n, ok := number(tokens)
		if !ok {
			n = defaultListLength
		}
		return dbg.list(a, n)

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, dbg.mc.String())
		if err := dbg.mc.Halted(); err != nil {
			dbg.printLine(terminal.StyleInstrument, "halted: %v", err)
		}

	case cmdStack:
		stack := dbg.mc.Stack()
		if len(stack) == 0 {
			dbg.printLine(terminal.StyleInstrument, "stack is empty")
			return nil
		}
		for i := len(stack) - 1; i >= 0; i-- {
			dbg.printLine(terminal.StyleInstrument, "%2d: %03x", i, stack[i])
		}

	case cmdMem:
		a, _ := number(tokens)
		n, ok := number(tokens)
		if !ok {
			n = defaultMemLength
		}
		return dbg.mem(a, n)

	case cmdDisplay:
		for _, l := range hardware.DisplayLines(dbg.mc.Framebuffer(), '#', '.') {
			dbg.printLine(terminal.StyleInstrument, l)
		}

	case cmdKey:
		k, _ := number(tokens)
		if k >= hardware.NumKeys {
			return fmt.Errorf("no such key (%x)", k)
		}
		state, _ := tokens.Get()
		dbg.mc.SetKey(k, state == "DOWN")
		dbg.printLine(terminal.StyleFeedback, "key %X %s", k, strings.ToLower(state))

	case cmdLast:
		if !dbg.stepped {
			dbg.printLine(terminal.StyleFeedback, "no instruction has been executed")
			return nil
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.mc.LastResult.String())

	case cmdLog:
		n, ok := number(tokens)
		if !ok {
			n = defaultLogLength
		}
		if len(logger.Entries()) == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
			return nil
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)

	case cmdMemviz:
		filename, _ := tokens.Get()
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, dbg.mc)
		dbg.printLine(terminal.StyleFeedback, "machine structure written to %s", filename)

	case cmdReset:
		if err := dbg.reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdHelp:
		keyword, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleHelp, strings.Join(dbg.cmds.Keywords(), " "))
			return nil
		}
		keyword, err := dbg.cmds.Lookup(keyword)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleHelp, dbg.cmds.Usage(keyword))
		dbg.printLine(terminal.StyleHelp, "  %s", help[keyword])

	case cmdQuit:
		dbg.quit = true
	}

	return nil
}

// step the machine once.
func (dbg *Debugger) step() error {
	dbg.stepped = true
	if dbg.mc.Halted() == nil {
		dbg.rewind.Record(dbg.mc)
	}
	return dbg.mc.Step()
}

// run until a breakpoint, a halt or a wait for a key. the run is limited to n
// steps if limited is true.
func (dbg *Debugger) run(n int, limited bool) error {
	// drain any interrupt that arrived before the run started
	dbg.interrupted()

	var count int
	for !limited || count < n {
		err := dbg.step()
		if curated.Is(err, hardware.Halted) {
			return err
		}
		count++
		if err != nil {
			dbg.printLine(terminal.StyleCPUStep, dbg.mc.LastResult.String())
			return err
		}

		if dbg.mc.LastResult.Waiting {
			dbg.printLine(terminal.StyleFeedback, "waiting for key")
			break // for loop
		}

		if dbg.breakpoints.check(dbg.mc.PC()) {
			dbg.printLine(terminal.StyleFeedback, "break at %03x", dbg.mc.PC())
			break // for loop
		}

		if dbg.interrupted() {
			dbg.printLine(terminal.StyleFeedback, "interrupted")
			break // for loop
		}
	}

	dbg.printLine(terminal.StyleCPUStep, dbg.mc.LastResult.String())
	dbg.printLine(terminal.StyleFeedback, "%d instructions executed", count)

	return nil
}

// list disassembles n instructions from memory starting at the address.
func (dbg *Debugger) list(address int, n int) error {
	for range n {
		d, err := dbg.mc.PeekRange(uint16(address), 2)
		if err != nil {
			// end of memory
			break // for loop
		}

		ins := instructions.Decode(uint16(d[0])<<8 | uint16(d[1]))

		marker := ' '
		if address == int(dbg.mc.PC()) {
			marker = '>'
		}
		brk := ' '
		if dbg.breakpoints.check(uint16(address)) {
			brk = '*'
		}

		dbg.printLine(terminal.StyleCPUStep, "%c%c %03x  %04x  %s", marker, brk, address, ins.Opcode, ins)
		address += 2
	}
	return nil
}

// mem prints n bytes of memory starting at the address.
func (dbg *Debugger) mem(address int, n int) error {
	if address+n > hardware.MemorySize {
		n = hardware.MemorySize - address
	}
	if address < 0 || n <= 0 {
		return curated.Errorf(hardware.MemoryOutOfRange, address)
	}

	d, err := dbg.mc.PeekRange(uint16(address), n)
	if err != nil {
		return err
	}

	for i := 0; i < len(d); i += memLineLength {
		e := min(i+memLineLength, len(d))
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%03x ", address+i))
		for _, v := range d[i:e] {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())
	}

	return nil
}
