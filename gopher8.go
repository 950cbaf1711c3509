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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode specified by the arguments. returns the exit value.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "DEBUG", "DISASM", "PERFORMANCE", "DIGEST", "VERSION")
	md.AddSubModeAlias("RUN", "PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = digestMode(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the loader for the single program argument of a mode.
func romArgument(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("program file required for %s mode", md)
	case 1:
		return romloader.NewLoader(md.GetArg(0)), nil
	}
	return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// a new machine with the program loaded.
func newMachine(ld *romloader.Loader) (*hardware.Machine, error) {
	if err := ld.Load(); err != nil {
		return nil, err
	}
	mc := hardware.NewMachine()
	if err := mc.Load(ld.Data); err != nil {
		return nil, err
	}
	return mc, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	hz := md.AddInt("hz", 500, "instructions per second")
	fps := md.AddInt("fps", 60, "frames per second")
	log := md.AddBool("log", false, "print the log when play ends")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	mc, err := newMachine(&ld)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	err = playmode.Play(mc, ld.ShortName(), *hz, *fps)

	// the log can't be echoed while the terminal is being used for the
	// display
	if *log {
		logger.Write(md.Output)
	}

	return err
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log to the terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	var echo io.Writer = md.Output

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
		echo = logger.NewColorizer(md.Output)
	}

	if *log {
		logger.SetEcho(echo, false)
		defer logger.SetEcho(nil, false)
	}

	dbg, err := debugger.NewDebugger(term, ld)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	linear := md.AddBool("linear", false, "decode every address rather than following the program flow")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(ld, *linear)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 2 seconds overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, ld, *duration)
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	steps := md.AddInt("steps", 1000, "number of instructions to run")
	keys := md.AddString("keys", "", "comma separated list of keys held down for the whole run")
	display := md.AddBool("display", false, "print the display at the end of the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := romArgument(md)
	if err != nil {
		return err
	}

	mc, err := newMachine(&ld)
	if err != nil {
		return err
	}
	mc.Random.ZeroSeed = true

	if *keys != "" {
		for _, k := range strings.Split(*keys, ",") {
			var n int
			if _, err := fmt.Sscanf(strings.TrimSpace(k), "%x", &n); err != nil || n < 0 || n >= hardware.NumKeys {
				return fmt.Errorf("not a key (%s)", k)
			}
			mc.SetKey(n, true)
		}
	}

	vid := digest.NewVideo()
	state := digest.NewState()

	for range *steps {
		if err := mc.Step(); err != nil {
			return err
		}
		vid.Snapshot(mc)
	}

	if err := state.Snapshot(mc); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "video: %s (%d frames)\n", vid.Hash(), vid.Frames())
	fmt.Fprintf(md.Output, "state: %s\n", state.Hash())

	if *display {
		for _, l := range hardware.DisplayLines(mc.Framebuffer(), '#', '.') {
			fmt.Fprintln(md.Output, l)
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.Banner())
	if *revision {
		_, rev, _ := version.Version()
		if rev == "" {
			rev = "no revision information"
		}
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
