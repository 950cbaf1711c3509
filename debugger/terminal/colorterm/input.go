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

//go:build unix

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	// the current input, the position of the cursor in the input and the
	// position in the history list
	input := []rune{}
	cursor := 0
	history := len(ct.commandHistory)

	// the input as it was before scrolling through the history
	var stashed []rune

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	for {
		// redraw the prompt and input line and place the cursor
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(p)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", curated.Errorf(terminal.UserAbort)
		}

		if events != nil {
			select {
			case <-events.IntEvents:
				ct.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))
				tail := input[cursor:]
				input = append([]rune(s), tail...)
				cursor = len([]rune(s))
			}

		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOT:
			if len(input) == 0 {
				ct.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn:
			s := string(input)
			if s != "" && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			ct.TermPrint("\r\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", curated.Errorf(terminal.UserAbort)
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", curated.Errorf(terminal.UserAbort)
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						stashed = input
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = stashed
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.EscDelete:
				// delete key sends a trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
