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

//go:build !unix

package colorterm

import (
	"fmt"

	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// ColorTerminal is not available on this platform. Initialise() will always
// return an error.
type ColorTerminal struct{}

func (ct *ColorTerminal) Initialise() error {
	return fmt.Errorf("colorterm: not available on this platform")
}

func (ct *ColorTerminal) CleanUp()                                     {}
func (ct *ColorTerminal) RegisterTabCompletion(terminal.TabCompletion) {}
func (ct *ColorTerminal) Silence(bool)                                 {}
func (ct *ColorTerminal) IsInteractive() bool                          { return false }
func (ct *ColorTerminal) TermPrintLine(terminal.Style, string)         {}

func (ct *ColorTerminal) TermRead(terminal.Prompt, *terminal.ReadEvents) (string, error) {
	return "", fmt.Errorf("colorterm: not available on this platform")
}
