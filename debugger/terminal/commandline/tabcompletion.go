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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
// Repeated calls to Complete() with the previous result cycle through the
// possible completions.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int
	prefix  string

	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete the final word of the input. The input is returned unchanged if
// there is no completion.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.prefix + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	// nothing to complete if the final word is already complete
	if input == "" || strings.HasSuffix(input, " ") {
		return input
	}

	f := strings.Fields(input)
	word := f[len(f)-1]

	if len(f) == 1 {
		tc.matches = matchPrefix(tc.cmds.Keywords(), word)
	} else {
		keyword, err := tc.cmds.Lookup(f[0])
		if err != nil {
			return input
		}
		c, _ := tc.cmds.get(keyword)
		n := len(f) - 2
		if n >= len(c.args) || c.args[n].typ != argOption {
			return input
		}
		tc.matches = matchPrefix(c.args[n].options, word)
		tc.prefix = strings.Join(f[:len(f)-1], " ") + " "
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.lastCompletion = tc.prefix + tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset is called whenever tab completion should begin afresh.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}
