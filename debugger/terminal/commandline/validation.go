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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns returned by Validate().
const (
	ValidationError = "%s: %v"
	NoInput         = "no input"
)

// Validate input string against the command templates. The returned tokens
// have the command keyword and any option arguments normalised to their full
// upper case form.
func (cmds *Commands) Validate(input string) (*Tokens, error) {
	tk := TokeniseInput(input)
	if tk.Num() == 0 {
		return nil, curated.Errorf(NoInput)
	}

	keyword, err := cmds.Lookup(tk.tokens[0])
	if err != nil {
		return nil, err
	}
	tk.tokens[0] = keyword

	c, _ := cmds.get(keyword)

	for i, a := range c.args {
		n := i + 1
		if n >= len(tk.tokens) {
			if a.optional {
				break // for loop
			}
			return nil, curated.Errorf(ValidationError, keyword, fmt.Sprintf("missing argument (%s)", a))
		}

		switch a.typ {
		case argNumber:
			if _, err := ParseNumber(tk.tokens[n]); err != nil {
				return nil, curated.Errorf(ValidationError, keyword, err)
			}
		case argOption:
			m := matchPrefix(a.options, tk.tokens[n])
			if len(m) != 1 {
				return nil, curated.Errorf(ValidationError, keyword,
					fmt.Sprintf("unrecognised argument (%s) expected %s", tk.tokens[n], strings.Join(a.options, "|")))
			}
			tk.tokens[n] = m[0]
		}
	}

	if len(tk.tokens)-1 > len(c.args) {
		return nil, curated.Errorf(ValidationError, keyword, "too many arguments")
	}

	return tk, nil
}
