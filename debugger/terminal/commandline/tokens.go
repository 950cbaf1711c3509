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
	"strconv"
	"strings"
)

// Tokens represents tokenised input. Tokens are consumed in order with the
// Get() function.
type Tokens struct {
	tokens []string
	curr   int
}

// TokeniseInput divides the input string into whitespace separated tokens.
func TokeniseInput(input string) *Tokens {
	return &Tokens{tokens: strings.Fields(input)}
}

func (tk Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// Reset to the first token.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Num returns the total number of tokens.
func (tk Tokens) Num() int {
	return len(tk.tokens)
}

// Remaining returns the number of tokens not yet consumed.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get the next token. Returns false if there are no more tokens.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek at the next token without consuming it.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Unget the most recently consumed token.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// ParseNumber parses a decimal number or a hexadecimal number with either a
// $ or 0x prefix.
func ParseNumber(s string) (int, error) {
	base := 10
	if h, ok := strings.CutPrefix(s, "$"); ok {
		s = h
		base = 16
	} else if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s = h
		base = 16
	}

	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("not a number (%s)", s)
	}
	return int(n), nil
}
