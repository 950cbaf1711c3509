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
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns.
const (
	NoSuchCommand    = "no such command (%s)"
	AmbiguousCommand = "ambiguous command (%s): %s"
	TemplateError    = "template error: %v"
)

type argType int

const (
	argNumber argType = iota
	argString
	argOption
)

type arg struct {
	typ      argType
	options  []string
	optional bool
}

func (a arg) String() string {
	var s string
	switch a.typ {
	case argNumber:
		s = "<n>"
	case argString:
		s = "<s>"
	case argOption:
		s = strings.Join(a.options, "|")
	}
	if a.optional {
		return fmt.Sprintf("(%s)", s)
	}
	return s
}

type command struct {
	keyword string
	args    []arg
}

func (c command) String() string {
	s := strings.Builder{}
	s.WriteString(c.keyword)
	for _, a := range c.args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the root of the parsed command template.
type Commands struct {
	cmds []command
}

// ParseCommandTemplate turns a list of command templates into a Commands
// instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{}

	for _, t := range template {
		f := strings.Fields(t)
		if len(f) == 0 {
			return nil, curated.Errorf(TemplateError, "empty template")
		}

		c := command{keyword: strings.ToUpper(f[0])}
		for _, w := range f[1:] {
			var a arg

			if strings.HasPrefix(w, "(") {
				if !strings.HasSuffix(w, ")") {
					return nil, curated.Errorf(TemplateError, fmt.Sprintf("unterminated optional argument in %s", c.keyword))
				}
				w = strings.TrimSuffix(strings.TrimPrefix(w, "("), ")")
				a.optional = true
			} else if len(c.args) > 0 && c.args[len(c.args)-1].optional {
				return nil, curated.Errorf(TemplateError, fmt.Sprintf("required argument follows optional argument in %s", c.keyword))
			}

			switch w {
			case "%N":
				a.typ = argNumber
			case "%S":
				a.typ = argString
			default:
				a.typ = argOption
				for _, o := range strings.Split(w, "|") {
					if o == "" {
						return nil, curated.Errorf(TemplateError, fmt.Sprintf("empty option in %s", c.keyword))
					}
					a.options = append(a.options, strings.ToUpper(o))
				}
			}

			c.args = append(c.args, a)
		}

		cmds.cmds = append(cmds.cmds, c)
	}

	return cmds, nil
}

// Keywords returns the list of command keywords in sorted order.
func (cmds *Commands) Keywords() []string {
	k := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		k = append(k, c.keyword)
	}
	sort.Strings(k)
	return k
}

// Usage returns the normalised template for the command keyword. Returns
// the empty string if the keyword is not recognised.
func (cmds *Commands) Usage(keyword string) string {
	if c, ok := cmds.get(strings.ToUpper(keyword)); ok {
		return c.String()
	}
	return ""
}

func (cmds *Commands) get(keyword string) (command, bool) {
	for _, c := range cmds.cmds {
		if c.keyword == keyword {
			return c, true
		}
	}
	return command{}, false
}

// matchPrefix returns the entries in list that begin with the prefix. an
// exact match is the only match.
func matchPrefix(list []string, prefix string) []string {
	prefix = strings.ToUpper(prefix)
	var m []string
	for _, s := range list {
		if s == prefix {
			return []string{s}
		}
		if strings.HasPrefix(s, prefix) {
			m = append(m, s)
		}
	}
	return m
}

// Lookup returns the full command keyword for a word. The word can be any
// unique prefix of a keyword.
func (cmds *Commands) Lookup(word string) (string, error) {
	m := matchPrefix(cmds.Keywords(), word)
	switch len(m) {
	case 0:
		return "", curated.Errorf(NoSuchCommand, strings.ToUpper(word))
	case 1:
		return m[0], nil
	}
	return "", curated.Errorf(AmbiguousCommand, strings.ToUpper(word), strings.Join(m, ", "))
}
