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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// colour indexes
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// attribute codes
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
	"NORMAL":    -1,
}

const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// Pens is the table of bright pen colours.
var Pens = map[string]string{}

// DimPens is the table of normal intensity pen colours.
var DimPens = map[string]string{}

// PenStyles is the table of text attributes.
var PenStyles = map[string]string{}

// NormalPen resets all colours and attributes.
var NormalPen string

func init() {
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "normal", "", true, false)
		DimPens[c], _ = ColorBuild(c, "normal", "", false, false)
	}

	for _, a := range []string{"bold", "underline", "inverse"} {
		PenStyles[a], _ = ColorBuild("", "", a, false, false)
	}
}

// ColorBuild creates the ANSI sequence for the combination of pen, paper and
// attribute. An empty string leaves that part of the sequence out.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		codes = append(codes, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if a >= 0 {
			codes = append(codes, fmt.Sprintf("%d", a))
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}

// ClearLine clears the current line.
const ClearLine = "\033[2K"

// CursorStore stores the current cursor position.
const CursorStore = "\033[s"

// CursorRestore restores the cursor to the previously stored position.
const CursorRestore = "\033[u"

// CursorForwardOne moves the cursor forward one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne moves the cursor backward one character.
const CursorBackwardOne = "\033[1D"

// CursorMove moves the cursor n characters. Negative values move the cursor
// backwards.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
