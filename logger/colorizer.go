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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// Colorizer applies a colour to the detail of each log entry written to it.
// Useful when writing the log to an ANSI terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The tag of each line is written
// with the normal pen and the detail with a dim pen.
func (c Colorizer) Write(p []byte) (int, error) {
	var n int

	for _, s := range strings.SplitAfter(string(p), "\n") {
		if s == "" {
			continue
		}

		tag, detail, ok := strings.Cut(s, ": ")
		if !ok {
			m, err := io.WriteString(c.out, s)
			n += m
			if err != nil {
				return n, err
			}
			continue
		}

		m, err := io.WriteString(c.out, tag+": "+ansi.DimPens["cyan"]+strings.TrimSuffix(detail, "\n")+ansi.NormalPen)
		n += m
		if err != nil {
			return n, err
		}
		if strings.HasSuffix(detail, "\n") {
			m, err = io.WriteString(c.out, "\n")
			n += m
			if err != nil {
				return n, err
			}
		}
	}

	return len(p), nil
}
