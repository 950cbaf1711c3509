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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to validate user input and to tab
// complete partial input.
//
// A template is a list of strings, one for each command. The first word is
// the command keyword and the remaining words describe the arguments:
//
//	%N      a number. decimal, or hexadecimal with a $ or 0x prefix
//	%S      any string
//	A|B     one of the listed option keywords
//
// Arguments in parentheses are optional. For example:
//
//	cmds, err := commandline.ParseCommandTemplate([]string{
//		"STEP (%N)",
//		"KEY %N DOWN|UP",
//	})
//
// Keywords and options can be abbreviated to any unique prefix. Validate()
// normalises the input so that the full keyword is seen by the caller.
package commandline
