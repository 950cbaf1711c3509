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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of the flag.Parse() function, the Modes type has a
// Parse() method which returns a ParseResult:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("v", false, "verbose output")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// Modes are introduced with the AddSubModes() function. The first sub-mode
// is the default. After a call to Parse() the selected mode is returned by
// the Mode() function:
//
//	md.AddSubModes("PLAY", "DEBUG", "DISASM")
//	md.Parse()
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		...
//	}
//
// Calling NewMode() clears the flags and sub-modes, ready for the flags of the
// selected mode. The history of selected modes is returned by Path().
//
// A sub-mode can have aliases, added with AddSubModeAlias(). An alias is
// never recorded in the path. The mode it refers to is recorded instead.
//
// Mode names are not case sensitive.
package modalflag
