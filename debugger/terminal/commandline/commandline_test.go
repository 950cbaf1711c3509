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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/test"
)

func commands(t *testing.T) *commandline.Commands {
	t.Helper()
	cmds, err := commandline.ParseCommandTemplate([]string{
		"STEP (%N)",
		"STACK",
		"KEY %N DOWN|UP",
		"MEMVIZ %S",
		"LIST (%N) (%N)",
		"MEM %N (%N)",
	})
	test.DemandSuccess(t, err)
	return cmds
}

func TestTemplateErrors(t *testing.T) {
	_, err := commandline.ParseCommandTemplate([]string{"FOO (%N"})
	test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError))

	_, err = commandline.ParseCommandTemplate([]string{"FOO (%N) %N"})
	test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError))

	_, err = commandline.ParseCommandTemplate([]string{"FOO A||B"})
	test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError))
}

func TestLookup(t *testing.T) {
	cmds := commands(t)

	k, err := cmds.Lookup("step")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, "STEP")

	k, err = cmds.Lookup("ste")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, "STEP")

	k, err = cmds.Lookup("MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, "MEM")

	_, err = cmds.Lookup("ST")
	test.ExpectSuccess(t, curated.Is(err, commandline.AmbiguousCommand))

	_, err = cmds.Lookup("FOO")
	test.ExpectSuccess(t, curated.Is(err, commandline.NoSuchCommand))

	test.ExpectEquality(t, cmds.Usage("key"), "KEY <n> DOWN|UP")
	test.ExpectEquality(t, cmds.Usage("list"), "LIST (<n>) (<n>)")
	test.ExpectEquality(t, cmds.Usage("foo"), "")
}

func TestValidate(t *testing.T) {
	cmds := commands(t)

	tk, err := cmds.Validate("  key $a d ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.String(), "KEY $a DOWN")

	k, _ := tk.Get()
	test.ExpectEquality(t, k, "KEY")
	n, _ := tk.Get()
	v, err := commandline.ParseNumber(n)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10)
	test.ExpectEquality(t, tk.Remaining(), 1)

	_, err = cmds.Validate("step")
	test.ExpectSuccess(t, err)
	_, err = cmds.Validate("step 10")
	test.ExpectSuccess(t, err)
	_, err = cmds.Validate("list 0x200 10")
	test.ExpectSuccess(t, err)
	_, err = cmds.Validate("memviz out.dot")
	test.ExpectSuccess(t, err)

	for _, input := range []string{
		"step ten",
		"step 1 2",
		"key 1",
		"key 1 sideways",
		"mem",
		"memviz",
	} {
		_, err = cmds.Validate(input)
		test.ExpectSuccess(t, curated.Is(err, commandline.ValidationError), input)
	}

	_, err = cmds.Validate("   ")
	test.ExpectSuccess(t, curated.Is(err, commandline.NoInput))
}

func TestParseNumber(t *testing.T) {
	for _, c := range []struct {
		s string
		v int
	}{
		{"10", 10},
		{"$10", 16},
		{"0x1F", 31},
		{"0X200", 512},
	} {
		v, err := commandline.ParseNumber(c.s)
		test.ExpectSuccess(t, err, c.s)
		test.ExpectEquality(t, v, c.v, c.s)
	}

	_, err := commandline.ParseNumber("$")
	test.ExpectFailure(t, err)
	_, err = commandline.ParseNumber("-1")
	test.ExpectFailure(t, err)
}

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("a b  c")
	test.ExpectEquality(t, tk.Num(), 3)

	s, ok := tk.Peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "a")

	tk.Get()
	tk.Get()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "b")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "c")
	_, ok = tk.Get()
	test.ExpectEquality(t, ok, false)

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TEST (%N)",
		"TEST1 (%N)",
		"FOO BAR|BAZ WIBBLE",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	completion := tc.Complete("TE")
	test.ExpectEquality(t, completion, "TEST ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST1 ")

	// cycle back to the first completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST ")

	tc.Reset()
	completion = tc.Complete("foo ba")
	test.ExpectEquality(t, completion, "foo BAR ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "foo BAZ ")

	// the completion collapses whitespace
	tc.Reset()
	completion = tc.Complete("FOO   bar     wib")
	test.ExpectEquality(t, completion, "FOO bar WIBBLE ")

	// no completion possible
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("TEST 1"), "TEST 1")
	test.ExpectEquality(t, tc.Complete("XYZ"), "XYZ")
	test.ExpectEquality(t, tc.Complete("FOO "), "FOO ")
}
