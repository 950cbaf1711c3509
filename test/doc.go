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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of the
// same comparable type. The ExpectSuccess() and ExpectFailure() functions
// test for "success" or "failure" of a value. A bool value of true is a
// success and a nil error is a success.
//
// The Demand*() functions are the same as the Expect*() functions except that
// the test is halted immediately on failure.
//
// All functions accept optional tags. These are appended to any failure
// message and are useful for identifying a failure in a table driven test.
//
// The CompareWriter and RingWriter types are implementations of io.Writer
// useful for capturing output for later comparison.
package test
