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

// Package version records the application name and the version of the
// running binary.
//
// The number, commit and date variables can be set at link time. For
// example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
//
// If the number is not set then the version is derived from the VCS
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/retroenv/retrogolib/buildinfo"
)

// ApplicationName is the name of the application.
const ApplicationName = "Gopher8"

// set at link time
var (
	number string
	commit string
	date   string
)

// the version string and revision derived in init()
var version string
var revision string

// Version returns the version string, the revision information and whether
// this is a numbered release.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Banner returns the application name and version in a form suitable for
// printing at startup.
func Banner() string {
	return fmt.Sprintf("%s %s", ApplicationName, buildinfo.Version(version, commit, date))
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsTime string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.time":
				vcsTime = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if commit == "" {
		commit = vcsRevision
	}
	if date == "" {
		date = vcsTime
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
