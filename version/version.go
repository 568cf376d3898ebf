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

// Package version records the version of the program and the vcs revision it
// was built from, when that information is available from the toolchain.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Gopher8"

// Revision contains the vcs revision. If the source had been modified but
// not committed at build time the string is suffixed with "+dirty".
var Revision string

// Version contains the version number of the project. The value is "local"
// when there is no vcs information, which can happen when compiling/running
// with "go run .".
var Version string

func init() {
	Version = "local"
	Revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" {
		Revision = revision
		if modified {
			Revision += "+dirty"
		}
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}
