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

//go:build !statsview
// +build !statsview

package statsview

import "io"

// Address of the statsview HTTP server. Meaningless in this build.
const Address = ""

// Launch does nothing. The project has been built without the statsview
// build constraint.
func Launch(output io.Writer) {
	output.Write([]byte("no stats server in this build (rebuild with statsview build tag)\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
