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

// Package test contains helper functions to remove common boilerplate from
// the test suites in the rest of the project.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The nil type is considered a success,
// which matches how the error type is normally used (nil meaning no error).
//
// The Equate() function compares like-typed values for equality. Some types
// (eg. uint16) can be compared against int for convenience.
package test
