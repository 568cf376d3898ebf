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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which looks and
// works like fmt.Errorf():
//
//	err := curated.Errorf("chip8: %v", err)
//
// The difference is that the pattern string is retained, allowing the error
// to be matched against a pattern later:
//
//	if curated.Is(err, romloader.FileTooLarge) {
//		...
//	}
//
// Sentinel patterns should be defined as exported string constants in the
// package that raises them. The Has() function works like Is() but searches
// the whole error chain rather than just the outermost error.
//
// Error messages are de-duplicated when printed. An error wrapped with the
// same leading message part as its parent prints the part only once. This
// keeps message chains short without losing context.
package curated
