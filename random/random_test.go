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

package random_test

import (
	"testing"

	"github.com/degiel1982/gopher8/random"
	"github.com/degiel1982/gopher8/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true

	b := random.NewRandom()
	b.ZeroSeed = true

	// two zero-seeded sources produce the same stream
	for i := 0; i < 100; i++ {
		test.Equate(t, a.Uint8(), b.Uint8())
	}

	// a reseed restarts the stream. advance one source first so the two are
	// out of step before the reseed
	a.Uint8()

	a.Reseed()
	b.Reseed()
	for i := 0; i < 100; i++ {
		test.Equate(t, a.Uint8(), b.Uint8())
	}
}
