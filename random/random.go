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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the random number source used by the CXNN instruction. It is
// cryptographically irrelevant but it must be predictable on demand so that
// tests can reason about the values it produces.
type Random struct {
	src *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Reseed discards the current random stream and begins a new one. Called on
// every interpreter start so that two runs of the same ROM do not share a
// stream.
func (rnd *Random) Reseed() {
	if rnd.ZeroSeed {
		rnd.src = rand.New(rand.NewSource(0))
		return
	}
	rnd.src = rand.New(rand.NewSource(baseSeed + time.Now().UnixNano()))
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	if rnd.src == nil {
		rnd.Reseed()
	}
	return uint8(rnd.src.Intn(256))
}
