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

package flags_test

import (
	"sync"
	"testing"

	"github.com/degiel1982/gopher8/hardware/flags"
	"github.com/degiel1982/gopher8/test"
)

func TestRegister(t *testing.T) {
	var r flags.Register

	test.ExpectedFailure(t, r.Get(flags.Running))
	test.Equate(t, r.String(), "none")

	r.Set(flags.Running, true)
	test.ExpectedSuccess(t, r.Get(flags.Running))
	test.ExpectedFailure(t, r.Get(flags.RomLoaded))
	test.Equate(t, r.String(), "RUNNING")

	// setting an already set flag changes nothing
	r.Set(flags.Running, true)
	test.ExpectedSuccess(t, r.Get(flags.Running))

	r.Set(flags.Sound, true)
	test.Equate(t, r.String(), "RUNNING SOUND")

	r.Set(flags.Running, false)
	test.ExpectedFailure(t, r.Get(flags.Running))
	test.ExpectedSuccess(t, r.Get(flags.Sound))

	r.ClearAll()
	test.ExpectedFailure(t, r.Get(flags.Sound))
	test.Equate(t, r.String(), "none")
}

func TestRegisterConcurrency(t *testing.T) {
	var r flags.Register

	// hammer two different positions from two goroutines. neither write may
	// be lost to the other
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			r.Set(flags.DrawPendingCPU, true)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			r.Set(flags.Sound, true)
			r.Set(flags.Sound, false)
		}
	}()

	wg.Wait()
	test.ExpectedSuccess(t, r.Get(flags.DrawPendingCPU))
	test.ExpectedFailure(t, r.Get(flags.Sound))
}
