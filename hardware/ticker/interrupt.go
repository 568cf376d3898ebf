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

package ticker

import (
	"sync/atomic"
	"time"
)

// Interrupt models the hardware-timer mode of the original machine: two
// periodic timers whose interrupt handlers store true into an atomic latch.
// Here the handlers are goroutines fed by time.Ticker. The main loop reads a
// latch, performs the work and stores false back. A latch that is already
// true when the ticker fires again coalesces into a single tick.
type Interrupt struct {
	cpuInterval time.Duration
	gpuInterval time.Duration

	cpuPending atomic.Bool
	gpuPending atomic.Bool

	cpuTicker *time.Ticker
	gpuTicker *time.Ticker

	quit chan struct{}
	done chan struct{}
}

// NewInterrupt is the preferred method of initialisation for the Interrupt
// type. The timers are not started until Arm() is called.
func NewInterrupt(cpuInterval, gpuInterval time.Duration) *Interrupt {
	if cpuInterval <= 0 {
		cpuInterval = CPUInterval
	}
	if gpuInterval <= 0 {
		gpuInterval = GPUInterval
	}
	return &Interrupt{
		cpuInterval: cpuInterval,
		gpuInterval: gpuInterval,
	}
}

// CPUTick implements the Source interface.
func (i *Interrupt) CPUTick() bool {
	if i.cpuPending.Load() {
		i.cpuPending.Store(false)
		return true
	}
	return false
}

// GPUTick implements the Source interface.
func (i *Interrupt) GPUTick() bool {
	if i.gpuPending.Load() {
		i.gpuPending.Store(false)
		return true
	}
	return false
}

// Arm implements the Source interface.
func (i *Interrupt) Arm() {
	if i.quit != nil {
		return
	}

	i.cpuTicker = time.NewTicker(i.cpuInterval)
	i.gpuTicker = time.NewTicker(i.gpuInterval)
	i.quit = make(chan struct{})
	i.done = make(chan struct{})

	// the stand-in for the two interrupt service routines. nothing happens
	// in here except the latch store
	go func(quit chan struct{}, done chan struct{}) {
		defer close(done)
		for {
			select {
			case <-i.cpuTicker.C:
				i.cpuPending.Store(true)
			case <-i.gpuTicker.C:
				i.gpuPending.Store(true)
			case <-quit:
				return
			}
		}
	}(i.quit, i.done)
}

// Reset implements the Source interface.
func (i *Interrupt) Reset() {
}

// Disarm implements the Source interface. Pending ticks are cleared after
// the timers have stopped, in that order, so that no tick survives the
// disarm.
func (i *Interrupt) Disarm() {
	if i.quit == nil {
		return
	}

	i.cpuTicker.Stop()
	i.gpuTicker.Stop()
	close(i.quit)
	<-i.done
	i.quit = nil

	i.cpuPending.Store(false)
	i.gpuPending.Store(false)
}
