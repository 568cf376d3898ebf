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

import "time"

// ClockFn returns a monotonically non-decreasing reading, in the manner of
// the millis() counter on the original hardware.
type ClockFn func() time.Duration

// Polled compares a free-running clock against last-fired timestamps. On
// tick the timestamp is set to the current reading, not advanced by the
// interval. Catch-up is deliberately suppressed: a long stall produces one
// tick, not a burst.
type Polled struct {
	clock ClockFn

	cpuInterval time.Duration
	gpuInterval time.Duration

	lastCPU time.Duration
	lastGPU time.Duration
}

// NewPolled is the preferred method of initialisation for the Polled type.
// If clock is nil a time.Since() based clock is used.
func NewPolled(clock ClockFn, cpuInterval, gpuInterval time.Duration) *Polled {
	if clock == nil {
		epoch := time.Now()
		clock = func() time.Duration {
			return time.Since(epoch)
		}
	}
	if cpuInterval <= 0 {
		cpuInterval = CPUInterval
	}
	if gpuInterval <= 0 {
		gpuInterval = GPUInterval
	}
	return &Polled{
		clock:       clock,
		cpuInterval: cpuInterval,
		gpuInterval: gpuInterval,
	}
}

// CPUTick implements the Source interface.
func (p *Polled) CPUTick() bool {
	now := p.clock()
	if now-p.lastCPU >= p.cpuInterval {
		p.lastCPU = now
		return true
	}
	return false
}

// GPUTick implements the Source interface.
func (p *Polled) GPUTick() bool {
	now := p.clock()
	if now-p.lastGPU >= p.gpuInterval {
		p.lastGPU = now
		return true
	}
	return false
}

// Arm implements the Source interface.
func (p *Polled) Arm() {
	p.Reset()
}

// Reset implements the Source interface. The timestamps are resynced to the
// clock so that time spent before the reset (paused, for example) does not
// count towards the next tick.
func (p *Polled) Reset() {
	now := p.clock()
	p.lastCPU = now
	p.lastGPU = now
}

// Disarm implements the Source interface.
func (p *Polled) Disarm() {
}
