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

// Default intervals for the two tick streams. The CPU runs at roughly 500Hz
// and the timer service at roughly 60Hz (16ms is accepted as near enough).
const (
	CPUInterval = 2 * time.Millisecond
	GPUInterval = 16 * time.Millisecond
)

// Source supplies the two periodic ticks that drive the interpreter: the CPU
// tick and the 60Hz timer tick. A tick is consumed by the query that
// observes it. Missed ticks are coalesced, never queued.
//
// Only one Source is active at a time. The interpreter selects between the
// polled and interrupt realisations at start time.
type Source interface {
	// CPUTick returns true if a CPU tick is due. Consumes the tick.
	CPUTick() bool

	// GPUTick returns true if a 60Hz timer tick is due. Consumes the tick.
	GPUTick() bool

	// Arm starts tick generation. Reset resets the last-fired timestamps for
	// the polled realisation; it is a no-op for the interrupt realisation.
	Arm()
	Reset()

	// Disarm stops tick generation and clears any pending ticks.
	Disarm()
}
