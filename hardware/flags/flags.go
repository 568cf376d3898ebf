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

package flags

import (
	"strings"
	"sync/atomic"
)

// Position of a single flag in the Register.
type Position uint32

// The state flags used by the interpreter for its own bookkeeping. The
// Position values are bit positions in the packed word, not masks.
const (
	HardwareTimers Position = iota
	RomLoaded
	Running
	Initialised
	DrawPendingCPU
	FrameReadyGPU
	Sound
	Pause

	numPositions
)

func (p Position) String() string {
	switch p {
	case HardwareTimers:
		return "HARDWARE_TIMERS"
	case RomLoaded:
		return "ROM_LOADED"
	case Running:
		return "RUNNING"
	case Initialised:
		return "INITIALIZED"
	case DrawPendingCPU:
		return "DRAW_PENDING_CPU"
	case FrameReadyGPU:
		return "FRAME_READY_GPU"
	case Sound:
		return "SOUND"
	case Pause:
		return "PAUSE"
	}
	return "unknown"
}

// Register is a packed word of boolean state flags. All operations are safe
// to call concurrently with each other and with a single interrupt-context
// writer. No ordering is promised across different positions.
type Register struct {
	bits atomic.Uint32
}

// Get the flag at the specified position.
func (r *Register) Get(pos Position) bool {
	return r.bits.Load()&(uint32(1)<<pos) != 0
}

// Set the flag at the specified position. A read-modify-write loop rather
// than a plain store so that a concurrent Set() of a different position is
// never lost.
func (r *Register) Set(pos Position, value bool) {
	mask := uint32(1) << pos
	for {
		old := r.bits.Load()
		var new uint32
		if value {
			new = old | mask
		} else {
			new = old &^ mask
		}
		if old == new || r.bits.CompareAndSwap(old, new) {
			return
		}
	}
}

// ClearAll resets every flag to false with a single store.
func (r *Register) ClearAll() {
	r.bits.Store(0)
}

func (r *Register) String() string {
	s := strings.Builder{}
	for p := Position(0); p < numPositions; p++ {
		if r.Get(p) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(p.String())
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}
