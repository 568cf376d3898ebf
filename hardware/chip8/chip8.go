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

package chip8

import (
	"time"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/hardware/flags"
	"github.com/degiel1982/gopher8/hardware/ticker"
	"github.com/degiel1982/gopher8/logger"
	"github.com/degiel1982/gopher8/random"
)

// Sentinel error returned by LoadROM() for oversized ROM images.
const RomTooLarge = "chip8: rom too large: %d bytes (max %d)"

// CHIP8 is the main container for the emulated machine: RAM, register file,
// call stack, keypad, framebuffer and dirty map. One instance drives one
// guest program. The type is not safe for concurrent use; Loop() must be
// called from a single context.
type CHIP8 struct {
	ram [RAMSize]uint8
	reg registers

	framebuffer [ScreenSize]uint8
	dirty       DirtyMap

	keys [NumKeys]uint8

	flg  flags.Register
	tick ticker.Source

	// random number source for the CXNN instruction. exported so that tests
	// can set ZeroSeed before starting
	Rand *random.Random

	highFont bool

	// number of instructions executed since Start()
	cycles uint64
}

// Opts are the configuration options applied at Start().
type Opts struct {
	// drive the CPU and timer ticks from free-running tickers rather than by
	// polling a clock
	UseHardwareTimers bool

	// tick intervals. the zero value selects the defaults (2ms and 16ms)
	CPUInterval time.Duration
	GPUInterval time.Duration

	// the clock read by the polled tick source. nil selects the wall clock.
	// ignored when UseHardwareTimers is set
	Clock ticker.ClockFn
}

// DefaultOpts returns the options used by the reference hardware: polled
// timers at 2ms/16ms intervals.
func DefaultOpts() Opts {
	return Opts{
		CPUInterval: ticker.CPUInterval,
		GPUInterval: ticker.GPUInterval,
	}
}

// NewCHIP8 is the preferred method of initialisation for the CHIP8 type.
func NewCHIP8() *CHIP8 {
	return &CHIP8{
		Rand: random.NewRandom(),
	}
}

// EnableHighFont selects whether the next LoadROM() fills the high font
// region (0xa0 onwards) with the SCHIP large digit font for use by the FX30
// instruction. The reference hardware leaves the region zeroed, which is
// also the default here.
func (ch8 *CHIP8) EnableHighFont(enable bool) {
	ch8.highFont = enable
}

// LoadROM zeroes RAM, loads the fontset and copies the ROM image to the
// program origin. An image larger than MaxRomSize is clamped and the excess
// reported with the RomTooLarge error; the clamped portion is still loaded.
func (ch8 *CHIP8) LoadROM(rom []uint8) error {
	var err error

	if len(rom) > MaxRomSize {
		err = curated.Errorf(RomTooLarge, len(rom), MaxRomSize)
		rom = rom[:MaxRomSize]
	}

	ch8.ram = [RAMSize]uint8{}
	ch8.loadFontset()
	copy(ch8.ram[RomOrigin:], rom)
	ch8.flg.Set(flags.RomLoaded, true)

	logger.Logf("chip8", "rom loaded (%d bytes)", len(rom))

	return err
}

// initialise the machine for a fresh run. RAM is left alone; it was prepared
// by LoadROM().
func (ch8 *CHIP8) initialise() {
	ch8.reg.reset()
	ch8.framebuffer = [ScreenSize]uint8{}
	ch8.dirty.setAll()
	ch8.cycles = 0
}

// Start begins execution. Returns true only if a ROM is loaded and the
// machine is not already running.
func (ch8 *CHIP8) Start(opts Opts) bool {
	if !ch8.flg.Get(flags.RomLoaded) || ch8.flg.Get(flags.Running) {
		return false
	}

	ch8.flg.Set(flags.Running, true)
	ch8.initialise()
	ch8.Rand.Reseed()

	if opts.UseHardwareTimers {
		ch8.tick = ticker.NewInterrupt(opts.CPUInterval, opts.GPUInterval)
		ch8.flg.Set(flags.HardwareTimers, true)
		logger.Log("chip8", "started (hardware timers)")
	} else {
		ch8.tick = ticker.NewPolled(opts.Clock, opts.CPUInterval, opts.GPUInterval)
		logger.Log("chip8", "started (polled timers)")
	}
	ch8.tick.Arm()

	ch8.flg.Set(flags.Initialised, true)

	return true
}

// Stop execution, disarm the tick source and clear every state flag. RAM is
// left intact but the machine is unloaded: LoadROM() must be called again
// before the next Start(). Returns true only if the machine was running.
func (ch8 *CHIP8) Stop() bool {
	if !ch8.flg.Get(flags.Running) {
		return false
	}

	if ch8.tick != nil {
		ch8.tick.Disarm()
	}
	ch8.flg.ClearAll()

	logger.Log("chip8", "stopped")

	return true
}

// Loop performs one iteration of the fused scheduler: one instruction if a
// CPU tick is due and one timer service if a 60Hz tick is due. It does
// nothing unless the machine is initialised, and nothing while paused.
func (ch8 *CHIP8) Loop() {
	if !ch8.flg.Get(flags.Initialised) || ch8.flg.Get(flags.Pause) {
		return
	}

	if ch8.tick.CPUTick() {
		ch8.execute()
	}
	if ch8.tick.GPUTick() {
		ch8.timerService()
	}
}

// Step executes a single instruction regardless of the tick source. For use
// by tests and debugging surfaces.
func (ch8 *CHIP8) Step() {
	if !ch8.flg.Get(flags.Initialised) {
		return
	}
	ch8.execute()
}

// the 60Hz timer service: promote a pending draw to a ready frame and step
// the two timers. the sound flag reflects whether the sound timer was still
// live when this tick observed it.
func (ch8 *CHIP8) timerService() {
	if ch8.flg.Get(flags.DrawPendingCPU) {
		ch8.flg.Set(flags.DrawPendingCPU, false)
		ch8.flg.Set(flags.FrameReadyGPU, true)
	}

	if ch8.reg.DelayTimer > 0 {
		ch8.reg.DelayTimer--
	}

	if ch8.reg.SoundTimer > 0 {
		ch8.reg.SoundTimer--
		ch8.flg.Set(flags.Sound, true)
	} else {
		ch8.flg.Set(flags.Sound, false)
	}
}

// NeedToDraw returns true when a completed frame is waiting for the display
// back-end. The back-end repaints and then calls ResetDraw().
func (ch8 *CHIP8) NeedToDraw() bool {
	return ch8.flg.Get(flags.FrameReadyGPU)
}

// ResetDraw clears the frame-ready flag after a repaint.
func (ch8 *CHIP8) ResetDraw() {
	ch8.flg.Set(flags.FrameReadyGPU, false)
}

// Sound returns true while the sound timer is driving the buzzer.
func (ch8 *CHIP8) Sound() bool {
	return ch8.flg.Get(flags.Sound)
}

// IsRunning returns true if the machine has been started and not stopped.
func (ch8 *CHIP8) IsRunning() bool {
	return ch8.flg.Get(flags.Running)
}

// IsReady returns true if the machine has been initialised and is ready for
// calls to Loop().
func (ch8 *CHIP8) IsReady() bool {
	return ch8.flg.Get(flags.Initialised)
}

// Pause suspends the fused scheduler. Both the CPU and the timers are held.
func (ch8 *CHIP8) Pause() {
	ch8.flg.Set(flags.Pause, true)
}

// Resume the fused scheduler after a Pause(). The polled tick source is
// reset so that the pause does not register as elapsed time.
func (ch8 *CHIP8) Resume() {
	if ch8.tick != nil {
		ch8.tick.Reset()
	}
	ch8.flg.Set(flags.Pause, false)
}

// IsPaused returns true while the scheduler is suspended.
func (ch8 *CHIP8) IsPaused() bool {
	return ch8.flg.Get(flags.Pause)
}

// Cycles returns the number of instructions executed since Start().
func (ch8 *CHIP8) Cycles() uint64 {
	return ch8.cycles
}
