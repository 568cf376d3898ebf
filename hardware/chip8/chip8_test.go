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

package chip8_test

import (
	"testing"
	"time"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/hardware/ticker"
	"github.com/degiel1982/gopher8/test"
)

// testClock is a manually advanced clock for driving the polled tick source.
type testClock struct {
	elapsed time.Duration
}

func (c *testClock) advance(d time.Duration) {
	c.elapsed += d
}

func (c *testClock) read() time.Duration {
	return c.elapsed
}

func TestLifecycle(t *testing.T) {
	ch8 := chip8.NewCHIP8()

	// no ROM loaded yet
	test.ExpectedFailure(t, ch8.Start(chip8.DefaultOpts()))
	test.ExpectedFailure(t, ch8.IsRunning())

	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{0x12, 0x00}))

	test.ExpectedSuccess(t, ch8.Start(chip8.DefaultOpts()))
	test.ExpectedSuccess(t, ch8.IsRunning())
	test.ExpectedSuccess(t, ch8.IsReady())

	// starting a running machine fails
	test.ExpectedFailure(t, ch8.Start(chip8.DefaultOpts()))

	test.ExpectedSuccess(t, ch8.Stop())
	test.ExpectedFailure(t, ch8.IsRunning())

	// stopping a stopped machine fails
	test.ExpectedFailure(t, ch8.Stop())

	// a stop unloads the machine. a fresh LoadROM() is needed
	test.ExpectedFailure(t, ch8.Start(chip8.DefaultOpts()))
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{0x12, 0x00}))
	test.ExpectedSuccess(t, ch8.Start(chip8.DefaultOpts()))
}

func TestLoadROM(t *testing.T) {
	ch8 := chip8.NewCHIP8()
	rom := []uint8{0xaa, 0xbb, 0xcc}
	test.ExpectedSuccess(t, ch8.LoadROM(rom))

	// the image sits at the program origin
	test.Equate(t, ch8.Peek(0x200), 0xaa)
	test.Equate(t, ch8.Peek(0x201), 0xbb)
	test.Equate(t, ch8.Peek(0x202), 0xcc)

	// the font sits at 0x50. first and last bytes of the fontset
	test.Equate(t, ch8.Peek(0x050), 0xf0)
	test.Equate(t, ch8.Peek(0x09f), 0x80)

	// everything else is zero, including the high font region
	test.Equate(t, ch8.Peek(0x000), 0)
	test.Equate(t, ch8.Peek(0x04f), 0)
	test.Equate(t, ch8.Peek(0x0a0), 0)
	test.Equate(t, ch8.Peek(0x1ff), 0)
	test.Equate(t, ch8.Peek(0x203), 0)
	test.Equate(t, ch8.Peek(0xfff), 0)
}

func TestLoadROMHighFont(t *testing.T) {
	ch8 := chip8.NewCHIP8()
	ch8.EnableHighFont(true)
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{0x12, 0x00}))

	// first byte of the large zero glyph
	test.Equate(t, ch8.Peek(0x0a0), 0xff)
}

func TestLoadROMTooLarge(t *testing.T) {
	ch8 := chip8.NewCHIP8()

	rom := make([]uint8, chip8.MaxRomSize+1)
	rom[0] = 0xaa
	rom[chip8.MaxRomSize-1] = 0xbb

	err := ch8.LoadROM(rom)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, chip8.RomTooLarge))

	// the clamped portion is still loaded and the machine can start
	test.Equate(t, ch8.Peek(0x200), 0xaa)
	test.Equate(t, ch8.Peek(0xfff), 0xbb)
	test.ExpectedSuccess(t, ch8.Start(chip8.DefaultOpts()))

	// a ROM of exactly the maximum size is not an error
	ch8 = chip8.NewCHIP8()
	test.ExpectedSuccess(t, ch8.LoadROM(make([]uint8, chip8.MaxRomSize)))
}

func TestPolledScheduler(t *testing.T) {
	clk := &testClock{}

	ch8 := chip8.NewCHIP8()
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{0x12, 0x00}))

	opts := chip8.DefaultOpts()
	opts.Clock = clk.read
	test.ExpectedSuccess(t, ch8.Start(opts))

	// no time has passed. nothing ticks
	start := ch8.Cycles()
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 0)

	// one CPU interval, one instruction. repeated calls without the clock
	// moving do nothing
	clk.advance(ticker.CPUInterval)
	ch8.Loop()
	ch8.Loop()
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 1)

	// a long stall is one tick, not a burst
	clk.advance(10 * ticker.CPUInterval)
	ch8.Loop()
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 2)
}

func TestTimers(t *testing.T) {
	clk := &testClock{}

	// V0=2, sound timer=2, delay timer=2, then spin
	ch8 := chip8.NewCHIP8()
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{
		0x60, 0x02,
		0xf0, 0x18,
		0xf0, 0x15,
		0x12, 0x06,
	}))

	opts := chip8.DefaultOpts()
	opts.Clock = clk.read
	test.ExpectedSuccess(t, ch8.Start(opts))

	// run the three setup instructions
	for i := 0; i < 3; i++ {
		clk.advance(ticker.CPUInterval)
		ch8.Loop()
	}
	test.ExpectedFailure(t, ch8.Sound())

	// each GPU interval is one timer service. the sound flag reflects the
	// timer value before the decrement, so it stays up for two services
	clk.advance(ticker.GPUInterval)
	ch8.Loop()
	test.ExpectedSuccess(t, ch8.Sound())

	clk.advance(ticker.GPUInterval)
	ch8.Loop()
	test.ExpectedSuccess(t, ch8.Sound())

	clk.advance(ticker.GPUInterval)
	ch8.Loop()
	test.ExpectedFailure(t, ch8.Sound())
}

func TestDrawPromotion(t *testing.T) {
	clk := &testClock{}

	ch8 := chip8.NewCHIP8()
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{
		0xa2, 0x06, // I=0x206
		0xd0, 0x11, // draw
		0x12, 0x04, // spin
		0xff, // sprite data
	}))

	opts := chip8.DefaultOpts()
	opts.Clock = clk.read
	test.ExpectedSuccess(t, ch8.Start(opts))

	clk.advance(ticker.CPUInterval)
	ch8.Loop()
	clk.advance(ticker.CPUInterval)
	ch8.Loop()

	// the frame is not ready until the 60Hz service runs
	test.ExpectedFailure(t, ch8.NeedToDraw())

	clk.advance(ticker.GPUInterval)
	ch8.Loop()
	test.ExpectedSuccess(t, ch8.NeedToDraw())

	ch8.ResetDraw()
	test.ExpectedFailure(t, ch8.NeedToDraw())
}

func TestPause(t *testing.T) {
	clk := &testClock{}

	ch8 := chip8.NewCHIP8()
	test.ExpectedSuccess(t, ch8.LoadROM([]uint8{0x12, 0x00}))

	opts := chip8.DefaultOpts()
	opts.Clock = clk.read
	test.ExpectedSuccess(t, ch8.Start(opts))

	start := ch8.Cycles()

	ch8.Pause()
	test.ExpectedSuccess(t, ch8.IsPaused())

	// nothing runs while paused, however much time passes
	clk.advance(100 * ticker.CPUInterval)
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 0)

	// the pause does not register as elapsed time on resume
	ch8.Resume()
	test.ExpectedFailure(t, ch8.IsPaused())
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 0)

	clk.advance(ticker.CPUInterval)
	ch8.Loop()
	test.Equate(t, int(ch8.Cycles()-start), 1)
}
