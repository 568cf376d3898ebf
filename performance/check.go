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

// Package performance contains the Check() function used to test the
// performance of the emulator. Optionally, the emulator can be run through
// the CPU and memory profilers.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/hardware/ticker"
	"github.com/degiel1982/gopher8/romloader"
)

// how many scheduler iterations between deadline checks. reading the wall
// clock on every iteration measurably distorts the result
const performanceBrake = 512

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu
// profile, memory profile, or both, as defined by the Profile argument.
//
// In uncapped mode the polled tick source is driven by a synthetic clock
// that advances by one CPU interval per reading, so a CPU tick fires on
// every iteration and timer services are interleaved at the usual interval
// of simulated time.
func Check(output io.Writer, profile Profile, ld romloader.Loader, duration string, uncapped bool, hwTimers bool) error {
	err := ld.Load()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch8 := chip8.NewCHIP8()
	if err := ch8.LoadROM(ld.Data); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	opts := chip8.DefaultOpts()
	opts.UseHardwareTimers = hwTimers
	if uncapped {
		var elapsed time.Duration
		opts.Clock = func() time.Duration {
			elapsed += ticker.CPUInterval
			return elapsed
		}
		opts.UseHardwareTimers = false
	}

	if !ch8.Start(opts) {
		return curated.Errorf("performance: emulation could not be started")
	}
	defer ch8.Stop()

	frames := 0

	runner := func() error {
		deadline := time.Now().Add(dur)
		brake := 0

		for ch8.IsRunning() {
			ch8.Loop()

			if ch8.NeedToDraw() {
				frames++
				ch8.ResetDraw()
			}

			brake++
			if brake >= performanceBrake {
				brake = 0
				if !time.Now().Before(deadline) {
					break // for loop
				}
			}
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	cycles := ch8.Cycles()
	fps, accuracy := CalcFPS(frames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%d instructions in %.2f seconds (%.0f/sec)\n", cycles, dur.Seconds(), float64(cycles)/dur.Seconds())))
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, frames, dur.Seconds(), accuracy)))

	return nil
}
