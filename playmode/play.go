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

// Package playmode glues the interpreter core to a front-end and runs the
// main loop: the equivalent of the play_game() shell on the reference
// hardware.
package playmode

import (
	"time"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/gui"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/hardware/ticker"
	"github.com/degiel1982/gopher8/logger"
	"github.com/degiel1982/gopher8/romloader"
	"github.com/degiel1982/gopher8/wavwriter"
)

// Sentinel error returned when the ROM could not be started.
const StartFailed = "playmode: emulation could not be started"

// Play loads the ROM specified by the loader, starts the machine and runs
// the fused scheduler until the user quits or the guest halts itself. The
// front-end is created by the newGUI function once the machine exists. If
// wavFile is not empty the buzzer signal is captured to it.
//
// Must be called from the main thread; most front-ends require it.
func Play(ld romloader.Loader, newGUI func(*chip8.CHIP8) (gui.GUI, error), opts chip8.Opts, highFont bool, wavFile string) error {
	err := ld.Load()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	ch8 := chip8.NewCHIP8()
	ch8.EnableHighFont(highFont)

	if err := ch8.LoadROM(ld.Data); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	scr, err := newGUI(ch8)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	if !ch8.Start(opts) {
		return curated.Errorf(StartFailed)
	}
	defer ch8.Stop()

	// buzzer capture is sampled at the same 60Hz cadence as the timer
	// service, from a tick source of our own
	var wav *wavwriter.WavWriter
	var wavTick ticker.Source
	if wavFile != "" {
		wav, err = wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		wavTick = ticker.NewPolled(nil, ticker.GPUInterval, ticker.GPUInterval)
		wavTick.Arm()
	}

	for ch8.IsRunning() {
		if err := scr.Service(); err != nil {
			if curated.Is(err, gui.Quit) {
				break // for loop
			}
			return err
		}

		ch8.Loop()

		if wav != nil && wavTick.GPUTick() {
			wav.Tick(ch8.Sound())
		}

		// be kind to the host. the polled tick intervals are milliseconds
		// long so a sub-millisecond sleep costs nothing measurable
		time.Sleep(100 * time.Microsecond)
	}

	logger.Log("playmode", "emulation ended")

	if wav != nil {
		if err := wav.EndMixing(); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	return nil
}
