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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/degiel1982/gopher8/gui"
	"github.com/degiel1982/gopher8/gui/sdlplay"
	"github.com/degiel1982/gopher8/gui/termplay"
	"github.com/degiel1982/gopher8/hardware/chip8"
	"github.com/degiel1982/gopher8/logger"
	"github.com/degiel1982/gopher8/modalflag"
	"github.com/degiel1982/gopher8/performance"
	"github.com/degiel1982/gopher8/playmode"
	"github.com/degiel1982/gopher8/romloader"
	"github.com/degiel1982/gopher8/statsview"
	"github.com/degiel1982/gopher8/version"
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddUint("scale", 10, "size of a framebuffer pixel in window pixels")
	term := md.AddBool("term", false, "use the terminal front-end instead of SDL")
	hwTimers := md.AddBool("hwtimers", false, "drive the scheduler from hardware tickers")
	cpuInterval := md.AddDuration("cpu", 0, "CPU tick interval (default 2ms)")
	wav := md.AddString("wav", "", "record buzzer audio to wav file")
	sha := md.AddString("sha", "", "expected SHA1 hash of the rom image")
	highFont := md.AddBool("highfont", false, "load the large digit font for FX30")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("chip-8 rom required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		ld.Hash = *sha

		opts := chip8.DefaultOpts()
		opts.UseHardwareTimers = *hwTimers
		if *cpuInterval > 0 {
			opts.CPUInterval = *cpuInterval
		}

		newGUI := func(ch8 *chip8.CHIP8) (gui.GUI, error) {
			if *term {
				return termplay.NewTermPlay(ch8)
			}
			return sdlplay.NewSdlPlay(ch8, int(*scale))
		}

		return playmode.Play(ld, newGUI, opts, *highFont, *wav)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	uncapped := md.AddBool("uncapped", false, "run the scheduler as fast as possible")
	hwTimers := md.AddBool("hwtimers", false, "drive the scheduler from hardware tickers")
	profile := md.AddString("profile", "none", "run through the profiler: NONE, CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("chip-8 rom required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, prf, ld, duration.String(), *uncapped, *hwTimers)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	if *revision {
		fmt.Println(version.Revision)
	}
	if statsview.Available() {
		fmt.Println("statsview in build")
	}

	return nil
}
