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

// Package termplay is a terminal implementation of the gui.GUI interface.
// The framebuffer is painted with ANSI escape sequences and the keypad is
// read from the terminal in raw mode. It exists so that the emulator can be
// run over ssh or on machines without a display server.
//
// Terminals report key presses but not key releases, so a pressed key is
// held for a fixed duration and then released. This is crude but good
// enough for most ROMs.
package termplay

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/gui"
	"github.com/degiel1982/gopher8/hardware/chip8"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// how long a key reported by the terminal is considered held down
const keyHold = 150 * time.Millisecond

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	ch8 *chip8.CHIP8

	input  *os.File
	output *os.File

	// terminal attributes on entry, restored by Destroy()
	savedAttr unix.Termios

	// time at which each currently-pressed key is released
	release [chip8.NumKeys]time.Time

	readBuf [16]byte
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay(ch8 *chip8.CHIP8) (gui.GUI, error) {
	scr := &TermPlay{
		ch8:    ch8,
		input:  os.Stdin,
		output: os.Stdout,
	}

	err := termios.Tcgetattr(scr.input.Fd(), &scr.savedAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// raw mode with non-blocking reads. VMIN and VTIME of zero means a read
	// returns immediately with whatever is available
	rawAttr := scr.savedAttr
	termios.Cfmakeraw(&rawAttr)
	rawAttr.Cc[unix.VMIN] = 0
	rawAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &rawAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// hide cursor and clear screen
	scr.output.WriteString("\033[?25l\033[2J")

	return scr, nil
}

// Service implements the gui.GUI interface.
func (scr *TermPlay) Service() error {
	if err := scr.readKeys(); err != nil {
		return err
	}

	// expire held keys
	now := time.Now()
	for k := range scr.release {
		if !scr.release[k].IsZero() && now.After(scr.release[k]) {
			scr.ch8.SetKeyState(uint8(k), false)
			scr.release[k] = time.Time{}
		}
	}

	if scr.ch8.NeedToDraw() {
		scr.repaint()
		scr.ch8.ResetDraw()
	}

	return nil
}

func (scr *TermPlay) readKeys() error {
	n, err := scr.input.Read(scr.readBuf[:])
	if err != nil && n == 0 {
		// a zero-byte read in raw mode is not an error condition
		return nil
	}

	for _, b := range scr.readBuf[:n] {
		switch b {
		case 0x03, 0x1b: // ctrl-c, escape
			return curated.Errorf(gui.Quit)
		default:
			if key, ok := gui.KeyMap[rune(b)]; ok {
				scr.ch8.SetKeyState(key, true)
				scr.release[key] = time.Now().Add(keyHold)
			}
		}
	}

	return nil
}

// repaint the framebuffer. each pixel is drawn as two characters to get a
// roughly square aspect ratio. dirty rows are repainted whole; clean rows
// are skipped.
func (scr *TermPlay) repaint() {
	dirty := scr.ch8.Dirty()
	s := strings.Builder{}

	for y := 0; y < chip8.ScreenHeight; y++ {
		rowDirty := false
		for c := range dirty[y] {
			if dirty[y][c] != 0 {
				rowDirty = true
				dirty[y][c] = 0
			}
		}
		if !rowDirty {
			continue
		}

		s.WriteString(fmt.Sprintf("\033[%d;1H", y+1))
		for x := 0; x < chip8.ScreenWidth; x++ {
			if scr.ch8.Pixel(x, y) {
				s.WriteString("██")
			} else {
				s.WriteString("  ")
			}
		}
	}

	if s.Len() > 0 {
		scr.output.WriteString(s.String())
	}
}

// Destroy implements the gui.GUI interface.
func (scr *TermPlay) Destroy() {
	// show cursor again and move it below the image
	scr.output.WriteString(fmt.Sprintf("\033[?25h\033[%d;1H\n", chip8.ScreenHeight+1))
	_ = termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &scr.savedAttr)
}
