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

// Package gui defines the interface between the emulation loop and the
// display/input front-ends. A front-end owns two jobs: repainting the
// framebuffer when the core reports a ready frame, and feeding host key
// events to the keypad. Front-ends read the Screen() and Dirty() surfaces of
// the core directly, clearing the dirty cells they consume, in the same way
// the OLED driver does on the reference hardware.
package gui

// Sentinel error returned by Service() when the user has asked to quit.
const Quit = "gui: quit"

// GUI is a display and input front-end for the emulation.
type GUI interface {
	// Service must be called on every iteration of the main loop and from
	// the main thread. It handles window/input events, repaints when the
	// core has a ready frame, and drives the buzzer.
	//
	// Returns an error matching the Quit pattern when the user asks to
	// quit.
	Service() error

	// Destroy releases the resources used by the front-end.
	Destroy()
}

// KeyMap translates host keys (as lower-case characters) to the hexadecimal
// keypad. The canonical layout maps the 4x4 block anchored at the 1 key:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var KeyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}
