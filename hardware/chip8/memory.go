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

// Memory layout of the 4KiB address space.
const (
	RAMSize = 4096

	// programs are loaded at, and the program counter is reset to, RomOrigin
	RomOrigin = 0x200

	// the maximum size of a ROM image
	MaxRomSize = RAMSize - RomOrigin

	// the 4x5 digit font used by the FX29 instruction
	fontOrigin = 0x50

	// the 8x10 digit font used by the FX30 instruction. the reference
	// hardware reserves the memory but never fills it. see EnableHighFont()
	highFontOrigin = 0xa0

	// addresses are 12 bits. any guest supplied address is reduced by this
	// mask before memory is touched
	addressMask = 0xfff
)

// the canonical CHIP-8 font. 16 glyphs of 5 rows each, loaded at fontOrigin
// by LoadROM().
var fontset = [80]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// the SCHIP large digit font. 10 glyphs of 10 rows each. only loaded when
// the high font has been enabled with EnableHighFont(). the reference
// hardware leaves this region zeroed.
var highFontset = [100]uint8{
	0xff, 0xff, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xff, 0xff, // 0
	0x18, 0x78, 0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0xff, 0xff, // 1
	0xff, 0xff, 0x03, 0x03, 0xff, 0xff, 0xc0, 0xc0, 0xff, 0xff, // 2
	0xff, 0xff, 0x03, 0x03, 0xff, 0xff, 0x03, 0x03, 0xff, 0xff, // 3
	0xc3, 0xc3, 0xc3, 0xc3, 0xff, 0xff, 0x03, 0x03, 0x03, 0x03, // 4
	0xff, 0xff, 0xc0, 0xc0, 0xff, 0xff, 0x03, 0x03, 0xff, 0xff, // 5
	0xff, 0xff, 0xc0, 0xc0, 0xff, 0xff, 0xc3, 0xc3, 0xff, 0xff, // 6
	0xff, 0xff, 0x03, 0x03, 0x06, 0x0c, 0x18, 0x18, 0x18, 0x18, // 7
	0xff, 0xff, 0xc3, 0xc3, 0xff, 0xff, 0xc3, 0xc3, 0xff, 0xff, // 8
	0xff, 0xff, 0xc3, 0xc3, 0xff, 0xff, 0x03, 0x03, 0xff, 0xff, // 9
}

func (ch8 *CHIP8) loadFontset() {
	copy(ch8.ram[fontOrigin:], fontset[:])
	if ch8.highFont {
		copy(ch8.ram[highFontOrigin:], highFontset[:])
	}
}

// Peek returns the byte at the specified address. Addresses are masked to 12
// bits. Used by display/debugging surfaces and by tests; the interpreter
// accesses RAM directly.
func (ch8 *CHIP8) Peek(address uint16) uint8 {
	return ch8.ram[address&addressMask]
}
