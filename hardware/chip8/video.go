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

import "github.com/degiel1982/gopher8/hardware/flags"

// Dimensions of the monochrome display.
const (
	ScreenWidth  = 64
	ScreenHeight = 32

	// the framebuffer packs one-bit pixels row-major, MSB on the left
	ScreenSize = (ScreenWidth * ScreenHeight) / 8

	// the dirty map divides each row into chunks of 8 pixels
	DirtyChunk = 8
)

// DirtyMap records which framebuffer regions have changed since a display
// back-end last repainted. Each cell covers an 8-pixel horizontal chunk; the
// value is 0 or 1. The interpreter only ever sets cells. The back-end clears
// the cells it has consumed.
type DirtyMap [ScreenHeight][ScreenWidth / DirtyChunk]uint8

// setAll marks every cell. Used after start and by 00E0 to force a full
// repaint.
func (d *DirtyMap) setAll() {
	for y := range d {
		for c := range d[y] {
			d[y][c] = 1
		}
	}
}

// Screen returns the packed framebuffer. Pixel (x,y) lives at byte
// (x+64y)>>3, bit 7-((x+64y)&7). 1 is lit, 0 is dark.
//
// The slice aliases the interpreter's framebuffer and must be treated as
// read-only by display back-ends.
func (ch8 *CHIP8) Screen() []uint8 {
	return ch8.framebuffer[:]
}

// Dirty returns the dirty map. Display back-ends write 0 to each cell they
// have consumed; the interpreter never reads the map, so a back-end that
// never clears it only causes redundant repaints.
func (ch8 *CHIP8) Dirty() *DirtyMap {
	return &ch8.dirty
}

// Pixel returns the state of the pixel at the specified coordinates.
// Coordinates wrap at the screen edges.
func (ch8 *CHIP8) Pixel(x, y int) bool {
	idx := (x & (ScreenWidth - 1)) + (y&(ScreenHeight-1))*ScreenWidth
	return ch8.framebuffer[idx>>3]&(1<<(7-(idx&7))) != 0
}

// the 00E0 instruction. zeroes the framebuffer and marks everything dirty.
func (ch8 *CHIP8) clearScreen() {
	ch8.framebuffer = [ScreenSize]uint8{}
	ch8.dirty.setAll()
	ch8.flg.Set(flags.DrawPendingCPU, true)
}

// the DXYN instruction. XORs an up-to-15-row, 8-pixel-wide sprite into the
// framebuffer. VF is set to 1 if any lit pixel is cleared by the XOR.
// Coordinates wrap at the screen edges, both for the starting position and
// for rows/columns that run off it.
func (ch8 *CHIP8) drawSprite(x, y, height uint8) {
	ch8.reg.V[0xf] = 0

	for row := uint8(0); row < height; row++ {
		sprite := ch8.ram[(ch8.reg.Index+uint16(row))&addressMask]
		py := (y + row) & (ScreenHeight - 1)

		for col := uint8(0); col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			px := (x + col) & (ScreenWidth - 1)
			idx := uint16(px) + uint16(py)*ScreenWidth
			bit := uint8(1) << (7 - (idx & 7))

			if ch8.framebuffer[idx>>3]&bit != 0 {
				ch8.reg.V[0xf] = 1
			}
			ch8.framebuffer[idx>>3] ^= bit

			ch8.dirty[py][px/DirtyChunk] = 1
		}
	}

	ch8.flg.Set(flags.DrawPendingCPU, true)
}
