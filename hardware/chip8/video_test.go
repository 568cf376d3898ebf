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
	"testing"

	"github.com/degiel1982/gopher8/test"
	"github.com/google/go-cmp/cmp"
)

// drawProgram draws the byte 0xff at (V0,V1) twice. the second draw erases
// the first.
//
//	0x200  6000  V0=x
//	0x202  6100  V1=y
//	0x204  a20c  I=0x20c
//	0x206  d011  draw 1 row
//	0x208  d011  draw 1 row again
//	0x20a  1208  (unreached in tests; keeps layout even)
//	0x20c  ff    sprite data
func drawProgram(x, y uint8) []uint8 {
	return []uint8{
		0x60, x,
		0x61, y,
		0xa2, 0x0c,
		0xd0, 0x11,
		0xd0, 0x11,
		0x12, 0x08,
		0xff,
	}
}

func TestDrawAndCollision(t *testing.T) {
	ch8 := startWith(t, drawProgram(8, 4))

	ch8.Step()
	ch8.Step()
	ch8.Step()
	ch8.Step()

	// eight lit pixels and no collision
	for i := 0; i < 8; i++ {
		test.ExpectedSuccess(t, ch8.Pixel(8+i, 4))
	}
	test.Equate(t, ch8.reg.V[0xf], 0)

	// the draw is pending until the next timer service promotes it
	test.ExpectedFailure(t, ch8.NeedToDraw())
	ch8.timerService()
	test.ExpectedSuccess(t, ch8.NeedToDraw())
	ch8.ResetDraw()

	// the same sprite again. XOR erases every pixel and reports the
	// collision
	ch8.Step()
	for i := 0; i < 8; i++ {
		test.ExpectedFailure(t, ch8.Pixel(8+i, 4))
	}
	test.Equate(t, ch8.reg.V[0xf], 1)
}

func TestDrawWraps(t *testing.T) {
	// a sprite drawn at x=60 continues at x=0
	ch8 := startWith(t, drawProgram(60, 31))

	ch8.Step()
	ch8.Step()
	ch8.Step()
	ch8.Step()

	for i := 0; i < 4; i++ {
		test.ExpectedSuccess(t, ch8.Pixel(60+i, 31))
		test.ExpectedSuccess(t, ch8.Pixel(i, 31))
	}
	test.Equate(t, ch8.reg.V[0xf], 0)
}

func TestDirtyMap(t *testing.T) {
	ch8 := startWith(t, drawProgram(8, 4))

	// a fresh start marks everything dirty so that back-ends paint a full
	// first frame
	dirty := ch8.Dirty()
	for y := range dirty {
		for c := range dirty[y] {
			test.Equate(t, dirty[y][c], 1)
			dirty[y][c] = 0
		}
	}

	ch8.Step()
	ch8.Step()
	ch8.Step()
	ch8.Step()

	// only the drawn cell is dirty
	var expected DirtyMap
	expected[4][1] = 1

	if diff := cmp.Diff(expected, *dirty); diff != "" {
		t.Errorf("unexpected dirty map (-want +got):\n%s", diff)
	}
}

func TestClearScreen(t *testing.T) {
	ch8 := startWith(t, []uint8{
		0xa2, 0x08, // I=0x208
		0xd0, 0x11, // draw at (0,0)
		0x00, 0xe0, // clear
		0x00, 0x00,
		0xff, // sprite data
	})

	ch8.Step()
	ch8.Step()
	test.ExpectedSuccess(t, ch8.Pixel(0, 0))

	ch8.Step()
	for _, b := range ch8.Screen() {
		test.Equate(t, b, 0)
	}

	// everything is dirty again
	dirty := ch8.Dirty()
	for y := range dirty {
		for c := range dirty[y] {
			test.Equate(t, dirty[y][c], 1)
		}
	}
}

func TestScreenPacking(t *testing.T) {
	ch8 := startWith(t, drawProgram(8, 4))

	ch8.Step()
	ch8.Step()
	ch8.Step()
	ch8.Step()

	// pixel (x,y) lives at byte (x+64y)>>3
	scr := ch8.Screen()
	test.Equate(t, scr[(8+64*4)>>3], 0xff)
}
