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

// Package digest fingerprints the framebuffer so that test code can compare
// the visual output of two emulator runs without storing full frames. This
// is not a cryptographic task; SHA256 is used because it is conveniently in
// the standard library and collisions are unimportant.
package digest

import (
	"crypto/sha256"
	"fmt"

	"github.com/degiel1982/gopher8/hardware/chip8"
)

// Video is a display back-end that folds every frame it consumes into a
// running fingerprint. Frames are chained: the previous digest is hashed
// along with the new frame, so the final value identifies the whole sequence
// of frames, not just the last one.
type Video struct {
	ch8    *chip8.CHIP8
	digest [sha256.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(ch8 *chip8.CHIP8) *Video {
	return &Video{ch8: ch8}
}

// Service consumes a waiting frame, if there is one, and returns true if a
// frame was consumed. Call as often as Loop(); the dirty map is cleared the
// same way a real display back-end would clear it.
func (dig *Video) Service() bool {
	if !dig.ch8.NeedToDraw() {
		return false
	}

	buf := make([]byte, 0, sha256.Size+chip8.ScreenSize)
	buf = append(buf, dig.digest[:]...)
	buf = append(buf, dig.ch8.Screen()...)
	dig.digest = sha256.Sum256(buf)
	dig.frames++

	dirty := dig.ch8.Dirty()
	for y := range dirty {
		for c := range dirty[y] {
			dirty[y][c] = 0
		}
	}

	dig.ch8.ResetDraw()

	return true
}

// Hash returns the fingerprint of the frames consumed so far.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames consumed so far.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest restores the fingerprint to its starting value.
func (dig *Video) ResetDigest() {
	dig.digest = [sha256.Size]byte{}
	dig.frames = 0
}
