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

// NumKeys is the number of keys on the hexadecimal keypad.
const NumKeys = 16

// SetKeyState records a key press or release. The input layer must call this
// from the same context as Loop(). Key indexes outside the keypad are
// silently ignored.
func (ch8 *CHIP8) SetKeyState(key uint8, pressed bool) {
	if key >= NumKeys {
		return
	}
	if pressed {
		ch8.keys[key] = 1
	} else {
		ch8.keys[key] = 0
	}
}

// IsKeyPressed returns the current state of the specified key. Key indexes
// outside the keypad read as released.
func (ch8 *CHIP8) IsKeyPressed(key uint8) bool {
	return key < NumKeys && ch8.keys[key] == 1
}

// pressedKey returns the lowest-indexed pressed key, or -1 if no key is
// pressed. The FX0A instruction uses this to end its blocking wait.
func (ch8 *CHIP8) pressedKey() int8 {
	for key := uint8(0); key < NumKeys; key++ {
		if ch8.keys[key] == 1 {
			return int8(key)
		}
	}
	return -1
}
