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

import "github.com/degiel1982/gopher8/logger"

// execute fetches, decodes and executes a single instruction.
//
// Decoding conventions: NNN is the low 12 bits, NN the low byte, N the low
// nibble, X the second nibble and Y the third. Unrecognised opcodes advance
// the program counter and otherwise do nothing. Guest supplied indexes never
// reach memory unmasked: this function must not panic whatever the ROM
// contains.
func (ch8 *CHIP8) execute() {
	reg := &ch8.reg

	ch8.cycles++

	opcode := uint16(ch8.ram[reg.PC&addressMask])<<8 | uint16(ch8.ram[(reg.PC+1)&addressMask])

	nnn := opcode & 0x0fff
	nn := uint8(opcode & 0x00ff)
	n := uint8(opcode & 0x000f)
	x := uint8(opcode>>8) & 0xf
	y := uint8(opcode>>4) & 0xf

	switch opcode & 0xf000 {
	case 0x0000:
		switch nn {
		case 0xe0:
			ch8.clearScreen()
			reg.PC += 2
		case 0xee:
			// stack underflow is undefined on the reference hardware. the
			// stack pointer is clamped and the instruction becomes a no-op
			if reg.SP > 0 {
				reg.SP--
				reg.PC = reg.Stack[reg.SP]
			} else {
				reg.PC += 2
			}
		case 0xfd:
			logger.Log("chip8", "halt opcode")
			ch8.Stop()
			return
		default:
			reg.PC += 2
		}

	case 0x1000:
		reg.PC = nnn

	case 0x2000:
		// a call at full stack depth is a soft no-op: no push, no jump
		if reg.SP < stackDepth {
			reg.Stack[reg.SP] = reg.PC + 2
			reg.SP++
			reg.PC = nnn
		} else {
			reg.PC += 2
		}

	case 0x3000:
		if reg.V[x] == nn {
			reg.PC += 4
		} else {
			reg.PC += 2
		}

	case 0x4000:
		if reg.V[x] != nn {
			reg.PC += 4
		} else {
			reg.PC += 2
		}

	case 0x5000:
		if reg.V[x] == reg.V[y] {
			reg.PC += 4
		} else {
			reg.PC += 2
		}

	case 0x6000:
		reg.V[x] = nn
		reg.PC += 2

	case 0x7000:
		// no carry out of this instruction. VF is untouched
		reg.V[x] += nn
		reg.PC += 2

	case 0x8000:
		switch n {
		case 0x0:
			reg.V[x] = reg.V[y]
		case 0x1:
			reg.V[x] |= reg.V[y]
		case 0x2:
			reg.V[x] &= reg.V[y]
		case 0x3:
			reg.V[x] ^= reg.V[y]
		case 0x4:
			sum := uint16(reg.V[x]) + uint16(reg.V[y])
			if sum > 0xff {
				reg.V[0xf] = 1
			} else {
				reg.V[0xf] = 0
			}
			reg.V[x] = uint8(sum)
		case 0x5:
			// VF is NOT borrow
			if reg.V[x] > reg.V[y] {
				reg.V[0xf] = 1
			} else {
				reg.V[0xf] = 0
			}
			reg.V[x] -= reg.V[y]
		case 0x6:
			// SCHIP shift semantics: Y is ignored
			reg.V[0xf] = reg.V[x] & 0x1
			reg.V[x] >>= 1
		case 0x7:
			if reg.V[y] > reg.V[x] {
				reg.V[0xf] = 1
			} else {
				reg.V[0xf] = 0
			}
			reg.V[x] = reg.V[y] - reg.V[x]
		case 0xe:
			reg.V[0xf] = (reg.V[x] >> 7) & 0x1
			reg.V[x] <<= 1
		}
		reg.PC += 2

	case 0x9000:
		if reg.V[x] != reg.V[y] {
			reg.PC += 4
		} else {
			reg.PC += 2
		}

	case 0xa000:
		reg.Index = nnn
		reg.PC += 2

	case 0xb000:
		reg.PC = (nnn + uint16(reg.V[0])) & addressMask

	case 0xc000:
		reg.V[x] = ch8.Rand.Uint8() & nn
		reg.PC += 2

	case 0xd000:
		ch8.drawSprite(reg.V[x], reg.V[y], n)
		reg.PC += 2

	case 0xe000:
		key := reg.V[x]
		switch nn {
		case 0x9e:
			if ch8.IsKeyPressed(key) {
				reg.PC += 4
			} else {
				reg.PC += 2
			}
		case 0xa1:
			if !ch8.IsKeyPressed(key) {
				reg.PC += 4
			} else {
				reg.PC += 2
			}
		default:
			reg.PC += 2
		}

	case 0xf000:
		switch nn {
		case 0x07:
			reg.V[x] = reg.DelayTimer
			reg.PC += 2
		case 0x0a:
			// blocking wait for key. the program counter is not advanced
			// until a key is pressed so the instruction re-executes on the
			// next CPU tick, leaving the outer loop free to poll the keypad
			// and timers
			if key := ch8.pressedKey(); key != -1 {
				reg.V[x] = uint8(key)
				reg.PC += 2
			}
		case 0x15:
			reg.DelayTimer = reg.V[x]
			reg.PC += 2
		case 0x18:
			reg.SoundTimer = reg.V[x]
			reg.PC += 2
		case 0x1e:
			reg.Index += uint16(reg.V[x])
			if reg.Index > addressMask {
				reg.V[0xf] = 1
			} else {
				reg.V[0xf] = 0
			}
			reg.Index &= addressMask
			reg.PC += 2
		case 0x29:
			reg.Index = fontOrigin + uint16(reg.V[x])*5
			reg.PC += 2
		case 0x30:
			reg.Index = highFontOrigin + uint16(reg.V[x])*10
			reg.PC += 2
		case 0x33:
			ch8.ram[reg.Index&addressMask] = reg.V[x] / 100
			ch8.ram[(reg.Index+1)&addressMask] = (reg.V[x] / 10) % 10
			ch8.ram[(reg.Index+2)&addressMask] = reg.V[x] % 10
			reg.PC += 2
		case 0x55:
			// SCHIP semantics: the index register is not incremented
			for i := uint8(0); i <= x; i++ {
				ch8.ram[(reg.Index+uint16(i))&addressMask] = reg.V[i]
			}
			reg.PC += 2
		case 0x65:
			for i := uint8(0); i <= x; i++ {
				reg.V[i] = ch8.ram[(reg.Index+uint16(i))&addressMask]
			}
			reg.PC += 2
		default:
			reg.PC += 2
		}

	default:
		reg.PC += 2
	}

	reg.PC &= addressMask
}
